package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "sheet-123")
	t.Setenv("GOOGLE_CREDENTIALS", `{"type":"service_account"}`)
	t.Setenv("RSVP_CUTOFF", "2026-03-08T07:59:00Z")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "Guests", cfg.SheetTab)
	assert.Equal(t, "sheet-123", cfg.SpreadsheetID)
	assert.Equal(t, time.Date(2026, time.March, 8, 7, 59, 0, 0, time.UTC), cfg.CutoffUTC)
}

func TestLoadConfig_MissingSpreadsheetID(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "")
	t.Setenv("GOOGLE_CREDENTIALS", `{"type":"service_account"}`)

	_, err := LoadConfig()
	require.ErrorContains(t, err, "SPREADSHEET_ID")
}

func TestLoadConfig_MissingCredentials(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "sheet-123")
	t.Setenv("GOOGLE_CREDENTIALS", "")

	_, err := LoadConfig()
	require.ErrorContains(t, err, "GOOGLE_CREDENTIALS")
}

func TestLoadConfig_InvalidCutoff(t *testing.T) {
	t.Setenv("SPREADSHEET_ID", "sheet-123")
	t.Setenv("GOOGLE_CREDENTIALS", `{"type":"service_account"}`)
	t.Setenv("RSVP_CUTOFF", "March 7, 2026")

	_, err := LoadConfig()
	require.ErrorContains(t, err, "RSVP_CUTOFF")
}
