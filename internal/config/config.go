package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the application configuration. Business logic never
// reads the environment directly; everything it needs is injected from
// here at construction.
type Config struct {
	ServerPort     string
	AllowedOrigins string

	SpreadsheetID     string
	SheetTab          string
	GoogleCredentials string

	// CutoffUTC is the instant after which lookups go read-only and
	// submissions are rejected. CutoffDisplay is the human-readable
	// date used in the confirmation email copy.
	CutoffUTC     time.Time
	CutoffDisplay string

	CoupleNames string
	SiteURL     string

	ResendAPIKey string
	ResendFrom   string

	SMTPHost      string
	SMTPPort      string
	SMTPUser      string
	SMTPPassword  string
	SMTPFromName  string
	SMTPFromEmail string
}

// LoadConfig loads configuration from environment variables, reading a
// local .env file first when present. Missing storage identity or
// credentials fail here, at startup, instead of surfacing as
// per-request server errors.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerPort:     getEnv("PORT", "8080"),
		AllowedOrigins: getEnv("ALLOWED_ORIGINS", "https://bigornia2ladao.com,https://www.bigornia2ladao.com"),

		SpreadsheetID:     os.Getenv("SPREADSHEET_ID"),
		SheetTab:          getEnv("SHEET_TAB", "Guests"),
		GoogleCredentials: os.Getenv("GOOGLE_CREDENTIALS"),

		CutoffDisplay: getEnv("RSVP_CUTOFF_DISPLAY", "March 7, 2026"),

		CoupleNames: getEnv("COUPLE_NAMES", "Yvette & Jason"),
		SiteURL:     getEnv("SITE_URL", "bigornia2ladao.com"),

		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		ResendFrom:   os.Getenv("RESEND_FROM"),

		SMTPHost:      os.Getenv("SMTP_HOST"),
		SMTPPort:      getEnv("SMTP_PORT", "587"),
		SMTPUser:      os.Getenv("SMTP_USER"),
		SMTPPassword:  os.Getenv("SMTP_PASSWORD"),
		SMTPFromName:  getEnv("SMTP_FROM_NAME", "RSVP"),
		SMTPFromEmail: os.Getenv("SMTP_FROM_EMAIL"),
	}

	if cfg.SpreadsheetID == "" {
		return nil, fmt.Errorf("missing SPREADSHEET_ID env var")
	}
	if cfg.GoogleCredentials == "" {
		return nil, fmt.Errorf("missing GOOGLE_CREDENTIALS env var")
	}

	// RSVP cutoff: March 7, 2026 11:59 PM PST = March 8, 2026 07:59 UTC
	cutoffRaw := getEnv("RSVP_CUTOFF", "2026-03-08T07:59:00Z")
	cutoff, err := time.Parse(time.RFC3339, cutoffRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid RSVP_CUTOFF %q: %w", cutoffRaw, err)
	}
	cfg.CutoffUTC = cutoff

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
