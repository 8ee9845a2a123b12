package application

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCutoffGate_IsOpenAt(t *testing.T) {
	cutoff := time.Date(2026, time.March, 8, 7, 59, 0, 0, time.UTC)
	gate := NewCutoffGate(cutoff)

	tests := []struct {
		name string
		now  time.Time
		want bool
	}{
		{
			name: "well before cutoff",
			now:  cutoff.Add(-24 * time.Hour),
			want: true,
		},
		{
			name: "exactly at cutoff is still open",
			now:  cutoff,
			want: true,
		},
		{
			name: "one second after cutoff is closed",
			now:  cutoff.Add(time.Second),
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, gate.IsOpenAt(tt.now))
		})
	}
}
