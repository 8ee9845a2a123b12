package application

import "time"

// CutoffGate decides whether the fixed RSVP deadline has passed. The
// cutoff instant is supplied at construction; the gate never reads it
// from ambient state.
type CutoffGate struct {
	cutoff time.Time
}

// NewCutoffGate creates a gate for the given cutoff instant.
func NewCutoffGate(cutoff time.Time) *CutoffGate {
	return &CutoffGate{cutoff: cutoff}
}

// IsOpenAt reports whether submissions are still accepted at the given
// instant. The boundary is inclusive: now == cutoff is still open.
func (g *CutoffGate) IsOpenAt(now time.Time) bool {
	return !now.After(g.cutoff)
}

// IsOpen reports whether submissions are accepted right now.
func (g *CutoffGate) IsOpen() bool {
	return g.IsOpenAt(time.Now())
}
