package fraud

import (
	"context"
	"crypto/rand"
	"time"
)

// Gate simulates a fraud-check round-trip: it blocks for a fixed delay and
// returns a verdict drawn with 50% probability from a cryptographically
// strong source. It keeps no state and never fails; an expiring context cuts
// the wait short but still yields a verdict (interruption means proceed).
type Gate struct {
	delay time.Duration
}

func NewGate(delay time.Duration) *Gate {
	return &Gate{delay: delay}
}

func (g *Gate) Validate(ctx context.Context) bool {
	timer := time.NewTimer(g.delay)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-ctx.Done():
	}

	var b [1]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms; treat a failed
		// draw as an invalid click rather than crediting it.
		return false
	}
	return b[0]&1 == 1
}
