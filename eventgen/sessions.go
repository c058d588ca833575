package eventgen

import (
	"math/rand"
)

// sessionRenewalProbability is the per-draw chance that a user's current
// session identifier is replaced rather than reused. It models browser
// session churn: sessions persist across most events but occasionally renew.
const sessionRenewalProbability = 0.10

// SessionTracker maintains the current session identifier per user.
//
// Sessions are never explicitly destroyed; the map lives for the lifetime of
// the generator that owns the tracker.
type SessionTracker struct {
	rng      *rand.Rand
	sessions map[string]string
}

// NewSessionTracker creates a tracker drawing renewal decisions and session
// identifiers from the given random stream.
func NewSessionTracker(rng *rand.Rand) *SessionTracker {
	return &SessionTracker{
		rng:      rng,
		sessions: make(map[string]string),
	}
}

// SessionFor returns the user's current session identifier, creating a fresh
// one when the user has none yet or when the renewal draw fires.
//
// It must be called exactly once per synthesized event for the user;
// evaluating it twice for one event would bias the renewal rate.
func (t *SessionTracker) SessionFor(userID string) string {
	current, exists := t.sessions[userID]
	if !exists || t.rng.Float64() < sessionRenewalProbability {
		current = randomID(t.rng, "ses_", sessionIDHexLength)
		t.sessions[userID] = current
	}

	return current
}
