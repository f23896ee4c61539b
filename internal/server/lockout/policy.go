// Package lockout implements the per-account failed-login state machine.
//
// The state lives on the account row (models.Lockout); Policy only computes
// transitions, so the repository decides how the read-modify-write is done.
package lockout

import (
	"time"

	"github.com/dmitrijs2005/zkkeeper/internal/server/models"
)

// Policy holds the lockout parameters.
type Policy struct {
	Threshold int
	Duration  time.Duration
}

// NewPolicy returns a Policy with the given threshold and lock duration.
func NewPolicy(threshold int, duration time.Duration) Policy {
	return Policy{Threshold: threshold, Duration: duration}
}

// IsLocked reports whether the account is locked at now. A lock expires on
// its own once now passes LockedUntil; there is no unlock action.
func (p Policy) IsLocked(s models.Lockout, now time.Time) bool {
	return s.LockedUntil != nil && !now.After(*s.LockedUntil)
}

// RegisterFailure returns the state after one failed attempt. Reaching the
// threshold locks the account and resets the count to zero, so after the
// lock expires a fresh run of Threshold failures is needed to lock again.
// A failure during an active lock leaves the state unchanged. Otherwise the
// previous LockedUntil has expired and is dropped.
func (p Policy) RegisterFailure(s models.Lockout, now time.Time) models.Lockout {
	if p.IsLocked(s, now) {
		return s
	}
	at := now
	next := models.Lockout{
		FailedCount:  s.FailedCount + 1,
		LastFailedAt: &at,
	}
	if next.FailedCount >= p.Threshold {
		until := now.Add(p.Duration)
		next.FailedCount = 0
		next.LockedUntil = &until
	}
	return next
}

// RegisterSuccess returns the state after a successful attempt.
func (p Policy) RegisterSuccess(models.Lockout) models.Lockout {
	return models.Lockout{}
}
