package domain

import "time"

// StepUpChallenge is the persisted step-up verification state for a profile.
// It lives server-side so the verified window survives across processes and
// requests; one row per profile. A nil CodeHash means no challenge is
// outstanding.
type StepUpChallenge struct {
	ProfileID     string     `json:"profile_id"`
	CodeHash      *string    `json:"-"`
	CodeExpiresAt *time.Time `json:"code_expires_at,omitempty"`
	AttemptsLeft  int        `json:"attempts_left"`
	LockedUntil   *time.Time `json:"locked_until,omitempty"`
	VerifiedUntil *time.Time `json:"verified_until,omitempty"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

// VerifiedAt reports whether the profile holds a valid verification window
// at the given instant.
func (c *StepUpChallenge) VerifiedAt(now time.Time) bool {
	return c.VerifiedUntil != nil && now.Before(*c.VerifiedUntil)
}

// LockedAt reports whether the profile is locked out at the given instant.
func (c *StepUpChallenge) LockedAt(now time.Time) bool {
	return c.LockedUntil != nil && now.Before(*c.LockedUntil)
}
