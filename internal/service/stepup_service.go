package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"log/slog"
	"time"

	"news-publisher/internal/auth"
	"news-publisher/internal/domain"
	"news-publisher/internal/logger"
	"news-publisher/internal/metrics"
	"news-publisher/internal/repository"
)

// StepUpConfig holds the step-up gate tunables.
type StepUpConfig struct {
	// Window is how long a successful verification lasts.
	Window time.Duration
	// Attempts is the number of wrong codes allowed per challenge.
	Attempts int
	// Lockout is how long the gate stays closed after the attempt
	// budget is exhausted.
	Lockout time.Duration
	// CodeTTL is how long an issued code remains redeemable.
	CodeTTL time.Duration
}

// StepUpService issues and verifies one-time codes for privileged actions.
// State lives in the store keyed by profile id, so the verified window holds
// across processes and restarts.
type StepUpService struct {
	challenges repository.StepUpRepository
	sender     CodeSender
	cfg        StepUpConfig
	now        repository.Clock
}

// NewStepUpService creates a new StepUpService. now may be nil, in which
// case wall-clock time is used.
func NewStepUpService(challenges repository.StepUpRepository, sender CodeSender, cfg StepUpConfig, now repository.Clock) *StepUpService {
	if now == nil {
		now = time.Now
	}
	return &StepUpService{challenges: challenges, sender: sender, cfg: cfg, now: now}
}

// Required reports whether the actor must hold a step-up verification for
// privileged actions.
func (s *StepUpService) Required(actor domain.Actor) bool {
	return actor.Role.CanReview() && actor.MFAEnabled
}

// Verified reports whether the actor currently holds a valid verification
// window. Actors without step-up enabled are always verified.
func (s *StepUpService) Verified(ctx context.Context, actor domain.Actor) (bool, error) {
	if !s.Required(actor) {
		return true, nil
	}
	challenge, err := s.challenges.Get(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return challenge.VerifiedAt(s.now()), nil
}

// Challenge issues a fresh one-time code and sends it to the actor's email.
// Issuing a new code replaces any outstanding one and resets the attempt
// budget; it does not clear an active lockout.
func (s *StepUpService) Challenge(ctx context.Context, actor domain.Actor) error {
	now := s.now()

	challenge, err := s.challenges.Get(ctx, actor.ID)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return err
	}
	if challenge != nil && challenge.LockedAt(now) {
		return &domain.StepUpLockedOutError{RetryAfter: challenge.LockedUntil.Sub(now)}
	}

	code, err := auth.GenerateCode()
	if err != nil {
		return err
	}
	hash := auth.HashCode(code)
	expires := now.Add(s.cfg.CodeTTL)

	next := &domain.StepUpChallenge{
		ProfileID:     actor.ID,
		CodeHash:      &hash,
		CodeExpiresAt: &expires,
		AttemptsLeft:  s.cfg.Attempts,
		UpdatedAt:     now,
	}
	if challenge != nil {
		next.VerifiedUntil = challenge.VerifiedUntil
	}
	if err := s.challenges.Save(ctx, next); err != nil {
		return err
	}

	if err := s.sender.SendCode(ctx, actor.Email, code); err != nil {
		return &domain.CollaboratorError{Op: "send step-up code", Err: err}
	}

	metrics.StepUpChallengesTotal.Inc()
	logger.InfoContext(ctx, "step-up challenge issued",
		slog.String("profile_id", actor.ID))
	return nil
}

// Verify redeems a code. On success the actor gains a verification window
// and the code is consumed. A wrong code spends one attempt; exhausting the
// budget locks the gate. An expired code never spends an attempt.
func (s *StepUpService) Verify(ctx context.Context, actor domain.Actor, code string) error {
	now := s.now()

	challenge, err := s.challenges.Get(ctx, actor.ID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ErrChallengeExpired
		}
		return err
	}
	if challenge.LockedAt(now) {
		metrics.ObserveStepUpVerification(metrics.ResultDenied)
		return &domain.StepUpLockedOutError{RetryAfter: challenge.LockedUntil.Sub(now)}
	}
	if challenge.CodeHash == nil {
		return domain.ErrChallengeExpired
	}
	if challenge.CodeExpiresAt == nil || now.After(*challenge.CodeExpiresAt) {
		// Expiry invalidates the code without touching the attempt
		// budget; the caller just requests a new one.
		challenge.CodeHash = nil
		challenge.CodeExpiresAt = nil
		challenge.UpdatedAt = now
		if err := s.challenges.Save(ctx, challenge); err != nil {
			return err
		}
		metrics.ObserveStepUpVerification(metrics.ResultError)
		return domain.ErrChallengeExpired
	}

	if subtle.ConstantTimeCompare([]byte(*challenge.CodeHash), []byte(auth.HashCode(code))) != 1 {
		challenge.AttemptsLeft--
		challenge.UpdatedAt = now
		if challenge.AttemptsLeft <= 0 {
			locked := now.Add(s.cfg.Lockout)
			challenge.LockedUntil = &locked
			challenge.CodeHash = nil
			challenge.CodeExpiresAt = nil
			if err := s.challenges.Save(ctx, challenge); err != nil {
				return err
			}
			metrics.ObserveStepUpVerification(metrics.ResultDenied)
			logger.WarnContext(ctx, "step-up locked out",
				slog.String("profile_id", actor.ID))
			return &domain.StepUpLockedOutError{RetryAfter: s.cfg.Lockout}
		}
		if err := s.challenges.Save(ctx, challenge); err != nil {
			return err
		}
		metrics.ObserveStepUpVerification(metrics.ResultError)
		return domain.ErrCodeMismatch
	}

	verified := now.Add(s.cfg.Window)
	challenge.CodeHash = nil
	challenge.CodeExpiresAt = nil
	challenge.AttemptsLeft = 0
	challenge.LockedUntil = nil
	challenge.VerifiedUntil = &verified
	challenge.UpdatedAt = now
	if err := s.challenges.Save(ctx, challenge); err != nil {
		return err
	}

	metrics.ObserveStepUpVerification(metrics.ResultSuccess)
	logger.InfoContext(ctx, "step-up verified",
		slog.String("profile_id", actor.ID))
	return nil
}
