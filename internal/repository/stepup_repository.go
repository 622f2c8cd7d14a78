package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-publisher/internal/domain"
)

// PostgresStepUpRepository implements StepUpRepository using PostgreSQL, so
// the verified window is wall-clock state any process can check.
type PostgresStepUpRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresStepUpRepository creates a new PostgresStepUpRepository.
func NewPostgresStepUpRepository(pool *pgxpool.Pool) *PostgresStepUpRepository {
	return &PostgresStepUpRepository{pool: pool}
}

// Get retrieves the step-up state for a profile. A profile with no row has
// never been challenged; callers get ErrNotFound.
func (r *PostgresStepUpRepository) Get(ctx context.Context, profileID string) (*domain.StepUpChallenge, error) {
	var c domain.StepUpChallenge
	err := readWithRetry(ctx, func() error {
		return r.pool.QueryRow(ctx, `
			SELECT profile_id, code_hash, code_expires_at, attempts_left, locked_until, verified_until, updated_at
			FROM step_up_challenges
			WHERE profile_id = $1
		`, profileID).Scan(&c.ProfileID, &c.CodeHash, &c.CodeExpiresAt, &c.AttemptsLeft,
			&c.LockedUntil, &c.VerifiedUntil, &c.UpdatedAt)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, &domain.CollaboratorError{Op: "stepup.get", Err: err}
	}
	return &c, nil
}

// Save upserts the step-up state for a profile.
func (r *PostgresStepUpRepository) Save(ctx context.Context, c *domain.StepUpChallenge) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO step_up_challenges (profile_id, code_hash, code_expires_at, attempts_left, locked_until, verified_until, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
		ON CONFLICT (profile_id) DO UPDATE SET
			code_hash = EXCLUDED.code_hash,
			code_expires_at = EXCLUDED.code_expires_at,
			attempts_left = EXCLUDED.attempts_left,
			locked_until = EXCLUDED.locked_until,
			verified_until = EXCLUDED.verified_until,
			updated_at = NOW()
	`, c.ProfileID, c.CodeHash, c.CodeExpiresAt, c.AttemptsLeft, c.LockedUntil, c.VerifiedUntil)
	if err != nil {
		return &domain.CollaboratorError{Op: "stepup.save", Err: err}
	}
	return nil
}
