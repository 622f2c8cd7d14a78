package repository

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-publisher/internal/domain"
)

const profileColumns = `id, email, full_name, role, bio, avatar_url, is_active,
	is_verified, mfa_enabled, password_hash, created_at, updated_at`

// ErrEmailTaken indicates a registration with an already-used email.
var ErrEmailTaken = errors.New("email already registered")

// PostgresProfileRepository implements ProfileRepository using PostgreSQL.
type PostgresProfileRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresProfileRepository creates a new PostgresProfileRepository.
func NewPostgresProfileRepository(pool *pgxpool.Pool) *PostgresProfileRepository {
	return &PostgresProfileRepository{pool: pool}
}

// Create inserts a new profile.
func (r *PostgresProfileRepository) Create(ctx context.Context, p *domain.Profile) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO profiles (id, email, full_name, role, bio, avatar_url, is_active,
			is_verified, mfa_enabled, password_hash, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, NOW(), NOW())
	`, p.ID, p.Email, p.FullName, p.Role, p.Bio, p.AvatarURL, p.Active,
		p.Verified, p.MFAEnabled, p.PasswordHash)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return ErrEmailTaken
		}
		return &domain.CollaboratorError{Op: "profile.create", Err: err}
	}
	return nil
}

// GetByID retrieves a profile by id.
func (r *PostgresProfileRepository) GetByID(ctx context.Context, id string) (*domain.Profile, error) {
	return r.get(ctx, `SELECT `+profileColumns+` FROM profiles WHERE id = $1`, id)
}

// GetByEmail retrieves a profile by email.
func (r *PostgresProfileRepository) GetByEmail(ctx context.Context, email string) (*domain.Profile, error) {
	return r.get(ctx, `SELECT `+profileColumns+` FROM profiles WHERE email = $1`, email)
}

func (r *PostgresProfileRepository) get(ctx context.Context, query string, arg interface{}) (*domain.Profile, error) {
	var p domain.Profile
	err := readWithRetry(ctx, func() error {
		return r.pool.QueryRow(ctx, query, arg).Scan(
			&p.ID, &p.Email, &p.FullName, &p.Role, &p.Bio, &p.AvatarURL, &p.Active,
			&p.Verified, &p.MFAEnabled, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, &domain.CollaboratorError{Op: "profile.get", Err: err}
	}
	return &p, nil
}

// UpdateDetails updates the profile's own editable fields. Role and active
// flag have dedicated audited methods.
func (r *PostgresProfileRepository) UpdateDetails(ctx context.Context, p *domain.Profile) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE profiles
		SET full_name = $2, bio = $3, avatar_url = $4, mfa_enabled = $5, updated_at = NOW()
		WHERE id = $1
	`, p.ID, p.FullName, p.Bio, p.AvatarURL, p.MFAEnabled)
	if err != nil {
		return &domain.CollaboratorError{Op: "profile.update", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// List lists active profiles, newest first.
func (r *PostgresProfileRepository) List(ctx context.Context, limit, offset int) ([]domain.Profile, error) {
	if limit <= 0 {
		limit = 50
	}
	var profiles []domain.Profile
	err := readWithRetry(ctx, func() error {
		rows, err := r.pool.Query(ctx, `
			SELECT `+profileColumns+` FROM profiles
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2
		`, limit, offset)
		if err != nil {
			return err
		}
		defer rows.Close()

		profiles = profiles[:0]
		for rows.Next() {
			var p domain.Profile
			if err := rows.Scan(
				&p.ID, &p.Email, &p.FullName, &p.Role, &p.Bio, &p.AvatarURL, &p.Active,
				&p.Verified, &p.MFAEnabled, &p.PasswordHash, &p.CreatedAt, &p.UpdatedAt); err != nil {
				return err
			}
			profiles = append(profiles, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, &domain.CollaboratorError{Op: "profile.list", Err: err}
	}
	return profiles, nil
}

// UpdateRole changes a profile's role and appends the audit record in the
// same transaction.
func (r *PostgresProfileRepository) UpdateRole(ctx context.Context, id string, role domain.Role, event *domain.ProfileEvent) error {
	return r.auditedUpdate(ctx, event,
		`UPDATE profiles SET role = $2, updated_at = NOW() WHERE id = $1`, id, role)
}

// SetActive toggles the active flag and appends the audit record in the
// same transaction.
func (r *PostgresProfileRepository) SetActive(ctx context.Context, id string, active bool, event *domain.ProfileEvent) error {
	return r.auditedUpdate(ctx, event,
		`UPDATE profiles SET is_active = $2, updated_at = NOW() WHERE id = $1`, id, active)
}

func (r *PostgresProfileRepository) auditedUpdate(ctx context.Context, event *domain.ProfileEvent, query string, args ...interface{}) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return &domain.CollaboratorError{Op: "profile.audit_update", Err: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return &domain.CollaboratorError{Op: "profile.audit_update", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO profile_events (id, profile_id, actor_id, action, old_value, new_value, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, NOW())
	`, event.ID, event.ProfileID, event.ActorID, event.Action, event.OldValue, event.NewValue)
	if err != nil {
		return &domain.CollaboratorError{Op: "profile.audit_update", Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return &domain.CollaboratorError{Op: "profile.audit_update", Err: err}
	}
	return nil
}

// ListEvents lists the audit records for a profile, newest first.
func (r *PostgresProfileRepository) ListEvents(ctx context.Context, profileID string) ([]domain.ProfileEvent, error) {
	var events []domain.ProfileEvent
	err := readWithRetry(ctx, func() error {
		rows, err := r.pool.Query(ctx, `
			SELECT id, profile_id, actor_id, action, old_value, new_value, created_at
			FROM profile_events
			WHERE profile_id = $1
			ORDER BY created_at DESC
		`, profileID)
		if err != nil {
			return err
		}
		defer rows.Close()

		events = events[:0]
		for rows.Next() {
			var e domain.ProfileEvent
			if err := rows.Scan(&e.ID, &e.ProfileID, &e.ActorID, &e.Action, &e.OldValue, &e.NewValue, &e.CreatedAt); err != nil {
				return err
			}
			events = append(events, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, &domain.CollaboratorError{Op: "profile.list_events", Err: err}
	}
	return events, nil
}
