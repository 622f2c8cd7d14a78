package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-publisher/internal/domain"
)

// PostgresLikeRepository implements LikeRepository using PostgreSQL. Likes
// are one row per (article, user); counts come from the store, never from
// read-modify-write in the application.
type PostgresLikeRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresLikeRepository creates a new PostgresLikeRepository.
func NewPostgresLikeRepository(pool *pgxpool.Pool) *PostgresLikeRepository {
	return &PostgresLikeRepository{pool: pool}
}

// Like records a like. Liking twice is a no-op.
func (r *PostgresLikeRepository) Like(ctx context.Context, articleID, userID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO article_likes (article_id, user_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (article_id, user_id) DO NOTHING
	`, articleID, userID)
	if err != nil {
		return &domain.CollaboratorError{Op: "like.create", Err: err}
	}
	return nil
}

// Unlike removes a like. Removing a non-existent like is a no-op.
func (r *PostgresLikeRepository) Unlike(ctx context.Context, articleID, userID string) error {
	_, err := r.pool.Exec(ctx,
		`DELETE FROM article_likes WHERE article_id = $1 AND user_id = $2`,
		articleID, userID)
	if err != nil {
		return &domain.CollaboratorError{Op: "like.delete", Err: err}
	}
	return nil
}

// Count returns the exact number of likes for an article.
func (r *PostgresLikeRepository) Count(ctx context.Context, articleID string) (int64, error) {
	var count int64
	err := readWithRetry(ctx, func() error {
		return r.pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM article_likes WHERE article_id = $1`, articleID,
		).Scan(&count)
	})
	if err != nil {
		return 0, &domain.CollaboratorError{Op: "like.count", Err: err}
	}
	return count, nil
}

// Exists reports whether the user has liked the article.
func (r *PostgresLikeRepository) Exists(ctx context.Context, articleID, userID string) (bool, error) {
	var exists bool
	err := readWithRetry(ctx, func() error {
		return r.pool.QueryRow(ctx, `
			SELECT EXISTS(SELECT 1 FROM article_likes WHERE article_id = $1 AND user_id = $2)
		`, articleID, userID).Scan(&exists)
	})
	if err != nil {
		return false, &domain.CollaboratorError{Op: "like.exists", Err: err}
	}
	return exists, nil
}
