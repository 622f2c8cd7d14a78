package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-publisher/internal/domain"
)

// PostgresReviewEventRepository implements ReviewEventRepository using
// PostgreSQL. Events are only ever written through
// ArticleRepository.ApplyTransition; this repository is read-only.
type PostgresReviewEventRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresReviewEventRepository creates a new PostgresReviewEventRepository.
func NewPostgresReviewEventRepository(pool *pgxpool.Pool) *PostgresReviewEventRepository {
	return &PostgresReviewEventRepository{pool: pool}
}

// ListByArticle lists an article's review events, oldest first, so the trail
// reads as a history.
func (r *PostgresReviewEventRepository) ListByArticle(ctx context.Context, articleID string) ([]domain.ReviewEvent, error) {
	var events []domain.ReviewEvent
	err := readWithRetry(ctx, func() error {
		rows, err := r.pool.Query(ctx, `
			SELECT id, article_id, actor_id, action, from_status, to_status, reason, created_at
			FROM review_events
			WHERE article_id = $1
			ORDER BY created_at ASC
		`, articleID)
		if err != nil {
			return err
		}
		defer rows.Close()

		events = events[:0]
		for rows.Next() {
			var e domain.ReviewEvent
			if err := rows.Scan(&e.ID, &e.ArticleID, &e.ActorID, &e.Action, &e.FromStatus, &e.ToStatus, &e.Reason, &e.CreatedAt); err != nil {
				return err
			}
			events = append(events, e)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, &domain.CollaboratorError{Op: "review_event.list", Err: err}
	}
	return events, nil
}
