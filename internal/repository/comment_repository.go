package repository

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"

	"news-publisher/internal/domain"
)

// PostgresCommentRepository implements CommentRepository using PostgreSQL.
type PostgresCommentRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresCommentRepository creates a new PostgresCommentRepository.
func NewPostgresCommentRepository(pool *pgxpool.Pool) *PostgresCommentRepository {
	return &PostgresCommentRepository{pool: pool}
}

// Create appends a comment.
func (r *PostgresCommentRepository) Create(ctx context.Context, c *domain.Comment) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO comments (id, article_id, user_id, user_name, body, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
	`, c.ID, c.ArticleID, c.UserID, c.UserName, c.Body)
	if err != nil {
		return &domain.CollaboratorError{Op: "comment.create", Err: err}
	}
	return nil
}

// ListByArticle lists an article's comments, oldest first.
func (r *PostgresCommentRepository) ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error) {
	var comments []domain.Comment
	err := readWithRetry(ctx, func() error {
		rows, err := r.pool.Query(ctx, `
			SELECT id, article_id, user_id, user_name, body, created_at
			FROM comments
			WHERE article_id = $1
			ORDER BY created_at ASC
		`, articleID)
		if err != nil {
			return err
		}
		defer rows.Close()

		comments = comments[:0]
		for rows.Next() {
			var c domain.Comment
			if err := rows.Scan(&c.ID, &c.ArticleID, &c.UserID, &c.UserName, &c.Body, &c.CreatedAt); err != nil {
				return err
			}
			comments = append(comments, c)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, &domain.CollaboratorError{Op: "comment.list", Err: err}
	}
	return comments, nil
}
