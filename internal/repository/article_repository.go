package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"news-publisher/internal/domain"
)

const articleColumns = `id, title, content, excerpt, category, tags, featured_image_url,
	image_caption, seo_title, seo_description, word_count, author_id, author_name,
	status, submitted_at, reviewed_at, reviewed_by, rejection_reason, published_at,
	view_count, created_at, updated_at`

// PostgresArticleRepository implements ArticleRepository using PostgreSQL.
type PostgresArticleRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresArticleRepository creates a new PostgresArticleRepository.
func NewPostgresArticleRepository(pool *pgxpool.Pool) *PostgresArticleRepository {
	return &PostgresArticleRepository{pool: pool}
}

// Create inserts a new article in draft status.
func (r *PostgresArticleRepository) Create(ctx context.Context, a *domain.Article) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO articles (id, title, content, excerpt, category, tags, featured_image_url,
			image_caption, seo_title, seo_description, word_count, author_id, author_name,
			status, view_count, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, 0, NOW(), NOW())
	`, a.ID, a.Title, a.Content, a.Excerpt, a.Category, a.Tags, a.FeaturedImageURL,
		a.ImageCaption, a.SEOTitle, a.SEODescription, a.WordCount, a.AuthorID, a.AuthorName,
		a.Status)
	if err != nil {
		return &domain.CollaboratorError{Op: "article.create", Err: err}
	}
	return nil
}

// GetByID retrieves an article by id.
func (r *PostgresArticleRepository) GetByID(ctx context.Context, id string) (*domain.Article, error) {
	var a domain.Article
	err := readWithRetry(ctx, func() error {
		return r.pool.QueryRow(ctx,
			`SELECT `+articleColumns+` FROM articles WHERE id = $1`, id,
		).Scan(articleFields(&a)...)
	})
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, &domain.CollaboratorError{Op: "article.get", Err: err}
	}
	return &a, nil
}

// UpdateContent updates the author-editable content fields. The workflow
// fields (status, review metadata) are never touched here.
func (r *PostgresArticleRepository) UpdateContent(ctx context.Context, a *domain.Article) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE articles
		SET title = $2, content = $3, excerpt = $4, category = $5, tags = $6,
			featured_image_url = $7, image_caption = $8, seo_title = $9,
			seo_description = $10, word_count = $11, updated_at = NOW()
		WHERE id = $1
	`, a.ID, a.Title, a.Content, a.Excerpt, a.Category, a.Tags,
		a.FeaturedImageURL, a.ImageCaption, a.SEOTitle, a.SEODescription, a.WordCount)
	if err != nil {
		return &domain.CollaboratorError{Op: "article.update", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an article. Review events, comments and likes go with it.
func (r *PostgresArticleRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return &domain.CollaboratorError{Op: "article.delete", Err: err}
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// ListPublished lists published articles, newest first, with optional
// category, tag and full-text-ish filters.
func (r *PostgresArticleRepository) ListPublished(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE status = $1`
	args := []interface{}{domain.StatusPublished}
	argNum := 2

	if filter.Category != "" {
		query += fmt.Sprintf(" AND category = $%d", argNum)
		args = append(args, filter.Category)
		argNum++
	}
	if filter.Tag != "" {
		query += fmt.Sprintf(" AND $%d = ANY(tags)", argNum)
		args = append(args, filter.Tag)
		argNum++
	}
	if filter.Search != "" {
		query += fmt.Sprintf(" AND (title ILIKE $%d OR excerpt ILIKE $%d)", argNum, argNum)
		args = append(args, "%"+strings.TrimSpace(filter.Search)+"%")
		argNum++
	}

	query += " ORDER BY published_at DESC"

	limit := filter.Limit
	if limit <= 0 {
		limit = 20
	}
	query += fmt.Sprintf(" LIMIT $%d", argNum)
	args = append(args, limit)
	argNum++

	if filter.Offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argNum)
		args = append(args, filter.Offset)
	}

	return r.list(ctx, "article.list_published", query, args...)
}

// ListByAuthor lists an author's articles, newest first, optionally narrowed
// to one status.
func (r *PostgresArticleRepository) ListByAuthor(ctx context.Context, authorID string, status *domain.Status) ([]domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE author_id = $1`
	args := []interface{}{authorID}
	if status != nil {
		query += " AND status = $2"
		args = append(args, *status)
	}
	query += " ORDER BY created_at DESC"
	return r.list(ctx, "article.list_by_author", query, args...)
}

// ListPending lists articles awaiting review, oldest submission first so the
// review queue is fair.
func (r *PostgresArticleRepository) ListPending(ctx context.Context) ([]domain.Article, error) {
	query := `SELECT ` + articleColumns + ` FROM articles WHERE status = $1 ORDER BY submitted_at ASC`
	return r.list(ctx, "article.list_pending", query, domain.StatusPending)
}

// IncrementViews bumps the view counter with a single atomic update.
func (r *PostgresArticleRepository) IncrementViews(ctx context.Context, id string) error {
	_, err := r.pool.Exec(ctx,
		`UPDATE articles SET view_count = view_count + 1 WHERE id = $1`, id)
	if err != nil {
		return &domain.CollaboratorError{Op: "article.increment_views", Err: err}
	}
	return nil
}

// ApplyTransition performs the status change and the review-event append in
// one transaction, guarded by a status-equality precondition. If the guard
// fails nothing is written and the caller learns whether the record vanished
// or was transitioned concurrently.
func (r *PostgresArticleRepository) ApplyTransition(ctx context.Context, id string, from, to domain.Status, upd TransitionUpdate, event *domain.ReviewEvent) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return &domain.CollaboratorError{Op: "article.transition", Err: err}
	}
	defer func() { _ = tx.Rollback(ctx) }()

	sets := []string{"status = $2", "updated_at = NOW()"}
	args := []interface{}{id, to, from}
	argNum := 4

	if upd.SetSubmittedAt {
		sets = append(sets, "submitted_at = NOW()")
	}
	if upd.SetReviewed {
		sets = append(sets, fmt.Sprintf("reviewed_at = NOW(), reviewed_by = $%d", argNum))
		args = append(args, upd.ReviewedBy)
		argNum++
	}
	if upd.RejectionReason != nil {
		sets = append(sets, fmt.Sprintf("rejection_reason = $%d", argNum))
		args = append(args, *upd.RejectionReason)
		argNum++
	}
	if upd.ClearRejectionReason {
		sets = append(sets, "rejection_reason = NULL")
	}
	if upd.SetPublishedAt {
		// published_at is written exactly once.
		sets = append(sets, "published_at = COALESCE(published_at, NOW())")
	}

	query := fmt.Sprintf(
		"UPDATE articles SET %s WHERE id = $1 AND status = $3",
		strings.Join(sets, ", "))

	tag, err := tx.Exec(ctx, query, args...)
	if err != nil {
		return &domain.CollaboratorError{Op: "article.transition", Err: err}
	}
	if tag.RowsAffected() == 0 {
		// Precondition failed: distinguish a vanished record from a
		// concurrent transition.
		var current domain.Status
		err := tx.QueryRow(ctx, `SELECT status FROM articles WHERE id = $1`, id).Scan(&current)
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.ErrNotFound
		}
		if err != nil {
			return &domain.CollaboratorError{Op: "article.transition", Err: err}
		}
		return domain.ErrConcurrencyConflict
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO review_events (id, article_id, actor_id, action, from_status, to_status, reason, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW())
	`, event.ID, event.ArticleID, event.ActorID, event.Action, event.FromStatus, event.ToStatus, event.Reason)
	if err != nil {
		return &domain.CollaboratorError{Op: "article.transition", Err: err}
	}

	if err := tx.Commit(ctx); err != nil {
		return &domain.CollaboratorError{Op: "article.transition", Err: err}
	}
	return nil
}

func (r *PostgresArticleRepository) list(ctx context.Context, op, query string, args ...interface{}) ([]domain.Article, error) {
	var articles []domain.Article
	err := readWithRetry(ctx, func() error {
		rows, err := r.pool.Query(ctx, query, args...)
		if err != nil {
			return err
		}
		defer rows.Close()

		articles = articles[:0]
		for rows.Next() {
			var a domain.Article
			if err := rows.Scan(articleFields(&a)...); err != nil {
				return err
			}
			articles = append(articles, a)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, &domain.CollaboratorError{Op: op, Err: err}
	}
	return articles, nil
}

// articleFields returns scan destinations matching articleColumns order.
func articleFields(a *domain.Article) []interface{} {
	return []interface{}{
		&a.ID, &a.Title, &a.Content, &a.Excerpt, &a.Category, &a.Tags, &a.FeaturedImageURL,
		&a.ImageCaption, &a.SEOTitle, &a.SEODescription, &a.WordCount, &a.AuthorID, &a.AuthorName,
		&a.Status, &a.SubmittedAt, &a.ReviewedAt, &a.ReviewedBy, &a.RejectionReason, &a.PublishedAt,
		&a.ViewCount, &a.CreatedAt, &a.UpdatedAt,
	}
}
