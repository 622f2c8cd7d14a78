package repository

import (
	"context"
	"time"

	"news-publisher/internal/domain"
)

// TransitionUpdate describes the audit fields a workflow transition writes
// alongside the status change. The repository applies all of them and the
// review event in a single transaction, conditional on the current status
// matching the expected from-status.
type TransitionUpdate struct {
	// SetSubmittedAt sets submitted_at to now (submit, resubmit).
	SetSubmittedAt bool
	// SetReviewed sets reviewed_at to now and reviewed_by to ReviewedBy
	// (approve, reject).
	SetReviewed bool
	ReviewedBy  string
	// RejectionReason is stored when rejecting.
	RejectionReason *string
	// ClearRejectionReason nulls the reason when resubmitting.
	ClearRejectionReason bool
	// SetPublishedAt sets published_at to now only if it is currently
	// null; a published_at is never overwritten or cleared.
	SetPublishedAt bool
}

// ArticleRepository defines article data access against the content store.
type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id string) (*domain.Article, error)
	UpdateContent(ctx context.Context, article *domain.Article) error
	Delete(ctx context.Context, id string) error
	ListPublished(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	ListByAuthor(ctx context.Context, authorID string, status *domain.Status) ([]domain.Article, error)
	ListPending(ctx context.Context) ([]domain.Article, error)
	// IncrementViews bumps the view counter atomically at the store; it is
	// never read-modify-write.
	IncrementViews(ctx context.Context, id string) error
	// ApplyTransition performs the conditional status update plus the
	// review-event append atomically. It returns ErrConcurrencyConflict if
	// the status no longer equals from, or ErrNotFound if the record is
	// gone.
	ApplyTransition(ctx context.Context, id string, from, to domain.Status, upd TransitionUpdate, event *domain.ReviewEvent) error
}

// ReviewEventRepository reads the append-only audit trail.
type ReviewEventRepository interface {
	ListByArticle(ctx context.Context, articleID string) ([]domain.ReviewEvent, error)
}

// ProfileRepository defines profile data access.
type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByID(ctx context.Context, id string) (*domain.Profile, error)
	GetByEmail(ctx context.Context, email string) (*domain.Profile, error)
	UpdateDetails(ctx context.Context, profile *domain.Profile) error
	List(ctx context.Context, limit, offset int) ([]domain.Profile, error)
	// UpdateRole changes the role and appends the audit record in one
	// transaction.
	UpdateRole(ctx context.Context, id string, role domain.Role, event *domain.ProfileEvent) error
	// SetActive toggles the active flag and appends the audit record in
	// one transaction.
	SetActive(ctx context.Context, id string, active bool, event *domain.ProfileEvent) error
	ListEvents(ctx context.Context, profileID string) ([]domain.ProfileEvent, error)
}

// CommentRepository defines comment data access.
type CommentRepository interface {
	Create(ctx context.Context, comment *domain.Comment) error
	ListByArticle(ctx context.Context, articleID string) ([]domain.Comment, error)
}

// LikeRepository defines like data access. Like and Unlike are idempotent.
type LikeRepository interface {
	Like(ctx context.Context, articleID, userID string) error
	Unlike(ctx context.Context, articleID, userID string) error
	Count(ctx context.Context, articleID string) (int64, error)
	Exists(ctx context.Context, articleID, userID string) (bool, error)
}

// StepUpRepository persists per-profile step-up verification state.
type StepUpRepository interface {
	Get(ctx context.Context, profileID string) (*domain.StepUpChallenge, error)
	Save(ctx context.Context, challenge *domain.StepUpChallenge) error
}

// Clock abstracts time for services that reason about windows and lockouts.
type Clock func() time.Time
