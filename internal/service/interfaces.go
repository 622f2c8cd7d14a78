package service

import (
	"context"

	"news-publisher/internal/domain"
)

// WorkflowServiceInterface is the single authoritative entry point for
// article status transitions.
type WorkflowServiceInterface interface {
	Submit(ctx context.Context, actor domain.Actor, articleID string) (*domain.Article, error)
	Resubmit(ctx context.Context, actor domain.Actor, articleID string) (*domain.Article, error)
	Approve(ctx context.Context, actor domain.Actor, articleID string) (*domain.Article, error)
	Reject(ctx context.Context, actor domain.Actor, articleID string, reason string) (*domain.Article, error)
	Publish(ctx context.Context, actor domain.Actor, articleID string) (*domain.Article, error)
	Archive(ctx context.Context, actor domain.Actor, articleID string) (*domain.Article, error)
}

// ArticleServiceInterface covers article content operations outside the
// status machine.
type ArticleServiceInterface interface {
	Create(ctx context.Context, actor domain.Actor, input CreateArticleInput) (*domain.Article, error)
	Update(ctx context.Context, actor domain.Actor, articleID string, input UpdateArticleInput) (*domain.Article, error)
	Get(ctx context.Context, actor *domain.Actor, articleID string, countView bool) (*domain.Article, error)
	Delete(ctx context.Context, actor domain.Actor, articleID string) error
	ListPublished(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error)
	ListMine(ctx context.Context, actor domain.Actor, status *domain.Status) ([]domain.Article, error)
	ListPending(ctx context.Context, actor domain.Actor) ([]domain.Article, error)
	Events(ctx context.Context, actor domain.Actor, articleID string) ([]domain.ReviewEvent, error)
}

// AuthServiceInterface covers registration and login against the identity
// provider.
type AuthServiceInterface interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
}

// StepUpServiceInterface is the step-up verification gate.
type StepUpServiceInterface interface {
	Required(actor domain.Actor) bool
	Verified(ctx context.Context, actor domain.Actor) (bool, error)
	Challenge(ctx context.Context, actor domain.Actor) error
	Verify(ctx context.Context, actor domain.Actor, code string) error
}

// ProfileServiceInterface covers profile reads and admin management.
type ProfileServiceInterface interface {
	Get(ctx context.Context, id string) (*domain.Profile, error)
	UpdateOwn(ctx context.Context, actor domain.Actor, input UpdateProfileInput) (*domain.Profile, error)
	List(ctx context.Context, actor domain.Actor, limit, offset int) ([]domain.Profile, error)
	ChangeRole(ctx context.Context, actor domain.Actor, profileID string, role domain.Role) (*domain.Profile, error)
	SetActive(ctx context.Context, actor domain.Actor, profileID string, active bool) (*domain.Profile, error)
	Events(ctx context.Context, actor domain.Actor, profileID string) ([]domain.ProfileEvent, error)
}

// EngagementServiceInterface covers comments and likes.
type EngagementServiceInterface interface {
	Comments(ctx context.Context, articleID string) ([]domain.Comment, error)
	AddComment(ctx context.Context, actor domain.Actor, articleID, body string) (*domain.Comment, error)
	Like(ctx context.Context, actor domain.Actor, articleID string) error
	Unlike(ctx context.Context, actor domain.Actor, articleID string) error
	LikeCount(ctx context.Context, articleID string) (int64, error)
	HasLiked(ctx context.Context, actor domain.Actor, articleID string) (bool, error)
}

// CodeSender delivers a one-time step-up code out of band.
type CodeSender interface {
	SendCode(ctx context.Context, email, code string) error
}
