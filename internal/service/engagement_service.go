package service

import (
	"context"

	"github.com/google/uuid"

	"news-publisher/internal/domain"
	"news-publisher/internal/repository"
	"news-publisher/internal/validator"
)

// EngagementService implements comments and likes. Both only apply to
// published articles.
type EngagementService struct {
	articles  repository.ArticleRepository
	comments  repository.CommentRepository
	likes     repository.LikeRepository
	validator *validator.Validator
}

// NewEngagementService creates a new EngagementService.
func NewEngagementService(articles repository.ArticleRepository, comments repository.CommentRepository, likes repository.LikeRepository, v *validator.Validator) *EngagementService {
	return &EngagementService{articles: articles, comments: comments, likes: likes, validator: v}
}

// published fetches the article and hides anything not publicly visible.
func (s *EngagementService) published(ctx context.Context, articleID string) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article.Status != domain.StatusPublished {
		return nil, domain.ErrNotFound
	}
	return article, nil
}

// Comments lists the comments on a published article, oldest first.
func (s *EngagementService) Comments(ctx context.Context, articleID string) ([]domain.Comment, error) {
	if _, err := s.published(ctx, articleID); err != nil {
		return nil, err
	}
	return s.comments.ListByArticle(ctx, articleID)
}

// AddComment appends a comment to a published article.
func (s *EngagementService) AddComment(ctx context.Context, actor domain.Actor, articleID, body string) (*domain.Comment, error) {
	if _, err := s.published(ctx, articleID); err != nil {
		return nil, err
	}

	comment := &domain.Comment{
		ID:        uuid.New().String(),
		ArticleID: articleID,
		UserID:    actor.ID,
		UserName:  actor.Name,
		Body:      body,
	}
	if err := s.validator.ValidateComment(comment); err != nil {
		return nil, err
	}
	if err := s.comments.Create(ctx, comment); err != nil {
		return nil, err
	}
	return comment, nil
}

// Like records the actor's like on a published article. Liking twice is a
// no-op.
func (s *EngagementService) Like(ctx context.Context, actor domain.Actor, articleID string) error {
	if _, err := s.published(ctx, articleID); err != nil {
		return err
	}
	return s.likes.Like(ctx, articleID, actor.ID)
}

// Unlike removes the actor's like. Removing an absent like is a no-op.
func (s *EngagementService) Unlike(ctx context.Context, actor domain.Actor, articleID string) error {
	if _, err := s.published(ctx, articleID); err != nil {
		return err
	}
	return s.likes.Unlike(ctx, articleID, actor.ID)
}

// LikeCount returns the number of likes on a published article.
func (s *EngagementService) LikeCount(ctx context.Context, articleID string) (int64, error) {
	if _, err := s.published(ctx, articleID); err != nil {
		return 0, err
	}
	return s.likes.Count(ctx, articleID)
}

// HasLiked reports whether the actor has liked the article.
func (s *EngagementService) HasLiked(ctx context.Context, actor domain.Actor, articleID string) (bool, error) {
	if _, err := s.published(ctx, articleID); err != nil {
		return false, err
	}
	return s.likes.Exists(ctx, articleID, actor.ID)
}
