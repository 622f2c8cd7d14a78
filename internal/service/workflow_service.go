package service

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"news-publisher/internal/domain"
	"news-publisher/internal/logger"
	"news-publisher/internal/metrics"
	"news-publisher/internal/repository"
	"news-publisher/internal/validator"
	"news-publisher/internal/workflow"
)

// WorkflowService executes article status transitions. Every transition goes
// through one path: permission gate, transition table lookup, guards, then a
// single conditional update that writes the status change and the review
// event together. There is no fallback path around the precondition.
type WorkflowService struct {
	articles    repository.ArticleRepository
	validator   *validator.Validator
	autoPublish bool
}

// NewWorkflowService creates a new WorkflowService. When autoPublish is set,
// an approval is immediately followed by a publish transition.
func NewWorkflowService(articles repository.ArticleRepository, v *validator.Validator, autoPublish bool) *WorkflowService {
	return &WorkflowService{
		articles:    articles,
		validator:   v,
		autoPublish: autoPublish,
	}
}

// Submit moves a draft into review.
func (s *WorkflowService) Submit(ctx context.Context, actor domain.Actor, articleID string) (*domain.Article, error) {
	return s.transition(ctx, actor, articleID, domain.TriggerSubmit, "")
}

// Resubmit moves a rejected article back into review, clearing the previous
// rejection reason.
func (s *WorkflowService) Resubmit(ctx context.Context, actor domain.Actor, articleID string) (*domain.Article, error) {
	return s.transition(ctx, actor, articleID, domain.TriggerResubmit, "")
}

// Approve accepts a pending article.
func (s *WorkflowService) Approve(ctx context.Context, actor domain.Actor, articleID string) (*domain.Article, error) {
	article, err := s.transition(ctx, actor, articleID, domain.TriggerApprove, "")
	if err != nil {
		return nil, err
	}
	if !s.autoPublish {
		return article, nil
	}

	// Auto-publish chains a second, separately-audited transition. The
	// approval above has already committed; a failure here leaves the
	// article approved, which a later manual publish can pick up.
	published, err := s.transition(ctx, actor, articleID, domain.TriggerPublish, "")
	if err != nil {
		logger.WarnContext(ctx, "auto-publish after approve failed",
			slog.String("article_id", articleID),
			slog.String("error", err.Error()))
		return article, nil
	}
	return published, nil
}

// Reject returns a pending article to its author with a reason. An empty
// reason fails validation before the record is touched.
func (s *WorkflowService) Reject(ctx context.Context, actor domain.Actor, articleID string, reason string) (*domain.Article, error) {
	if err := s.validator.ValidateRejectionReason(reason); err != nil {
		return nil, err
	}
	return s.transition(ctx, actor, articleID, domain.TriggerReject, reason)
}

// Publish makes an approved article publicly visible.
func (s *WorkflowService) Publish(ctx context.Context, actor domain.Actor, articleID string) (*domain.Article, error) {
	return s.transition(ctx, actor, articleID, domain.TriggerPublish, "")
}

// Archive retires a published article.
func (s *WorkflowService) Archive(ctx context.Context, actor domain.Actor, articleID string) (*domain.Article, error) {
	return s.transition(ctx, actor, articleID, domain.TriggerArchive, "")
}

// transition is the single transition path.
func (s *WorkflowService) transition(ctx context.Context, actor domain.Actor, articleID string, trigger domain.Trigger, reason string) (*domain.Article, error) {
	log := logger.Default().With(
		slog.String("article_id", articleID),
		slog.String("actor_id", actor.ID),
		slog.String("trigger", string(trigger)))

	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		metrics.ObserveTransition(string(trigger), metrics.ResultError)
		return nil, err
	}

	// The permission gate runs before the table lookup so a role that may
	// never perform the action is always told "denied", not "wrong state".
	target := workflow.Target{Owned: article.OwnedBy(actor.ID), Status: article.Status}
	if err := workflow.Allow(actor.Role, workflow.ActionFor(trigger), target); err != nil {
		metrics.ObserveTransition(string(trigger), metrics.ResultDenied)
		log.WarnContext(ctx, "transition denied", slog.String("error", err.Error()))
		return nil, err
	}

	rule, err := workflow.Lookup(articleID, article.Status, trigger)
	if err != nil {
		metrics.ObserveTransition(string(trigger), metrics.ResultInvalid)
		log.WarnContext(ctx, "invalid transition",
			slog.String("from", string(article.Status)),
			slog.String("error", err.Error()))
		return nil, err
	}

	if trigger == domain.TriggerSubmit || trigger == domain.TriggerResubmit {
		if err := s.validator.ValidateSubmission(article); err != nil {
			metrics.ObserveTransition(string(trigger), metrics.ResultError)
			return nil, err
		}
	}

	upd, event := buildTransition(actor, article, rule, reason)
	if err := s.articles.ApplyTransition(ctx, articleID, rule.From, rule.To, upd, event); err != nil {
		switch {
		case errors.Is(err, domain.ErrConcurrencyConflict):
			metrics.ObserveTransition(string(trigger), metrics.ResultConflict)
			log.WarnContext(ctx, "transition lost optimistic precondition")
		default:
			metrics.ObserveTransition(string(trigger), metrics.ResultError)
			log.ErrorContext(ctx, "transition failed", slog.String("error", err.Error()))
		}
		return nil, err
	}

	metrics.ObserveTransition(string(trigger), metrics.ResultSuccess)
	log.InfoContext(ctx, "transition applied",
		slog.String("from", string(rule.From)),
		slog.String("to", string(rule.To)))

	return s.articles.GetByID(ctx, articleID)
}

// buildTransition derives the audit field updates and the review event for
// one table rule.
func buildTransition(actor domain.Actor, article *domain.Article, rule workflow.Rule, reason string) (repository.TransitionUpdate, *domain.ReviewEvent) {
	var upd repository.TransitionUpdate

	switch rule.Event {
	case domain.ReviewActionSubmitted:
		upd.SetSubmittedAt = true
	case domain.ReviewActionResubmitted:
		upd.SetSubmittedAt = true
		upd.ClearRejectionReason = true
	case domain.ReviewActionApproved:
		upd.SetReviewed = true
		upd.ReviewedBy = actor.ID
	case domain.ReviewActionRejected:
		upd.SetReviewed = true
		upd.ReviewedBy = actor.ID
		upd.RejectionReason = &reason
	case domain.ReviewActionPublished:
		upd.SetPublishedAt = true
	case domain.ReviewActionArchived:
		// Status change and event only.
	}

	event := &domain.ReviewEvent{
		ID:         uuid.New().String(),
		ArticleID:  article.ID,
		ActorID:    actor.ID,
		Action:     rule.Event,
		FromStatus: rule.From,
		ToStatus:   rule.To,
	}
	if reason != "" {
		event.Reason = &reason
	}
	return upd, event
}
