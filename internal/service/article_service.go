package service

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"news-publisher/internal/domain"
	"news-publisher/internal/logger"
	"news-publisher/internal/repository"
	"news-publisher/internal/validator"
	"news-publisher/internal/workflow"
)

// CreateArticleInput carries the author-supplied fields of a new draft.
type CreateArticleInput struct {
	Title            string   `json:"title"`
	Content          string   `json:"content"`
	Excerpt          string   `json:"excerpt"`
	Category         string   `json:"category"`
	Tags             []string `json:"tags"`
	FeaturedImageURL *string  `json:"featured_image_url"`
	ImageCaption     *string  `json:"image_caption"`
	SEOTitle         *string  `json:"seo_title"`
	SEODescription   *string  `json:"seo_description"`
}

// UpdateArticleInput carries an edit to an existing draft or rejected
// article. Nil fields are left unchanged.
type UpdateArticleInput struct {
	Title            *string   `json:"title"`
	Content          *string   `json:"content"`
	Excerpt          *string   `json:"excerpt"`
	Category         *string   `json:"category"`
	Tags             *[]string `json:"tags"`
	FeaturedImageURL *string   `json:"featured_image_url"`
	ImageCaption     *string   `json:"image_caption"`
	SEOTitle         *string   `json:"seo_title"`
	SEODescription   *string   `json:"seo_description"`
}

// ArticleService implements article content operations. Status changes are
// out of scope here; those go through the WorkflowService.
type ArticleService struct {
	articles  repository.ArticleRepository
	events    repository.ReviewEventRepository
	validator *validator.Validator
}

// NewArticleService creates a new ArticleService.
func NewArticleService(articles repository.ArticleRepository, events repository.ReviewEventRepository, v *validator.Validator) *ArticleService {
	return &ArticleService{articles: articles, events: events, validator: v}
}

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// countWords counts the words of the content with markup stripped, so the
// stored word count reflects readable text.
func countWords(content string) int {
	plain := htmlTagPattern.ReplaceAllString(content, " ")
	return len(strings.Fields(plain))
}

// Create stores a new draft owned by the actor.
func (s *ArticleService) Create(ctx context.Context, actor domain.Actor, input CreateArticleInput) (*domain.Article, error) {
	if err := workflow.Allow(actor.Role, domain.ActionCreate, workflow.Target{}); err != nil {
		return nil, err
	}

	article := &domain.Article{
		ID:               uuid.New().String(),
		Title:            strings.TrimSpace(input.Title),
		Content:          input.Content,
		Excerpt:          strings.TrimSpace(input.Excerpt),
		Category:         input.Category,
		Tags:             input.Tags,
		FeaturedImageURL: input.FeaturedImageURL,
		ImageCaption:     input.ImageCaption,
		SEOTitle:         input.SEOTitle,
		SEODescription:   input.SEODescription,
		WordCount:        countWords(input.Content),
		AuthorID:         actor.ID,
		AuthorName:       actor.Name,
		Status:           domain.StatusDraft,
	}

	if err := s.validator.ValidateDraft(article); err != nil {
		return nil, err
	}
	if err := s.articles.Create(ctx, article); err != nil {
		return nil, err
	}

	logger.InfoContext(ctx, "article created",
		slog.String("article_id", article.ID),
		slog.String("author_id", actor.ID))
	return article, nil
}

// Update edits article content. Only drafts and rejected articles are
// editable; everything else must move through the workflow first.
func (s *ArticleService) Update(ctx context.Context, actor domain.Actor, articleID string, input UpdateArticleInput) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	target := workflow.Target{Owned: article.OwnedBy(actor.ID), Status: article.Status}
	if err := workflow.Allow(actor.Role, domain.ActionEditOwn, target); err != nil {
		return nil, err
	}
	if !article.Status.Editable() {
		return nil, domain.NewValidationError("status", "only draft and rejected articles can be edited")
	}

	if input.Title != nil {
		article.Title = strings.TrimSpace(*input.Title)
	}
	if input.Content != nil {
		article.Content = *input.Content
		article.WordCount = countWords(*input.Content)
	}
	if input.Excerpt != nil {
		article.Excerpt = strings.TrimSpace(*input.Excerpt)
	}
	if input.Category != nil {
		article.Category = *input.Category
	}
	if input.Tags != nil {
		article.Tags = *input.Tags
	}
	if input.FeaturedImageURL != nil {
		article.FeaturedImageURL = input.FeaturedImageURL
	}
	if input.ImageCaption != nil {
		article.ImageCaption = input.ImageCaption
	}
	if input.SEOTitle != nil {
		article.SEOTitle = input.SEOTitle
	}
	if input.SEODescription != nil {
		article.SEODescription = input.SEODescription
	}

	if err := s.validator.ValidateDraft(article); err != nil {
		return nil, err
	}
	if err := s.articles.UpdateContent(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

// Get fetches a single article. Anonymous callers and readers only see
// published articles; authors see their own in any status; editors and
// admins see everything. countView bumps the view counter for published
// articles on public reads.
func (s *ArticleService) Get(ctx context.Context, actor *domain.Actor, articleID string, countView bool) (*domain.Article, error) {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	visible := article.Status == domain.StatusPublished
	if !visible && actor != nil {
		visible = article.OwnedBy(actor.ID) || actor.Role.CanReview()
	}
	if !visible {
		// Unpublished articles are indistinguishable from absent ones
		// for callers without access.
		return nil, domain.ErrNotFound
	}

	if countView && article.Status == domain.StatusPublished {
		if err := s.articles.IncrementViews(ctx, articleID); err != nil {
			logger.WarnContext(ctx, "view count increment failed",
				slog.String("article_id", articleID),
				slog.String("error", err.Error()))
		} else {
			article.ViewCount++
		}
	}
	return article, nil
}

// Delete removes an article. Authors may delete their own drafts; editors
// and admins may delete anything.
func (s *ArticleService) Delete(ctx context.Context, actor domain.Actor, articleID string) error {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return err
	}

	target := workflow.Target{Owned: article.OwnedBy(actor.ID), Status: article.Status}
	if err := workflow.Allow(actor.Role, domain.ActionDelete, target); err != nil {
		return err
	}

	if err := s.articles.Delete(ctx, articleID); err != nil {
		return err
	}
	logger.InfoContext(ctx, "article deleted",
		slog.String("article_id", articleID),
		slog.String("actor_id", actor.ID))
	return nil
}

// ListPublished lists publicly visible articles.
func (s *ArticleService) ListPublished(ctx context.Context, filter domain.ArticleFilter) ([]domain.Article, error) {
	return s.articles.ListPublished(ctx, filter)
}

// ListMine lists the actor's own articles, optionally filtered by status.
func (s *ArticleService) ListMine(ctx context.Context, actor domain.Actor, status *domain.Status) ([]domain.Article, error) {
	if status != nil && !status.Valid() {
		return nil, domain.NewValidationError("status", "unknown_status")
	}
	return s.articles.ListByAuthor(ctx, actor.ID, status)
}

// ListPending lists the review queue, oldest submission first.
func (s *ArticleService) ListPending(ctx context.Context, actor domain.Actor) ([]domain.Article, error) {
	if err := workflow.Allow(actor.Role, domain.ActionApprove, workflow.Target{}); err != nil {
		return nil, err
	}
	return s.articles.ListPending(ctx)
}

// Events returns the article's review history. Visible to the author and to
// reviewers.
func (s *ArticleService) Events(ctx context.Context, actor domain.Actor, articleID string) ([]domain.ReviewEvent, error) {
	article, err := s.articles.GetByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if !article.OwnedBy(actor.ID) && !actor.Role.CanReview() {
		return nil, &domain.PermissionError{
			Role:   actor.Role,
			Action: domain.ActionEditOwn,
			Reason: "only the author or a reviewer can read the review history",
		}
	}
	return s.events.ListByArticle(ctx, articleID)
}
