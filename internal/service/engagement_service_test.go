package service_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"news-publisher/internal/domain"
	"news-publisher/internal/mocks"
	"news-publisher/internal/service"
	"news-publisher/internal/validator"
)

type engagementFixture struct {
	articles *mocks.MockArticleRepository
	comments *mocks.MockCommentRepository
	likes    *mocks.MockLikeRepository
	svc      *service.EngagementService
}

func newEngagementFixture(t *testing.T) *engagementFixture {
	f := &engagementFixture{
		articles: mocks.NewMockArticleRepository(t),
		comments: mocks.NewMockCommentRepository(t),
		likes:    mocks.NewMockLikeRepository(t),
	}
	f.svc = service.NewEngagementService(f.articles, f.comments, f.likes, validator.NewValidator())
	return f
}

var reader = domain.Actor{ID: "reader-1", Name: "Rita Reader", Email: "rita@example.com", Role: domain.RoleReader}

func TestEngagementService_AddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("comments land on published articles", func(t *testing.T) {
		f := newEngagementFixture(t)
		article := testArticle(domain.StatusPublished)

		f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil).Once()
		f.comments.EXPECT().Create(mock.Anything, mock.AnythingOfType("*domain.Comment")).Return(nil).Once()

		got, err := f.svc.AddComment(ctx, reader, article.ID, "Great reporting.")
		require.NoError(t, err)
		assert.Equal(t, reader.ID, got.UserID)
		assert.Equal(t, reader.Name, got.UserName)
		assert.NotEmpty(t, got.ID)
	})

	t.Run("unpublished articles look absent", func(t *testing.T) {
		f := newEngagementFixture(t)
		article := testArticle(domain.StatusPending)
		f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil).Once()

		_, err := f.svc.AddComment(ctx, reader, article.ID, "early take")
		assert.ErrorIs(t, err, domain.ErrNotFound)
		f.comments.AssertNotCalled(t, "Create")
	})

	t.Run("body is capped at 500 words", func(t *testing.T) {
		f := newEngagementFixture(t)
		article := testArticle(domain.StatusPublished)
		f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil).Once()

		long := strings.Repeat("word ", 501)
		_, err := f.svc.AddComment(ctx, reader, article.ID, long)

		var valErr *domain.ValidationError
		require.ErrorAs(t, err, &valErr)
		assert.Equal(t, "body", valErr.Field)
	})
}

func TestEngagementService_Likes(t *testing.T) {
	ctx := context.Background()

	t.Run("like and unlike pass through for published articles", func(t *testing.T) {
		f := newEngagementFixture(t)
		article := testArticle(domain.StatusPublished)

		f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil).Times(3)
		f.likes.EXPECT().Like(mock.Anything, article.ID, reader.ID).Return(nil).Once()
		f.likes.EXPECT().Count(mock.Anything, article.ID).Return(int64(12), nil).Once()
		f.likes.EXPECT().Unlike(mock.Anything, article.ID, reader.ID).Return(nil).Once()

		require.NoError(t, f.svc.Like(ctx, reader, article.ID))

		count, err := f.svc.LikeCount(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(12), count)

		require.NoError(t, f.svc.Unlike(ctx, reader, article.ID))
	})

	t.Run("liking a draft fails as not found", func(t *testing.T) {
		f := newEngagementFixture(t)
		article := testArticle(domain.StatusDraft)
		f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil).Once()

		err := f.svc.Like(ctx, reader, article.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
		f.likes.AssertNotCalled(t, "Like")
	})

	t.Run("has liked", func(t *testing.T) {
		f := newEngagementFixture(t)
		article := testArticle(domain.StatusPublished)
		f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil).Once()
		f.likes.EXPECT().Exists(mock.Anything, article.ID, reader.ID).Return(true, nil).Once()

		liked, err := f.svc.HasLiked(ctx, reader, article.ID)
		require.NoError(t, err)
		assert.True(t, liked)
	})
}

func TestEngagementService_Comments(t *testing.T) {
	ctx := context.Background()
	f := newEngagementFixture(t)
	article := testArticle(domain.StatusPublished)

	f.articles.EXPECT().GetByID(mock.Anything, article.ID).Return(article, nil).Once()
	f.comments.EXPECT().ListByArticle(mock.Anything, article.ID).Return([]domain.Comment{
		{Body: "first"},
		{Body: "second"},
	}, nil).Once()

	got, err := f.svc.Comments(ctx, article.ID)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
