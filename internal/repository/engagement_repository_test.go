package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"news-publisher/internal/domain"
	"news-publisher/internal/repository"
)

func TestPostgresCommentRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	defer db.Cleanup(t)

	ctx := context.Background()
	articles := repository.NewPostgresArticleRepository(db.Pool)
	repo := repository.NewPostgresCommentRepository(db.Pool)

	reader := db.InsertProfile(t, domain.RoleReader)
	author := db.InsertProfile(t, domain.RoleWriter)
	article := seedArticle(t, articles, author, domain.StatusPublished)

	t.Run("Create and ListByArticle oldest first", func(t *testing.T) {
		first := &domain.Comment{
			ID:        uuid.New().String(),
			ArticleID: article.ID,
			UserID:    reader.ID,
			UserName:  reader.FullName,
			Body:      "Great reporting.",
		}
		require.NoError(t, repo.Create(ctx, first))

		second := &domain.Comment{
			ID:        uuid.New().String(),
			ArticleID: article.ID,
			UserID:    reader.ID,
			UserName:  reader.FullName,
			Body:      "Any follow-up planned?",
		}
		require.NoError(t, repo.Create(ctx, second))
		_, err := db.Pool.Exec(ctx,
			`UPDATE comments SET created_at = created_at + INTERVAL '1 minute' WHERE id = $1`, second.ID)
		require.NoError(t, err)

		comments, err := repo.ListByArticle(ctx, article.ID)
		require.NoError(t, err)
		require.Len(t, comments, 2)
		assert.Equal(t, first.ID, comments[0].ID)
		assert.Equal(t, reader.FullName, comments[0].UserName)
		assert.Equal(t, second.ID, comments[1].ID)
	})

	t.Run("ListByArticle empty article", func(t *testing.T) {
		other := seedArticle(t, articles, author, domain.StatusPublished)
		comments, err := repo.ListByArticle(ctx, other.ID)
		require.NoError(t, err)
		assert.Empty(t, comments)
	})
}

func TestPostgresLikeRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	defer db.Cleanup(t)

	ctx := context.Background()
	articles := repository.NewPostgresArticleRepository(db.Pool)
	repo := repository.NewPostgresLikeRepository(db.Pool)

	author := db.InsertProfile(t, domain.RoleWriter)
	alice := db.InsertProfile(t, domain.RoleReader)
	bob := db.InsertProfile(t, domain.RoleReader)
	article := seedArticle(t, articles, author, domain.StatusPublished)

	t.Run("Like is idempotent per user", func(t *testing.T) {
		require.NoError(t, repo.Like(ctx, article.ID, alice.ID))
		require.NoError(t, repo.Like(ctx, article.ID, alice.ID))
		require.NoError(t, repo.Like(ctx, article.ID, bob.ID))

		count, err := repo.Count(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(2), count)
	})

	t.Run("Exists reflects the user's own like", func(t *testing.T) {
		got, err := repo.Exists(ctx, article.ID, alice.ID)
		require.NoError(t, err)
		assert.True(t, got)

		got, err = repo.Exists(ctx, article.ID, author.ID)
		require.NoError(t, err)
		assert.False(t, got)
	})

	t.Run("Unlike removes one user's like only", func(t *testing.T) {
		require.NoError(t, repo.Unlike(ctx, article.ID, alice.ID))

		count, err := repo.Count(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)

		// Unliking again is a no-op.
		require.NoError(t, repo.Unlike(ctx, article.ID, alice.ID))
		count, err = repo.Count(ctx, article.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), count)
	})
}

func TestPostgresStepUpRepository(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}

	db := SetupTestDB(t)
	defer db.Cleanup(t)

	ctx := context.Background()
	repo := repository.NewPostgresStepUpRepository(db.Pool)

	editor := db.InsertProfile(t, domain.RoleEditor)

	t.Run("Get before any challenge returns ErrNotFound", func(t *testing.T) {
		_, err := repo.Get(ctx, editor.ID)
		assert.ErrorIs(t, err, domain.ErrNotFound)
	})

	t.Run("Save inserts then updates the single row per profile", func(t *testing.T) {
		hash := "abc123"
		expires := time.Now().Add(10 * time.Minute).UTC().Truncate(time.Millisecond)
		require.NoError(t, repo.Save(ctx, &domain.StepUpChallenge{
			ProfileID:     editor.ID,
			CodeHash:      &hash,
			CodeExpiresAt: &expires,
			AttemptsLeft:  3,
		}))

		got, err := repo.Get(ctx, editor.ID)
		require.NoError(t, err)
		require.NotNil(t, got.CodeHash)
		assert.Equal(t, hash, *got.CodeHash)
		assert.Equal(t, 3, got.AttemptsLeft)
		assert.Nil(t, got.VerifiedUntil)

		// Successful verification clears the code and opens the window.
		verified := time.Now().Add(30 * time.Minute).UTC().Truncate(time.Millisecond)
		require.NoError(t, repo.Save(ctx, &domain.StepUpChallenge{
			ProfileID:     editor.ID,
			AttemptsLeft:  3,
			VerifiedUntil: &verified,
		}))

		got, err = repo.Get(ctx, editor.ID)
		require.NoError(t, err)
		assert.Nil(t, got.CodeHash)
		assert.Nil(t, got.CodeExpiresAt)
		require.NotNil(t, got.VerifiedUntil)
		assert.True(t, got.VerifiedUntil.Equal(verified))

		var count int
		require.NoError(t, db.Pool.QueryRow(ctx,
			`SELECT COUNT(*) FROM step_up_challenges WHERE profile_id = $1`, editor.ID).Scan(&count))
		assert.Equal(t, 1, count)
	})
}
