package postgres_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/0xIG/article-crud/internal/domain"
	"github.com/0xIG/article-crud/internal/repository/postgres"
	"github.com/0xIG/article-crud/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestArticleRepository_Create(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewArticleRepository(testDB.DB)
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	article := &domain.Article{
		Title:       "Repo Article",
		Description: "Description",
		Content:     "Content",
		AuthorID:    author.ID,
	}
	require.NoError(t, repo.Create(ctx, article))
	assert.NotZero(t, article.ID)

	t.Run("duplicate title", func(t *testing.T) {
		dup := &domain.Article{
			Title:       "Repo Article",
			Description: "Other",
			Content:     "Other",
			AuthorID:    author.ID,
		}
		assert.ErrorIs(t, repo.Create(ctx, dup), gorm.ErrDuplicatedKey)
	})
}

func TestArticleRepository_GetByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewArticleRepository(testDB.DB)
	ctx := context.Background()

	article := testutil.NewArticleBuilder().Build(t, testDB.DB)

	found, err := repo.GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, article.Title, found.Title)
	// Author relation comes preloaded
	assert.Equal(t, article.Author.ID, found.Author.ID)
	assert.NotEmpty(t, found.Author.Email)

	_, err = repo.GetByID(ctx, article.ID+1000)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)
}

func TestArticleRepository_UpdateFields(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewArticleRepository(testDB.DB)
	ctx := context.Background()

	article := testutil.NewArticleBuilder().
		WithTitle("Before").
		WithDescription("Keep me").
		Build(t, testDB.DB)

	err := repo.UpdateFields(ctx, article.ID, map[string]any{"title": "After"})
	require.NoError(t, err)

	found, err := repo.GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, "After", found.Title)
	assert.Equal(t, "Keep me", found.Description)

	t.Run("empty field map is a no-op", func(t *testing.T) {
		assert.NoError(t, repo.UpdateFields(ctx, article.ID, nil))
	})
}

func TestArticleRepository_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewArticleRepository(testDB.DB)
	ctx := context.Background()

	article := testutil.NewArticleBuilder().Build(t, testDB.DB)

	require.NoError(t, repo.Delete(ctx, article.ID))

	_, err := repo.GetByID(ctx, article.ID)
	assert.ErrorIs(t, err, gorm.ErrRecordNotFound)

	// Missing id is not an error
	assert.NoError(t, repo.Delete(ctx, article.ID))
}

func TestArticleRepository_List(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repo := postgres.NewArticleRepository(testDB.DB)
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	for i := 1; i <= 7; i++ {
		testutil.NewArticleBuilder().
			WithTitle(fmt.Sprintf("List Article %d", i)).
			WithAuthor(author).
			Build(t, testDB.DB)
	}

	items, total, err := repo.List(ctx, 5, 0, nil)
	require.NoError(t, err)
	assert.Len(t, items, 5)
	assert.Equal(t, int64(7), total)

	items, total, err = repo.List(ctx, 5, 5, nil)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	assert.Equal(t, int64(7), total)

	t.Run("sorting", func(t *testing.T) {
		items, _, err := repo.List(ctx, 7, 0, []domain.SortField{
			{Field: "id", Direction: domain.SortDesc},
		})
		require.NoError(t, err)
		require.Len(t, items, 7)
		for i := 1; i < len(items); i++ {
			assert.True(t, items[i-1].ID > items[i].ID)
		}
	})
}
