package service_test

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/0xIG/article-crud/internal/domain"
	"github.com/0xIG/article-crud/internal/repository/postgres"
	"github.com/0xIG/article-crud/internal/service"
	"github.com/0xIG/article-crud/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArticleService_Add(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	articleService := service.NewArticleService(repos.Article)
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().Build(t, testDB.DB)

	article, err := articleService.Add(ctx, author, "First Post", "A description", "The content")
	require.NoError(t, err)
	assert.NotZero(t, article.ID)
	assert.Equal(t, "First Post", article.Title)
	assert.Equal(t, author.ID, article.Author.ID)
	assert.False(t, article.CreatedAt.IsZero())

	t.Run("duplicate title conflicts", func(t *testing.T) {
		_, err := articleService.Add(ctx, author, "First Post", "Other description", "Other content")
		assert.ErrorIs(t, err, domain.ErrTitleExists)
	})
}

func TestArticleService_GetByID(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	articleService := service.NewArticleService(repos.Article)
	ctx := context.Background()

	article := testutil.NewArticleBuilder().Build(t, testDB.DB)

	first, err := articleService.GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, article.Title, first.Title)
	assert.Equal(t, article.Author.ID, first.Author.ID)

	// Reads are idempotent without intervening writes
	second, err := articleService.GetByID(ctx, article.ID)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = articleService.GetByID(ctx, article.ID+1000)
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)
}

func TestArticleService_Edit(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	articleService := service.NewArticleService(repos.Article)
	ctx := context.Background()

	article := testutil.NewArticleBuilder().
		WithTitle("Original Title").
		WithDescription("Original description").
		WithContent("Original content").
		Build(t, testDB.DB)

	newTitle := "Updated Title"
	updated, err := articleService.Edit(ctx, article.ID, service.ArticleUpdate{Title: &newTitle})
	require.NoError(t, err)

	assert.Equal(t, "Updated Title", updated.Title)
	// Fields absent from the update are untouched
	assert.Equal(t, "Original description", updated.Description)
	assert.Equal(t, "Original content", updated.Content)
	assert.True(t, updated.UpdatedAt.After(article.UpdatedAt) || updated.UpdatedAt.Equal(article.UpdatedAt))
	assert.Equal(t, article.Author.ID, updated.Author.ID)

	t.Run("empty update reloads the record", func(t *testing.T) {
		reloaded, err := articleService.Edit(ctx, article.ID, service.ArticleUpdate{})
		require.NoError(t, err)
		assert.Equal(t, "Updated Title", reloaded.Title)
	})

	t.Run("missing article", func(t *testing.T) {
		title := "whatever"
		_, err := articleService.Edit(ctx, article.ID+1000, service.ArticleUpdate{Title: &title})
		assert.ErrorIs(t, err, domain.ErrArticleNotFound)
	})

	t.Run("title collision", func(t *testing.T) {
		other := testutil.NewArticleBuilder().WithTitle("Taken Title").Build(t, testDB.DB)
		title := other.Title
		_, err := articleService.Edit(ctx, article.ID, service.ArticleUpdate{Title: &title})
		assert.ErrorIs(t, err, domain.ErrTitleExists)
	})
}

func TestArticleService_Edit_AdvancesUpdatedAt(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	articleService := service.NewArticleService(repos.Article)
	ctx := context.Background()

	article := testutil.NewArticleBuilder().Build(t, testDB.DB)

	time.Sleep(10 * time.Millisecond)

	content := "fresh content"
	updated, err := articleService.Edit(ctx, article.ID, service.ArticleUpdate{Content: &content})
	require.NoError(t, err)
	assert.True(t, updated.UpdatedAt.After(article.UpdatedAt))
}

func TestArticleService_Delete(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	articleService := service.NewArticleService(repos.Article)
	ctx := context.Background()

	article := testutil.NewArticleBuilder().Build(t, testDB.DB)

	require.NoError(t, articleService.Delete(ctx, article.ID))

	_, err := articleService.GetByID(ctx, article.ID)
	assert.ErrorIs(t, err, domain.ErrArticleNotFound)

	// Deleting an already-deleted id is not an error at this layer
	assert.NoError(t, articleService.Delete(ctx, article.ID))
}

func TestArticleService_List(t *testing.T) {
	testDB := testutil.NewTestDB(t)
	repos := postgres.NewRepositories(testDB.DB)
	articleService := service.NewArticleService(repos.Article)
	ctx := context.Background()

	author, _ := testutil.NewUserBuilder().Build(t, testDB.DB)
	for i := 1; i <= 15; i++ {
		testutil.NewArticleBuilder().
			WithTitle(fmt.Sprintf("Article %02d", i)).
			WithAuthor(author).
			Build(t, testDB.DB)
	}

	tests := []struct {
		name      string
		pageSize  int
		pageIndex int
		wantItems int
	}{
		{name: "first page", pageSize: 10, pageIndex: 1, wantItems: 10},
		{name: "second page has remainder", pageSize: 10, pageIndex: 2, wantItems: 5},
		{name: "page beyond the end is empty", pageSize: 10, pageIndex: 3, wantItems: 0},
		{name: "defaults applied for zero values", pageSize: 0, pageIndex: 0, wantItems: 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page, err := articleService.List(ctx, tt.pageSize, tt.pageIndex, nil)
			require.NoError(t, err)
			assert.Len(t, page.Items, tt.wantItems)
			// Total is independent of paging
			assert.Equal(t, int64(15), page.Total)
		})
	}

	t.Run("authors are populated", func(t *testing.T) {
		page, err := articleService.List(ctx, 5, 1, nil)
		require.NoError(t, err)
		for _, item := range page.Items {
			assert.Equal(t, author.ID, item.Author.ID)
			assert.NotEmpty(t, item.Author.Email)
		}
	})

	t.Run("sorted by title descending", func(t *testing.T) {
		page, err := articleService.List(ctx, 3, 1, []domain.SortField{
			{Field: "title", Direction: domain.SortDesc},
		})
		require.NoError(t, err)
		require.Len(t, page.Items, 3)
		assert.Equal(t, "Article 15", page.Items[0].Title)
		assert.Equal(t, "Article 14", page.Items[1].Title)
		assert.Equal(t, "Article 13", page.Items[2].Title)
	})

	t.Run("multi-field sort respects order", func(t *testing.T) {
		page, err := articleService.List(ctx, 2, 1, []domain.SortField{
			{Field: "created_at", Direction: domain.SortAsc},
			{Field: "id", Direction: domain.SortAsc},
		})
		require.NoError(t, err)
		require.Len(t, page.Items, 2)
		assert.True(t, page.Items[0].ID < page.Items[1].ID)
	})
}
