package service

import (
	"context"
	"errors"

	"github.com/0xIG/article-crud/internal/domain"
	"github.com/0xIG/article-crud/internal/repository"
	"gorm.io/gorm"
)

const (
	DefaultPageSize  = 10
	DefaultPageIndex = 1
)

type ArticleService struct {
	articleRepo repository.ArticleRepository
}

func NewArticleService(articleRepo repository.ArticleRepository) *ArticleService {
	return &ArticleService{articleRepo: articleRepo}
}

// ArticleUpdate carries the subset of fields a partial edit may change.
// Nil fields are left untouched.
type ArticleUpdate struct {
	Title       *string
	Description *string
	Content     *string
}

// ArticlePage is one page of articles plus the total count across all pages.
type ArticlePage struct {
	Items []*domain.Article
	Total int64
}

func (s *ArticleService) GetByID(ctx context.Context, id uint) (*domain.Article, error) {
	article, err := s.articleRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}

func (s *ArticleService) GetByTitle(ctx context.Context, title string) (*domain.Article, error) {
	article, err := s.articleRepo.GetByTitle(ctx, title)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrArticleNotFound
		}
		return nil, err
	}
	return article, nil
}

// Add persists a new article for the given author. The caller is expected to
// have resolved the author and pre-checked the title; a concurrent create
// with the same title still maps to ErrTitleExists via the unique index.
func (s *ArticleService) Add(ctx context.Context, author *domain.User, title, description, content string) (*domain.Article, error) {
	article := &domain.Article{
		Title:       title,
		Description: description,
		Content:     content,
		AuthorID:    author.ID,
	}

	if err := s.articleRepo.Create(ctx, article); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrTitleExists
		}
		return nil, err
	}

	// Reload with the author relation so the response carries the full record.
	return s.GetByID(ctx, article.ID)
}

// Edit applies a partial update and returns the freshly reloaded article so
// the updated timestamp is authoritative.
func (s *ArticleService) Edit(ctx context.Context, id uint, update ArticleUpdate) (*domain.Article, error) {
	fields := map[string]any{}
	if update.Title != nil {
		fields["title"] = *update.Title
	}
	if update.Description != nil {
		fields["description"] = *update.Description
	}
	if update.Content != nil {
		fields["content"] = *update.Content
	}

	if err := s.articleRepo.UpdateFields(ctx, id, fields); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, domain.ErrTitleExists
		}
		return nil, err
	}

	return s.GetByID(ctx, id)
}

// Delete removes the article. Deleting a missing id is not an error here;
// existence and ownership are checked by the caller.
func (s *ArticleService) Delete(ctx context.Context, id uint) error {
	return s.articleRepo.Delete(ctx, id)
}

// List returns the requested page. pageIndex is 1-based; out-of-range values
// fall back to the defaults.
func (s *ArticleService) List(ctx context.Context, pageSize, pageIndex int, sort []domain.SortField) (*ArticlePage, error) {
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	if pageIndex < 1 {
		pageIndex = DefaultPageIndex
	}
	offset := (pageIndex - 1) * pageSize

	items, total, err := s.articleRepo.List(ctx, pageSize, offset, sort)
	if err != nil {
		return nil, err
	}
	return &ArticlePage{Items: items, Total: total}, nil
}
