package repository

import (
	"context"

	"github.com/0xIG/article-crud/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id uint) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// GetByEmailWithPassword returns the user including the password hash.
	// Only the signin credential check should use it.
	GetByEmailWithPassword(ctx context.Context, email string) (*domain.User, error)
}

type ArticleRepository interface {
	Create(ctx context.Context, article *domain.Article) error
	GetByID(ctx context.Context, id uint) (*domain.Article, error)
	GetByTitle(ctx context.Context, title string) (*domain.Article, error)
	// UpdateFields applies only the given columns to the article row.
	UpdateFields(ctx context.Context, id uint, fields map[string]any) error
	Delete(ctx context.Context, id uint) error
	// List returns one page of articles with authors preloaded, plus the
	// total article count independent of paging.
	List(ctx context.Context, limit, offset int, sort []domain.SortField) ([]*domain.Article, int64, error)
}

type Repositories struct {
	User    UserRepository
	Article ArticleRepository
}
