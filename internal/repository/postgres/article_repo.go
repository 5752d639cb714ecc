package postgres

import (
	"context"

	"github.com/0xIG/article-crud/internal/domain"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type articleRepository struct {
	db *gorm.DB
}

func NewArticleRepository(db *gorm.DB) *articleRepository {
	return &articleRepository{db: db}
}

func (r *articleRepository) Create(ctx context.Context, article *domain.Article) error {
	return r.db.WithContext(ctx).Create(article).Error
}

func (r *articleRepository) GetByID(ctx context.Context, id uint) (*domain.Article, error) {
	var article domain.Article
	err := r.db.WithContext(ctx).
		Preload("Author").
		First(&article, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) GetByTitle(ctx context.Context, title string) (*domain.Article, error) {
	var article domain.Article
	err := r.db.WithContext(ctx).First(&article, "title = ?", title).Error
	if err != nil {
		return nil, err
	}
	return &article, nil
}

func (r *articleRepository) UpdateFields(ctx context.Context, id uint, fields map[string]any) error {
	if len(fields) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Model(&domain.Article{}).
		Where("id = ?", id).
		Updates(fields).Error
}

func (r *articleRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Delete(&domain.Article{}, "id = ?", id).Error
}

func (r *articleRepository) List(ctx context.Context, limit, offset int, sort []domain.SortField) ([]*domain.Article, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&domain.Article{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	query := r.db.WithContext(ctx).Preload("Author")
	for _, field := range sort {
		query = query.Order(clause.OrderByColumn{
			Column: clause.Column{Name: field.Field},
			Desc:   field.Direction == domain.SortDesc,
		})
	}

	var articles []*domain.Article
	err := query.
		Limit(limit).
		Offset(offset).
		Find(&articles).Error
	if err != nil {
		return nil, 0, err
	}
	return articles, total, nil
}
