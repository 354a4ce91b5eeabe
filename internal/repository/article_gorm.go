package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"articles/internal/models"
	"articles/internal/pagination"
)

// gormArticleRepo — та же ArticleRepo поверх gorm (SQLite).
type gormArticleRepo struct{ db *gorm.DB }

func NewGormArticleRepo(db *gorm.DB) ArticleRepo { return &gormArticleRepo{db: db} }

func (r *gormArticleRepo) Save(ctx context.Context, a *models.Article) (*models.Article, error) {
	db := r.db.WithContext(ctx)

	if a.ID == 0 {
		out := *a
		if err := db.Create(&out).Error; err != nil {
			return nil, fmt.Errorf("create article: %w", err)
		}
		return &out, nil
	}

	err := db.Model(&models.Article{}).Where("id = ?", a.ID).Updates(map[string]any{
		"title":   a.Title,
		"content": a.Content,
		"writer":  a.Writer,
	}).Error
	if err != nil {
		return nil, fmt.Errorf("update article: %w", err)
	}
	return r.FindByID(ctx, a.ID)
}

func (r *gormArticleRepo) FindByID(ctx context.Context, id int64) (*models.Article, error) {
	var a models.Article
	if err := r.db.WithContext(ctx).First(&a, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("find article: %w", err)
	}
	return &a, nil
}

func (r *gormArticleRepo) FindAll(ctx context.Context) ([]*models.Article, error) {
	list := make([]*models.Article, 0)
	if err := r.db.WithContext(ctx).Order("id").Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find articles: %w", err)
	}
	return list, nil
}

func (r *gormArticleRepo) FindPage(ctx context.Context, req pagination.Request) (pagination.Page[*models.Article], error) {
	order, err := orderBy(req.Sort)
	if err != nil {
		return pagination.Page[*models.Article]{}, err
	}

	db := r.db.WithContext(ctx)

	var total int64
	if err := db.Model(&models.Article{}).Count(&total).Error; err != nil {
		return pagination.Page[*models.Article]{}, fmt.Errorf("count articles: %w", err)
	}

	list := make([]*models.Article, 0)
	if err := db.Order(order).Limit(req.Size).Offset(req.Offset()).Find(&list).Error; err != nil {
		return pagination.Page[*models.Article]{}, fmt.Errorf("find articles page: %w", err)
	}
	return pagination.New(list, req, total), nil
}

func (r *gormArticleRepo) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var n int64
	if err := r.db.WithContext(ctx).Model(&models.Article{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *gormArticleRepo) DeleteByID(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&models.Article{}, id).Error
}

func (r *gormArticleRepo) FindLatest(ctx context.Context, limit int) ([]*models.Article, error) {
	list := make([]*models.Article, 0)
	if err := r.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&list).Error; err != nil {
		return nil, fmt.Errorf("find latest articles: %w", err)
	}
	return list, nil
}

func (r *gormArticleRepo) FindBefore(ctx context.Context, cursor int64, limit int) ([]*models.Article, error) {
	list := make([]*models.Article, 0)
	err := r.db.WithContext(ctx).
		Where("id < ?", cursor).
		Order("id DESC").
		Limit(limit).
		Find(&list).Error
	if err != nil {
		return nil, fmt.Errorf("find articles before %d: %w", cursor, err)
	}
	return list, nil
}
