package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/atelier-works/portfolio-api/internal/models"
	"github.com/atelier-works/portfolio-api/internal/utils"
	"gorm.io/gorm"
)

type InstagramRepository interface {
	Insert(ctx context.Context, p *models.InstagramPost) error
	GetByPostID(ctx context.Context, postID string) (*models.InstagramPost, error)
	List(ctx context.Context, offset, limit int) ([]models.InstagramPost, int64, error)
	Update(ctx context.Context, p *models.InstagramPost) error
	Delete(ctx context.Context, postID string) error
}

type instagramRepo struct {
	db *gorm.DB
}

func NewInstagramRepo(db *gorm.DB) InstagramRepository {
	return &instagramRepo{db: db}
}

func (r *instagramRepo) Insert(ctx context.Context, p *models.InstagramPost) error {
	return r.db.WithContext(ctx).Create(p).Error
}

func (r *instagramRepo) GetByPostID(ctx context.Context, postID string) (*models.InstagramPost, error) {
	var p models.InstagramPost
	err := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Take(&p).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &p, err
}

func (r *instagramRepo) List(ctx context.Context, offset, limit int) ([]models.InstagramPost, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.InstagramPost{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.InstagramPost
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *instagramRepo) Update(ctx context.Context, p *models.InstagramPost) error {
	res := r.db.WithContext(ctx).
		Model(&models.InstagramPost{}).
		Where("post_id = ?", p.PostID).
		Updates(map[string]any{
			"link":       p.Link,
			"name":       p.Name,
			"updated_at": time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *instagramRepo) Delete(ctx context.Context, postID string) error {
	res := r.db.WithContext(ctx).
		Where("post_id = ?", postID).
		Delete(&models.InstagramPost{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}
