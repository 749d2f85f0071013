package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/atelier-works/portfolio-api/internal/models"
	"github.com/atelier-works/portfolio-api/internal/utils"
	"gorm.io/gorm"
)

type WorkDetailRepository interface {
	Insert(ctx context.Context, d *models.WorkDetail) error
	GetByWorkDetailID(ctx context.Context, workDetailID string) (*models.WorkDetail, error)
	List(ctx context.Context, offset, limit int) ([]models.WorkDetail, int64, error)
	ListByWork(ctx context.Context, workID string) ([]models.WorkDetail, error)
	Update(ctx context.Context, d *models.WorkDetail) error
	Delete(ctx context.Context, workDetailID string) error
	ReferencesMedia(ctx context.Context, mediaID string) (bool, error)
}

type workDetailRepo struct {
	db *gorm.DB
}

func NewWorkDetailRepo(db *gorm.DB) WorkDetailRepository {
	return &workDetailRepo{db: db}
}

func (r *workDetailRepo) Insert(ctx context.Context, d *models.WorkDetail) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *workDetailRepo) GetByWorkDetailID(ctx context.Context, workDetailID string) (*models.WorkDetail, error) {
	var d models.WorkDetail
	err := r.db.WithContext(ctx).
		Preload("MediaData").
		Where("work_detail_id = ?", workDetailID).
		Take(&d).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &d, err
}

func (r *workDetailRepo) List(ctx context.Context, offset, limit int) ([]models.WorkDetail, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.WorkDetail{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.WorkDetail
	err := r.db.WithContext(ctx).
		Preload("MediaData").
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *workDetailRepo) ListByWork(ctx context.Context, workID string) ([]models.WorkDetail, error) {
	var rows []models.WorkDetail
	err := r.db.WithContext(ctx).
		Preload("MediaData").
		Where("work_id = ?", workID).
		Order("created_at ASC").
		Find(&rows).Error
	return rows, err
}

func (r *workDetailRepo) Update(ctx context.Context, d *models.WorkDetail) error {
	res := r.db.WithContext(ctx).
		Model(&models.WorkDetail{}).
		Where("work_detail_id = ?", d.WorkDetailID).
		Updates(map[string]any{
			"video_url":   d.VideoURL,
			"description": d.Description,
			"name":        d.Name,
			"media":       d.Media,
			"work_id":     d.WorkID,
			"updated_at":  time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *workDetailRepo) Delete(ctx context.Context, workDetailID string) error {
	res := r.db.WithContext(ctx).
		Where("work_detail_id = ?", workDetailID).
		Delete(&models.WorkDetail{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *workDetailRepo) ReferencesMedia(ctx context.Context, mediaID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.WorkDetail{}).
		Where("media = ?", mediaID).
		Count(&n).Error
	return n > 0, err
}
