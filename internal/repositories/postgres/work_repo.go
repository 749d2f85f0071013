package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/atelier-works/portfolio-api/internal/models"
	"github.com/atelier-works/portfolio-api/internal/utils"
	"gorm.io/gorm"
)

type WorkRepository interface {
	Insert(ctx context.Context, w *models.Work) error
	GetByWorkID(ctx context.Context, workID string) (*models.Work, error)
	GetBySlug(ctx context.Context, slug string) (*models.Work, error)
	SlugExists(ctx context.Context, slug string) (bool, error)
	List(ctx context.Context, offset, limit int) ([]models.Work, int64, error)
	Update(ctx context.Context, w *models.Work) error
	Delete(ctx context.Context, workID string) error
	ReferencesMedia(ctx context.Context, mediaID string) (bool, error)
}

type workRepo struct {
	db *gorm.DB
}

func NewWorkRepo(db *gorm.DB) WorkRepository {
	return &workRepo{db: db}
}

func (r *workRepo) preload(tx *gorm.DB) *gorm.DB {
	return tx.
		Preload("LandscapeImageData").
		Preload("VerticalImageData").
		Preload("SquareImageData").
		Preload("WorkDetails").
		Preload("WorkDetails.MediaData")
}

func (r *workRepo) Insert(ctx context.Context, w *models.Work) error {
	return r.db.WithContext(ctx).Create(w).Error
}

func (r *workRepo) GetByWorkID(ctx context.Context, workID string) (*models.Work, error) {
	var w models.Work
	err := r.preload(r.db.WithContext(ctx)).
		Where("work_id = ?", workID).
		Take(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &w, err
}

func (r *workRepo) GetBySlug(ctx context.Context, slug string) (*models.Work, error) {
	var w models.Work
	err := r.preload(r.db.WithContext(ctx)).
		Where("slug = ?", slug).
		Take(&w).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &w, err
}

func (r *workRepo) SlugExists(ctx context.Context, slug string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Work{}).
		Where("slug = ?", slug).
		Count(&n).Error
	return n > 0, err
}

func (r *workRepo) List(ctx context.Context, offset, limit int) ([]models.Work, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Work{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Work
	err := r.preload(r.db.WithContext(ctx)).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *workRepo) Update(ctx context.Context, w *models.Work) error {
	res := r.db.WithContext(ctx).
		Model(&models.Work{}).
		Where("work_id = ?", w.WorkID).
		Updates(map[string]any{
			"name":            w.Name,
			"landscape_image": w.LandscapeImage,
			"vertical_image":  w.VerticalImage,
			"square_image":    w.SquareImage,
			"data":            w.Data,
			"website_link":    w.WebsiteLink,
			"updated_at":      time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *workRepo) Delete(ctx context.Context, workID string) error {
	res := r.db.WithContext(ctx).
		Where("work_id = ?", workID).
		Delete(&models.Work{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

// ReferencesMedia reports whether any work row uses the media id in one of
// its three image slots. Part of the media referential guard.
func (r *workRepo) ReferencesMedia(ctx context.Context, mediaID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Work{}).
		Where("landscape_image = ? OR vertical_image = ? OR square_image = ?", mediaID, mediaID, mediaID).
		Count(&n).Error
	return n > 0, err
}
