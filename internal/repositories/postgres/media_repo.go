package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/atelier-works/portfolio-api/internal/models"
	"github.com/atelier-works/portfolio-api/internal/utils"
	"gorm.io/gorm"
)

type MediaRepository interface {
	Insert(ctx context.Context, m *models.Media) error
	GetByMediaID(ctx context.Context, mediaID string) (*models.Media, error)
	List(ctx context.Context, offset, limit int) ([]models.Media, int64, error)
	Delete(ctx context.Context, mediaID string) error
	Exists(ctx context.Context, mediaID string) (bool, error)
	ListPDFOlderThan(ctx context.Context, cutoff time.Time) ([]models.Media, error)
}

type mediaRepo struct {
	db *gorm.DB
}

func NewMediaRepo(db *gorm.DB) MediaRepository {
	return &mediaRepo{db: db}
}

func (r *mediaRepo) Insert(ctx context.Context, m *models.Media) error {
	return r.db.WithContext(ctx).Create(m).Error
}

func (r *mediaRepo) GetByMediaID(ctx context.Context, mediaID string) (*models.Media, error) {
	var m models.Media
	err := r.db.WithContext(ctx).
		Where("media_id = ?", mediaID).
		Take(&m).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	return &m, err
}

func (r *mediaRepo) List(ctx context.Context, offset, limit int) ([]models.Media, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Media{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.Media
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	return rows, total, err
}

func (r *mediaRepo) Delete(ctx context.Context, mediaID string) error {
	res := r.db.WithContext(ctx).
		Where("media_id = ?", mediaID).
		Delete(&models.Media{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *mediaRepo) Exists(ctx context.Context, mediaID string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&models.Media{}).
		Where("media_id = ?", mediaID).
		Count(&n).Error
	return n > 0, err
}

// ListPDFOlderThan returns aged media rows whose stored URL has a PDF
// extension; the cleanup worker removes both the file and the row.
func (r *mediaRepo) ListPDFOlderThan(ctx context.Context, cutoff time.Time) ([]models.Media, error) {
	var rows []models.Media
	err := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Where("url LIKE ?", "%.pdf").
		Find(&rows).Error
	return rows, err
}
