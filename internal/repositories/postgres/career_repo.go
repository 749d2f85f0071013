package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/atelier-works/portfolio-api/internal/crypto"
	"github.com/atelier-works/portfolio-api/internal/models"
	"github.com/atelier-works/portfolio-api/internal/utils"
	"gorm.io/gorm"
)

type CareerRepository interface {
	Insert(ctx context.Context, c *models.CareerSubmission) error
	GetByCareerID(ctx context.Context, careerID string) (*models.CareerSubmission, error)
	Update(ctx context.Context, c *models.CareerSubmission) error
	Delete(ctx context.Context, careerID string) error
	List(ctx context.Context, offset, limit int) ([]models.CareerSubmission, int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type careerRepo struct {
	db    *gorm.DB
	codec *crypto.FieldCodec
}

func NewCareerRepo(db *gorm.DB, codec *crypto.FieldCodec) CareerRepository {
	return &careerRepo{db: db, codec: codec}
}

func (r *careerRepo) encode(c *models.CareerSubmission) (*models.CareerSubmission, error) {
	row := *c
	var err error
	if row.ContactNumber, err = r.codec.Encrypt(c.ContactNumber); err != nil {
		return nil, err
	}
	if row.EmailID, err = r.codec.Encrypt(c.EmailID); err != nil {
		return nil, err
	}
	if row.Message, err = r.codec.Encrypt(c.Message); err != nil {
		return nil, err
	}
	return &row, nil
}

func (r *careerRepo) decode(c *models.CareerSubmission) {
	c.ContactNumber = r.codec.Decrypt(c.ContactNumber)
	c.EmailID = r.codec.Decrypt(c.EmailID)
	c.Message = r.codec.Decrypt(c.Message)
}

func (r *careerRepo) Insert(ctx context.Context, c *models.CareerSubmission) error {
	row, err := r.encode(c)
	if err != nil {
		return err
	}
	if err := r.db.WithContext(ctx).Create(row).Error; err != nil {
		return err
	}
	c.ID = row.ID
	return nil
}

func (r *careerRepo) GetByCareerID(ctx context.Context, careerID string) (*models.CareerSubmission, error) {
	var c models.CareerSubmission
	err := r.db.WithContext(ctx).
		Preload("ResumePDF").
		Where("career_id = ?", careerID).
		Take(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, utils.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	r.decode(&c)
	return &c, nil
}

func (r *careerRepo) Update(ctx context.Context, c *models.CareerSubmission) error {
	row, err := r.encode(c)
	if err != nil {
		return err
	}
	res := r.db.WithContext(ctx).
		Model(&models.CareerSubmission{}).
		Where("career_id = ?", c.CareerID).
		Updates(map[string]any{
			"first_name":     row.FirstName,
			"last_name":      row.LastName,
			"contact_number": row.ContactNumber,
			"portfolio_link": row.PortfolioLink,
			"message":        row.Message,
			"email_id":       row.EmailID,
			"resume":         row.Resume,
			"updated_at":     time.Now().UTC(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *careerRepo) Delete(ctx context.Context, careerID string) error {
	res := r.db.WithContext(ctx).
		Where("career_id = ?", careerID).
		Delete(&models.CareerSubmission{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return utils.ErrNotFound
	}
	return nil
}

func (r *careerRepo) List(ctx context.Context, offset, limit int) ([]models.CareerSubmission, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.CareerSubmission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.CareerSubmission
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Offset(offset).
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, 0, err
	}
	for i := range rows {
		r.decode(&rows[i])
	}
	return rows, total, nil
}

func (r *careerRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.CareerSubmission{})
	return res.RowsAffected, res.Error
}
