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

type ContactRepository interface {
	Insert(ctx context.Context, c *models.ContactSubmission) error
	GetByContactID(ctx context.Context, contactID string) (*models.ContactSubmission, error)
	List(ctx context.Context, offset, limit int) ([]models.ContactSubmission, int64, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type contactRepo struct {
	db    *gorm.DB
	codec *crypto.FieldCodec
}

// NewContactRepo wires the field codec at the data-access boundary: designated
// fields are encoded right before persist and decoded right after fetch, so
// services and handlers only ever see plaintext.
func NewContactRepo(db *gorm.DB, codec *crypto.FieldCodec) ContactRepository {
	return &contactRepo{db: db, codec: codec}
}

func (r *contactRepo) encode(c *models.ContactSubmission) (*models.ContactSubmission, error) {
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

func (r *contactRepo) decode(c *models.ContactSubmission) {
	c.ContactNumber = r.codec.Decrypt(c.ContactNumber)
	c.EmailID = r.codec.Decrypt(c.EmailID)
	c.Message = r.codec.Decrypt(c.Message)
}

func (r *contactRepo) Insert(ctx context.Context, c *models.ContactSubmission) error {
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

func (r *contactRepo) GetByContactID(ctx context.Context, contactID string) (*models.ContactSubmission, error) {
	var c models.ContactSubmission
	err := r.db.WithContext(ctx).
		Where("contact_id = ?", contactID).
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

func (r *contactRepo) List(ctx context.Context, offset, limit int) ([]models.ContactSubmission, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).Model(&models.ContactSubmission{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var rows []models.ContactSubmission
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

func (r *contactRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("created_at < ?", cutoff).
		Delete(&models.ContactSubmission{})
	return res.RowsAffected, res.Error
}
