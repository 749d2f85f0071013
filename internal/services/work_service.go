package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/gosimple/slug"

	"github.com/atelier-works/portfolio-api/internal/models"
	pgrepo "github.com/atelier-works/portfolio-api/internal/repositories/postgres"
	"github.com/atelier-works/portfolio-api/internal/utils"
	"github.com/atelier-works/portfolio-api/internal/validation"
)

// WorkRequest is the validated payload for creating or updating a work entry.
type WorkRequest struct {
	Name           string `json:"name" validate:"required"`
	LandscapeImage string `json:"landscapeImage" validate:"omitempty,uuid"`
	VerticalImage  string `json:"verticalImage" validate:"omitempty,uuid"`
	SquareImage    string `json:"squareImage" validate:"omitempty,uuid"`
	Data           string `json:"data"`
	WebsiteLink    string `json:"websiteLink" validate:"omitempty,uri"`
}

type WorkService interface {
	Create(ctx context.Context, req WorkRequest) (*models.Work, error)
	GetByID(ctx context.Context, workID string) (*models.Work, error)
	GetBySlug(ctx context.Context, slug string) (*models.Work, error)
	List(ctx context.Context, page, limit int) ([]models.Work, Pagination, error)
	Update(ctx context.Context, workID string, req WorkRequest) (*models.Work, error)
	Delete(ctx context.Context, workID string) error
}

type workService struct {
	works pgrepo.WorkRepository
	media pgrepo.MediaRepository
}

func NewWorkService(works pgrepo.WorkRepository, media pgrepo.MediaRepository) WorkService {
	return &workService{works: works, media: media}
}

// uniqueSlug derives a slug from the name and disambiguates collisions with a
// numeric suffix ("foo", "foo-1", "foo-2", ...). Concurrent creations can
// race to the same slug; the unique index turns that into an insert error,
// which is acceptable and non-corrupting.
func (s *workService) uniqueSlug(ctx context.Context, name string) (string, error) {
	base := slug.Make(name)
	candidate := base
	for counter := 1; ; counter++ {
		exists, err := s.works.SlugExists(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, counter)
	}
}

func (s *workService) checkMediaRefs(ctx context.Context, req WorkRequest) error {
	refs := map[string]string{
		"landscapeImage": req.LandscapeImage,
		"verticalImage":  req.VerticalImage,
		"squareImage":    req.SquareImage,
	}
	for field, id := range refs {
		if id == "" {
			continue
		}
		ok, err := s.media.Exists(ctx, id)
		if err != nil {
			return err
		}
		if !ok {
			return utils.E(utils.CodeNotFound, "", fmt.Sprintf("%s media not found", field), nil)
		}
	}
	return nil
}

func (s *workService) Create(ctx context.Context, req WorkRequest) (*models.Work, error) {
	const op = "WorkService.Create"

	if err := validation.Struct(req); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}

	sl, err := s.uniqueSlug(ctx, req.Name)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Error creating work", err)
	}

	if err := s.checkMediaRefs(ctx, req); err != nil {
		if utils.IsCode(err, utils.CodeNotFound) {
			return nil, err
		}
		return nil, utils.E(utils.CodeInternal, op, "Error creating work", err)
	}

	now := time.Now().UTC()
	row := &models.Work{
		WorkID:         uuid.NewString(),
		Name:           req.Name,
		LandscapeImage: req.LandscapeImage,
		VerticalImage:  req.VerticalImage,
		SquareImage:    req.SquareImage,
		Data:           req.Data,
		WebsiteLink:    req.WebsiteLink,
		Slug:           sl,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if err := s.works.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Error creating work", err)
	}
	return s.works.GetByWorkID(ctx, row.WorkID)
}

func (s *workService) GetByID(ctx context.Context, workID string) (*models.Work, error) {
	const op = "WorkService.GetByID"

	w, err := s.works.GetByWorkID(ctx, workID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Work not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Error retrieving work", err)
	}
	return w, nil
}

func (s *workService) GetBySlug(ctx context.Context, sl string) (*models.Work, error) {
	const op = "WorkService.GetBySlug"

	w, err := s.works.GetBySlug(ctx, sl)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Work not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Error retrieving work", err)
	}
	return w, nil
}

func (s *workService) List(ctx context.Context, page, limit int) ([]models.Work, Pagination, error) {
	const op = "WorkService.List"

	offset, page, limit := PageToOffset(page, limit)
	rows, total, err := s.works.List(ctx, offset, limit)
	if err != nil {
		return nil, Pagination{}, utils.E(utils.CodeInternal, op, "Error retrieving works", err)
	}
	return rows, NewPagination(total, page, limit), nil
}

func (s *workService) Update(ctx context.Context, workID string, req WorkRequest) (*models.Work, error) {
	const op = "WorkService.Update"

	if err := validation.Struct(req); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}
	if err := s.checkMediaRefs(ctx, req); err != nil {
		if utils.IsCode(err, utils.CodeNotFound) {
			return nil, err
		}
		return nil, utils.E(utils.CodeInternal, op, "Error updating work", err)
	}

	row := &models.Work{
		WorkID:         workID,
		Name:           req.Name,
		LandscapeImage: req.LandscapeImage,
		VerticalImage:  req.VerticalImage,
		SquareImage:    req.SquareImage,
		Data:           req.Data,
		WebsiteLink:    req.WebsiteLink,
	}
	if err := s.works.Update(ctx, row); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Work not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Error updating work", err)
	}
	return s.works.GetByWorkID(ctx, workID)
}

func (s *workService) Delete(ctx context.Context, workID string) error {
	const op = "WorkService.Delete"

	if err := s.works.Delete(ctx, workID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Work not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Error deleting work", err)
	}
	return nil
}
