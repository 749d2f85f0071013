package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/atelier-works/portfolio-api/internal/models"
	pgrepo "github.com/atelier-works/portfolio-api/internal/repositories/postgres"
	"github.com/atelier-works/portfolio-api/internal/utils"
	"github.com/atelier-works/portfolio-api/internal/validation"
)

type WorkDetailRequest struct {
	VideoURL    string `json:"videoUrl" validate:"required,uri"`
	Description string `json:"description" validate:"omitempty,max=500"`
	Name        string `json:"name" validate:"required,max=255"`
	Media       string `json:"media" validate:"required,uuid"`
	WorkID      string `json:"workId" validate:"required,uuid"`
}

type WorkDetailService interface {
	Create(ctx context.Context, req WorkDetailRequest) (*models.WorkDetail, error)
	Get(ctx context.Context, workDetailID string) (*models.WorkDetail, error)
	List(ctx context.Context, page, limit int) ([]models.WorkDetail, Pagination, error)
	ListByWork(ctx context.Context, workID string) ([]models.WorkDetail, error)
	Update(ctx context.Context, workDetailID string, req WorkDetailRequest) (*models.WorkDetail, error)
	Delete(ctx context.Context, workDetailID string) error
}

type workDetailService struct {
	details pgrepo.WorkDetailRepository
}

func NewWorkDetailService(details pgrepo.WorkDetailRepository) WorkDetailService {
	return &workDetailService{details: details}
}

func (s *workDetailService) Create(ctx context.Context, req WorkDetailRequest) (*models.WorkDetail, error) {
	const op = "WorkDetailService.Create"

	if err := validation.Struct(req); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}

	now := time.Now().UTC()
	row := &models.WorkDetail{
		WorkDetailID: uuid.NewString(),
		VideoURL:     req.VideoURL,
		Description:  req.Description,
		Name:         req.Name,
		Media:        req.Media,
		WorkID:       req.WorkID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.details.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Error creating work detail", err)
	}
	return row, nil
}

func (s *workDetailService) Get(ctx context.Context, workDetailID string) (*models.WorkDetail, error) {
	const op = "WorkDetailService.Get"

	d, err := s.details.GetByWorkDetailID(ctx, workDetailID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Work detail not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Error retrieving work detail", err)
	}
	return d, nil
}

func (s *workDetailService) List(ctx context.Context, page, limit int) ([]models.WorkDetail, Pagination, error) {
	const op = "WorkDetailService.List"

	offset, page, limit := PageToOffset(page, limit)
	rows, total, err := s.details.List(ctx, offset, limit)
	if err != nil {
		return nil, Pagination{}, utils.E(utils.CodeInternal, op, "Error retrieving work details", err)
	}
	return rows, NewPagination(total, page, limit), nil
}

func (s *workDetailService) ListByWork(ctx context.Context, workID string) ([]models.WorkDetail, error) {
	const op = "WorkDetailService.ListByWork"

	rows, err := s.details.ListByWork(ctx, workID)
	if err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Error retrieving work details", err)
	}
	return rows, nil
}

func (s *workDetailService) Update(ctx context.Context, workDetailID string, req WorkDetailRequest) (*models.WorkDetail, error) {
	const op = "WorkDetailService.Update"

	if err := validation.Struct(req); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}

	row := &models.WorkDetail{
		WorkDetailID: workDetailID,
		VideoURL:     req.VideoURL,
		Description:  req.Description,
		Name:         req.Name,
		Media:        req.Media,
		WorkID:       req.WorkID,
	}
	if err := s.details.Update(ctx, row); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Work detail not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Error updating work detail", err)
	}
	return s.Get(ctx, workDetailID)
}

func (s *workDetailService) Delete(ctx context.Context, workDetailID string) error {
	const op = "WorkDetailService.Delete"

	if err := s.details.Delete(ctx, workDetailID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Work detail not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Error deleting work detail", err)
	}
	return nil
}
