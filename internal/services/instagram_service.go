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

type InstagramPostRequest struct {
	Link string `json:"link" validate:"required,uri"`
	Name string `json:"name" validate:"required"`
}

type InstagramService interface {
	Create(ctx context.Context, req InstagramPostRequest) (*models.InstagramPost, error)
	Get(ctx context.Context, postID string) (*models.InstagramPost, error)
	List(ctx context.Context, page, limit int) ([]models.InstagramPost, Pagination, error)
	Update(ctx context.Context, postID string, req InstagramPostRequest) (*models.InstagramPost, error)
	Delete(ctx context.Context, postID string) error
}

type instagramService struct {
	posts pgrepo.InstagramRepository
}

func NewInstagramService(posts pgrepo.InstagramRepository) InstagramService {
	return &instagramService{posts: posts}
}

func (s *instagramService) Create(ctx context.Context, req InstagramPostRequest) (*models.InstagramPost, error) {
	const op = "InstagramService.Create"

	if err := validation.Struct(req); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}

	now := time.Now().UTC()
	row := &models.InstagramPost{
		PostID:    uuid.NewString(),
		Link:      req.Link,
		Name:      req.Name,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.posts.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Error creating Instagram post", err)
	}
	return row, nil
}

func (s *instagramService) Get(ctx context.Context, postID string) (*models.InstagramPost, error) {
	const op = "InstagramService.Get"

	p, err := s.posts.GetByPostID(ctx, postID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Instagram post not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Error retrieving Instagram post", err)
	}
	return p, nil
}

func (s *instagramService) List(ctx context.Context, page, limit int) ([]models.InstagramPost, Pagination, error) {
	const op = "InstagramService.List"

	offset, page, limit := PageToOffset(page, limit)
	rows, total, err := s.posts.List(ctx, offset, limit)
	if err != nil {
		return nil, Pagination{}, utils.E(utils.CodeInternal, op, "Error retrieving Instagram posts", err)
	}
	return rows, NewPagination(total, page, limit), nil
}

func (s *instagramService) Update(ctx context.Context, postID string, req InstagramPostRequest) (*models.InstagramPost, error) {
	const op = "InstagramService.Update"

	if err := validation.Struct(req); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}

	row := &models.InstagramPost{PostID: postID, Link: req.Link, Name: req.Name}
	if err := s.posts.Update(ctx, row); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Instagram post not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Error updating Instagram post", err)
	}
	return s.Get(ctx, postID)
}

func (s *instagramService) Delete(ctx context.Context, postID string) error {
	const op = "InstagramService.Delete"

	if err := s.posts.Delete(ctx, postID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Instagram post not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Error deleting Instagram post", err)
	}
	return nil
}
