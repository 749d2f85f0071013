package services

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/atelier-works/portfolio-api/internal/mailer"
	"github.com/atelier-works/portfolio-api/internal/models"
	pgrepo "github.com/atelier-works/portfolio-api/internal/repositories/postgres"
	"github.com/atelier-works/portfolio-api/internal/utils"
	"github.com/atelier-works/portfolio-api/internal/validation"
)

// CareerRequest is the validated career form payload. Resume is a mediaId of
// a previously uploaded file.
type CareerRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required,phone"`
	PortfolioLink string `json:"portfolioLink" validate:"omitempty,uri"`
	Message       string `json:"message" validate:"required"`
	EmailID       string `json:"emailId" validate:"required,email"`
	Resume        string `json:"resume" validate:"required,uuid"`
}

// CareerProjection is the safe subset returned on create.
type CareerProjection struct {
	CareerID      string `json:"careerId"`
	FirstName     string `json:"firstName"`
	LastName      string `json:"lastName"`
	EmailID       string `json:"emailId"`
	PortfolioLink string `json:"portfolioLink"`
}

type CareerService interface {
	Create(ctx context.Context, req CareerRequest) (*CareerProjection, error)
	Get(ctx context.Context, careerID string) (*models.CareerSubmission, error)
	Update(ctx context.Context, careerID string, req CareerRequest) (*models.CareerSubmission, error)
	Delete(ctx context.Context, careerID string) error
	List(ctx context.Context, page, limit int) ([]models.CareerSubmission, Pagination, error)
}

type careerService struct {
	careers pgrepo.CareerRepository
	media   pgrepo.MediaRepository
	mail    mailer.Mailer
	log     *logrus.Logger
	apiLink string
}

func NewCareerService(careers pgrepo.CareerRepository, media pgrepo.MediaRepository, mail mailer.Mailer, apiLink string, log *logrus.Logger) CareerService {
	return &careerService{careers: careers, media: media, mail: mail, apiLink: apiLink, log: log}
}

// Create runs the submission pipeline for the career form:
// validate -> referential check -> persist -> notify. The write-capability
// auth step runs earlier, in middleware. Validation and referential failures
// short-circuit with no side effects; the notification Result is logged and
// deliberately discarded.
func (s *careerService) Create(ctx context.Context, req CareerRequest) (*CareerProjection, error) {
	const op = "CareerService.Create"

	if err := validation.Struct(req); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}

	resume, err := s.media.GetByMediaID(ctx, req.Resume)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Resume media not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Error submitting career form", err)
	}

	now := time.Now().UTC()
	row := &models.CareerSubmission{
		CareerID:      uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		PortfolioLink: req.PortfolioLink,
		Message:       req.Message,
		EmailID:       req.EmailID,
		Resume:        req.Resume,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.careers.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Error submitting career form", err)
	}

	res := s.mail.Send(ctx, mailer.Message{
		Subject:  "Career Form Submission",
		Template: "career",
		Data: map[string]string{
			"firstName":     req.FirstName,
			"lastName":      req.LastName,
			"contactNumber": req.ContactNumber,
			"emailId":       req.EmailID,
			"portfolioLink": req.PortfolioLink,
			"message":       req.Message,
			"resumeLink":    s.apiLink + "/" + resume.URL,
		},
	})
	if !res.Success {
		s.log.WithError(res.Err).WithField("career_id", row.CareerID).
			Warn("career notification not delivered")
	}

	return &CareerProjection{
		CareerID:      row.CareerID,
		FirstName:     row.FirstName,
		LastName:      row.LastName,
		EmailID:       row.EmailID,
		PortfolioLink: row.PortfolioLink,
	}, nil
}

func (s *careerService) Get(ctx context.Context, careerID string) (*models.CareerSubmission, error) {
	const op = "CareerService.Get"

	c, err := s.careers.GetByCareerID(ctx, careerID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Career form submission not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Error retrieving career form", err)
	}
	return c, nil
}

func (s *careerService) Update(ctx context.Context, careerID string, req CareerRequest) (*models.CareerSubmission, error) {
	const op = "CareerService.Update"

	if err := validation.Struct(req); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}

	row := &models.CareerSubmission{
		CareerID:      careerID,
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		PortfolioLink: req.PortfolioLink,
		Message:       req.Message,
		EmailID:       req.EmailID,
		Resume:        req.Resume,
	}
	if err := s.careers.Update(ctx, row); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Career form submission not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Error updating career form", err)
	}
	return s.Get(ctx, careerID)
}

func (s *careerService) Delete(ctx context.Context, careerID string) error {
	const op = "CareerService.Delete"

	if err := s.careers.Delete(ctx, careerID); err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return utils.E(utils.CodeNotFound, op, "Career form submission not found", err)
		}
		return utils.E(utils.CodeInternal, op, "Error deleting career form", err)
	}
	return nil
}

func (s *careerService) List(ctx context.Context, page, limit int) ([]models.CareerSubmission, Pagination, error) {
	const op = "CareerService.List"

	offset, page, limit := PageToOffset(page, limit)
	rows, total, err := s.careers.List(ctx, offset, limit)
	if err != nil {
		return nil, Pagination{}, utils.E(utils.CodeInternal, op, "Error retrieving career forms", err)
	}
	return rows, NewPagination(total, page, limit), nil
}
