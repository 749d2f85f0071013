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

// ContactRequest is the validated contact form payload.
type ContactRequest struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName" validate:"required"`
	ContactNumber string `json:"contactNumber" validate:"required,phone"`
	Subject       string `json:"subject" validate:"required"`
	Message       string `json:"message" validate:"required"`
	EmailID       string `json:"emailId" validate:"required,email"`
}

type ContactService interface {
	Create(ctx context.Context, req ContactRequest) (*models.ContactSubmission, error)
	Get(ctx context.Context, contactID string) (*models.ContactSubmission, error)
	List(ctx context.Context, page, limit int) ([]models.ContactSubmission, Pagination, error)
}

type contactService struct {
	contacts pgrepo.ContactRepository
	mail     mailer.Mailer
	log      *logrus.Logger
}

func NewContactService(contacts pgrepo.ContactRepository, mail mailer.Mailer, log *logrus.Logger) ContactService {
	return &contactService{contacts: contacts, mail: mail, log: log}
}

// Create runs the submission pipeline for the contact form:
// validate -> persist -> notify. Validation failures short-circuit before any
// mutation; the notification outcome is logged and then deliberately
// discarded (a failed email never fails the submission).
func (s *contactService) Create(ctx context.Context, req ContactRequest) (*models.ContactSubmission, error) {
	const op = "ContactService.Create"

	if err := validation.Struct(req); err != nil {
		return nil, utils.E(utils.CodeInvalidArgument, op, err.Error(), nil)
	}

	now := time.Now().UTC()
	row := &models.ContactSubmission{
		ContactID:     uuid.NewString(),
		FirstName:     req.FirstName,
		LastName:      req.LastName,
		ContactNumber: req.ContactNumber,
		Subject:       req.Subject,
		Message:       req.Message,
		EmailID:       req.EmailID,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err := s.contacts.Insert(ctx, row); err != nil {
		return nil, utils.E(utils.CodeInternal, op, "Error submitting contact form", err)
	}

	res := s.mail.Send(ctx, mailer.Message{
		Subject:  "Contact Form Submission",
		Template: "contact",
		Data: map[string]string{
			"firstName":     req.FirstName,
			"lastName":      req.LastName,
			"contactNumber": req.ContactNumber,
			"emailId":       req.EmailID,
			"subject":       req.Subject,
			"message":       req.Message,
		},
	})
	if !res.Success {
		s.log.WithError(res.Err).WithField("contact_id", row.ContactID).
			Warn("contact notification not delivered")
	}

	return row, nil
}

func (s *contactService) Get(ctx context.Context, contactID string) (*models.ContactSubmission, error) {
	const op = "ContactService.Get"

	c, err := s.contacts.GetByContactID(ctx, contactID)
	if err != nil {
		if errors.Is(err, utils.ErrNotFound) {
			return nil, utils.E(utils.CodeNotFound, op, "Contact form submission not found", err)
		}
		return nil, utils.E(utils.CodeInternal, op, "Error retrieving contact form", err)
	}
	return c, nil
}

func (s *contactService) List(ctx context.Context, page, limit int) ([]models.ContactSubmission, Pagination, error) {
	const op = "ContactService.List"

	offset, page, limit := PageToOffset(page, limit)
	rows, total, err := s.contacts.List(ctx, offset, limit)
	if err != nil {
		return nil, Pagination{}, utils.E(utils.CodeInternal, op, "Error retrieving contact forms", err)
	}
	return rows, NewPagination(total, page, limit), nil
}
