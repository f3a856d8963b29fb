// Package contact handles "Request Service" submissions from the contact
// page and the JSON API.
package contact

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/tammam101/temox/backend/internal/common"
	"github.com/tammam101/temox/backend/internal/models"
	"github.com/tammam101/temox/backend/internal/validation"
)

// Store defines the interface for contact request persistence.
type Store interface {
	InsertContact(ctx context.Context, sub *models.ContactSubmission) error
}

// Validator classifies a request value; see internal/validation.
type Validator interface {
	Validate(v any) error
}

type Service struct {
	store    Store
	validate Validator
	log      *slog.Logger
	now      func() time.Time
}

func NewService(store Store, v Validator, log *slog.Logger) *Service {
	return &Service{store: store, validate: v, log: log, now: time.Now}
}

// Submit validates and stores a contact request. Bad input yields
// *validation.Errors; a storage failure is logged and reported as
// common.ErrInternal.
func (s *Service) Submit(ctx context.Context, req models.ContactRequest, remoteAddr string) (*models.ContactSubmission, error) {
	if err := s.validate.Validate(req); err != nil {
		var ve *validation.Errors
		if errors.As(err, &ve) {
			return nil, ve
		}
		s.log.ErrorContext(ctx, "validate contact request", "error", err)
		return nil, common.ErrInternal
	}

	sub := &models.ContactSubmission{
		ID:          uuid.NewString(),
		FullName:    req.FullName,
		Email:       req.Email,
		Phone:       req.Phone,
		ServiceType: req.ServiceType,
		Details:     req.Details,
		RemoteAddr:  remoteAddr,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.store.InsertContact(ctx, sub); err != nil {
		s.log.ErrorContext(ctx, "store contact request", "error", err)
		return nil, common.ErrInternal
	}

	s.log.InfoContext(ctx, "contact request received", "id", sub.ID, "service", sub.ServiceType)
	return sub, nil
}
