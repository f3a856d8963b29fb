package contact

import (
	"context"
	"errors"
	"fmt"

	"github.com/tammam101/temox/backend/internal/models"
	"github.com/tammam101/temox/backend/internal/validation"
)

// FormState is the state of the contact form for one visitor.
type FormState int

const (
	StateIdle FormState = iota
	StateSubmitting
	StateSubmitted
	StateFailed
)

func (s FormState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateSubmitting:
		return "submitting"
	case StateSubmitted:
		return "submitted"
	case StateFailed:
		return "failed"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// ErrBusy is returned by Form.Submit while a submission is in flight.
var ErrBusy = errors.New("submission in progress")

// Submitter is implemented by *Service.
type Submitter interface {
	Submit(ctx context.Context, req models.ContactRequest, remoteAddr string) (*models.ContactSubmission, error)
}

// Form drives Idle -> Submitting -> Submitted | Failed. Invalid input keeps
// the form Idle with one message per failing field.
type Form struct {
	Values     models.ContactRequest
	Errors     *validation.Errors
	State      FormState
	Submission *models.ContactSubmission

	validate Validator
	observe  func(FormState)
}

// NewForm returns an Idle form with serviceType pre-selected.
func NewForm(v Validator, serviceType string) *Form {
	return &Form{
		Values:   models.ContactRequest{ServiceType: serviceType},
		validate: v,
	}
}

// OnStateChange registers fn to be called on every transition.
func (f *Form) OnStateChange(fn func(FormState)) {
	f.observe = fn
}

// Submit validates the current values and, when they pass, hands them to
// sub. The returned error is nil for an invalid form; check Errors.
func (f *Form) Submit(ctx context.Context, sub Submitter, remoteAddr string) error {
	if f.State == StateSubmitting {
		return ErrBusy
	}

	if err := f.validate.Validate(f.Values); err != nil {
		var ve *validation.Errors
		if !errors.As(err, &ve) {
			return f.fail(err)
		}
		f.Errors = ve
		f.set(StateIdle)
		return nil
	}
	f.Errors = nil

	f.set(StateSubmitting)
	res, err := sub.Submit(ctx, f.Values, remoteAddr)
	if err != nil {
		var ve *validation.Errors
		if errors.As(err, &ve) {
			f.Errors = ve
			f.set(StateIdle)
			return nil
		}
		return f.fail(err)
	}

	f.Submission = res
	f.set(StateSubmitted)
	return nil
}

// Reset clears the form back to Idle.
func (f *Form) Reset() {
	f.Values = models.ContactRequest{}
	f.Errors = nil
	f.Submission = nil
	f.set(StateIdle)
}

// Confirmation is the acknowledgment shown once Submitted.
func (f *Form) Confirmation() string {
	return fmt.Sprintf("Thank you for contacting TEMOX. Our team has received your request and will respond to %s shortly.", f.Values.Email)
}

func (f *Form) fail(err error) error {
	f.set(StateFailed)
	return err
}

func (f *Form) set(s FormState) {
	if f.State == s {
		return
	}
	f.State = s
	if f.observe != nil {
		f.observe(s)
	}
}
