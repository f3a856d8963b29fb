package contact

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tammam101/temox/backend/internal/catalog"
	"github.com/tammam101/temox/backend/internal/logging"
	"github.com/tammam101/temox/backend/internal/models"
	"github.com/tammam101/temox/backend/internal/store"
	"github.com/tammam101/temox/backend/internal/validation"
)

type stubSubmitter struct {
	calls int
	err   error
	state func() FormState
	seen  FormState
}

func (s *stubSubmitter) Submit(_ context.Context, req models.ContactRequest, _ string) (*models.ContactSubmission, error) {
	s.calls++
	if s.state != nil {
		s.seen = s.state()
	}
	if s.err != nil {
		return nil, s.err
	}
	return &models.ContactSubmission{ID: "c-1", Email: req.Email}, nil
}

func filledForm(v Validator) *Form {
	f := NewForm(v, "cybersecurity-ethical-hacking")
	f.Values.FullName = "Jane Doe"
	f.Values.Email = "jane@company.com"
	f.Values.Phone = "+1 (555) 000-0000"
	f.Values.Details = "Please audit our office network."
	return f
}

func TestForm_ValidSubmission(t *testing.T) {
	v := validation.New(catalog.Default())
	f := filledForm(v)
	require.Equal(t, StateIdle, f.State)

	var states []FormState
	f.OnStateChange(func(s FormState) { states = append(states, s) })
	sub := &stubSubmitter{state: func() FormState { return f.State }}

	require.NoError(t, f.Submit(context.Background(), sub, "10.0.0.1"))

	assert.Equal(t, []FormState{StateSubmitting, StateSubmitted}, states)
	assert.Equal(t, StateSubmitting, sub.seen, "submitter runs while Submitting")
	assert.Equal(t, StateSubmitted, f.State)
	assert.Contains(t, f.Confirmation(), "jane@company.com")
	assert.Equal(t, "c-1", f.Submission.ID)
}

func TestForm_MissingFieldsStayIdle(t *testing.T) {
	v := validation.New(catalog.Default())

	for _, field := range []string{"fullName", "email", "phone", "serviceType", "details"} {
		t.Run(field, func(t *testing.T) {
			f := filledForm(v)
			switch field {
			case "fullName":
				f.Values.FullName = ""
			case "email":
				f.Values.Email = ""
			case "phone":
				f.Values.Phone = ""
			case "serviceType":
				f.Values.ServiceType = ""
			case "details":
				f.Values.Details = ""
			}
			sub := &stubSubmitter{}

			require.NoError(t, f.Submit(context.Background(), sub, ""))

			assert.Equal(t, StateIdle, f.State)
			assert.Zero(t, sub.calls, "no submission attempted")
			require.NotNil(t, f.Errors)
			assert.NotEmpty(t, f.Errors.Get(field))
			assert.Len(t, f.Errors.Fields, 1)
		})
	}
}

func TestForm_EmptyFormReportsEveryField(t *testing.T) {
	f := NewForm(validation.New(catalog.Default()), "")
	require.NoError(t, f.Submit(context.Background(), &stubSubmitter{}, ""))
	assert.Equal(t, StateIdle, f.State)
	assert.Len(t, f.Errors.Fields, 5)
}

func TestForm_SubmitterFailure(t *testing.T) {
	f := filledForm(validation.New(catalog.Default()))
	boom := errors.New("boom")

	err := f.Submit(context.Background(), &stubSubmitter{err: boom}, "")
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, StateFailed, f.State)

	// a failed form may be resubmitted
	require.NoError(t, f.Submit(context.Background(), &stubSubmitter{}, ""))
	assert.Equal(t, StateSubmitted, f.State)
}

func TestForm_BusyWhileSubmitting(t *testing.T) {
	f := filledForm(validation.New(catalog.Default()))
	f.State = StateSubmitting
	assert.ErrorIs(t, f.Submit(context.Background(), &stubSubmitter{}, ""), ErrBusy)
}

func TestForm_WithRealService(t *testing.T) {
	v := validation.New(catalog.Default())
	contacts := store.NewMemoryContactStore()
	svc := NewService(contacts, v, logging.Discard())
	f := filledForm(v)

	require.NoError(t, f.Submit(context.Background(), svc, "10.0.0.1:5555"))
	assert.Equal(t, StateSubmitted, f.State)

	stored := contacts.List()
	require.Len(t, stored, 1)
	assert.Equal(t, "jane@company.com", stored[0].Email)
	assert.Equal(t, "cybersecurity-ethical-hacking", stored[0].ServiceType)

	f.Reset()
	assert.Equal(t, StateIdle, f.State)
	assert.Empty(t, f.Values.Email)
}
