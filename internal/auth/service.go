package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/tammam101/temox/backend/internal/common"
	"github.com/tammam101/temox/backend/internal/models"
	"github.com/tammam101/temox/backend/internal/validation"
)

// State is a step of a single registration attempt.
type State int

const (
	StateReceived State = iota
	StateValidating
	StateHashing
	StatePersisting
	StateSucceeded
	StateRejected
	StateConflict
	StateInternal
)

func (s State) String() string {
	switch s {
	case StateReceived:
		return "received"
	case StateValidating:
		return "validating"
	case StateHashing:
		return "hashing"
	case StatePersisting:
		return "persisting"
	case StateSucceeded:
		return "succeeded"
	case StateRejected:
		return "rejected"
	case StateConflict:
		return "conflict"
	case StateInternal:
		return "internal"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Terminal reports whether no further transition follows s.
func (s State) Terminal() bool {
	return s >= StateSucceeded
}

// DefaultTimeout bounds the work done before the insert (validation and
// hashing) for one registration.
const DefaultTimeout = 10 * time.Second

// UserStore defines the interface for user persistence.
type UserStore interface {
	InsertUser(ctx context.Context, username, passwordHash string) (*models.UserProjection, error)
}

// Hasher turns a plaintext password into a one-way salted hash.
type Hasher interface {
	Hash(password string) (string, error)
}

// Validator classifies a request value; see internal/validation.
type Validator interface {
	Validate(v any) error
}

// Service registers users: validate, hash, persist.
type Service struct {
	users    UserStore
	hasher   Hasher
	validate Validator
	log      *slog.Logger
	timeout  time.Duration
	observe  func(State)
}

type Option func(*Service)

// WithHasher replaces the bcrypt hasher at DefaultCost.
func WithHasher(h Hasher) Option {
	return func(s *Service) { s.hasher = h }
}

// WithTimeout sets the deadline for reaching the insert; zero disables it.
func WithTimeout(d time.Duration) Option {
	return func(s *Service) { s.timeout = d }
}

// WithObserver registers fn to be called on every state transition.
func WithObserver(fn func(State)) Option {
	return func(s *Service) { s.observe = fn }
}

func NewService(users UserStore, v Validator, log *slog.Logger, opts ...Option) *Service {
	s := &Service{
		users:    users,
		hasher:   NewBcryptHasher(DefaultCost),
		validate: v,
		log:      log,
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register runs one registration attempt. It returns *validation.Errors
// for bad input, common.ErrConflict when the username is taken and
// common.ErrInternal for anything else; the internal cause is logged here
// and not returned.
func (s *Service) Register(ctx context.Context, req models.RegisterRequest) (*models.UserProjection, error) {
	s.enter(StateReceived)

	s.enter(StateValidating)
	if err := s.validate.Validate(req); err != nil {
		var ve *validation.Errors
		if errors.As(err, &ve) {
			s.enter(StateRejected)
			return nil, ve
		}
		return nil, s.internal(ctx, "validate registration", err)
	}

	s.enter(StateHashing)
	hash, err := s.hash(ctx, req.Password)
	if err != nil {
		return nil, s.internal(ctx, "hash password", err)
	}

	// The insert is not cancelled once started: a deadline firing after
	// the row commits would report failure for a user that exists.
	s.enter(StatePersisting)
	user, err := s.users.InsertUser(context.WithoutCancel(ctx), req.Username, hash)
	switch {
	case err == nil:
		s.enter(StateSucceeded)
		s.log.InfoContext(ctx, "user registered", "user_id", user.ID, "username", user.Username)
		return user, nil
	case errors.Is(err, common.ErrConflict):
		s.enter(StateConflict)
		return nil, common.ErrConflict
	default:
		return nil, s.internal(ctx, "insert user", err)
	}
}

// hash runs the hasher under the registration deadline.
func (s *Service) hash(ctx context.Context, password string) (string, error) {
	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}
	h, err := s.hasher.Hash(password)
	if err != nil {
		return "", err
	}
	if err := ctx.Err(); err != nil {
		return "", err
	}
	return h, nil
}

func (s *Service) internal(ctx context.Context, op string, err error) error {
	s.enter(StateInternal)
	s.log.ErrorContext(ctx, "registration failed", "op", op, "error", err)
	return common.ErrInternal
}

func (s *Service) enter(st State) {
	if s.observe != nil {
		s.observe(st)
	}
}
