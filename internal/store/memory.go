package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tammam101/temox/backend/internal/common"
	"github.com/tammam101/temox/backend/internal/models"
)

// MemoryUserStore keeps users in process memory. It enforces username
// uniqueness under a lock, matching the PostgreSQL contract.
type MemoryUserStore struct {
	mu    sync.Mutex
	users map[string]models.User
}

func NewMemoryUserStore() *MemoryUserStore {
	return &MemoryUserStore{users: make(map[string]models.User)}
}

func (s *MemoryUserStore) InsertUser(_ context.Context, username, passwordHash string) (*models.UserProjection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.users[username]; exists {
		return nil, fmt.Errorf("insert user %q: %w", username, common.ErrConflict)
	}
	u := models.User{
		ID:           uuid.NewString(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UTC(),
	}
	s.users[username] = u
	return &models.UserProjection{ID: u.ID, Username: u.Username}, nil
}

// Lookup returns the stored user row for username.
func (s *MemoryUserStore) Lookup(username string) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[username]
	return u, ok
}

// Len returns the number of stored users.
func (s *MemoryUserStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users)
}

// MemoryContactStore keeps contact submissions in process memory. It is
// used when no MongoDB URI is configured.
type MemoryContactStore struct {
	mu          sync.Mutex
	submissions []models.ContactSubmission
}

func NewMemoryContactStore() *MemoryContactStore {
	return &MemoryContactStore{}
}

func (s *MemoryContactStore) InsertContact(_ context.Context, sub *models.ContactSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submissions = append(s.submissions, *sub)
	return nil
}

// List returns a copy of the stored submissions in insertion order.
func (s *MemoryContactStore) List() []models.ContactSubmission {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]models.ContactSubmission, len(s.submissions))
	copy(out, s.submissions)
	return out
}
