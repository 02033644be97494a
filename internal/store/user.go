package store

import (
	"sync"

	"github.com/efreitasn/minibroker/internal/domain"
)

// UserStore is a thread-safe in-memory store of registered users,
// keyed by email.
type UserStore struct {
	mu    sync.RWMutex
	users map[string]*userRecord
}

type userRecord struct {
	user     domain.User
	password string
}

// NewUserStore creates an empty UserStore.
func NewUserStore() *UserStore {
	return &UserStore{
		users: make(map[string]*userRecord),
	}
}

// Create registers a user. It returns domain.ErrUserAlreadyExists if the
// email is taken.
func (s *UserStore) Create(user domain.User, password string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[user.Email]; ok {
		return domain.ErrUserAlreadyExists
	}
	s.users[user.Email] = &userRecord{user: user, password: password}
	return nil
}

// Lookup returns the registered user for an email, and whether one exists.
func (s *UserStore) Lookup(email string) (domain.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[email]
	if !ok {
		return domain.User{}, false
	}
	return rec.user, true
}

// Authenticate checks the email/password pair against a registered user.
// It returns domain.ErrInvalidCredentials on a password mismatch and
// (user, false, nil) when the email is not registered at all.
func (s *UserStore) Authenticate(email, password string) (domain.User, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rec, ok := s.users[email]
	if !ok {
		return domain.User{}, false, nil
	}
	if rec.password != password {
		return domain.User{}, true, domain.ErrInvalidCredentials
	}
	return rec.user, true, nil
}
