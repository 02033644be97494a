package service

import (
	"sync"
	"time"

	"github.com/efreitasn/minibroker/internal/domain"
	"github.com/efreitasn/minibroker/internal/engine"
	"github.com/efreitasn/minibroker/internal/store"
	"github.com/google/uuid"
)

// LoginResult carries the session token and the authenticated identity.
type LoginResult struct {
	Token string
	User  domain.User
}

// AuthService handles login, registration, logout, and bearer-token
// session lookup. Tokens are opaque uuids held in memory for the process
// lifetime; the only durable artifact is the token string the client
// keeps.
type AuthService struct {
	users *store.UserStore
	gate  *engine.LimitsGate

	mu       sync.RWMutex
	sessions map[string]domain.User // token → user
}

// NewAuthService creates an AuthService over the given user store. The
// limits gate is re-armed on every login.
func NewAuthService(users *store.UserStore, gate *engine.LimitsGate) *AuthService {
	return &AuthService{
		users:    users,
		gate:     gate,
		sessions: make(map[string]domain.User),
	}
}

// Login authenticates the credentials and opens a session. Unregistered
// emails are admitted with a guest profile, matching the permissive mock
// backend this service simulates; registered emails must present their
// password. A successful login re-arms the daily purchase allowance.
func (s *AuthService) Login(email, password string) (*LoginResult, error) {
	if email == "" || password == "" {
		return nil, &domain.ValidationError{Message: "email and password are required"}
	}

	user, registered, err := s.users.Authenticate(email, password)
	if err != nil {
		return nil, err
	}
	if !registered {
		user = domain.User{
			UserID:    uuid.New().String(),
			Email:     email,
			Name:      "Guest",
			CreatedAt: time.Now().UTC(),
		}
	}

	token := uuid.New().String()
	s.mu.Lock()
	s.sessions[token] = user
	s.mu.Unlock()

	s.gate.ResetForNewDay()

	return &LoginResult{Token: token, User: user}, nil
}

// Register creates a user. All three fields are required.
func (s *AuthService) Register(email, password, name string) (domain.User, error) {
	if email == "" || password == "" || name == "" {
		return domain.User{}, &domain.ValidationError{Message: "email, password, and name are required"}
	}

	user := domain.User{
		UserID:    uuid.New().String(),
		Email:     email,
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := s.users.Create(user, password); err != nil {
		return domain.User{}, err
	}
	return user, nil
}

// Logout closes the session for the token. Unknown tokens are a no-op.
func (s *AuthService) Logout(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, token)
}

// Authenticate resolves a bearer token to its user. It returns
// domain.ErrInvalidToken for unknown or logged-out tokens.
func (s *AuthService) Authenticate(token string) (domain.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	user, ok := s.sessions[token]
	if !ok {
		return domain.User{}, domain.ErrInvalidToken
	}
	return user, nil
}
