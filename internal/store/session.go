package store

import (
	"context"
	"log"
	"sync"

	"github.com/shopkart/storefront/internal/gateway"
	"github.com/shopkart/storefront/internal/mirror"
	"github.com/shopkart/storefront/internal/models"
)

// Session holds the authenticated identity, if any. Only the token is
// mirrored; the user profile is rebuilt by the next login, matching
// the behavior of the app this replaces.
type Session struct {
	gw     gateway.Gateway
	mirror mirror.Store

	mu      sync.Mutex
	user    *models.User
	token   string
	loading bool
	err     string
}

func NewSession(gw gateway.Gateway, m mirror.Store) *Session {
	return &Session{gw: gw, mirror: m}
}

// Init rehydrates the stored token. The user stays anonymous until the
// next successful login or registration.
func (s *Session) Init(ctx context.Context) {
	data, err := s.mirror.Read(ctx, mirror.KeyToken)
	if err != nil {
		return
	}

	s.mu.Lock()
	s.token = string(data)
	s.mu.Unlock()
}

// Login authenticates against the backend. On failure the session
// stays anonymous and the error message is recorded.
func (s *Session) Login(ctx context.Context, email, password string) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	creds, err := s.gw.Login(ctx, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = err.Error()
		return err
	}

	s.user = &creds.User
	s.token = creds.Token
	s.persistToken(ctx)
	return nil
}

// Register creates an account and signs the user in.
func (s *Session) Register(ctx context.Context, name, email, password string) error {
	s.mu.Lock()
	s.loading = true
	s.err = ""
	s.mu.Unlock()

	creds, err := s.gw.Register(ctx, name, email, password)

	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = false

	if err != nil {
		s.err = err.Error()
		return err
	}

	s.user = &creds.User
	s.token = creds.Token
	s.persistToken(ctx)
	return nil
}

// Logout unconditionally clears the session and the mirrored token. It
// never fails.
func (s *Session) Logout(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	s.token = ""
	s.err = ""
	if err := s.mirror.Delete(ctx, mirror.KeyToken); err != nil {
		log.Printf("session: failed to delete mirrored token: %v", err)
	}
}

// ClearError drops the recorded error message.
func (s *Session) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = ""
}

// User returns the authenticated user, if any.
func (s *Session) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// Token returns the current session token, empty when anonymous.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Loading reports whether a login or registration is in flight.
func (s *Session) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// Err returns the last recorded error message, empty if none.
func (s *Session) Err() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// persistToken mirrors the token. Callers must hold the lock.
func (s *Session) persistToken(ctx context.Context) {
	if err := s.mirror.Write(ctx, mirror.KeyToken, []byte(s.token)); err != nil {
		log.Printf("session: failed to mirror token: %v", err)
	}
}
