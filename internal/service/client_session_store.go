package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-climate-intel/internal/adapter"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
	"github.com/MKhiriev/go-climate-intel/internal/store"
	"github.com/MKhiriev/go-climate-intel/models"
)

var errEmptySession = errors.New("session has no token or user")

type sessionStore struct {
	repository store.SessionRepository
	adapter    adapter.ServerAdapter

	mu      sync.RWMutex
	session models.Session
	active  bool

	logger *logger.Logger
}

// NewSessionStore creates an empty store. Call Hydrate to restore the
// session of a previous run.
func NewSessionStore(repository store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) SessionStore {
	return &sessionStore{repository: repository, adapter: serverAdapter, logger: logger}
}

// Get implements SessionStore.
func (s *sessionStore) Get() (models.Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.session, s.active
}

// Set implements SessionStore. The token is persisted before the in-memory
// session changes, so a failed write leaves the previous session in place.
func (s *sessionStore) Set(ctx context.Context, session models.Session) error {
	if !session.Valid() {
		return validationError(errEmptySession)
	}

	if err := s.repository.SaveToken(ctx, session.Token); err != nil {
		return fmt.Errorf("error persisting session token: %w", err)
	}

	s.mu.Lock()
	s.session = session
	s.active = true
	s.mu.Unlock()

	s.adapter.SetToken(session.Token)
	return nil
}

// Clear implements SessionStore. Memory and transport are always cleared;
// the returned error only reports a failed removal of the persisted token.
func (s *sessionStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.session = models.Session{}
	s.active = false
	s.mu.Unlock()

	s.adapter.SetToken("")

	if err := s.repository.ClearToken(ctx); err != nil {
		return fmt.Errorf("error clearing session token: %w", err)
	}
	return nil
}

// UpdateUser implements SessionStore. The persisted token is not touched.
func (s *sessionStore) UpdateUser(user models.User) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.active {
		return false
	}
	s.session.User = user
	return true
}

// Hydrate implements SessionStore.
func (s *sessionStore) Hydrate(ctx context.Context) (models.Session, bool) {
	token, err := s.repository.LoadToken(ctx)
	if errors.Is(err, store.ErrNoSession) || (err == nil && token == "") {
		return models.Session{}, false
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*sessionStore.Hydrate").Msg("error loading persisted token")
		s.clearQuietly(ctx)
		return models.Session{}, false
	}

	s.adapter.SetToken(token)
	user, err := s.adapter.Me(ctx)
	if err != nil {
		mapped := mapAdapterError(err)
		if !errors.Is(mapped, ErrSessionExpired) && !errors.Is(mapped, ErrInvalidCredentials) {
			// server unreachable: start signed out but keep the token for the next run
			s.logger.Warn().Err(mapped).Str("func", "*sessionStore.Hydrate").Msg("session not verified")
			s.adapter.SetToken("")
			return models.Session{}, false
		}

		s.logger.Info().Err(err).Str("func", "*sessionStore.Hydrate").Msg("persisted token rejected")
		s.clearQuietly(ctx)
		return models.Session{}, false
	}

	session := models.Session{Token: token, User: user}
	if !session.Valid() {
		s.clearQuietly(ctx)
		return models.Session{}, false
	}

	s.mu.Lock()
	s.session = session
	s.active = true
	s.mu.Unlock()

	return session, true
}

func (s *sessionStore) clearQuietly(ctx context.Context) {
	if err := s.Clear(ctx); err != nil {
		s.logger.Err(err).Str("func", "*sessionStore.clearQuietly").Msg("error clearing session")
	}
}
