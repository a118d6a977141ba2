package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-climate-intel/internal/logger"
)

// sessionRepository is the SQLite-backed implementation of
// [SessionRepository]. The table holds a single row with id 1.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
	now    func() time.Time
}

// NewSessionRepository constructs a [SessionRepository] backed by db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{db: db, logger: logger, now: time.Now}
}

// SaveToken replaces the stored token.
func (r *sessionRepository) SaveToken(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, saveSessionToken, token, r.now().UTC()); err != nil {
		log.Err(err).Str("func", "*sessionRepository.SaveToken").Msg("error saving token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// LoadToken returns the stored token or [ErrNoSession].
func (r *sessionRepository) LoadToken(ctx context.Context) (string, error) {
	log := logger.FromContext(ctx)

	var token string
	err := r.db.QueryRowContext(ctx, loadSessionToken).Scan(&token)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", ErrNoSession
	case err != nil:
		log.Err(err).Str("func", "*sessionRepository.LoadToken").Msg("error loading token")
		return "", fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return token, nil
}

// ClearToken removes the stored token. Clearing an empty table is not an
// error.
func (r *sessionRepository) ClearToken(ctx context.Context) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, clearSessionToken); err != nil {
		log.Err(err).Str("func", "*sessionRepository.ClearToken").Msg("error clearing token")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
