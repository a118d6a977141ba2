package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-climate-intel/internal/config"
	"github.com/MKhiriev/go-climate-intel/internal/logger"
)

// Storages groups the server-side repositories.
type Storages struct {
	UserRepository UserRepository
	ChatRepository ChatRepository
	ClimateCache   ClimateCache

	closers []func() error
}

// NewStorages connects to PostgreSQL, applies migrations and connects the
// climate cache.
func NewStorages(ctx context.Context, cfg config.Storage, logger *logger.Logger) (*Storages, error) {
	logger.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg.DB, logger)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.MigratePostgres(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	cache, closeCache, err := newClimateCache(ctx, cfg.Cache, logger)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("redis connection error: %w", err)
	}

	return &Storages{
		UserRepository: NewUserRepository(db, logger),
		ChatRepository: NewChatRepository(db, logger),
		ClimateCache:   cache,
		closers:        []func() error{closeCache, db.Close},
	}, nil
}

// Close releases the database and cache connections.
func (s *Storages) Close() error {
	var errs []error
	for _, c := range s.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
