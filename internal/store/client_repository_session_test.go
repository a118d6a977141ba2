package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-climate-intel/internal/logger"
)

func newTestSessionRepo(t *testing.T) SessionRepository {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), ":memory:", logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, db.MigrateSQLite())

	return NewSessionRepository(db, logger.Nop())
}

func TestSessionRepository(t *testing.T) {
	repo := newTestSessionRepo(t)
	ctx := context.Background()

	_, err := repo.LoadToken(ctx)
	assert.ErrorIs(t, err, ErrNoSession)

	require.NoError(t, repo.SaveToken(ctx, "first"))
	require.NoError(t, repo.SaveToken(ctx, "second"))

	token, err := repo.LoadToken(ctx)
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	require.NoError(t, repo.ClearToken(ctx))
	require.NoError(t, repo.ClearToken(ctx))

	_, err = repo.LoadToken(ctx)
	assert.ErrorIs(t, err, ErrNoSession)
}

func TestNewClientStorages_CreatesFile(t *testing.T) {
	dsn := t.TempDir() + "/nested/session.db"

	s, err := NewClientStorages(context.Background(), clientStorageConfig(dsn), logger.Nop())
	require.NoError(t, err)
	defer s.Close()

	assert.FileExists(t, dsn)
	require.NoError(t, s.SessionRepository.SaveToken(context.Background(), "tok"))
}
