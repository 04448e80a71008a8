package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testStoreContract(t *testing.T, s Store) {
	t.Helper()
	ctx := context.Background()

	_, err := s.Get(ctx, "members")
	assert.ErrorIs(t, err, ErrKeyNotFound)

	require.NoError(t, s.Set(ctx, "members", []byte(`[{"id":"1"}]`)))
	got, err := s.Get(ctx, "members")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), got)

	// Set overwrites the full value.
	require.NoError(t, s.Set(ctx, "members", []byte(`[]`)))
	got, err = s.Get(ctx, "members")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[]`), got)

	// Keys are independent slots.
	_, err = s.Get(ctx, "projects")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestMemoryStore(t *testing.T) {
	s, err := NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	testStoreContract(t, s)
}

func TestBadgerStore(t *testing.T) {
	s, err := NewBadger(t.TempDir(), zap.NewNop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	testStoreContract(t, s)
}

func TestSQLiteStore(t *testing.T) {
	s, err := NewSQLite(filepath.Join(t.TempDir(), "admin.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	testStoreContract(t, s)
}

func TestSQLiteStore_SurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "admin.db")
	ctx := context.Background()

	s, err := NewSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set(ctx, "members", []byte(`[{"id":"1"}]`)))
	require.NoError(t, s.Close())

	s, err = NewSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	got, err := s.Get(ctx, "members")
	require.NoError(t, err)
	assert.Equal(t, []byte(`[{"id":"1"}]`), got)
}

func TestOpen(t *testing.T) {
	t.Run("memory", func(t *testing.T) {
		s, err := Open(BackendMemory, "", zap.NewNop())
		require.NoError(t, err)
		require.NoError(t, s.Close())
	})

	t.Run("sqlite", func(t *testing.T) {
		s, err := Open(BackendSQLite, filepath.Join(t.TempDir(), "admin.db"), zap.NewNop())
		require.NoError(t, err)
		require.NoError(t, s.Close())
	})

	t.Run("badger", func(t *testing.T) {
		s, err := Open(BackendBadger, t.TempDir(), zap.NewNop())
		require.NoError(t, err)
		require.NoError(t, s.Close())
	})

	t.Run("unknown backend", func(t *testing.T) {
		_, err := Open("redis", "", zap.NewNop())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unknown store backend")
	})
}

func TestStore_CanceledContext(t *testing.T) {
	s, err := NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err = s.Get(ctx, "members")
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, s.Set(ctx, "members", []byte(`[]`)), context.Canceled)
}
