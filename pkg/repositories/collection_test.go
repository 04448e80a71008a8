package repositories

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/apperrors"
	"github.com/investplus/admin-engine/pkg/models"
	"github.com/investplus/admin-engine/pkg/store"
)

func newTestStore(t *testing.T) store.Store {
	t.Helper()
	s, err := store.NewMemory()
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// brokenStore simulates an unreachable backend.
type brokenStore struct{}

func (brokenStore) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, errors.New("store offline")
}

func (brokenStore) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("store offline")
}

func (brokenStore) Close() error { return nil }

func testDefaults() []models.Member {
	return []models.Member{
		{ID: "1", Name: "John Doe", Email: "john@example.com", Role: models.MemberRoleInvestor, Status: models.StatusActive, JoinedDate: "2024-01-12", TotalInvestment: 250000},
		{ID: "2", Name: "Sarah Connor", Email: "sarah@example.com", Role: models.MemberRoleExpert, Status: models.StatusActive, JoinedDate: "2023-11-05"},
	}
}

func TestCollection_DefaultFallback(t *testing.T) {
	s := newTestStore(t)
	repo, err := NewCollection(s, KeyMembers, testDefaults(), zap.NewNop())
	require.NoError(t, err)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testDefaults(), got, "fresh store must serve defaults, not an empty sequence")
}

func TestCollection_RoundTrip(t *testing.T) {
	s := newTestStore(t)
	repo, err := NewCollection(s, KeyMembers, testDefaults(), zap.NewNop())
	require.NoError(t, err)

	saved := []models.Member{
		{ID: "x1", Name: "Ada", Email: "ada@example.com", Role: models.MemberRoleExpert, Status: models.StatusActive, JoinedDate: "2024-05-01"},
	}
	require.NoError(t, repo.Save(context.Background(), saved))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, saved, got)
}

func TestCollection_ExplicitEmptyStaysEmpty(t *testing.T) {
	s := newTestStore(t)
	repo, err := NewCollection(s, KeyMembers, testDefaults(), zap.NewNop())
	require.NoError(t, err)

	require.NoError(t, repo.Save(context.Background(), []models.Member{}))

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Empty(t, got, "explicitly saved empty collection must not revert to defaults")

	// Saving nil behaves like saving empty.
	require.NoError(t, repo.Save(context.Background(), nil))
	got, err = repo.Get(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCollection_CorruptSlot(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Set(context.Background(), KeyMembers, []byte("{not json")))

	repo, err := NewCollection(s, KeyMembers, testDefaults(), zap.NewNop())
	require.NoError(t, err)

	_, err = repo.Get(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorageCorrupt,
		"corrupt data must surface a typed error, never a silent default")
}

func TestCollection_UnreachableStoreServesDefaults(t *testing.T) {
	repo, err := NewCollection(brokenStore{}, KeyMembers, testDefaults(), zap.NewNop())
	require.NoError(t, err)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testDefaults(), got)
}

func TestCollection_UnreachableStoreReportsWriteFailure(t *testing.T) {
	repo, err := NewCollection(brokenStore{}, KeyMembers, testDefaults(), zap.NewNop())
	require.NoError(t, err)

	err = repo.Save(context.Background(), testDefaults())
	require.Error(t, err)
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
}

func TestCollection_DefaultsAreIsolatedCopies(t *testing.T) {
	s := newTestStore(t)
	repo, err := NewCollection(s, KeyMembers, testDefaults(), zap.NewNop())
	require.NoError(t, err)

	first, err := repo.Get(context.Background())
	require.NoError(t, err)
	first[0].Name = "mutated"

	second, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "John Doe", second[0].Name,
		"callers mutating a returned default slice must not affect later reads")
}

func TestAdminProfileRepository(t *testing.T) {
	s := newTestStore(t)
	defaults := models.AdminProfile{Name: "Adam Miller", Role: "Super Admin"}
	repo := NewAdminProfileRepository(s, defaults, zap.NewNop())

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, defaults, got)

	updated := models.AdminProfile{Name: "Eve Stone", Role: "Admin", Image: "https://example.com/eve.png"}
	require.NoError(t, repo.Save(context.Background(), updated))

	got, err = repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, updated, got)
}

func TestAdminProfileRepository_Corrupt(t *testing.T) {
	s := newTestStore(t)
	require.NoError(t, s.Set(context.Background(), KeyAdminProfile, []byte("][")))

	repo := NewAdminProfileRepository(s, models.AdminProfile{Name: "Adam"}, zap.NewNop())
	_, err := repo.Get(context.Background())
	assert.ErrorIs(t, err, apperrors.ErrStorageCorrupt)
}
