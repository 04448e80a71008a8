package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/apperrors"
	"github.com/investplus/admin-engine/pkg/models"
	"github.com/investplus/admin-engine/pkg/repositories"
)

func newMemberDirectoryTest(t *testing.T, seed []models.Member) (*DirectoryService[models.Member], *repositories.Collection[models.Member]) {
	t.Helper()
	repo, err := repositories.NewCollection(newMemoryStore(t), repositories.KeyMembers, seed, zap.NewNop())
	require.NoError(t, err)
	return NewMemberDirectory(repo, zap.NewNop()), repo
}

func TestDirectoryCreate_AssignsIDAndStamp(t *testing.T) {
	svc, repo := newMemberDirectoryTest(t, nil)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Member{
		Name:  "Carol Danvers",
		Email: "carol@example.com",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.NotEmpty(t, created.JoinedDate)
	assert.Equal(t, models.MemberRoleInvestor, created.Role)
	assert.Equal(t, models.StatusActive, created.Status)

	members, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, created, members[0])
}

func TestDirectoryCreate_Prepends(t *testing.T) {
	seed := []models.Member{
		{ID: "m1", Name: "Old Timer", Email: "old@example.com", Role: models.MemberRoleInvestor, Status: models.StatusActive, JoinedDate: "2023-01-01"},
	}
	svc, repo := newMemberDirectoryTest(t, seed)
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Member{Name: "Carol Danvers", Email: "carol@example.com"})
	require.NoError(t, err)

	members, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Len(t, members, 2)
	assert.Equal(t, created.ID, members[0].ID)
	assert.Equal(t, "m1", members[1].ID)
}

func TestDirectoryCreate_RejectsInvalid(t *testing.T) {
	svc, repo := newMemberDirectoryTest(t, nil)
	ctx := context.Background()

	cases := []struct {
		name   string
		member models.Member
	}{
		{"missing name", models.Member{Email: "carol@example.com"}},
		{"missing email", models.Member{Name: "Carol Danvers"}},
		{"malformed email", models.Member{Name: "Carol Danvers", Email: "not-an-email"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(ctx, tc.member)
			assert.ErrorIs(t, err, apperrors.ErrValidation)
		})
	}

	members, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, members, "rejected input never reaches the store")
}

func TestDirectoryUpdate_PreservesIDAndStamp(t *testing.T) {
	seed := []models.Member{
		{ID: "m1", Name: "Carol Danvers", Email: "carol@example.com", Role: models.MemberRoleInvestor, Status: models.StatusActive, JoinedDate: "2023-01-01"},
	}
	svc, repo := newMemberDirectoryTest(t, seed)
	ctx := context.Background()

	updated, err := svc.Update(ctx, "m1", models.Member{
		Name:   "Carol D.",
		Email:  "carol@example.com",
		Role:   models.MemberRoleExpert,
		Status: models.StatusInactive,
	})
	require.NoError(t, err)
	assert.Equal(t, "m1", updated.ID)
	assert.Equal(t, "2023-01-01", updated.JoinedDate)
	assert.Equal(t, "Carol D.", updated.Name)
	assert.Equal(t, models.MemberRoleExpert, updated.Role)

	members, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, updated, members[0])
}

func TestDirectoryUpdate_UnknownID(t *testing.T) {
	svc, _ := newMemberDirectoryTest(t, nil)

	_, err := svc.Update(context.Background(), "ghost", models.Member{
		Name:  "Carol Danvers",
		Email: "carol@example.com",
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestDirectoryDelete(t *testing.T) {
	seed := []models.Member{
		{ID: "m1", Name: "Carol Danvers", Email: "carol@example.com", JoinedDate: "2023-01-01"},
		{ID: "m2", Name: "Dan Vers", Email: "dan@example.com", JoinedDate: "2023-02-01"},
	}
	svc, repo := newMemberDirectoryTest(t, seed)
	ctx := context.Background()

	require.NoError(t, svc.Delete(ctx, "m1"))

	members, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Len(t, members, 1)
	assert.Equal(t, "m2", members[0].ID)

	assert.ErrorIs(t, svc.Delete(ctx, "m1"), apperrors.ErrNotFound)
}

func TestDirectoryDelete_LastRecordLeavesEmptyCollection(t *testing.T) {
	seed := []models.Member{
		{ID: "m1", Name: "Carol Danvers", Email: "carol@example.com", JoinedDate: "2023-01-01"},
	}
	svc, repo := newMemberDirectoryTest(t, seed)
	ctx := context.Background()

	// Seed the slot first so the delete persists an explicit empty
	// collection instead of leaving the slot unwritten.
	items, err := repo.Get(ctx)
	require.NoError(t, err)
	require.NoError(t, repo.Save(ctx, items))

	require.NoError(t, svc.Delete(ctx, "m1"))

	members, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Empty(t, members, "an emptied collection must not revert to its defaults")
}

func TestProjectDirectory_DefaultsOnCreate(t *testing.T) {
	repo, err := repositories.NewCollection(newMemoryStore(t), repositories.KeyProjects, []models.Project{}, zap.NewNop())
	require.NoError(t, err)
	svc := NewProjectDirectory(repo, zap.NewNop())

	created, err := svc.Create(context.Background(), models.Project{
		Name:     "Solar Farm Beta",
		Category: "Energy",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusPlanned, created.Status)
	assert.NotEmpty(t, created.StartDate)
}

func TestProjectDirectory_KeepsProvidedFields(t *testing.T) {
	repo, err := repositories.NewCollection(newMemoryStore(t), repositories.KeyProjects, []models.Project{}, zap.NewNop())
	require.NoError(t, err)
	svc := NewProjectDirectory(repo, zap.NewNop())

	created, err := svc.Create(context.Background(), models.Project{
		Name:      "Solar Farm Beta",
		Category:  "Energy",
		Status:    models.ProjectStatusOngoing,
		StartDate: "2024-01-15",
	})
	require.NoError(t, err)
	assert.Equal(t, models.ProjectStatusOngoing, created.Status)
	assert.Equal(t, "2024-01-15", created.StartDate)
}

func TestAnnouncementDirectory_NormalizesCategory(t *testing.T) {
	repo, err := repositories.NewCollection(newMemoryStore(t), repositories.KeyAnnouncements, []models.Announcement{}, zap.NewNop())
	require.NoError(t, err)
	svc := NewAnnouncementDirectory(repo, zap.NewNop())
	ctx := context.Background()

	created, err := svc.Create(ctx, models.Announcement{
		Title:    "Quarterly Results",
		Content:  "Strong quarter across the portfolio.",
		Category: "Gossip",
	})
	require.NoError(t, err)
	assert.Equal(t, models.AnnouncementCategoryNews, created.Category)

	created, err = svc.Create(ctx, models.Announcement{
		Title:    "Investor Summit",
		Content:  "Annual summit registration is open.",
		Category: models.AnnouncementCategoryEvent,
	})
	require.NoError(t, err)
	assert.Equal(t, models.AnnouncementCategoryEvent, created.Category)
}
