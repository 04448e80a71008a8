package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/investplus/admin-engine/pkg/models"
	"github.com/investplus/admin-engine/pkg/repositories"
)

// recentMemberLimit is how many recent members the dashboard shows.
const recentMemberLimit = 5

// DashboardStats are the headline numbers of the overview page.
type DashboardStats struct {
	TotalAssets      float64         `json:"totalAssets"`
	ActiveInvestors  int             `json:"activeInvestors"`
	PendingApprovals int             `json:"pendingApprovals"`
	ActiveProjects   int             `json:"activeProjects"`
	RecentMembers    []models.Member `json:"recentMembers"`
}

// DashboardService aggregates statistics across collections.
type DashboardService interface {
	Stats(ctx context.Context) (*DashboardStats, error)
}

type dashboardService struct {
	members       *repositories.Collection[models.Member]
	registrations *repositories.Collection[models.Registration]
	projects      *repositories.Collection[models.Project]
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(
	members *repositories.Collection[models.Member],
	registrations *repositories.Collection[models.Registration],
	projects *repositories.Collection[models.Project],
) DashboardService {
	return &dashboardService{
		members:       members,
		registrations: registrations,
		projects:      projects,
	}
}

var _ DashboardService = (*dashboardService)(nil)

func (s *dashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	members, err := s.members.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}
	regs, err := s.registrations.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registrations: %w", err)
	}
	projects, err := s.projects.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load projects: %w", err)
	}

	stats := &DashboardStats{}
	for _, m := range members {
		stats.TotalAssets += m.TotalInvestment
		if m.Role == models.MemberRoleInvestor && m.Status == models.StatusActive {
			stats.ActiveInvestors++
		}
	}
	for _, r := range regs {
		if r.Status == models.RegistrationStatusPending {
			stats.PendingApprovals++
		}
	}
	for _, p := range projects {
		if p.Status == models.ProjectStatusOngoing {
			stats.ActiveProjects++
		}
	}

	// Dates are YYYY-MM-DD, so a string sort is a date sort.
	recent := make([]models.Member, len(members))
	copy(recent, members)
	sort.SliceStable(recent, func(i, j int) bool {
		return recent[i].JoinedDate > recent[j].JoinedDate
	})
	if len(recent) > recentMemberLimit {
		recent = recent[:recentMemberLimit]
	}
	stats.RecentMembers = recent

	return stats, nil
}
