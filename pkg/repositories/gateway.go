package repositories

import (
	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/models"
	"github.com/investplus/admin-engine/pkg/store"
)

// Storage keys for the named collections.
const (
	KeyMembers       = "members"
	KeyProjects      = "projects"
	KeyExperts       = "experts"
	KeyInvestors     = "investors"
	KeyPartners      = "partners"
	KeySteps         = "steps"
	KeyAchievements  = "achievements"
	KeyRegistrations = "registrations"
	KeyAnnouncements = "announcements"
	KeyNotifications = "notifications"
)

// Gateway bundles the typed repositories sharing one store handle. It is
// the only component that reads or writes the underlying store, and it is
// constructed explicitly at startup so tests get a fresh store each.
type Gateway struct {
	Members       *Collection[models.Member]
	Projects      *Collection[models.Project]
	Experts       *Collection[models.Expert]
	Investors     *Collection[models.Investor]
	Partners      *Collection[models.Partner]
	Steps         *Collection[models.MethodologyStep]
	Achievements  *Collection[models.Achievement]
	Registrations *Collection[models.Registration]
	Announcements *Collection[models.Announcement]
	Notifications *Collection[models.Notification]
	Profile       *AdminProfileRepository
}

// NewGateway wires a repository for every collection over the given store.
func NewGateway(s store.Store, seeds *Seeds, logger *zap.Logger) (*Gateway, error) {
	members, err := NewCollection(s, KeyMembers, seeds.Members, logger)
	if err != nil {
		return nil, err
	}
	projects, err := NewCollection(s, KeyProjects, seeds.Projects, logger)
	if err != nil {
		return nil, err
	}
	experts, err := NewCollection(s, KeyExperts, seeds.Experts, logger)
	if err != nil {
		return nil, err
	}
	investors, err := NewCollection(s, KeyInvestors, seeds.Investors, logger)
	if err != nil {
		return nil, err
	}
	partners, err := NewCollection(s, KeyPartners, seeds.Partners, logger)
	if err != nil {
		return nil, err
	}
	steps, err := NewCollection(s, KeySteps, seeds.Steps, logger)
	if err != nil {
		return nil, err
	}
	achievements, err := NewCollection(s, KeyAchievements, seeds.Achievements, logger)
	if err != nil {
		return nil, err
	}
	registrations, err := NewCollection(s, KeyRegistrations, seeds.Registrations, logger)
	if err != nil {
		return nil, err
	}
	announcements, err := NewCollection(s, KeyAnnouncements, seeds.Announcements, logger)
	if err != nil {
		return nil, err
	}
	notifications, err := NewCollection(s, KeyNotifications, seeds.Notifications, logger)
	if err != nil {
		return nil, err
	}

	return &Gateway{
		Members:       members,
		Projects:      projects,
		Experts:       experts,
		Investors:     investors,
		Partners:      partners,
		Steps:         steps,
		Achievements:  achievements,
		Registrations: registrations,
		Announcements: announcements,
		Notifications: notifications,
		Profile:       NewAdminProfileRepository(s, seeds.AdminProfile, logger),
	}, nil
}
