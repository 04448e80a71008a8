package services

import (
	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/models"
	"github.com/investplus/admin-engine/pkg/repositories"
)

// NewMemberDirectory creates the CRUD service for the members collection.
func NewMemberDirectory(repo *repositories.Collection[models.Member], logger *zap.Logger) *DirectoryService[models.Member] {
	return &DirectoryService[models.Member]{
		repo:   repo,
		logger: logger,
		idOf:   func(m models.Member) string { return m.ID },
		prepare: func(m models.Member) models.Member {
			m.ID = models.NewID()
			m.JoinedDate = models.Today()
			if m.Role == "" {
				m.Role = models.MemberRoleInvestor
			}
			if m.Status == "" {
				m.Status = models.StatusActive
			}
			return m
		},
		merge: func(prev, next models.Member) models.Member {
			next.ID = prev.ID
			next.JoinedDate = prev.JoinedDate
			return next
		},
	}
}

// NewProjectDirectory creates the CRUD service for the projects collection.
func NewProjectDirectory(repo *repositories.Collection[models.Project], logger *zap.Logger) *DirectoryService[models.Project] {
	return &DirectoryService[models.Project]{
		repo:   repo,
		logger: logger,
		idOf:   func(p models.Project) string { return p.ID },
		prepare: func(p models.Project) models.Project {
			p.ID = models.NewID()
			if p.StartDate == "" {
				p.StartDate = models.Today()
			}
			if p.Status == "" {
				p.Status = models.ProjectStatusPlanned
			}
			return p
		},
		merge: func(prev, next models.Project) models.Project {
			next.ID = prev.ID
			return next
		},
	}
}

// NewExpertDirectory creates the CRUD service for the experts collection.
func NewExpertDirectory(repo *repositories.Collection[models.Expert], logger *zap.Logger) *DirectoryService[models.Expert] {
	return &DirectoryService[models.Expert]{
		repo:   repo,
		logger: logger,
		idOf:   func(e models.Expert) string { return e.ID },
		prepare: func(e models.Expert) models.Expert {
			e.ID = models.NewID()
			e.JoinedDate = models.Today()
			if e.Status == "" {
				e.Status = models.StatusActive
			}
			return e
		},
		merge: func(prev, next models.Expert) models.Expert {
			next.ID = prev.ID
			next.JoinedDate = prev.JoinedDate
			return next
		},
	}
}

// NewInvestorDirectory creates the CRUD service for the investors collection.
func NewInvestorDirectory(repo *repositories.Collection[models.Investor], logger *zap.Logger) *DirectoryService[models.Investor] {
	return &DirectoryService[models.Investor]{
		repo:   repo,
		logger: logger,
		idOf:   func(i models.Investor) string { return i.ID },
		prepare: func(i models.Investor) models.Investor {
			i.ID = models.NewID()
			i.JoinedDate = models.Today()
			if i.Status == "" {
				i.Status = models.StatusActive
			}
			return i
		},
		merge: func(prev, next models.Investor) models.Investor {
			next.ID = prev.ID
			next.JoinedDate = prev.JoinedDate
			return next
		},
	}
}

// NewPartnerDirectory creates the CRUD service for the partners collection.
func NewPartnerDirectory(repo *repositories.Collection[models.Partner], logger *zap.Logger) *DirectoryService[models.Partner] {
	return &DirectoryService[models.Partner]{
		repo:   repo,
		logger: logger,
		idOf:   func(p models.Partner) string { return p.ID },
		prepare: func(p models.Partner) models.Partner {
			p.ID = models.NewID()
			if p.PartnershipDate == "" {
				p.PartnershipDate = models.Today()
			}
			if p.Status == "" {
				p.Status = models.StatusActive
			}
			return p
		},
		merge: func(prev, next models.Partner) models.Partner {
			next.ID = prev.ID
			next.PartnershipDate = prev.PartnershipDate
			return next
		},
	}
}

// NewMethodologyDirectory creates the CRUD service for the methodology
// steps collection. Steps carry an explicit order instead of a date.
func NewMethodologyDirectory(repo *repositories.Collection[models.MethodologyStep], logger *zap.Logger) *DirectoryService[models.MethodologyStep] {
	return &DirectoryService[models.MethodologyStep]{
		repo:   repo,
		logger: logger,
		idOf:   func(s models.MethodologyStep) string { return s.ID },
		prepare: func(s models.MethodologyStep) models.MethodologyStep {
			s.ID = models.NewID()
			return s
		},
		merge: func(prev, next models.MethodologyStep) models.MethodologyStep {
			next.ID = prev.ID
			return next
		},
	}
}

// NewAchievementDirectory creates the CRUD service for the achievements
// collection.
func NewAchievementDirectory(repo *repositories.Collection[models.Achievement], logger *zap.Logger) *DirectoryService[models.Achievement] {
	return &DirectoryService[models.Achievement]{
		repo:   repo,
		logger: logger,
		idOf:   func(a models.Achievement) string { return a.ID },
		prepare: func(a models.Achievement) models.Achievement {
			a.ID = models.NewID()
			if a.Date == "" {
				a.Date = models.Today()
			}
			return a
		},
		merge: func(prev, next models.Achievement) models.Achievement {
			next.ID = prev.ID
			return next
		},
	}
}

// NewAnnouncementDirectory creates the CRUD service for the announcements
// collection.
func NewAnnouncementDirectory(repo *repositories.Collection[models.Announcement], logger *zap.Logger) *DirectoryService[models.Announcement] {
	return &DirectoryService[models.Announcement]{
		repo:   repo,
		logger: logger,
		idOf:   func(a models.Announcement) string { return a.ID },
		prepare: func(a models.Announcement) models.Announcement {
			a.ID = models.NewID()
			if a.Date == "" {
				a.Date = models.Today()
			}
			if !models.IsValidAnnouncementCategory(a.Category) {
				a.Category = models.AnnouncementCategoryNews
			}
			return a
		},
		merge: func(prev, next models.Announcement) models.Announcement {
			next.ID = prev.ID
			return next
		},
	}
}
