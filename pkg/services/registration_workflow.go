package services

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/apperrors"
	"github.com/investplus/admin-engine/pkg/models"
	"github.com/investplus/admin-engine/pkg/repositories"
)

// RegistrationWorkflowService governs the registration state machine:
// Pending is the only state with outgoing transitions, Approved and
// Rejected are terminal. Approving a registration materializes a new
// member record.
type RegistrationWorkflowService interface {
	// List returns all registrations.
	List(ctx context.Context) ([]models.Registration, error)

	// Approve moves a Pending registration to Approved and prepends the
	// member it materializes to the members collection. Returns the
	// created member.
	Approve(ctx context.Context, registrationID string) (*models.Member, error)

	// Reject moves a Pending registration to Rejected. No other
	// collection is touched.
	Reject(ctx context.Context, registrationID string) (*models.Registration, error)

	// Delete removes a registration regardless of status. This is an
	// administrative override, not a workflow transition.
	Delete(ctx context.Context, registrationID string) error

	// Reconcile materializes the missing member for any Approved
	// registration whose member write never landed. Returns the number
	// of members created.
	Reconcile(ctx context.Context) (int, error)
}

type registrationWorkflowService struct {
	registrations *repositories.Collection[models.Registration]
	members       *repositories.Collection[models.Member]
	logger        *zap.Logger
	today         func() string
}

// RegistrationWorkflowDeps contains dependencies for the workflow service.
type RegistrationWorkflowDeps struct {
	Registrations *repositories.Collection[models.Registration]
	Members       *repositories.Collection[models.Member]
	Logger        *zap.Logger
	Today         func() string // Optional: defaults to models.Today
}

// NewRegistrationWorkflowService creates a new RegistrationWorkflowService.
func NewRegistrationWorkflowService(deps *RegistrationWorkflowDeps) RegistrationWorkflowService {
	today := deps.Today
	if today == nil {
		today = models.Today
	}
	return &registrationWorkflowService{
		registrations: deps.Registrations,
		members:       deps.Members,
		logger:        deps.Logger,
		today:         today,
	}
}

var _ RegistrationWorkflowService = (*registrationWorkflowService)(nil)

func (s *registrationWorkflowService) List(ctx context.Context) ([]models.Registration, error) {
	return s.registrations.Get(ctx)
}

func (s *registrationWorkflowService) Approve(ctx context.Context, registrationID string) (*models.Member, error) {
	regs, err := s.registrations.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registrations: %w", err)
	}

	idx := indexOfRegistration(regs, registrationID)
	if idx < 0 {
		return nil, fmt.Errorf("registration %s: %w", registrationID, apperrors.ErrNotFound)
	}
	reg := regs[idx]
	if reg.Status != models.RegistrationStatusPending {
		return nil, fmt.Errorf("registration %s is %s: %w",
			registrationID, reg.Status, apperrors.ErrInvalidTransition)
	}

	// Compute both updated collections before writing either, so a clean
	// failure here leaves the store untouched.
	members, err := s.members.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load members: %w", err)
	}

	regs[idx].Status = models.RegistrationStatusApproved

	member := models.Member{
		ID:              models.NewID(),
		Name:            reg.Name,
		Email:           reg.Email,
		Role:            reg.MemberRole(),
		Status:          models.StatusActive,
		JoinedDate:      s.today(),
		TotalInvestment: 0,
	}
	updatedMembers := append([]models.Member{member}, members...)

	if err := s.registrations.Save(ctx, regs); err != nil {
		return nil, fmt.Errorf("failed to save registrations: %w", err)
	}
	if err := s.members.Save(ctx, updatedMembers); err != nil {
		// The registration is already Approved but its member never
		// landed. Surface this distinctly; Reconcile repairs it.
		s.logger.Error("approval half applied, member write failed",
			zap.String("registration_id", registrationID),
			zap.String("email", reg.Email),
			zap.Error(err))
		return nil, fmt.Errorf("registration %s approved but member not created: %w",
			registrationID, apperrors.ErrPartialWorkflow)
	}

	s.logger.Info("registration approved",
		zap.String("registration_id", registrationID),
		zap.String("member_id", member.ID),
		zap.String("role", member.Role))
	return &member, nil
}

func (s *registrationWorkflowService) Reject(ctx context.Context, registrationID string) (*models.Registration, error) {
	regs, err := s.registrations.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load registrations: %w", err)
	}

	idx := indexOfRegistration(regs, registrationID)
	if idx < 0 {
		return nil, fmt.Errorf("registration %s: %w", registrationID, apperrors.ErrNotFound)
	}
	if regs[idx].Status != models.RegistrationStatusPending {
		return nil, fmt.Errorf("registration %s is %s: %w",
			registrationID, regs[idx].Status, apperrors.ErrInvalidTransition)
	}

	regs[idx].Status = models.RegistrationStatusRejected
	if err := s.registrations.Save(ctx, regs); err != nil {
		return nil, fmt.Errorf("failed to save registrations: %w", err)
	}

	s.logger.Info("registration rejected",
		zap.String("registration_id", registrationID))
	rejected := regs[idx]
	return &rejected, nil
}

func (s *registrationWorkflowService) Delete(ctx context.Context, registrationID string) error {
	regs, err := s.registrations.Get(ctx)
	if err != nil {
		return fmt.Errorf("failed to load registrations: %w", err)
	}

	idx := indexOfRegistration(regs, registrationID)
	if idx < 0 {
		return fmt.Errorf("registration %s: %w", registrationID, apperrors.ErrNotFound)
	}

	regs = append(regs[:idx], regs[idx+1:]...)
	if err := s.registrations.Save(ctx, regs); err != nil {
		return fmt.Errorf("failed to save registrations: %w", err)
	}
	return nil
}

func (s *registrationWorkflowService) Reconcile(ctx context.Context) (int, error) {
	regs, err := s.registrations.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load registrations: %w", err)
	}
	members, err := s.members.Get(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to load members: %w", err)
	}

	seen := make(map[string]bool, len(members))
	for _, m := range members {
		seen[m.Email] = true
	}

	created := 0
	for _, reg := range regs {
		if reg.Status != models.RegistrationStatusApproved || seen[reg.Email] {
			continue
		}
		member := models.Member{
			ID:              models.NewID(),
			Name:            reg.Name,
			Email:           reg.Email,
			Role:            reg.MemberRole(),
			Status:          models.StatusActive,
			JoinedDate:      s.today(),
			TotalInvestment: 0,
		}
		members = append([]models.Member{member}, members...)
		seen[reg.Email] = true
		created++
		s.logger.Warn("reconciled approval without member",
			zap.String("registration_id", reg.ID),
			zap.String("member_id", member.ID))
	}

	if created == 0 {
		return 0, nil
	}
	if err := s.members.Save(ctx, members); err != nil {
		return 0, fmt.Errorf("failed to save members: %w", err)
	}
	return created, nil
}

func indexOfRegistration(regs []models.Registration, id string) int {
	for i := range regs {
		if regs[i].ID == id {
			return i
		}
	}
	return -1
}
