package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/investplus/admin-engine/pkg/apperrors"
	"github.com/investplus/admin-engine/pkg/llm"
)

// ErrDraftingUnavailable is returned when no completion provider is
// configured.
var ErrDraftingUnavailable = errors.New("announcement drafting is not configured")

const draftSystemMessage = "You write announcement copy for the admin dashboard of an investment platform."

const draftPromptFormat = "Write a professional and engaging investment announcement about: %s. " +
	"Keep it concise (max 100 words) and suitable for a financial platform dashboard."

// AnnouncementDraftService produces AI-assisted announcement text.
// Drafting is read-only: a failed call changes no stored state.
type AnnouncementDraftService interface {
	Draft(ctx context.Context, topic string) (string, error)
}

type announcementDraftService struct {
	client llm.CompletionClient
	logger *zap.Logger
}

// NewAnnouncementDraftService creates a new AnnouncementDraftService.
// A nil client is allowed; drafting then reports ErrDraftingUnavailable.
func NewAnnouncementDraftService(client llm.CompletionClient, logger *zap.Logger) AnnouncementDraftService {
	return &announcementDraftService{client: client, logger: logger}
}

var _ AnnouncementDraftService = (*announcementDraftService)(nil)

func (s *announcementDraftService) Draft(ctx context.Context, topic string) (string, error) {
	topic = strings.TrimSpace(topic)
	if topic == "" {
		return "", fmt.Errorf("%w: topic is required", apperrors.ErrValidation)
	}
	if s.client == nil {
		return "", ErrDraftingUnavailable
	}

	text, err := s.client.Complete(ctx, fmt.Sprintf(draftPromptFormat, topic), draftSystemMessage)
	if err != nil {
		return "", fmt.Errorf("failed to draft announcement: %w", err)
	}

	s.logger.Info("announcement drafted",
		zap.String("model", s.client.Model()),
		zap.Int("topic_len", len(topic)),
		zap.Int("draft_len", len(text)))
	return strings.TrimSpace(text), nil
}
