package copyright

import (
	"context"
	"fmt"
	"log/slog"

	"bot_guard/internal/services/audit"
	"bot_guard/internal/services/similarity"
	"bot_guard/internal/state"
	"bot_guard/internal/ui"
)

type Gateway interface {
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	SendText(ctx context.Context, chatID int64, text string) (int, error)
}

// Service flags messages that are near-duplicates of the chat's recent
// history. The scan walks the history in insertion order and the first
// entry at or above the threshold wins.
type Service struct {
	store     *state.Store
	gateway   Gateway
	audit     *audit.Service
	logger    *slog.Logger
	threshold float64
	ownerTGID int64
}

func NewService(store *state.Store, gateway Gateway, auditService *audit.Service, logger *slog.Logger, threshold float64, ownerTGID int64) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if threshold <= 0 || threshold > 1 {
		threshold = 0.85
	}
	return &Service{
		store:     store,
		gateway:   gateway,
		audit:     auditService,
		logger:    logger,
		threshold: threshold,
		ownerTGID: ownerTGID,
	}
}

type MessageEvent struct {
	ChatID    int64
	MessageID int
	UserID    int64
	Username  string
	Text      string
}

// HandleMessage reports whether the message was flagged as a duplicate.
// Flagged messages are deleted and never recorded in the history.
func (s *Service) HandleMessage(ctx context.Context, event MessageEvent) (bool, error) {
	if event.Text == "" {
		return false, nil
	}
	if !s.store.CopyrightEnabled(event.ChatID) {
		return false, nil
	}
	if s.ownerTGID != 0 && event.UserID == s.ownerTGID {
		return false, nil
	}

	for _, entry := range s.store.History(event.ChatID) {
		ratio := similarity.Ratio(event.Text, entry.Text)
		if ratio < s.threshold {
			continue
		}

		if err := s.gateway.DeleteMessage(ctx, event.ChatID, event.MessageID); err != nil {
			return true, fmt.Errorf("delete duplicate message: %w", err)
		}
		if _, err := s.gateway.SendText(ctx, event.ChatID, ui.CopyrightAlert(event.Username, ratio)); err != nil {
			return true, fmt.Errorf("send copyright alert: %w", err)
		}
		if err := s.audit.LogCopyrightHit(ctx, event.ChatID, event.MessageID, event.UserID, ratio); err != nil {
			s.logger.Warn("write copyright audit", "error", err, "chat_id", event.ChatID)
		}
		return true, nil
	}

	s.store.RememberMessage(event.ChatID, event.MessageID, event.Text)
	return false, nil
}
