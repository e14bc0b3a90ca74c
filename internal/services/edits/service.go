package edits

import (
	"context"
	"fmt"
	"log/slog"

	"bot_guard/internal/services/audit"
	"bot_guard/internal/state"
	"bot_guard/internal/ui"
)

type Gateway interface {
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	SendText(ctx context.Context, chatID int64, text string) (int, error)
}

// Service deletes edited messages from everyone except the bot owner
// and cached chat admins. There is no warning ladder, editing is a
// hard block.
type Service struct {
	store     *state.Store
	gateway   Gateway
	audit     *audit.Service
	logger    *slog.Logger
	ownerTGID int64
}

func NewService(store *state.Store, gateway Gateway, auditService *audit.Service, logger *slog.Logger, ownerTGID int64) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{
		store:     store,
		gateway:   gateway,
		audit:     auditService,
		logger:    logger,
		ownerTGID: ownerTGID,
	}
}

type EditedEvent struct {
	ChatID    int64
	MessageID int
	UserID    int64
	Username  string
}

func (s *Service) HandleEdited(ctx context.Context, event EditedEvent) error {
	if s.ownerTGID != 0 && event.UserID == s.ownerTGID {
		return nil
	}
	if s.store.IsAdmin(event.ChatID, event.UserID) {
		return nil
	}

	if err := s.gateway.DeleteMessage(ctx, event.ChatID, event.MessageID); err != nil {
		return fmt.Errorf("delete edited message: %w", err)
	}
	if _, err := s.gateway.SendText(ctx, event.ChatID, ui.EditNotice(event.Username)); err != nil {
		return fmt.Errorf("send edit notice: %w", err)
	}
	if err := s.audit.LogEditRemoved(ctx, event.ChatID, event.MessageID, event.UserID); err != nil {
		s.logger.Warn("write edit audit", "error", err, "chat_id", event.ChatID)
	}
	return nil
}
