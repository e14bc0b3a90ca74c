package stickers

import (
	"context"
	"fmt"
	"log/slog"

	"bot_guard/internal/domain/model"
	"bot_guard/internal/services/audit"
	"bot_guard/internal/state"
	"bot_guard/internal/ui"
)

type Gateway interface {
	ChatAdmins(ctx context.Context, chatID int64) ([]model.ChatAdmin, error)
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
	SendText(ctx context.Context, chatID int64, text string) (int, error)
}

// Service removes stickers from senders who are neither the bot owner,
// the group owner, nor on the sticker approval list.
type Service struct {
	store        *state.Store
	gateway      Gateway
	audit        *audit.Service
	logger       *slog.Logger
	ownerTGID    int64
	resolveOwner model.OwnerResolver
}

func NewService(store *state.Store, gateway Gateway, auditService *audit.Service, logger *slog.Logger, ownerTGID int64, resolveOwner model.OwnerResolver) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if resolveOwner == nil {
		resolveOwner = model.FirstListedOwner
	}
	return &Service{
		store:        store,
		gateway:      gateway,
		audit:        auditService,
		logger:       logger,
		ownerTGID:    ownerTGID,
		resolveOwner: resolveOwner,
	}
}

type StickerEvent struct {
	ChatID    int64
	MessageID int
	UserID    int64
	Username  string
}

func (s *Service) HandleSticker(ctx context.Context, event StickerEvent) error {
	if s.ownerTGID != 0 && event.UserID == s.ownerTGID {
		return nil
	}

	admins, err := s.gateway.ChatAdmins(ctx, event.ChatID)
	if err != nil {
		return fmt.Errorf("fetch chat admins: %w", err)
	}
	if groupOwnerID, ok := s.resolveOwner(admins); ok && event.UserID == groupOwnerID {
		return nil
	}

	if s.store.IsStickerApproved(event.UserID) {
		return nil
	}

	if err := s.gateway.DeleteMessage(ctx, event.ChatID, event.MessageID); err != nil {
		return fmt.Errorf("delete sticker: %w", err)
	}
	if _, err := s.gateway.SendText(ctx, event.ChatID, ui.StickerNotice(event.Username)); err != nil {
		return fmt.Errorf("send sticker notice: %w", err)
	}
	if err := s.audit.LogStickerRemoved(ctx, event.ChatID, event.MessageID, event.UserID); err != nil {
		s.logger.Warn("write sticker audit", "error", err, "chat_id", event.ChatID)
	}
	return nil
}
