package commands

import (
	"context"
	"errors"
	"log/slog"
	"strconv"
	"strings"

	"bot_guard/internal/domain/model"
	"bot_guard/internal/services/audit"
	"bot_guard/internal/state"
	"bot_guard/internal/ui"
)

var (
	ErrPermissionDenied = errors.New("permission denied")
	ErrMissingArgument  = errors.New("missing argument")
	ErrInvalidArgument  = errors.New("invalid argument")
	ErrNotAReply        = errors.New("reply target required")
)

const defaultDeleteReason = "No reason provided"

type Gateway interface {
	ChatAdmins(ctx context.Context, chatID int64) ([]model.ChatAdmin, error)
	DeleteMessage(ctx context.Context, chatID int64, messageID int) error
}

// Service implements the operator commands. Each method returns the
// confirmation text to reply with, or a sentinel error the router maps
// to a rejection reply. Collaborator failures are reported as
// best-effort apology texts, never as panics or silent drops.
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

// Approve adds a user to the bio approval set and zeroes their warnings.
func (s *Service) Approve(ctx context.Context, chatID, actorID int64, args string) (string, error) {
	if !s.store.IsAdmin(chatID, actorID) {
		return "", ErrPermissionDenied
	}

	userID, err := parseUserID(args)
	if err != nil {
		return "", err
	}

	s.store.ApproveBio(userID)
	s.store.ResetWarnings(userID)
	if err := s.audit.LogBioApproval(ctx, actorID, userID); err != nil {
		s.logger.Warn("write approval audit", "error", err, "target_tg_id", userID)
	}
	return ui.UserApproved(userID), nil
}

// ResetWarnings zeroes a user's warning counter.
func (s *Service) ResetWarnings(ctx context.Context, chatID, actorID int64, args string) (string, error) {
	if !s.store.IsAdmin(chatID, actorID) {
		return "", ErrPermissionDenied
	}

	userID, err := parseUserID(args)
	if err != nil {
		return "", err
	}

	s.store.ResetWarnings(userID)
	if err := s.audit.LogWarningsReset(ctx, actorID, userID); err != nil {
		s.logger.Warn("write reset audit", "error", err, "target_tg_id", userID)
	}
	return ui.WarningsReset(userID), nil
}

// Delete removes the replied-to message. The bot owner deletes
// unconditionally; admins delete with a recorded reason.
func (s *Service) Delete(ctx context.Context, chatID, actorID int64, targetMessageID int, hasTarget bool, args string) (string, error) {
	if !hasTarget {
		return "", ErrNotAReply
	}

	if s.ownerTGID != 0 && actorID == s.ownerTGID {
		if err := s.gateway.DeleteMessage(ctx, chatID, targetMessageID); err != nil {
			s.logger.Error("delete message", "error", err, "chat_id", chatID, "message_id", targetMessageID)
			return ui.DeleteFailed(), nil
		}
		if err := s.audit.LogMessageDeleted(ctx, chatID, targetMessageID, actorID, ""); err != nil {
			s.logger.Warn("write delete audit", "error", err, "message_id", targetMessageID)
		}
		return ui.DeletedByOwner(), nil
	}

	if !s.store.IsAdmin(chatID, actorID) {
		return "", ErrPermissionDenied
	}

	reason := strings.TrimSpace(args)
	if reason == "" {
		reason = defaultDeleteReason
	}
	s.store.RecordDeletionReason(targetMessageID, reason)

	if err := s.gateway.DeleteMessage(ctx, chatID, targetMessageID); err != nil {
		s.logger.Error("delete message", "error", err, "chat_id", chatID, "message_id", targetMessageID)
		return ui.DeleteFailed(), nil
	}
	if err := s.audit.LogMessageDeleted(ctx, chatID, targetMessageID, actorID, reason); err != nil {
		s.logger.Warn("write delete audit", "error", err, "message_id", targetMessageID)
	}
	return ui.DeletedWithReason(reason), nil
}

// ApproveSticker adds a user to the sticker approval set. The bot owner
// may always do this; otherwise only the resolved group owner may.
func (s *Service) ApproveSticker(ctx context.Context, chatID, actorID int64, args string) (string, error) {
	userID, err := parseUserID(args)
	if err != nil {
		return "", err
	}

	if s.ownerTGID == 0 || actorID != s.ownerTGID {
		admins, adminsErr := s.gateway.ChatAdmins(ctx, chatID)
		if adminsErr != nil {
			s.logger.Error("fetch chat admins for sticker approval", "error", adminsErr, "chat_id", chatID)
			return ui.StickerApprovalFailed(), nil
		}
		groupOwnerID, ok := s.resolveOwner(admins)
		if !ok || actorID != groupOwnerID {
			return "", ErrPermissionDenied
		}
	}

	s.store.ApproveSticker(userID)
	if err := s.audit.LogStickerApproval(ctx, actorID, userID); err != nil {
		s.logger.Warn("write sticker approval audit", "error", err, "target_tg_id", userID)
	}
	return ui.StickerUserApproved(userID), nil
}

// ToggleCopyright flips the chat's duplicate-detection toggle. The
// permission check fetches the admin list live instead of using the
// cache. An empty reply with no error means stay silent.
func (s *Service) ToggleCopyright(ctx context.Context, chatID, actorID int64) (string, error) {
	if s.ownerTGID == 0 || actorID != s.ownerTGID {
		admins, err := s.gateway.ChatAdmins(ctx, chatID)
		if err != nil {
			s.logger.Warn("check admin status for copyright toggle", "error", err, "chat_id", chatID)
			return "", nil
		}
		if !containsAdmin(admins, actorID) {
			return "", ErrPermissionDenied
		}
	}

	enabled := s.store.ToggleCopyright(chatID)
	if err := s.audit.LogCopyrightToggle(ctx, chatID, actorID, enabled); err != nil {
		s.logger.Warn("write copyright toggle audit", "error", err, "chat_id", chatID)
	}
	return ui.CopyrightToggled(enabled), nil
}

func parseUserID(args string) (int64, error) {
	trimmed := strings.TrimSpace(args)
	if trimmed == "" {
		return 0, ErrMissingArgument
	}
	first := strings.Fields(trimmed)[0]
	userID, err := strconv.ParseInt(first, 10, 64)
	if err != nil {
		return 0, ErrInvalidArgument
	}
	return userID, nil
}

func containsAdmin(admins []model.ChatAdmin, userID int64) bool {
	for _, admin := range admins {
		if admin.UserID == userID {
			return true
		}
	}
	return false
}
