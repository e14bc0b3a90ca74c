package biolink

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"bot_guard/internal/domain/model"
	"bot_guard/internal/services/audit"
	"bot_guard/internal/services/links"
	"bot_guard/internal/state"
	"bot_guard/internal/ui"
)

type Gateway interface {
	ChatAdmins(ctx context.Context, chatID int64) ([]model.ChatAdmin, error)
	UserBio(ctx context.Context, userID int64) (string, error)
	SendText(ctx context.Context, chatID int64, text string) (int, error)
	ReplyText(ctx context.Context, chatID int64, replyToMessageID int, text string) error
	RestrictSending(ctx context.Context, chatID, userID int64, until time.Time) error
}

// ApprovalTarget resolves which user an approval reply applies to.
type ApprovalTarget func(replierID int64) int64

// ReplierAsTarget keeps the historical behavior: the approval is
// recorded against the replying user's own id, not the warned user's.
func ReplierAsTarget(replierID int64) int64 {
	return replierID
}

// Service enforces the bio-link policy: on every join it scans the new
// member's bio for links and drives the warning ladder up to a timed
// mute, and it runs the reply-based approval workflow on warning
// messages it has sent.
type Service struct {
	store          *state.Store
	gateway        Gateway
	audit          *audit.Service
	logger         *slog.Logger
	extractor      *links.Extractor
	maxWarnings    int
	muteHours      int
	approvalTarget ApprovalTarget
}

func NewService(store *state.Store, gateway Gateway, auditService *audit.Service, logger *slog.Logger, extractor *links.Extractor, maxWarnings, muteHours int, approvalTarget ApprovalTarget) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	if extractor == nil {
		extractor = links.NewExtractor()
	}
	if maxWarnings <= 0 {
		maxWarnings = 3
	}
	if muteHours <= 0 {
		muteHours = 24
	}
	if approvalTarget == nil {
		approvalTarget = ReplierAsTarget
	}
	return &Service{
		store:          store,
		gateway:        gateway,
		audit:          auditService,
		logger:         logger,
		extractor:      extractor,
		maxWarnings:    maxWarnings,
		muteHours:      muteHours,
		approvalTarget: approvalTarget,
	}
}

type JoinEvent struct {
	ChatID   int64
	UserID   int64
	Username string
	IsBot    bool
}

func (s *Service) HandleJoin(ctx context.Context, event JoinEvent) error {
	if event.IsBot {
		return nil
	}

	admins, err := s.gateway.ChatAdmins(ctx, event.ChatID)
	if err != nil {
		// Keep the previous cache and carry on.
		s.logger.Warn("refresh admin list", "error", err, "chat_id", event.ChatID)
	} else {
		ids := make([]int64, 0, len(admins))
		for _, admin := range admins {
			ids = append(ids, admin.UserID)
		}
		s.store.ReplaceAdmins(event.ChatID, ids)
	}

	if s.store.IsAdmin(event.ChatID, event.UserID) {
		s.logger.Info("skipping bio check for admin", "tg_id", event.UserID, "chat_id", event.ChatID)
		return nil
	}

	bio, err := s.gateway.UserBio(ctx, event.UserID)
	if err != nil {
		s.logger.Warn("fetch user bio", "error", err, "tg_id", event.UserID)
		if _, sendErr := s.gateway.SendText(ctx, event.ChatID, ui.BioUnavailable(event.Username)); sendErr != nil {
			s.logger.Warn("send bio-unavailable notice", "error", sendErr, "chat_id", event.ChatID)
		}
		return nil
	}
	if bio == "" {
		return nil
	}

	found := s.extractor.Extract(bio)
	if len(found) == 0 || s.store.IsBioApproved(event.UserID) {
		return nil
	}

	count := s.store.AddWarning(event.UserID)
	messageID, err := s.gateway.SendText(ctx, event.ChatID, ui.BioLinkWarning(event.Username, found, count, s.maxWarnings))
	if err != nil {
		return fmt.Errorf("send bio-link warning: %w", err)
	}
	s.store.SetPendingApproval(event.UserID, messageID)

	if err := s.audit.LogWarning(ctx, event.ChatID, event.UserID, found, count); err != nil {
		s.logger.Warn("write warning audit", "error", err, "tg_id", event.UserID)
	}

	// The mute fires once, when the counter reaches the maximum;
	// violations past the maximum keep reporting the count only.
	if count != s.maxWarnings {
		return nil
	}

	until := time.Now().Add(time.Duration(s.muteHours) * time.Hour)
	if err := s.gateway.RestrictSending(ctx, event.ChatID, event.UserID, until); err != nil {
		return fmt.Errorf("restrict member: %w", err)
	}
	if _, err := s.gateway.SendText(ctx, event.ChatID, ui.MuteNotice(event.Username, s.muteHours)); err != nil {
		return fmt.Errorf("send mute notice: %w", err)
	}
	if err := s.audit.LogMute(ctx, event.ChatID, event.UserID, until); err != nil {
		s.logger.Warn("write mute audit", "error", err, "tg_id", event.UserID)
	}
	return nil
}

type ReplyEvent struct {
	ChatID           int64
	MessageID        int
	UserID           int64
	Username         string
	RepliedMessageID int
}

// HandleWarningReply processes a message that replies to another one.
// It reports whether the replied-to message was the pending warning
// recorded for the replying user.
func (s *Service) HandleWarningReply(ctx context.Context, event ReplyEvent) (bool, error) {
	marker, ok := s.store.PendingApproval(event.UserID)
	if !ok || marker != event.RepliedMessageID {
		return false, nil
	}

	if s.store.IsAdmin(event.ChatID, event.UserID) {
		target := s.approvalTarget(event.UserID)
		s.store.ApproveBio(target)
		s.store.ResetWarnings(target)
		if err := s.gateway.ReplyText(ctx, event.ChatID, event.MessageID, ui.ApprovedByAdmin()); err != nil {
			return true, fmt.Errorf("send approval confirmation: %w", err)
		}
		if err := s.audit.LogBioApproval(ctx, event.UserID, target); err != nil {
			s.logger.Warn("write approval audit", "error", err, "tg_id", event.UserID)
		}
		return true, nil
	}

	if err := s.gateway.ReplyText(ctx, event.ChatID, event.MessageID, ui.ApprovalRequestAck()); err != nil {
		return true, fmt.Errorf("send approval request ack: %w", err)
	}
	for _, adminID := range s.store.Admins(event.ChatID) {
		if _, err := s.gateway.SendText(ctx, adminID, ui.ApprovalRequestNotice(event.Username, event.UserID)); err != nil {
			s.logger.Warn("notify admin about approval request", "error", err, "admin_tg_id", adminID)
		}
	}
	return true, nil
}
