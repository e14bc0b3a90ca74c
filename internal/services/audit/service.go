package audit

import (
	"context"
	"encoding/json"
	"time"

	"bot_guard/internal/domain/enums"
	"bot_guard/internal/domain/model"
)

type Repo interface {
	Save(context.Context, model.Audit) error
}

// Service writes a structured trail of every enforcement action the
// bot takes. It is nil-safe end to end: without a repo every call is a
// no-op, so the bot runs fine with no database configured.
type Service struct {
	repo Repo
}

func NewService(repo Repo) *Service {
	return &Service{repo: repo}
}

func (s *Service) LogWarning(ctx context.Context, chatID, userID int64, found []string, count int) error {
	return s.logWithPayload(ctx, enums.AuditActionWarningIssued, userID, map[string]interface{}{
		"chat_id":       chatID,
		"found_links":   found,
		"warning_count": count,
	})
}

func (s *Service) LogMute(ctx context.Context, chatID, userID int64, until time.Time) error {
	return s.logWithPayload(ctx, enums.AuditActionUserMuted, userID, map[string]interface{}{
		"chat_id": chatID,
		"until":   until.UTC().Format(time.RFC3339),
	})
}

func (s *Service) LogMessageDeleted(ctx context.Context, chatID int64, messageID int, actorTGID int64, reason string) error {
	return s.logWithPayload(ctx, enums.AuditActionMessageDeleted, actorTGID, map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
		"reason":     reason,
	})
}

func (s *Service) LogCopyrightHit(ctx context.Context, chatID int64, messageID int, userID int64, ratio float64) error {
	return s.logWithPayload(ctx, enums.AuditActionCopyrightHit, userID, map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
		"ratio":      ratio,
	})
}

func (s *Service) LogCopyrightToggle(ctx context.Context, chatID, actorTGID int64, enabled bool) error {
	return s.logWithPayload(ctx, enums.AuditActionCopyrightToggled, actorTGID, map[string]interface{}{
		"chat_id": chatID,
		"enabled": enabled,
	})
}

func (s *Service) LogStickerRemoved(ctx context.Context, chatID int64, messageID int, userID int64) error {
	return s.logWithPayload(ctx, enums.AuditActionStickerRemoved, userID, map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
	})
}

func (s *Service) LogEditRemoved(ctx context.Context, chatID int64, messageID int, userID int64) error {
	return s.logWithPayload(ctx, enums.AuditActionEditRemoved, userID, map[string]interface{}{
		"chat_id":    chatID,
		"message_id": messageID,
	})
}

func (s *Service) LogBioApproval(ctx context.Context, actorTGID, targetID int64) error {
	return s.logWithPayload(ctx, enums.AuditActionBioApproved, actorTGID, map[string]interface{}{
		"target_tg_id": targetID,
	})
}

func (s *Service) LogStickerApproval(ctx context.Context, actorTGID, targetID int64) error {
	return s.logWithPayload(ctx, enums.AuditActionStickerApproved, actorTGID, map[string]interface{}{
		"target_tg_id": targetID,
	})
}

func (s *Service) LogWarningsReset(ctx context.Context, actorTGID, targetID int64) error {
	return s.logWithPayload(ctx, enums.AuditActionWarningsReset, actorTGID, map[string]interface{}{
		"target_tg_id": targetID,
	})
}

func (s *Service) logWithPayload(ctx context.Context, action enums.AuditAction, actorTGID int64, data map[string]interface{}) error {
	if s.repo == nil {
		return nil
	}

	payload, err := json.Marshal(data)
	if err != nil {
		payload = json.RawMessage(`{}`)
	}

	entry := model.Audit{
		ActorTGID: actorTGID,
		Action:    action,
		Payload:   payload,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Save(ctx, entry)
}
