package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"bot_guard/internal/domain/model"
)

type AuditRepo struct {
	db *sql.DB
}

func NewAuditRepo(db *sql.DB) *AuditRepo {
	return &AuditRepo{db: db}
}

func (r *AuditRepo) Save(ctx context.Context, entry model.Audit) error {
	if r.db == nil {
		return nil
	}

	payload := entry.Payload
	if len(payload) == 0 {
		payload = json.RawMessage(`{}`)
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO bot_audit (actor_tg_id, action, payload, created_at)
		VALUES ($1, $2, $3, $4)
	`, entry.ActorTGID, string(entry.Action), string(payload), entry.CreatedAt)
	return err
}
