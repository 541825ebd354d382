package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"food-delivery/internal/domain"
)

const notificationsSchema = `
CREATE TABLE IF NOT EXISTS notifications (
	id          BIGSERIAL PRIMARY KEY,
	user_id     TEXT        NOT NULL,
	title       TEXT        NOT NULL,
	message     JSONB       NOT NULL,
	routing_key TEXT        NOT NULL,
	sent_at     BIGINT      NOT NULL,
	delivered   BOOLEAN     NOT NULL,
	transport   TEXT        NOT NULL
)`

// NotificationsPG mirrors notification records into Postgres. Write-only:
// reads are always served from memory.
type NotificationsPG struct {
	pool *pgxpool.Pool
}

func NewNotificationsPG(pool *pgxpool.Pool) *NotificationsPG {
	return &NotificationsPG{pool: pool}
}

func (r *NotificationsPG) EnsureSchema(ctx context.Context) error {
	if _, err := r.pool.Exec(ctx, notificationsSchema); err != nil {
		return fmt.Errorf("ensure notifications schema: %w", err)
	}
	return nil
}

func (r *NotificationsPG) Insert(ctx context.Context, n domain.Notification) error {
	msg, err := json.Marshal(n.Payload.Message)
	if err != nil {
		return fmt.Errorf("marshal notification message: %w", err)
	}
	_, err = r.pool.Exec(ctx, `
		INSERT INTO notifications (user_id, title, message, routing_key, sent_at, delivered, transport)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		n.UserID, n.Payload.Title, msg, n.Payload.RoutingKey, n.SentAt, n.Delivered, n.Transport)
	if err != nil {
		return fmt.Errorf("insert notification: %w", err)
	}
	return nil
}
