package notify

import (
	"context"
	"strconv"

	"food-delivery/internal/common/httpx"
	"food-delivery/internal/common/logger"
	"food-delivery/internal/config"
	"food-delivery/internal/connections/database"
	"food-delivery/internal/connections/rabbitmq"
	"food-delivery/internal/repository"
)

// Run wires the notification service: the multi-key subscriber, the
// in-memory store with its optional Postgres mirror, and the HTTP query
// surface. Blocks until ctx is canceled.
func Run(ctx context.Context, cfg config.Config) error {
	lg := logger.New(serviceName)

	var sink Sink
	if cfg.PostgresURL != "" {
		conn, err := database.Connect(ctx, cfg.PostgresURL)
		if err != nil {
			// mirror is optional: degrade to memory-only, never fatal
			lg.Error("postgres_unavailable", err, map[string]any{"mode": "memory_only"})
		} else {
			defer conn.Close()
			repo := repository.NewNotificationsPG(conn.Pool)
			if err := repo.EnsureSchema(ctx); err != nil {
				lg.Error("postgres_schema_failed", err, map[string]any{"mode": "memory_only"})
			} else {
				sink = repo
				lg.Info("postgres_mirror_enabled", nil)
			}
		}
	}

	store := NewStore(sink, lg)
	bus := rabbitmq.New(rabbitmq.Config{URL: cfg.RabbitURL, Exchange: cfg.Exchange}, lg)
	defer bus.Close()

	handler := NewEventHandler(store, lg)
	go bus.Subscribe(ctx, SubscribedKeys, handler.Handle)

	srv := httpx.New(":"+strconv.Itoa(cfg.Port), Router(store))
	lg.Info("service_started", map[string]any{"port": cfg.Port, "exchange": cfg.Exchange})
	return srv.Run(ctx)
}
