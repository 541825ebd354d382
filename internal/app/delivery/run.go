package delivery

import (
	"context"
	"strconv"

	"food-delivery/internal/common/httpx"
	"food-delivery/internal/common/logger"
	"food-delivery/internal/config"
	"food-delivery/internal/connections/rabbitmq"
	"food-delivery/internal/domain"
)

// Run wires the delivery service: order.placed subscriber, per-order
// simulators and the HTTP query surface. Blocks until ctx is canceled.
func Run(ctx context.Context, cfg config.Config) error {
	lg := logger.New(serviceName)

	store := NewStore()
	bus := rabbitmq.New(rabbitmq.Config{URL: cfg.RabbitURL, Exchange: cfg.Exchange}, lg)
	defer bus.Close()

	sim := NewSimulator(store, bus, lg)
	handler := NewOrderHandler(store, sim, lg)

	go bus.Subscribe(ctx, []string{domain.KeyOrderPlaced}, handler.Handle)

	srv := httpx.New(":"+strconv.Itoa(cfg.Port), Router(store))
	lg.Info("service_started", map[string]any{"port": cfg.Port, "exchange": cfg.Exchange})
	return srv.Run(ctx)
}
