package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"food-delivery/internal/app/delivery"
	"food-delivery/internal/app/notify"
	"food-delivery/internal/common/logger"
	"food-delivery/internal/config"
)

func main() {
	mode := flag.String("mode", "", "delivery-service | notification-service")
	flag.Parse()

	lg := logger.New("bootstrap")
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	switch *mode {
	case "delivery-service":
		cfg := config.Load(8000)
		lg.Info("service_starting", map[string]any{"service": *mode, "port": cfg.Port})
		if err := delivery.Run(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	case "notification-service":
		cfg := config.Load(8100)
		lg.Info("service_starting", map[string]any{"service": *mode, "port": cfg.Port})
		if err := notify.Run(ctx, cfg); err != nil {
			lg.Error("fatal", err, nil)
			os.Exit(1)
		}
	default:
		fmt.Fprintln(os.Stderr, "--mode is required: delivery-service | notification-service")
		os.Exit(2)
	}
}
