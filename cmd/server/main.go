package main

import (
	"log/slog"
	"os"

	"github.com/nexuscopier/payments-api/api/bootstrap"
	"github.com/nexuscopier/payments-api/api/config"
	"github.com/nexuscopier/payments-api/api/metrics"
	"github.com/nexuscopier/payments-api/api/router"
)

const envDev = "dev"

func main() {
	if err := bootstrap.Ensure(); err != nil {
		slog.Error("bootstrap failed", slog.Any("error", err))
		os.Exit(1)
	}
	cfg := config.AppConfig

	slog.SetDefault(setupLogger(cfg.AppEnv))
	metrics.Register()

	app := router.NewApp(cfg, bootstrap.GetCheckoutService())
	slog.Info("starting server", slog.String("port", cfg.HTTPPort), slog.String("env", cfg.AppEnv))
	if err := app.Listen(":" + cfg.HTTPPort); err != nil {
		slog.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func setupLogger(env string) *slog.Logger {
	if env == envDev {
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
}
