package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/craftlane/storefront-service/internal/app/setup"
	"github.com/craftlane/storefront-service/internal/config"
	"github.com/craftlane/storefront-service/internal/delivery/httpapi"
	"github.com/craftlane/storefront-service/internal/infrastructure/migrate"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}

	deps, err := setup.InitializeDependencies()
	if err != nil {
		log.Fatalf("failed to init dependencies: %v", err)
	}
	defer deps.OrderPublisher.Close()

	setupLogger(deps.Config)

	if deps.Config.StorefrontDB.MigrationsPath != "" {
		if err := migrate.RunMigrations(deps.DB, deps.Config.StorefrontDB.MigrationsPath); err != nil {
			log.Fatalf("failed to run migrations: %v", err)
		}
	}

	usecases, err := setup.InitializeUseCases(deps)
	if err != nil {
		log.Fatalf("failed to init usecases: %v", err)
	}

	// Периодическая деактивация промо с истёкшим окном
	go func() {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		for {
			<-ticker.C
			swept, err := usecases.PromotionUsecase.DeactivateExpired(context.Background(), time.Now().UTC())
			if err != nil {
				slog.Error("expired promotion sweep failed", "error", err.Error())
				continue
			}
			if swept > 0 {
				slog.Info("expired promotions deactivated", "count", swept)
			}
		}
	}()

	router := httpapi.NewRouter(
		usecases.PricingUsecase,
		usecases.PromotionUsecase,
		usecases.CartUsecase,
		usecases.CheckoutUsecase,
	)

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	idleConnsClosed := make(chan struct{})
	go func() {
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c

		ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			log.Printf("HTTP server Shutdown: %v", err)
		}
		close(idleConnsClosed)
	}()

	log.Printf("storefront-service started on %s:%s\n", deps.Config.HTTPServer.Host, deps.Config.HTTPServer.Port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatalf("failed to serve: %v\n", err)
	}

	<-idleConnsClosed
	log.Println("server stopped")
}

func setupLogger(cfg *config.StorefrontConfig) {
	var level slog.Level
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	out := os.Stdout
	if cfg.LogConfig.LogOutput == "stderr" {
		out = os.Stderr
	}

	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "json" {
		handler = slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level})
	} else {
		handler = slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	}
	slog.SetDefault(slog.New(handler))
}
