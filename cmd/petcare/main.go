// Package main PetCare Mini App API
//
// @title           PetCare Mini App API
// @version         1.0
// @description     Backend Telegram Mini App для владельцев питомцев: профиль, питомцы, услуги, тарифы и оплата через YooKassa

// @host      localhost:3000
// @BasePath  /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/magabrotheeeer/petcare-miniapp/internal/app/petcare"
	"github.com/magabrotheeeer/petcare-miniapp/internal/config"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/logger"
	"github.com/magabrotheeeer/petcare-miniapp/internal/lib/sl"
)

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	log.Info("starting petcare", slog.String("env", cfg.Env))
	log.Debug("config loaded", slog.String("config", cfg.String()))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app, err := petcare.New(ctx, cfg, log)
	if err != nil {
		log.Error("failed to initialize app", sl.Err(err))
		os.Exit(1)
	}

	if err := app.Run(ctx); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("app stopped with error", sl.Err(err))
		os.Exit(1)
	}

	log.Info("petcare stopped gracefully")
}
