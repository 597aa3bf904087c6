package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog/log"
	"go.uber.org/zap"

	"github.com/GlebRadaev/repasse/internal/app"
)

// Set with -ldflags "-X main.buildVersion=... -X main.buildCommit=...".
var (
	buildVersion = "dev"
	buildCommit  = "none"
)

//	@title			Repasse API
//	@version		1.0
//	@description	Settlement and installment lifecycle engine: payout modalities, fee freezing, scheduled releases and installment plans.

// @host		localhost:8080
// @BasePath	/
func main() {
	if err := run(); err != nil {
		os.Exit(1)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	application := app.New()
	if err := application.Start(ctx); err != nil {
		// zap may not be initialised yet when config or logger setup fails.
		log.Error().Err(err).Str("version", buildVersion).Msg("Can't start repasse")
		return err
	}
	zap.L().Info("repasse started", zap.String("version", buildVersion), zap.String("commit", buildCommit))

	if err := application.Wait(ctx, cancel); err != nil {
		zap.L().Error("repasse stopped with errors", zap.Error(err))
		return err
	}

	zap.L().Info("repasse stopped")
	return nil
}
