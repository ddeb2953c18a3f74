package main

import (
	"servicehub/config"
	"servicehub/di"
	"servicehub/helper"
	"servicehub/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title ServiceHub API
// @version 1.0
// @description Booking, escrow payment and completion verification for a home services marketplace.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.Setup(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
