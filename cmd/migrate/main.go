package main

import (
	"os"
	"servicehub/config"
	"servicehub/helper"
	"servicehub/shared/logger"

	"github.com/rs/zerolog/log"
)

func main() {
	if len(os.Args) < 2 {
		log.Fatal().Msg("usage: migrate up|down|step-up|drop")
	}

	cfg := config.Get()
	logger.Setup(cfg)

	if err := helper.Runner(cfg, os.Args[1]); err != nil {
		log.Fatal().Err(err).Msg("migration failed")
	}
}
