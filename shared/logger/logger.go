package logger

import (
	"io"
	"os"
	"servicehub/config"
	"servicehub/shared/constant"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Setup installs the global logger. Production emits JSON lines, every other environment a console writer.
func Setup(cfg *config.Config) {
	zerolog.TimeFieldFormat = time.RFC3339Nano
	zerolog.SetGlobalLevel(ParseLevel(cfg.Server.LogLevel))

	log.Logger = New(output(cfg.Server.Env), cfg.App.Name)

	log.Debug().Str("level", zerolog.GlobalLevel().String()).Str("env", cfg.Server.Env).Msg("logger ready")
}

func New(out io.Writer, service string) zerolog.Logger {
	logCtx := zerolog.New(out).With().Timestamp()
	if service != constant.Empty {
		logCtx = logCtx.Str("service", service)
	}

	return logCtx.Logger()
}

// ParseLevel falls back to trace for empty or unknown values.
func ParseLevel(value string) zerolog.Level {
	level, err := zerolog.ParseLevel(value)
	if err != nil || value == constant.Empty {
		return zerolog.TraceLevel
	}

	return level
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

func output(env string) io.Writer {
	if env == constant.ServerEnvProduction {
		return os.Stdout
	}

	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}
