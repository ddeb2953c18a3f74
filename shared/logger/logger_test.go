package logger_test

import (
	"bytes"
	"encoding/json"
	"errors"
	"servicehub/config"
	"servicehub/shared/logger"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		value string
		want  zerolog.Level
	}{
		{value: "debug", want: zerolog.DebugLevel},
		{value: "info", want: zerolog.InfoLevel},
		{value: "warn", want: zerolog.WarnLevel},
		{value: "error", want: zerolog.ErrorLevel},
		{value: "", want: zerolog.TraceLevel},
		{value: "loud", want: zerolog.TraceLevel},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, logger.ParseLevel(tt.value))
		})
	}
}

func TestNew_TagsService(t *testing.T) {
	var buf bytes.Buffer

	l := logger.New(&buf, "servicehub")
	l.Info().Str("booking_id", "b-1").Msg("booking accepted")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))

	assert.Equal(t, "servicehub", line["service"])
	assert.Equal(t, "b-1", line["booking_id"])
	assert.Equal(t, "booking accepted", line["message"])
	assert.Contains(t, line, "time")
}

func TestNew_WithoutService(t *testing.T) {
	var buf bytes.Buffer

	l := logger.New(&buf, "")
	l.Info().Msg("hello")

	assert.NotContains(t, buf.String(), `"service"`)
}

func TestSetup_AppliesLevel(t *testing.T) {
	original := log.Logger
	originalLevel := zerolog.GlobalLevel()

	t.Cleanup(func() {
		log.Logger = original
		zerolog.SetGlobalLevel(originalLevel)
	})

	cfg := &config.Config{}
	cfg.Server.Env = "production"
	cfg.Server.LogLevel = "warn"

	logger.Setup(cfg)

	assert.Equal(t, zerolog.WarnLevel, zerolog.GlobalLevel())
}

func TestErrorWithStack(t *testing.T) {
	original := log.Logger
	t.Cleanup(func() { log.Logger = original })

	var buf bytes.Buffer
	log.Logger = zerolog.New(&buf)

	logger.ErrorWithStack(errors.New("insert payment failed"))

	assert.Contains(t, buf.String(), "insert payment failed")
	assert.Contains(t, buf.String(), `"level":"error"`)
}
