package config_test

import (
	"os"
	"path/filepath"
	"servicehub/config"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_EnvFileAndDefaults(t *testing.T) {
	file := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(file, []byte("APP_APP_NAME=servicehub\nKAFKA_BROKERS=a:9092,b:9092\n"), 0o600))

	t.Setenv("DB_POSTGRES_WRITE_HOST", "primary")

	cfg, err := config.Load(file)
	require.NoError(t, err)

	assert.Equal(t, "servicehub", cfg.App.Name)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.Kafka.Brokers)
	assert.Equal(t, "primary", cfg.DB.Postgres.Write.Host)
	assert.Equal(t, "5432", cfg.DB.Postgres.Write.Port)
	assert.Equal(t, 5, cfg.Payment.CompletionOTP.MaxAttempts)
	assert.Equal(t, "booking.events", cfg.Kafka.Topics.Booking)
}

func TestLoad_MissingFileUsesEnvironment(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("PAYMENT_COMPLETION_OTP_MAX_ATTEMPTS", "many")

	_, err := config.Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.Error(t, err)
}
