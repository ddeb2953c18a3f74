package helper

//nolint:revive
import (
	"errors"
	"fmt"
	"net/url"
	"servicehub/config"
	"servicehub/infras/postgres"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/rs/zerolog/log"
)

const migrationSource = "file://migrations/postgres"

type action func(mig *migrate.Migrate) error

var actions = map[string]action{
	"up":      func(mig *migrate.Migrate) error { return mig.Up() },
	"down":    func(mig *migrate.Migrate) error { return mig.Steps(-1) },
	"step-up": func(mig *migrate.Migrate) error { return mig.Steps(1) },
	"drop":    func(mig *migrate.Migrate) error { return mig.Down() },
}

// MigrationURL points golang-migrate at the write database and the configured history table.
func MigrationURL(cfg *config.Config) string {
	dsn, _ := url.Parse(postgres.WriteEndpoint(cfg).DSN())

	if cfg.DB.Postgres.MigrationTable != "" {
		query := dsn.Query()
		query.Set("x-migrations-table", cfg.DB.Postgres.MigrationTable)
		dsn.RawQuery = query.Encode()
	}

	return dsn.String()
}

func Runner(cfg *config.Config, name string) error {
	run, ok := actions[name]
	if !ok {
		return fmt.Errorf("unknown migration action %q", name)
	}

	mig, err := migrate.New(migrationSource, MigrationURL(cfg))
	if err != nil {
		return fmt.Errorf("error creating migrate instance: %w", err)
	}

	defer mig.Close()

	if err := run(mig); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migration %s failed: %w", name, err)
	}

	version, dirty, err := mig.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("failed to read migration version: %w", err)
	}

	log.Info().Str("action", name).Uint("version", version).Bool("dirty", dirty).Msg("Database migration finished")

	return nil
}

func Up(cfg *config.Config) error {
	return Runner(cfg, "up")
}

func StepUp(cfg *config.Config) error {
	return Runner(cfg, "step-up")
}

func Down(cfg *config.Config) error {
	return Runner(cfg, "down")
}

func Drop(cfg *config.Config) error {
	return Runner(cfg, "drop")
}
