package postgres

//nolint:revive
import (
	"fmt"
	"net"
	"net/url"
	"servicehub/config"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	driverName = "postgres"

	maxIdleConnections = 10
	maxOpenConnections = 10
	connMaxLifetime    = 30 * time.Minute
)

type Connection struct {
	Read  *sqlx.DB
	Write *sqlx.DB
}

// Endpoint is one side of the read/write pair.
type Endpoint config.Endpoint

func New(cfg *config.Config) *Connection {
	return &Connection{
		Read:  mustConnect("read", ReadEndpoint(cfg), cfg),
		Write: mustConnect("write", WriteEndpoint(cfg), cfg),
	}
}

func prefixed(cfg *config.Config, endpoint config.Endpoint) Endpoint {
	endpoint.Name = cfg.DB.Postgres.Prefix + endpoint.Name

	return Endpoint(endpoint)
}

func ReadEndpoint(cfg *config.Config) Endpoint {
	return prefixed(cfg, cfg.DB.Postgres.Read)
}

func WriteEndpoint(cfg *config.Config) Endpoint {
	return prefixed(cfg, cfg.DB.Postgres.Write)
}

// DSN renders the endpoint as a postgres URL. Credentials are escaped.
func (e Endpoint) DSN() string {
	query := url.Values{}

	if e.SSLMode != "" {
		query.Set("sslmode", e.SSLMode)
	}

	if e.Timezone != "" {
		query.Set("timezone", e.Timezone)
	}

	dsn := url.URL{
		Scheme:   driverName,
		User:     url.UserPassword(e.Username, e.Password),
		Host:     net.JoinHostPort(e.Host, e.Port),
		Path:     "/" + e.Name,
		RawQuery: query.Encode(),
	}

	return dsn.String()
}

func mustConnect(role string, endpoint Endpoint, cfg *config.Config) *sqlx.DB {
	db, err := connect(role, endpoint, cfg.DB.Postgres.MaxRetry, time.Duration(cfg.DB.Postgres.RetryWaitTime)*time.Second)
	if err != nil {
		log.Fatal().Err(err).Str("role", role).Str("host", endpoint.Host).Msg("Database unreachable")
	}

	return db
}

func connect(role string, endpoint Endpoint, attempts int, wait time.Duration) (*sqlx.DB, error) {
	var lastErr error

	for attempt := 1; attempt <= max(attempts, 1); attempt++ {
		db, err := sqlx.Connect(driverName, endpoint.DSN())
		if err == nil {
			db.SetMaxIdleConns(maxIdleConnections)
			db.SetMaxOpenConns(maxOpenConnections)
			db.SetConnMaxLifetime(connMaxLifetime)

			log.Info().Str("role", role).Str("host", endpoint.Host).Str("db", endpoint.Name).Msg("Connected to database")

			return db, nil
		}

		lastErr = err

		log.Warn().Err(err).Str("role", role).Int("attempt", attempt).Msg("Database connection failed, retrying")
		time.Sleep(wait)
	}

	return nil, fmt.Errorf("connect %s database after %d attempts: %w", role, max(attempts, 1), lastErr)
}
