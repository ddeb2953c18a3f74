package health

import (
	"context"
	"net/http"
	"servicehub/infras/postgres"
	"servicehub/transport/http/response"
	"time"

	"github.com/go-chi/chi/v5"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const readinessTimeout = 2 * time.Second

type Status struct {
	Status   string `json:"status"`
	Postgres string `json:"postgres,omitempty"`
	Redis    string `json:"redis,omitempty"`
}

type Handler struct {
	db    *postgres.Connection
	redis *goRedis.Client
}

func New(db *postgres.Connection, redis *goRedis.Client) Handler {
	return Handler{
		db:    db,
		redis: redis,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/health", handler.Live)
	router.Get("/health/ready", handler.Ready)
}

// Live reports that the process is serving requests.
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status]
// @Router /v1/health [get]
func (handler *Handler) Live(w http.ResponseWriter, _ *http.Request) {
	response.WithJSON(w, http.StatusOK, Status{Status: "ok"})
}

// Ready checks the primary database and Redis.
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} response.Data[Status]
// @Failure 503 {object} response.Data[Status]
// @Router /v1/health/ready [get]
func (handler *Handler) Ready(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), readinessTimeout)
	defer cancel()

	status := Status{Status: "ok", Postgres: "ok", Redis: "ok"}
	code := http.StatusOK

	if err := handler.db.Write.PingContext(ctx); err != nil {
		log.Error().Err(err).Msg("postgres is not reachable")

		status.Postgres = "unavailable"
		code = http.StatusServiceUnavailable
	}

	if err := handler.redis.Ping(ctx).Err(); err != nil {
		log.Error().Err(err).Msg("redis is not reachable")

		status.Redis = "unavailable"
		code = http.StatusServiceUnavailable
	}

	if code != http.StatusOK {
		status.Status = "degraded"
	}

	response.WithJSON(w, code, status)
}
