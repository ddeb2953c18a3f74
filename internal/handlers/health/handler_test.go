package health_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"servicehub/infras/postgres"
	"servicehub/internal/handlers/health"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"
	goRedis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type body struct {
	Data health.Status `json:"data"`
}

func newRouter(t *testing.T, pingErr error) *chi.Mux {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	ping := mock.ExpectPing()
	if pingErr != nil {
		ping.WillReturnError(pingErr)
	}

	redis := goRedis.NewClient(&goRedis.Options{Addr: "127.0.0.1:1", MaxRetries: -1})
	t.Cleanup(func() { _ = redis.Close() })

	handler := health.New(&postgres.Connection{Write: sqlx.NewDb(db, "sqlmock")}, redis)

	router := chi.NewRouter()
	handler.Router(router)

	return router
}

func TestHandler_Live(t *testing.T) {
	router := chi.NewRouter()
	handler := health.New(nil, nil)
	handler.Router(router)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var res body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "ok", res.Data.Status)
}

func TestHandler_Ready(t *testing.T) {
	router := newRouter(t, nil)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/health/ready", nil))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)

	var res body
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	assert.Equal(t, "degraded", res.Data.Status)
	assert.Equal(t, "ok", res.Data.Postgres)
	assert.Equal(t, "unavailable", res.Data.Redis)
}
