package handler

import (
	"net/http"
	"servicehub/config"
	"servicehub/di"
	"servicehub/shared/logger"
	"sync"

	transport "servicehub/transport/http"
)

var (
	server *transport.HTTP
	once   sync.Once
)

func Handler(w http.ResponseWriter, r *http.Request) {
	r.RequestURI = r.URL.String()

	once.Do(func() {
		cfg := config.Get()

		logger.Setup(cfg)

		server = di.InitializeService()
	})

	server.ServeHTTP(w, r)
}
