package middleware

import (
	"fmt"
	"net/http"
	"servicehub/config"
	"servicehub/infras/otel"
	"servicehub/shared/cache"
	"servicehub/shared/constant"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	ua "github.com/mssola/user_agent"
)

const (
	otelHTTPScopeName = "http"
)

type AppMiddleware interface {
	Tracing(next http.Handler) http.Handler
	RateLimit() func(http.Handler) http.Handler
}

type appMiddleware struct {
	otel   otel.Otel
	config *config.Config
	cache  cache.RedisCache
}

func NewAppMiddleware(otel otel.Otel, config *config.Config, cache cache.RedisCache) AppMiddleware {
	return &appMiddleware{
		otel:   otel,
		config: config,
		cache:  cache,
	}
}

func (a *appMiddleware) Tracing(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, scope := a.otel.NewScope(r.Context(), otelHTTPScopeName, fmt.Sprintf("%s %s", r.Method, r.URL.Path))
		defer scope.End()

		agent := ua.New(r.UserAgent())
		browser, _ := agent.Browser()

		scope.SetAttributes(map[string]any{
			"app.name":        a.config.App.Name,
			"http.path":       r.URL.Path,
			"http.method":     r.Method,
			"http.user_agent": r.UserAgent(),
			"http.browser":    browser,
			"http.os":         agent.OS(),
			"http.mobile":     agent.Mobile(),
			"http.bot":        agent.Bot(),
			"http.host":       r.Host,
			"http.source":     clientIP(r),
			"http.request_id": middleware.GetReqID(r.Context()),
		})

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)

		next.ServeHTTP(ww, r.WithContext(ctx))

		attributes := map[string]any{
			"http.status_code": ww.Status(),
		}

		if rctx := chi.RouteContext(r.Context()); rctx != nil {
			attributes["http.route"] = rctx.RoutePattern()
		}

		scope.SetAttributes(attributes)

		if ww.Status() >= http.StatusInternalServerError {
			scope.TraceError(fmt.Errorf("%s %s responded %d", r.Method, r.URL.Path, ww.Status()))
		}
	})
}

// clientAgent reduces the user agent to a browser and platform pair.
func clientAgent(r *http.Request) string {
	if r.UserAgent() == constant.Empty {
		return "unknown"
	}

	agent := ua.New(r.UserAgent())
	if agent.Bot() {
		return "bot"
	}

	browser, _ := agent.Browser()

	return browser + "/" + agent.OS()
}
