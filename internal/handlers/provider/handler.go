package provider

import (
	"net/http"
	"servicehub/infras/otel"
	"servicehub/internal/domains/provider/service"
	"servicehub/shared"
	"servicehub/shared/constant"
	"servicehub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Provider
	otel    otel.Otel
}

func New(service service.Provider, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Get("/providers/me/earnings", handler.GetEarnings)
}

// GetEarnings returns the caller's earnings ledger.
// @Summary Get my earnings
// @Tags Provider
// @Produce json
// @Success 200 {object} response.Data[dto.LedgerResponse] "Earnings ledger"
// @Failure 404 {object} response.Error
// @Router /v1/providers/me/earnings [get]
// @Security BearerAuth
func (handler *Handler) GetEarnings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetEarnings")
	defer scope.End()

	providerID, _, _ := shared.Caller(ctx)

	ledger, err := handler.service.GetLedger(ctx, providerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("provider_id", providerID).Msg("failed to get earnings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, ledger)
}
