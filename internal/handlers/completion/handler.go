package completion

import (
	"net/http"
	"servicehub/infras/otel"
	"servicehub/internal/domains/completion/model/dto"
	"servicehub/internal/domains/completion/service"
	"servicehub/shared"
	"servicehub/shared/constant"
	"servicehub/shared/validator"
	"servicehub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Completion
	otel    otel.Otel
}

func New(service service.Completion, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the completion code routes on a router already mounted at /bookings.
func (handler *Handler) Router(router chi.Router) {
	router.Get("/{id}/completion-otp", handler.GetCompletionOtp)
	router.Post("/{id}/completion-otp/verify", handler.VerifyCompletionOtp)
}

// GetCompletionOtp returns the completion code to the paying customer.
// @Summary Get the completion code
// @Description The code is shown until the provider has used it.
// @Tags Completion
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.CompletionOtpResponse] "Completion code"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/bookings/{id}/completion-otp [get]
// @Security BearerAuth
func (handler *Handler) GetCompletionOtp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompletionOtp")
	defer scope.End()

	customerID, _, _ := shared.Caller(ctx)
	bookingID := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(bookingID); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.GetCompletionOtp(ctx, bookingID, customerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get completion code")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// VerifyCompletionOtp finalizes the booking and releases the payment to the provider.
// @Summary Verify the completion code
// @Tags Completion
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.VerifyCompletionRequest true "Verify Completion Request"
// @Success 200 {object} response.Data[dto.VerifyCompletionResponse] "Funds released"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 429 {object} response.Error
// @Router /v1/bookings/{id}/completion-otp/verify [post]
// @Security BearerAuth
func (handler *Handler) VerifyCompletionOtp(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyCompletionOtp")
	defer scope.End()

	providerID, _, _ := shared.Caller(ctx)
	bookingID := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(bookingID); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.VerifyCompletionRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.VerifyCompletionOtp(ctx, bookingID, providerID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to verify completion code")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment released for booking " + bookingID)

	response.WithJSON(w, http.StatusOK, res)
}
