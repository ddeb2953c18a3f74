package payment

import (
	"net/http"
	"servicehub/infras/otel"
	"servicehub/internal/domains/payment/model/dto"
	"servicehub/internal/domains/payment/service"
	"servicehub/shared"
	"servicehub/shared/constant"
	gDto "servicehub/shared/dto"
	"servicehub/shared/failure"
	"servicehub/shared/validator"
	"servicehub/transport/http/response"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Payment
	otel    otel.Otel
}

func New(service service.Payment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/payments", func(r chi.Router) {
		r.Post("/initiate", handler.Initiate)
		r.Post("/verify", handler.Verify)
		r.Get("/verify", handler.VerifyRedirect)
		r.Get("/status/{pidx}", handler.GetStatus)
		r.Get("/history", handler.History)
	})
}

// BookingRouter registers the payment routes nested under /bookings.
func (handler *Handler) BookingRouter(router chi.Router) {
	router.Post("/{id}/refund-request", handler.RequestRefund)
}

// Initiate starts a gateway payment for an accepted booking.
// @Summary Initiate a payment
// @Description Opens a gateway payment for the booking final amount and returns the payment URL.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.InitiatePaymentRequest true "Initiate Payment Request"
// @Success 201 {object} response.Data[dto.InitiatePaymentResponse] "Payment initiated"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/initiate [post]
// @Security BearerAuth
func (handler *Handler) Initiate(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".InitiatePayment")
	defer scope.End()

	customerID, _, _ := shared.Caller(ctx)

	req := dto.InitiatePaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Initiate(ctx, customerID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to initiate payment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment initiated for booking " + req.BookingID)

	response.WithJSON(w, http.StatusCreated, res)
}

// Verify reconciles a payment with the gateway.
// @Summary Verify a payment
// @Description Looks the payment up at the gateway and records the outcome. Safe to repeat.
// @Tags Payment
// @Accept json
// @Produce json
// @Param request body dto.VerifyPaymentRequest true "Verify Payment Request"
// @Success 200 {object} response.Data[dto.VerifyPaymentResponse] "Payment state"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/verify [post]
// @Security BearerAuth
func (handler *Handler) Verify(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyPayment")
	defer scope.End()

	callerID, _, _ := shared.Caller(ctx)

	req := dto.VerifyPaymentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.Verify(ctx, callerID, req.Pidx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("pidx", req.Pidx).Msg("failed to verify payment")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// VerifyRedirect handles the gateway return URL.
// @Summary Verify a payment from the gateway redirect
// @Tags Payment
// @Produce json
// @Param pidx query string true "Gateway payment reference"
// @Param status query string false "Status reported by the gateway"
// @Param purchase_order_id query string false "Booking ID echoed by the gateway"
// @Success 200 {object} response.Data[dto.VerifyPaymentResponse] "Payment state"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 502 {object} response.Error
// @Router /v1/payments/verify [get]
// @Security BearerAuth
func (handler *Handler) VerifyRedirect(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".VerifyPaymentRedirect")
	defer scope.End()

	callerID, _, _ := shared.Caller(ctx)

	req := dto.VerifyRedirectRequest{}
	req.FromRequest(r)

	if err := validator.ValidateStruct(&req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.VerifyRedirect(ctx, callerID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("pidx", req.Pidx).Msg("failed to verify payment redirect")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// GetStatus returns the stored payment without contacting the gateway.
// @Summary Get payment status
// @Tags Payment
// @Produce json
// @Param pidx path string true "Gateway payment reference"
// @Success 200 {object} response.Data[dto.PaymentResponse] "Payment"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Router /v1/payments/status/{pidx} [get]
// @Security BearerAuth
func (handler *Handler) GetStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetPaymentStatus")
	defer scope.End()

	callerID, _, _ := shared.Caller(ctx)
	pidx := chi.URLParam(r, constant.RequestParamPidx)

	res, err := handler.service.GetStatus(ctx, callerID, pidx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("pidx", pidx).Msg("failed to get payment status")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// History lists the caller's payments.
// @Summary Payment history
// @Tags Payment
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetPaymentsResponse] "Payments"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/payments/history [get]
// @Security BearerAuth
func (handler *Handler) History(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".PaymentHistory")
	defer scope.End()

	callerID, role, ok := shared.Caller(ctx)
	if !ok {
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	res, err := handler.service.History(ctx, callerID, role, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get payment history")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, res)
}

// RequestRefund flags the payment of a cancelled or rejected booking for refund.
// @Summary Request a refund
// @Tags Payment
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RefundRequest true "Refund Request"
// @Success 200 {object} response.Data[dto.PaymentResponse] "Refund requested"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/refund-request [post]
// @Security BearerAuth
func (handler *Handler) RequestRefund(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestRefund")
	defer scope.End()

	customerID, _, _ := shared.Caller(ctx)
	bookingID := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(bookingID); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.RefundRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	res, err := handler.service.RequestRefund(ctx, bookingID, customerID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to request refund")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Refund requested for booking " + bookingID)

	response.WithJSON(w, http.StatusOK, res)
}
