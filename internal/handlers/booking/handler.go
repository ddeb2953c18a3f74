package booking

import (
	"net/http"
	"servicehub/infras/otel"
	"servicehub/internal/domains/booking/model/dto"
	"servicehub/internal/domains/booking/service"
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
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

// Router registers the booking routes on a router already mounted at /bookings.
func (handler *Handler) Router(router chi.Router) {
	router.Post("/", handler.CreateBooking)
	router.Get("/", handler.GetBookings)
	router.Get("/{id}", handler.GetBookingByID)
	router.Patch("/{id}/accept", handler.AcceptBooking)
	router.Patch("/{id}/reject", handler.RejectBooking)
	router.Patch("/{id}/start", handler.StartBooking)
	router.Patch("/{id}/cancel", handler.CancelBooking)
}

// CreateBooking handles the creation of a new booking.
// @Summary Create a new booking
// @Description Create a pending booking request addressed to a provider.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Booking created"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	customerID, _, ok := shared.Caller(ctx)
	if !ok {
		response.WithError(writer, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, customerID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + customerID)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetBookings lists the caller's bookings.
// @Summary List my bookings
// @Description Customers see bookings they made, providers see bookings addressed to them.
// @Tags Booking
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	userID, role, ok := shared.Caller(ctx)
	if !ok {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.GetAll(ctx, userID, role, queryParams, r.URL.Query().Get(constant.RequestParamStatus))
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetBookingByID retrieves a booking by its ID.
// @Summary Get a booking by ID
// @Description Only the customer and the provider of the booking can read it.
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking details"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetBookingByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookingByID")
	defer scope.End()

	userID, _, _ := shared.Caller(ctx)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Get(ctx, id, userID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get booking by ID")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// AcceptBooking confirms a pending booking and fixes its price.
// @Summary Accept a booking
// @Description The assigned provider accepts a pending booking with the agreed total amount.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.AcceptBookingRequest true "Accept Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking accepted"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/accept [patch]
// @Security BearerAuth
func (handler *Handler) AcceptBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AcceptBooking")
	defer scope.End()

	providerID, _, _ := shared.Caller(ctx)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.AcceptBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Accept(ctx, id, providerID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to accept booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking accepted by provider " + providerID)

	response.WithJSON(w, http.StatusOK, booking)
}

// RejectBooking declines a pending booking.
// @Summary Reject a booking
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RejectBookingRequest true "Reject Booking Request"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking rejected"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/reject [patch]
// @Security BearerAuth
func (handler *Handler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectBooking")
	defer scope.End()

	providerID, _, _ := shared.Caller(ctx)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	req := dto.RejectBookingRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Reject(ctx, id, providerID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to reject booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// StartBooking marks an accepted booking as in progress.
// @Summary Start work on a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking in progress"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/start [patch]
// @Security BearerAuth
func (handler *Handler) StartBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".StartBooking")
	defer scope.End()

	providerID, _, _ := shared.Caller(ctx)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Start(ctx, id, providerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to start booking")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, booking)
}

// CancelBooking withdraws a booking before work starts.
// @Summary Cancel a booking
// @Tags Booking
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Data[dto.BookingResponse] "Booking cancelled"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Router /v1/bookings/{id}/cancel [patch]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	customerID, _, _ := shared.Caller(ctx)
	id := chi.URLParam(r, constant.RequestParamID)

	if err := validator.ValidateID(id); err != nil {
		scope.TraceError(err)

		response.WithError(w, err)

		return
	}

	booking, err := handler.service.Cancel(ctx, id, customerID)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Str("booking_id", id).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled by user " + customerID)

	response.WithJSON(w, http.StatusOK, booking)
}
