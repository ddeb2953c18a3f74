package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Booking=MockBookingService

import (
	"context"
	"fmt"
	"servicehub/config"
	"servicehub/infras/otel"
	"servicehub/infras/postgres"
	"servicehub/internal/domains/booking/model"
	"servicehub/internal/domains/booking/model/dto"
	"servicehub/internal/domains/booking/repository"
	providerService "servicehub/internal/domains/provider/service"
	"servicehub/shared"
	"servicehub/shared/constant"
	gDto "servicehub/shared/dto"
	"servicehub/shared/event"
	"servicehub/shared/failure"
	"servicehub/shared/otp"
	"servicehub/shared/validator"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var sortableColumns = []string{
	constant.FieldCreatedAt,
	model.FieldPreferredAt,
	model.FieldScheduledAt,
	model.FieldStatus,
}

type Booking interface {
	Create(ctx context.Context, customerID string, req dto.CreateBookingRequest) (dto.BookingResponse, error)
	Accept(ctx context.Context, bookingID, providerID string, req dto.AcceptBookingRequest) (dto.BookingResponse, error)
	Reject(ctx context.Context, bookingID, providerID string, req dto.RejectBookingRequest) (dto.BookingResponse, error)
	Start(ctx context.Context, bookingID, providerID string) (dto.BookingResponse, error)
	Cancel(ctx context.Context, bookingID, customerID string) (dto.BookingResponse, error)
	Get(ctx context.Context, bookingID, callerID string) (dto.BookingResponse, error)
	GetAll(ctx context.Context, callerID, role string, params gDto.QueryParams, status string) (dto.GetBookingsResponse, error)
}

type serviceImpl struct {
	repo            repository.Booking
	providerService providerService.Provider
	transactor      postgres.Transactor
	publisher       event.Publisher
	cfg             *config.Config
	otel            otel.Otel
}

func New(
	repo repository.Booking,
	providerService providerService.Provider,
	transactor postgres.Transactor,
	publisher event.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Booking {
	return &serviceImpl{
		repo:            repo,
		providerService: providerService,
		transactor:      transactor,
		publisher:       publisher,
		cfg:             cfg,
		otel:            otel,
	}
}

// transition describes one actor driven move of the booking state machine.
type transition struct {
	actorID string
	to      string
	event   event.Type
	// owner returns the user that is allowed to perform the move.
	owner func(booking model.Booking) string
	patch func(booking model.Booking) (dto.BookingPatch, error)
}

func (s *serviceImpl) Create(ctx context.Context, customerID string, req dto.CreateBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Create")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	active, err := s.providerService.IsActive(ctx, req.ProviderID)
	if err != nil {
		log.Error().Err(err).Msg("failed to check provider")

		return res, fmt.Errorf("failed to check provider: %w", err)
	}

	if !active {
		return res, failure.NotFound("provider not found") // nolint:wrapcheck
	}

	booking := req.ToModel(customerID)

	if err = s.repo.Insert(ctx, booking); err != nil {
		log.Error().Err(err).Msg("failed to create booking")

		return res, fmt.Errorf("failed to create booking: %w", err)
	}

	s.publisher.Publish(ctx, s.cfg.Kafka.Topics.Booking, event.New(event.BookingCreated, booking.ID, customerID).
		WithData(map[string]any{"provider_id": booking.ProviderID}))

	res.FromModel(booking, customerID)

	return res, nil
}

func (s *serviceImpl) Accept(ctx context.Context, bookingID, providerID string, req dto.AcceptBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Accept")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, bookingID, transition{
		actorID: providerID,
		to:      model.StatusAccepted,
		event:   event.BookingAccepted,
		owner:   providerOf,
		patch: func(booking model.Booking) (patch dto.BookingPatch, err error) {
			code, err := otp.Generate()
			if err != nil {
				return patch, fmt.Errorf("failed to generate verification code: %w", err)
			}

			scheduledAt := req.ScheduledAt
			if scheduledAt == nil {
				scheduledAt = &booking.PreferredAt
			}

			amount := decimal.NewNullDecimal(req.TotalAmount)

			return dto.BookingPatch{
				ScheduledAt:      scheduledAt,
				EstimatedAmount:  amount,
				FinalAmount:      amount,
				VerificationCode: &code,
			}, nil
		},
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking, providerID)

	return res, nil
}

func (s *serviceImpl) Reject(ctx context.Context, bookingID, providerID string, req dto.RejectBookingRequest) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Reject")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, bookingID, transition{
		actorID: providerID,
		to:      model.StatusRejected,
		event:   event.BookingRejected,
		owner:   providerOf,
		patch: func(_ model.Booking) (dto.BookingPatch, error) {
			return dto.BookingPatch{RejectionReason: &req.Reason}, nil
		},
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking, providerID)

	return res, nil
}

func (s *serviceImpl) Start(ctx context.Context, bookingID, providerID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Start")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, bookingID, transition{
		actorID: providerID,
		to:      model.StatusInProgress,
		event:   event.BookingStarted,
		owner:   providerOf,
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking, providerID)

	return res, nil
}

func (s *serviceImpl) Cancel(ctx context.Context, bookingID, customerID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Cancel")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.transition(ctx, bookingID, transition{
		actorID: customerID,
		to:      model.StatusCancelled,
		event:   event.BookingCancelled,
		owner:   customerOf,
	})
	if err != nil {
		return res, err
	}

	res.FromModel(booking, customerID)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, bookingID, callerID string) (res dto.BookingResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.Get")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	booking, err := s.repo.Get(ctx, shared.FilterByID(bookingID, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if booking.ID == constant.Empty {
		return res, failure.NotFound("booking not found") // nolint:wrapcheck
	}

	if !booking.IsParty(callerID) {
		return res, failure.Forbidden("booking belongs to another user") // nolint:wrapcheck
	}

	res.FromModel(booking, callerID)

	return res, nil
}

// GetAll lists the caller's bookings. Customers see what they created and providers see what is
// assigned to them. Admins see every booking.
func (s *serviceImpl) GetAll(ctx context.Context, callerID, role string, params gDto.QueryParams, status string) (res dto.GetBookingsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.GetAll")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	err = validator.ValidateVar(status, "omitempty,oneof=pending accepted rejected in_progress completed cancelled")
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	filter := gDto.FilterGroup{Operator: gDto.FilterGroupOperatorAnd}

	switch role {
	case constant.RoleCustomer:
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldCustomerID, Operator: gDto.FilterOperatorEq, Value: callerID, Table: model.TableName})
	case constant.RoleProvider:
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldProviderID, Operator: gDto.FilterOperatorEq, Value: callerID, Table: model.TableName})
	case constant.RoleAdmin:
	default:
		return res, failure.ResourceRestrictedError
	}

	if status != constant.Empty {
		filter.Filters = append(filter.Filters, gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: status, Table: model.TableName})
	}

	params.RestrictSort(sortableColumns...)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count bookings")

		return res, fmt.Errorf("failed to count bookings: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get bookings")

		return res, fmt.Errorf("failed to get bookings: %w", err)
	}

	res.FromModels(models, callerID, total, params.Limit)

	return res, nil
}

// transition locks the booking row, checks ownership and the state table, writes the patch and
// publishes the lifecycle event once the transaction has committed.
func (s *serviceImpl) transition(ctx context.Context, bookingID string, t transition) (booking model.Booking, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".booking.transition")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := shared.FilterByID(bookingID, model.FieldID, model.TableName)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err = s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to lock booking")

			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if t.owner(booking) != t.actorID {
			return failure.Forbidden("booking belongs to another user") // nolint:wrapcheck
		}

		if !booking.CanTransition(t.to) {
			return failure.Conflict(fmt.Sprintf("booking cannot move from %s to %s", booking.Status, t.to)) // nolint:wrapcheck
		}

		var patch dto.BookingPatch

		if t.patch != nil {
			patch, err = t.patch(booking)
			if err != nil {
				return err
			}
		}

		patch.Status = t.to

		if err = s.repo.UpdateTx(ctx, tx, shared.TransformFields(patch, t.actorID), filter); err != nil {
			log.Error().Err(err).Str("booking_id", bookingID).Str("status", t.to).Msg("failed to update booking")

			return fmt.Errorf("failed to update booking: %w", err)
		}

		patch.Apply(&booking)

		return nil
	})
	if err != nil {
		return booking, err //nolint:wrapcheck
	}

	s.publisher.Publish(ctx, s.cfg.Kafka.Topics.Booking, event.New(t.event, booking.ID, t.actorID))

	return booking, nil
}

func providerOf(booking model.Booking) string {
	return booking.ProviderID
}

func customerOf(booking model.Booking) string {
	return booking.CustomerID
}
