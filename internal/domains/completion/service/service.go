package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Completion=MockCompletionService

import (
	"context"
	"fmt"
	"servicehub/config"
	"servicehub/infras/otel"
	"servicehub/infras/postgres"
	bookingModel "servicehub/internal/domains/booking/model"
	bookingDto "servicehub/internal/domains/booking/model/dto"
	bookingRepo "servicehub/internal/domains/booking/repository"
	"servicehub/internal/domains/completion/model/dto"
	paymentModel "servicehub/internal/domains/payment/model"
	paymentDto "servicehub/internal/domains/payment/model/dto"
	paymentRepo "servicehub/internal/domains/payment/repository"
	providerRepo "servicehub/internal/domains/provider/repository"
	"servicehub/shared"
	"servicehub/shared/cache"
	"servicehub/shared/constant"
	gDto "servicehub/shared/dto"
	"servicehub/shared/event"
	"servicehub/shared/failure"
	"servicehub/shared/otp"
	"servicehub/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Completion interface {
	GetCompletionOtp(ctx context.Context, bookingID, customerID string) (dto.CompletionOtpResponse, error)
	VerifyCompletionOtp(ctx context.Context, bookingID, providerID string, req dto.VerifyCompletionRequest) (dto.VerifyCompletionResponse, error)
}

type serviceImpl struct {
	paymentRepo  paymentRepo.Payment
	bookingRepo  bookingRepo.Booking
	providerRepo providerRepo.Provider
	cache        cache.RedisCache
	transactor   postgres.Transactor
	publisher    event.Publisher
	cfg          *config.Config
	otel         otel.Otel
}

func New(
	paymentRepo paymentRepo.Payment,
	bookingRepo bookingRepo.Booking,
	providerRepo providerRepo.Provider,
	cache cache.RedisCache,
	transactor postgres.Transactor,
	publisher event.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Completion {
	return &serviceImpl{
		paymentRepo:  paymentRepo,
		bookingRepo:  bookingRepo,
		providerRepo: providerRepo,
		cache:        cache,
		transactor:   transactor,
		publisher:    publisher,
		cfg:          cfg,
		otel:         otel,
	}
}

func (s *serviceImpl) GetCompletionOtp(ctx context.Context, bookingID, customerID string) (res dto.CompletionOtpResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".completion.GetCompletionOtp")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payment, err := s.completedPayment(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if payment.CustomerID != customerID {
		return res, failure.Forbidden("only the paying customer can read the completion code") // nolint:wrapcheck
	}

	res.FromModel(payment)

	return res, nil
}

// VerifyCompletionOtp releases the escrowed payment once the provider presents the customer's code.
// The payment, booking and ledger rows change in one transaction or not at all.
func (s *serviceImpl) VerifyCompletionOtp(ctx context.Context, bookingID, providerID string, req dto.VerifyCompletionRequest) (res dto.VerifyCompletionResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".completion.VerifyCompletionOtp")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payment, err := s.completedPayment(ctx, bookingID)
	if err != nil {
		return res, err
	}

	if payment.ProviderID != providerID {
		return res, failure.Forbidden("booking is assigned to another provider") // nolint:wrapcheck
	}

	if payment.OTPVerified {
		return res, failure.Conflict("already finalized") // nolint:wrapcheck
	}

	booking, err := s.bookingRepo.Get(ctx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get booking")

		return res, fmt.Errorf("failed to get booking: %w", err)
	}

	if !booking.CanTransition(bookingModel.StatusCompleted) {
		return res, failure.Conflict(fmt.Sprintf("booking cannot be completed while %s", booking.Status)) // nolint:wrapcheck
	}

	attemptsKey := shared.BuildCacheKey(constant.CacheKeyCompletionOTP, constant.CacheKeyCompletionAttempts, payment.ID)

	if err = s.reserveAttempt(ctx, attemptsKey, payment.ID); err != nil {
		return res, err
	}

	if payment.CompletionOTP == nil || !otp.Equal(*payment.CompletionOTP, req.OTP) {
		log.Warn().Str("payment_id", payment.ID).Msg("invalid completion code")

		return res, failure.BadRequestFromString("invalid completion code") // nolint:wrapcheck
	}

	now := timezone.Now()

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		paymentFilter := shared.FilterByID(payment.ID, paymentModel.FieldID, paymentModel.TableName)

		locked, err := s.paymentRepo.GetForUpdateTx(ctx, tx, paymentFilter)
		if err != nil {
			log.Error().Err(err).Str("payment_id", payment.ID).Msg("failed to lock payment")

			return fmt.Errorf("failed to lock payment: %w", err)
		}

		if locked.OTPVerified {
			return failure.Conflict("already finalized") // nolint:wrapcheck
		}

		if locked.Status != paymentModel.StatusCompleted {
			return failure.Conflict(fmt.Sprintf("payment is %s", locked.Status)) // nolint:wrapcheck
		}

		bookingFilter := shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName)

		booking, err = s.bookingRepo.GetForUpdateTx(ctx, tx, bookingFilter)
		if err != nil {
			log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to lock booking")

			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if !booking.CanTransition(bookingModel.StatusCompleted) {
			return failure.Conflict(fmt.Sprintf("booking cannot be completed while %s", booking.Status)) // nolint:wrapcheck
		}

		paymentPatch := paymentDto.PaymentPatch{OTPVerified: true, OTPVerifiedAt: &now}

		if err = s.paymentRepo.UpdateTx(ctx, tx, shared.TransformFields(paymentPatch, providerID), paymentFilter); err != nil {
			log.Error().Err(err).Str("payment_id", payment.ID).Msg("failed to mark payment verified")

			return fmt.Errorf("failed to mark payment verified: %w", err)
		}

		bookingPatch := bookingDto.BookingPatch{
			Status:        bookingModel.StatusCompleted,
			PaymentStatus: bookingModel.PaymentStatusFinalized,
			CompletedAt:   &now,
		}

		if err = s.bookingRepo.UpdateTx(ctx, tx, shared.TransformFields(bookingPatch, providerID), bookingFilter); err != nil {
			log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to complete booking")

			return fmt.Errorf("failed to complete booking: %w", err)
		}

		if err = s.providerRepo.CreditEarningsTx(ctx, tx, providerID, locked.Amount, providerID); err != nil {
			log.Error().Err(err).Str("provider_id", providerID).Msg("failed to credit provider earnings")

			return fmt.Errorf("failed to credit provider earnings: %w", err)
		}

		payment = locked
		paymentPatch.Apply(&payment)
		bookingPatch.Apply(&booking)

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if err := s.cache.Delete(ctx, attemptsKey); err != nil {
		log.Warn().Err(err).Str("payment_id", payment.ID).Msg("failed to clear completion attempts")
	}

	amount := payment.Amount.StringFixed(2)

	s.publisher.Publish(ctx, s.cfg.Kafka.Topics.Payment, event.New(event.PaymentReleased, bookingID, providerID).
		WithPayment(payment.ID).
		WithData(map[string]any{"amount": amount, "provider_id": providerID}))
	s.publisher.Publish(ctx, s.cfg.Kafka.Topics.Booking, event.New(event.BookingCompleted, bookingID, providerID).WithPayment(payment.ID))

	res.FromModels(booking, payment)

	return res, nil
}

// completedPayment returns the confirmed payment of a booking. Verified payments stay completed.
func (s *serviceImpl) completedPayment(ctx context.Context, bookingID string) (payment paymentModel.Payment, err error) {
	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: paymentModel.FieldBookingID, Operator: gDto.FilterOperatorEq, Value: bookingID, Table: paymentModel.TableName},
			gDto.Filter{Field: paymentModel.FieldStatus, Operator: gDto.FilterOperatorEq, Value: paymentModel.StatusCompleted, Table: paymentModel.TableName},
		},
	}

	payment, err = s.paymentRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to get payment")

		return payment, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return payment, failure.NotFound("no completed payment for booking") // nolint:wrapcheck
	}

	return payment, nil
}

// reserveAttempt counts the attempt before the code is compared, so concurrent guesses draw from
// one budget. It fails closed: without the counter the budget cannot be enforced.
func (s *serviceImpl) reserveAttempt(ctx context.Context, key, paymentID string) error {
	attempts, err := s.cache.Increment(ctx, key, s.cfg.Payment.CompletionOTP.LockoutSeconds)
	if err != nil {
		log.Error().Err(err).Str("payment_id", paymentID).Msg("failed to count completion attempt")

		return fmt.Errorf("failed to count completion attempt: %w", err)
	}

	if attempts > int64(s.cfg.Payment.CompletionOTP.MaxAttempts) {
		log.Warn().Str("payment_id", paymentID).Int64("attempts", attempts).Msg("completion code locked out")

		return failure.TooManyRequests("too many invalid completion codes, try again later") // nolint:wrapcheck
	}

	return nil
}
