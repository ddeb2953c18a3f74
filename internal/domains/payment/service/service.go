package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Payment=MockPaymentService

import (
	"context"
	"errors"
	"fmt"
	"servicehub/config"
	"servicehub/infras/gateway"
	"servicehub/infras/otel"
	"servicehub/infras/postgres"
	bookingModel "servicehub/internal/domains/booking/model"
	bookingRepo "servicehub/internal/domains/booking/repository"
	"servicehub/internal/domains/payment/model"
	"servicehub/internal/domains/payment/model/dto"
	"servicehub/internal/domains/payment/repository"
	userModel "servicehub/internal/domains/user/model"
	userRepo "servicehub/internal/domains/user/repository"
	"servicehub/shared"
	"servicehub/shared/constant"
	gDto "servicehub/shared/dto"
	"servicehub/shared/event"
	"servicehub/shared/failure"
	"servicehub/shared/otp"
	"servicehub/shared/timezone"
	"slices"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const purchaseOrderName = "Service booking"

var (
	payableBookingStatuses    = []string{bookingModel.StatusAccepted, bookingModel.StatusInProgress, bookingModel.StatusCompleted}
	refundableBookingStatuses = []string{bookingModel.StatusCancelled, bookingModel.StatusRejected}

	sortableColumns = []string{constant.FieldCreatedAt, model.FieldPaidAt, model.FieldAmount, model.FieldStatus}
)

type Payment interface {
	Initiate(ctx context.Context, customerID string, req dto.InitiatePaymentRequest) (dto.InitiatePaymentResponse, error)
	Verify(ctx context.Context, callerID, pidx string) (dto.VerifyPaymentResponse, error)
	VerifyRedirect(ctx context.Context, callerID string, req dto.VerifyRedirectRequest) (dto.VerifyPaymentResponse, error)
	GetStatus(ctx context.Context, callerID, pidx string) (dto.PaymentResponse, error)
	RequestRefund(ctx context.Context, bookingID, customerID string, req dto.RefundRequest) (dto.PaymentResponse, error)
	History(ctx context.Context, callerID, role string, params gDto.QueryParams) (dto.GetPaymentsResponse, error)
}

type serviceImpl struct {
	repo        repository.Payment
	bookingRepo bookingRepo.Booking
	userRepo    userRepo.User
	gateway     gateway.Gateway
	transactor  postgres.Transactor
	publisher   event.Publisher
	cfg         *config.Config
	otel        otel.Otel
}

func New(
	repo repository.Payment,
	bookingRepo bookingRepo.Booking,
	userRepo userRepo.User,
	gateway gateway.Gateway,
	transactor postgres.Transactor,
	publisher event.Publisher,
	cfg *config.Config,
	otel otel.Otel,
) Payment {
	return &serviceImpl{
		repo:        repo,
		bookingRepo: bookingRepo,
		userRepo:    userRepo,
		gateway:     gateway,
		transactor:  transactor,
		publisher:   publisher,
		cfg:         cfg,
		otel:        otel,
	}
}

// Initiate holds the booking row lock across the gateway call so concurrent attempts for the same
// booking are serialized.
func (s *serviceImpl) Initiate(ctx context.Context, customerID string, req dto.InitiatePaymentRequest) (res dto.InitiatePaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Initiate")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	customer, err := s.userRepo.Get(ctx, shared.FilterByID(customerID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return res, fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return res, failure.NotFound("customer not found") // nolint:wrapcheck
	}

	var payment model.Payment

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		booking, err := s.bookingRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(req.BookingID, bookingModel.FieldID, bookingModel.TableName))
		if err != nil {
			log.Error().Err(err).Str("booking_id", req.BookingID).Msg("failed to lock booking")

			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if booking.ID == constant.Empty {
			return failure.NotFound("booking not found") // nolint:wrapcheck
		}

		if booking.CustomerID != customerID {
			return failure.Forbidden("booking belongs to another customer") // nolint:wrapcheck
		}

		if !slices.Contains(payableBookingStatuses, booking.Status) {
			return failure.Conflict(fmt.Sprintf("booking cannot be paid while %s", booking.Status)) // nolint:wrapcheck
		}

		if !booking.FinalAmount.Valid || !booking.FinalAmount.Decimal.Equal(req.Amount) {
			return failure.BadRequestFromString("amount must equal the booking final amount") // nolint:wrapcheck
		}

		paid, err := s.repo.ExistTx(ctx, tx, completedPaymentOf(booking.ID))
		if err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to check existing payment")

			return fmt.Errorf("failed to check existing payment: %w", err)
		}

		if paid {
			return failure.Conflict("booking already has a completed payment") // nolint:wrapcheck
		}

		initiated, err := s.gateway.Initiate(ctx, gateway.InitiateRequest{
			AmountMinor:       model.ToMinor(req.Amount),
			PurchaseOrderID:   booking.ID,
			PurchaseOrderName: purchaseOrderName,
			Customer:          customerInfo(customer),
		})
		if err != nil {
			log.Error().Err(err).Str("booking_id", booking.ID).Msg("failed to initiate gateway payment")

			return upstreamError(err)
		}

		payment = dto.NewPayment(booking.ID, customerID, booking.ProviderID, initiated.Pidx, req.Amount)

		if err = s.repo.InsertTx(ctx, tx, payment); err != nil {
			log.Error().Err(err).Str("pidx", initiated.Pidx).Msg("failed to create payment")

			return fmt.Errorf("failed to create payment: %w", err)
		}

		res.PaymentURL = initiated.PaymentURL
		res.ExpiresAt = initiated.ExpiresAt

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.publisher.Publish(ctx, s.cfg.Kafka.Topics.Payment, event.New(event.PaymentInitiated, payment.BookingID, customerID).WithPayment(payment.ID))

	res.PaymentID = payment.ID
	res.BookingID = payment.BookingID
	res.Pidx = payment.Pidx
	res.Amount = payment.Amount.StringFixed(2)
	res.Status = payment.Status

	return res, nil
}

func (s *serviceImpl) Verify(ctx context.Context, callerID, pidx string) (res dto.VerifyPaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.Verify")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payment, err := s.getByPidx(ctx, callerID, pidx)
	if err != nil {
		return res, err
	}

	return s.reconcile(ctx, callerID, payment)
}

// VerifyRedirect handles the gateway return URL. The query status is informational only, the
// gateway lookup stays the source of truth.
func (s *serviceImpl) VerifyRedirect(ctx context.Context, callerID string, req dto.VerifyRedirectRequest) (res dto.VerifyPaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.VerifyRedirect")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payment, err := s.getByPidx(ctx, callerID, req.Pidx)
	if err != nil {
		return res, err
	}

	if req.PurchaseOrderID != constant.Empty && req.PurchaseOrderID != payment.BookingID {
		return res, failure.BadRequestFromString("purchase_order_id does not match the payment booking") // nolint:wrapcheck
	}

	log.Info().Str("pidx", req.Pidx).Str("redirect_status", req.Status).Msg("gateway redirect received")

	return s.reconcile(ctx, callerID, payment)
}

func (s *serviceImpl) GetStatus(ctx context.Context, callerID, pidx string) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.GetStatus")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	payment, err := s.getByPidx(ctx, callerID, pidx)
	if err != nil {
		return res, err
	}

	res.FromModel(payment)

	return res, nil
}

// RequestRefund moves the completed payment of a cancelled or rejected booking to refund_requested.
// Returning the money is a manual step. Rows are locked payment first, booking second.
func (s *serviceImpl) RequestRefund(ctx context.Context, bookingID, customerID string, req dto.RefundRequest) (res dto.PaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.RequestRefund")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	var payment model.Payment

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		locked, err := s.repo.GetForUpdateTx(ctx, tx, completedPaymentOf(bookingID))
		if err != nil {
			log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to lock payment")

			return fmt.Errorf("failed to lock payment: %w", err)
		}

		if locked.ID == constant.Empty {
			return failure.NotFound("no completed payment for booking") // nolint:wrapcheck
		}

		if locked.CustomerID != customerID {
			return failure.Forbidden("payment belongs to another customer") // nolint:wrapcheck
		}

		booking, err := s.bookingRepo.GetForUpdateTx(ctx, tx, shared.FilterByID(bookingID, bookingModel.FieldID, bookingModel.TableName))
		if err != nil {
			log.Error().Err(err).Str("booking_id", bookingID).Msg("failed to lock booking")

			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if !slices.Contains(refundableBookingStatuses, booking.Status) {
			return failure.Conflict(fmt.Sprintf("refund is not available while booking is %s", booking.Status)) // nolint:wrapcheck
		}

		payment = locked

		patch := dto.PaymentPatch{Status: model.StatusRefundRequested, RefundReason: &req.Reason}

		fields := shared.TransformFields(patch, customerID)
		fields[model.FieldCompletionOTP] = nil

		if err = s.repo.UpdateTx(ctx, tx, fields, shared.FilterByID(payment.ID, model.FieldID, model.TableName)); err != nil {
			log.Error().Err(err).Str("payment_id", payment.ID).Msg("failed to request refund")

			return fmt.Errorf("failed to request refund: %w", err)
		}

		patch.Apply(&payment)
		payment.CompletionOTP = nil

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	s.publisher.Publish(ctx, s.cfg.Kafka.Topics.Payment, event.New(event.PaymentRefundRequested, payment.BookingID, customerID).
		WithPayment(payment.ID).
		WithData(map[string]any{"reason": req.Reason}))

	res.FromModel(payment)

	return res, nil
}

// History lists payments the caller paid (customer) or received (provider).
func (s *serviceImpl) History(ctx context.Context, callerID, role string, params gDto.QueryParams) (res dto.GetPaymentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.History")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

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

	params.RestrictSort(sortableColumns...)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count payments")

		return res, fmt.Errorf("failed to count payments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, params, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get payments")

		return res, fmt.Errorf("failed to get payments: %w", err)
	}

	res.FromModels(models, total, params.Limit)

	return res, nil
}

func (s *serviceImpl) getByPidx(ctx context.Context, callerID, pidx string) (payment model.Payment, err error) {
	payment, err = s.repo.Get(ctx, shared.FilterByField(model.FieldPidx, pidx, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("pidx", pidx).Msg("failed to get payment")

		return payment, fmt.Errorf("failed to get payment: %w", err)
	}

	if payment.ID == constant.Empty {
		return payment, failure.NotFound("payment not found") // nolint:wrapcheck
	}

	if !payment.IsParty(callerID) {
		return payment, failure.Forbidden("payment belongs to another user") // nolint:wrapcheck
	}

	return payment, nil
}

// reconcile pulls the gateway status into the local row. Settled, expired and failed payments are
// returned untouched so replays never mint a second code or revive a dead payment.
func (s *serviceImpl) reconcile(ctx context.Context, callerID string, payment model.Payment) (res dto.VerifyPaymentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".payment.reconcile")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	if payment.IsFinal() {
		res.FromModel(payment, callerID)

		return res, nil
	}

	lookup, err := s.gateway.Lookup(ctx, payment.Pidx)
	if err != nil {
		log.Error().Err(err).Str("pidx", payment.Pidx).Msg("failed to look up gateway payment")

		return res, upstreamError(err)
	}

	status := mapGatewayStatus(lookup.Status)

	if status == model.StatusCompleted && lookup.TotalAmount != payment.AmountMinor() {
		log.Error().
			Str("pidx", payment.Pidx).
			Int64("gateway_amount", lookup.TotalAmount).
			Int64("expected_amount", payment.AmountMinor()).
			Msg("gateway amount mismatch")

		return res, failure.Upstream("gateway amount does not match the payment amount") // nolint:wrapcheck
	}

	var published event.Type

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		filter := shared.FilterByID(payment.ID, model.FieldID, model.TableName)

		locked, err := s.repo.GetForUpdateTx(ctx, tx, filter)
		if err != nil {
			log.Error().Err(err).Str("pidx", payment.Pidx).Msg("failed to lock payment")

			return fmt.Errorf("failed to lock payment: %w", err)
		}

		payment = locked

		if payment.IsFinal() || payment.Status == status {
			return nil
		}

		patch := dto.PaymentPatch{Status: status}

		if status == model.StatusCompleted {
			patch, published, err = s.settle(ctx, tx, payment, lookup)
			if err != nil {
				return err
			}
		}

		if err = s.repo.UpdateTx(ctx, tx, shared.TransformFields(patch, callerID), filter); err != nil {
			log.Error().Err(err).Str("pidx", payment.Pidx).Str("status", patch.Status).Msg("failed to update payment")

			return fmt.Errorf("failed to update payment: %w", err)
		}

		patch.Apply(&payment)

		return nil
	})
	if err != nil {
		return res, err //nolint:wrapcheck
	}

	if published != constant.Empty {
		s.publisher.Publish(ctx, s.cfg.Kafka.Topics.Payment, event.New(published, payment.BookingID, callerID).WithPayment(payment.ID))
	}

	res.FromModel(payment, callerID)

	return res, nil
}

// settle builds the patch for a payment the gateway reports as completed. A second completed payment
// for an already paid booking is parked as refund_requested instead.
func (s *serviceImpl) settle(ctx context.Context, tx *sqlx.Tx, payment model.Payment, lookup gateway.LookupResponse) (patch dto.PaymentPatch, published event.Type, err error) {
	paidAt := timezone.Now()

	patch.TransactionID = lookup.TransactionID
	patch.PaidAt = &paidAt

	bookingFilter := shared.FilterByID(payment.BookingID, bookingModel.FieldID, bookingModel.TableName)

	booking, err := s.bookingRepo.GetForUpdateTx(ctx, tx, bookingFilter)
	if err != nil {
		log.Error().Err(err).Str("booking_id", payment.BookingID).Msg("failed to lock booking")

		return patch, published, fmt.Errorf("failed to lock booking: %w", err)
	}

	paid, err := s.repo.ExistTx(ctx, tx, completedPaymentOf(payment.BookingID))
	if err != nil {
		log.Error().Err(err).Str("booking_id", payment.BookingID).Msg("failed to check existing payment")

		return patch, published, fmt.Errorf("failed to check existing payment: %w", err)
	}

	if paid {
		reason := model.RefundReasonDuplicate

		patch.Status = model.StatusRefundRequested
		patch.RefundReason = &reason

		return patch, event.PaymentRefundRequested, nil
	}

	code, err := otp.Generate()
	if err != nil {
		return patch, published, fmt.Errorf("failed to generate completion code: %w", err)
	}

	patch.Status = model.StatusCompleted
	patch.CompletionOTP = &code

	if booking.PaymentStatus == bookingModel.PaymentStatusUnpaid {
		fields := map[string]any{
			bookingModel.FieldPaymentStatus: bookingModel.PaymentStatusPaid,
			constant.FieldModifiedAt:        paidAt,
			constant.FieldModifiedBy:        payment.CustomerID,
		}

		if err = s.bookingRepo.UpdateTx(ctx, tx, fields, bookingFilter); err != nil {
			log.Error().Err(err).Str("booking_id", payment.BookingID).Msg("failed to mark booking paid")

			return patch, published, fmt.Errorf("failed to mark booking paid: %w", err)
		}
	}

	return patch, event.PaymentCompleted, nil
}

func completedPaymentOf(bookingID string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingID, Operator: gDto.FilterOperatorEq, Value: bookingID, Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusCompleted, Table: model.TableName},
		},
	}
}

func mapGatewayStatus(status string) string {
	switch status {
	case gateway.StatusCompleted:
		return model.StatusCompleted
	case gateway.StatusPending:
		return model.StatusPending
	case gateway.StatusExpired:
		return model.StatusExpired
	default:
		return strings.ToLower(status)
	}
}

func customerInfo(user userModel.User) gateway.Customer {
	customer := gateway.Customer{Name: user.FullName, Email: user.Email}

	if user.Phone != nil {
		customer.Phone = *user.Phone
	}

	return customer
}

func upstreamError(err error) error {
	var gwErr *gateway.Error
	if errors.As(err, &gwErr) {
		return failure.Upstream(gwErr.Detail) // nolint:wrapcheck
	}

	if errors.Is(err, gateway.ErrNotConfigured) {
		return failure.Upstream(gateway.ErrNotConfigured.Error()) // nolint:wrapcheck
	}

	return failure.Upstream("payment gateway is unavailable") // nolint:wrapcheck
}
