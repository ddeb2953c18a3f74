package service_test

import (
	"context"
	"errors"
	"net/http"
	"servicehub/config"
	"servicehub/infras/gateway"
	gatewayMocks "servicehub/infras/gateway/mocks"
	otelMocks "servicehub/infras/otel/mocks"
	postgresMocks "servicehub/infras/postgres/mocks"
	bookingMocks "servicehub/internal/domains/booking/mocks"
	bookingModel "servicehub/internal/domains/booking/model"
	paymentMocks "servicehub/internal/domains/payment/mocks"
	"servicehub/internal/domains/payment/model"
	"servicehub/internal/domains/payment/model/dto"
	"servicehub/internal/domains/payment/service"
	userMocks "servicehub/internal/domains/user/mocks"
	userModel "servicehub/internal/domains/user/model"
	"servicehub/shared/constant"
	gDto "servicehub/shared/dto"
	"servicehub/shared/event"
	eventMocks "servicehub/shared/event/mocks"
	"servicehub/shared/failure"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const (
	bookingID  = "3f1c9a52-6c1e-4f5e-9d8a-2b7f1e0c4d11"
	paymentID  = "payment-1"
	customerID = "customer-1"
	providerID = "provider-1"
	pidx       = "px-1"
	topic      = "payment.events"
)

type fixture struct {
	repo      *paymentMocks.MockPayment
	bookings  *bookingMocks.MockBooking
	users     *userMocks.MockUser
	gateway   *gatewayMocks.MockGateway
	publisher *eventMocks.MockPublisher
	svc       service.Payment
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	cfg := &config.Config{}
	cfg.Kafka.Topics.Payment = topic

	f := fixture{
		repo:      paymentMocks.NewMockPayment(ctrl),
		bookings:  bookingMocks.NewMockBooking(ctrl),
		users:     userMocks.NewMockUser(ctrl),
		gateway:   gatewayMocks.NewMockGateway(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}
	f.svc = service.New(f.repo, f.bookings, f.users, f.gateway, postgresMocks.NewTransactor(), f.publisher, cfg, otelMocks.NewOtel())

	return f
}

func booking(status string) bookingModel.Booking {
	return bookingModel.Booking{
		ID:            bookingID,
		CustomerID:    customerID,
		ProviderID:    providerID,
		Status:        status,
		PaymentStatus: bookingModel.PaymentStatusUnpaid,
		FinalAmount:   decimal.NewNullDecimal(decimal.RequireFromString("1500")),
	}
}

func payment(status string) model.Payment {
	return model.Payment{
		ID:         paymentID,
		BookingID:  bookingID,
		CustomerID: customerID,
		ProviderID: providerID,
		Amount:     decimal.RequireFromString("1500"),
		Pidx:       pidx,
		Status:     status,
	}
}

func expectEvent(t *testing.T, f fixture, eventType event.Type) {
	t.Helper()

	f.publisher.EXPECT().Publish(gomock.Any(), topic, gomock.Any()).
		Do(func(_ context.Context, _ string, evt event.Event) {
			assert.Equal(t, eventType, evt.Type)
			assert.Equal(t, bookingID, evt.BookingID)
		})
}

func TestPaymentService_Initiate(t *testing.T) {
	phone := "+9779800000000"
	customer := userModel.User{ID: customerID, Email: "ram@example.com", FullName: "Ram", Phone: &phone}
	req := dto.InitiatePaymentRequest{BookingID: bookingID, Amount: decimal.RequireFromString("1500.00")}

	tests := []struct {
		name      string
		req       dto.InitiatePaymentRequest
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "payment initiated",
			req:  req,
			setupMock: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(bookingModel.StatusAccepted), nil)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, r gateway.InitiateRequest) (gateway.InitiateResponse, error) {
						assert.Equal(t, int64(150000), r.AmountMinor)
						assert.Equal(t, bookingID, r.PurchaseOrderID)
						assert.Equal(t, phone, r.Customer.Phone)

						return gateway.InitiateResponse{Pidx: pidx, PaymentURL: "https://pay.example.com/px-1", ExpiresAt: "2026-03-01T10:00:00Z"}, nil
					})
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, p model.Payment) error {
						assert.Equal(t, model.StatusInitiated, p.Status)
						assert.Equal(t, providerID, p.ProviderID)
						assert.Equal(t, pidx, p.Pidx)

						return nil
					})
				expectEvent(t, f, event.PaymentInitiated)
			},
		},
		{
			name: "customer missing",
			req:  req,
			setupMock: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "booking missing",
			req:  req,
			setupMock: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(bookingModel.Booking{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "booking of another customer",
			req:  req,
			setupMock: func(f fixture) {
				b := booking(bookingModel.StatusAccepted)
				b.CustomerID = "customer-2"

				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(b, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
		{
			name: "booking still pending",
			req:  req,
			setupMock: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(bookingModel.StatusPending), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "amount differs from final amount",
			req:  dto.InitiatePaymentRequest{BookingID: bookingID, Amount: decimal.RequireFromString("1499.99")},
			setupMock: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(bookingModel.StatusAccepted), nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadRequest,
		},
		{
			name: "booking already paid",
			req:  req,
			setupMock: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(bookingModel.StatusInProgress), nil)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "gateway rejects",
			req:  req,
			setupMock: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(bookingModel.StatusAccepted), nil)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).
					Return(gateway.InitiateResponse{}, &gateway.Error{StatusCode: http.StatusBadRequest, Detail: "Amount should be greater than Rs. 10"})
			},
			wantErr:  true,
			wantCode: http.StatusBadGateway,
		},
		{
			name: "insert fails",
			req:  req,
			setupMock: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(customer, nil)
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(bookingModel.StatusAccepted), nil)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(gateway.InitiateResponse{Pidx: pidx}, nil)
				f.repo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
			},
			wantErr:  true,
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Initiate(context.Background(), customerID, tt.req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, pidx, res.Pidx)
			assert.Equal(t, "1500.00", res.Amount)
			assert.Equal(t, model.StatusInitiated, res.Status)
			assert.Equal(t, "https://pay.example.com/px-1", res.PaymentURL)
		})
	}
}

func TestPaymentService_Verify(t *testing.T) {
	txnID := "txn-1"
	completed := gateway.LookupResponse{Pidx: pidx, TotalAmount: 150000, Status: gateway.StatusCompleted, TransactionID: &txnID}

	tests := []struct {
		name       string
		callerID   string
		setupMock  func(f fixture)
		wantStatus string
		wantOTP    bool
		wantCode   int
		wantErr    bool
	}{
		{
			name:     "completed payment mints completion code",
			callerID: customerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(payment(model.StatusInitiated), nil)
				f.gateway.EXPECT().Lookup(gomock.Any(), pidx).Return(completed, nil)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(payment(model.StatusInitiated), nil)
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(bookingModel.StatusAccepted), nil)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(false, nil)
				f.bookings.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, bookingModel.PaymentStatusPaid, fields[bookingModel.FieldPaymentStatus])

						return nil
					})
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusCompleted, fields[model.FieldStatus])
						assert.Contains(t, fields, model.FieldCompletionOTP)
						assert.Contains(t, fields, model.FieldPaidAt)

						return nil
					})
				expectEvent(t, f, event.PaymentCompleted)
			},
			wantStatus: model.StatusCompleted,
			wantOTP:    true,
		},
		{
			name:     "provider never sees the code",
			callerID: providerID,
			setupMock: func(f fixture) {
				p := payment(model.StatusCompleted)
				code := "123456"
				p.CompletionOTP = &code

				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(p, nil)
			},
			wantStatus: model.StatusCompleted,
		},
		{
			name:     "settled payment returned without gateway call",
			callerID: customerID,
			setupMock: func(f fixture) {
				p := payment(model.StatusCompleted)
				code := "123456"
				p.CompletionOTP = &code

				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(p, nil)
			},
			wantStatus: model.StatusCompleted,
			wantOTP:    true,
		},
		{
			name:     "expired payment stays expired",
			callerID: customerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(payment(model.StatusExpired), nil)
			},
			wantStatus: model.StatusExpired,
		},
		{
			name:     "failed payment never revived by a late completion",
			callerID: customerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(payment(model.StatusFailed), nil)
			},
			wantStatus: model.StatusFailed,
		},
		{
			name:     "payment expired while the gateway was asked",
			callerID: customerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(payment(model.StatusPending), nil)
				f.gateway.EXPECT().Lookup(gomock.Any(), pidx).Return(completed, nil)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(payment(model.StatusExpired), nil)
			},
			wantStatus: model.StatusExpired,
		},
		{
			name:     "second completed payment parked for refund",
			callerID: customerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(payment(model.StatusInitiated), nil)
				f.gateway.EXPECT().Lookup(gomock.Any(), pidx).Return(completed, nil)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(payment(model.StatusInitiated), nil)
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(bookingModel.StatusAccepted), nil)
				f.repo.EXPECT().ExistTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(true, nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusRefundRequested, fields[model.FieldStatus])
						assert.NotContains(t, fields, model.FieldCompletionOTP)

						return nil
					})
				expectEvent(t, f, event.PaymentRefundRequested)
			},
			wantStatus: model.StatusRefundRequested,
		},
		{
			name:     "pending at gateway",
			callerID: customerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(payment(model.StatusInitiated), nil)
				f.gateway.EXPECT().Lookup(gomock.Any(), pidx).Return(gateway.LookupResponse{Pidx: pidx, Status: gateway.StatusPending}, nil)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(payment(model.StatusInitiated), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: model.StatusPending,
		},
		{
			name:     "unknown gateway status stored lower cased",
			callerID: customerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(payment(model.StatusInitiated), nil)
				f.gateway.EXPECT().Lookup(gomock.Any(), pidx).Return(gateway.LookupResponse{Pidx: pidx, Status: "User canceled"}, nil)
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(payment(model.StatusInitiated), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
			wantStatus: "user canceled",
		},
		{
			name:     "gateway amount mismatch",
			callerID: customerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(payment(model.StatusInitiated), nil)
				f.gateway.EXPECT().Lookup(gomock.Any(), pidx).
					Return(gateway.LookupResponse{Pidx: pidx, TotalAmount: 1000, Status: gateway.StatusCompleted}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusBadGateway,
		},
		{
			name:     "gateway unreachable",
			callerID: customerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(payment(model.StatusInitiated), nil)
				f.gateway.EXPECT().Lookup(gomock.Any(), pidx).Return(gateway.LookupResponse{}, errors.New("dial tcp: timeout"))
			},
			wantErr:  true,
			wantCode: http.StatusBadGateway,
		},
		{
			name:     "payment missing",
			callerID: customerID,
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Payment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name:     "stranger",
			callerID: "someone-else",
			setupMock: func(f fixture) {
				f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(payment(model.StatusInitiated), nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Verify(context.Background(), tt.callerID, pidx)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantStatus, res.Status)

			if tt.wantOTP {
				require.NotNil(t, res.CompletionOTP)
				assert.Len(t, *res.CompletionOTP, 6)
			} else {
				assert.Nil(t, res.CompletionOTP)
			}
		})
	}
}

func TestPaymentService_VerifyRedirect(t *testing.T) {
	t.Run("purchase order mismatch", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(payment(model.StatusInitiated), nil)

		_, err := f.svc.VerifyRedirect(context.Background(), customerID, dto.VerifyRedirectRequest{Pidx: pidx, PurchaseOrderID: "other-booking"})

		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})

	t.Run("expired link", func(t *testing.T) {
		f := newFixture(t)
		f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(payment(model.StatusInitiated), nil)
		f.gateway.EXPECT().Lookup(gomock.Any(), pidx).Return(gateway.LookupResponse{Pidx: pidx, Status: gateway.StatusExpired}, nil)
		f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(payment(model.StatusInitiated), nil)
		f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.svc.VerifyRedirect(context.Background(), customerID, dto.VerifyRedirectRequest{Pidx: pidx, Status: "Expired", PurchaseOrderID: bookingID})

		require.NoError(t, err)
		assert.Equal(t, model.StatusExpired, res.Status)
	})
}

func TestPaymentService_GetStatus(t *testing.T) {
	f := newFixture(t)

	p := payment(model.StatusCompleted)
	code := "123456"
	p.CompletionOTP = &code

	f.repo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(p, nil)

	res, err := f.svc.GetStatus(context.Background(), providerID, pidx)

	require.NoError(t, err)
	assert.Equal(t, paymentID, res.ID)
	assert.Equal(t, "1500.00", res.Amount)
}

func TestPaymentService_RequestRefund(t *testing.T) {
	req := dto.RefundRequest{Reason: "provider never showed up"}

	tests := []struct {
		name      string
		setupMock func(f fixture)
		wantCode  int
		wantErr   bool
	}{
		{
			name: "refund requested",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(payment(model.StatusCompleted), nil)
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(bookingModel.StatusCancelled), nil)
				f.repo.EXPECT().UpdateTx(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, fields map[string]any, _ gDto.FilterGroup) error {
						assert.Equal(t, model.StatusRefundRequested, fields[model.FieldStatus])
						assert.Contains(t, fields, model.FieldCompletionOTP)
						assert.Nil(t, fields[model.FieldCompletionOTP])

						return nil
					})
				expectEvent(t, f, event.PaymentRefundRequested)
			},
		},
		{
			name: "booking still active",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(payment(model.StatusCompleted), nil)
				f.bookings.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(booking(bookingModel.StatusAccepted), nil)
			},
			wantErr:  true,
			wantCode: http.StatusConflict,
		},
		{
			name: "nothing paid",
			setupMock: func(f fixture) {
				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(model.Payment{}, nil)
			},
			wantErr:  true,
			wantCode: http.StatusNotFound,
		},
		{
			name: "payment of another customer",
			setupMock: func(f fixture) {
				p := payment(model.StatusCompleted)
				p.CustomerID = "customer-2"

				f.repo.EXPECT().GetForUpdateTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(p, nil)
			},
			wantErr:  true,
			wantCode: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.RequestRefund(context.Background(), bookingID, customerID, req)
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, model.StatusRefundRequested, res.Status)
			require.NotNil(t, res.RefundReason)
			assert.Equal(t, req.Reason, *res.RefundReason)
		})
	}
}

func TestPaymentService_History(t *testing.T) {
	tests := []struct {
		name      string
		role      string
		wantWhere string
		wantCode  int
		wantErr   bool
	}{
		{name: "customer", role: constant.RoleCustomer, wantWhere: "(payments.customer_id = :customer_id)"},
		{name: "provider", role: constant.RoleProvider, wantWhere: "(payments.provider_id = :provider_id)"},
		{name: "admin", role: constant.RoleAdmin},
		{name: "unknown role", role: "guest", wantErr: true, wantCode: http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)

			if !tt.wantErr {
				f.repo.EXPECT().Count(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, filter gDto.FilterGroup) (int, error) {
						where, _ := filter.GetWhereClause()
						assert.Equal(t, tt.wantWhere, where)

						return 1, nil
					})
				f.repo.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, params gDto.QueryParams, _ gDto.FilterGroup, _ ...string) ([]model.Payment, error) {
						assert.Equal(t, constant.FieldCreatedAt, params.SortBy)

						return []model.Payment{payment(model.StatusCompleted)}, nil
					})
			}

			res, err := f.svc.History(context.Background(), "caller-1", tt.role, gDto.QueryParams{Limit: 10, SortBy: "completion_otp"})
			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, 1, res.TotalData)
			assert.Len(t, res.Payments, 1)
		})
	}
}
