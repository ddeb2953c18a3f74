package dto

import (
	"net/http"
	"servicehub/internal/domains/payment/model"
	"servicehub/shared"
	"servicehub/shared/constant"
	gDto "servicehub/shared/dto"
	gModel "servicehub/shared/model"
	"servicehub/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type InitiatePaymentRequest struct {
	BookingID string          `json:"booking_id" validate:"required,uuid4"`
	Amount    decimal.Decimal `json:"amount"     validate:"required,money"`
}

type InitiatePaymentResponse struct {
	PaymentID  string `json:"payment_id"`
	BookingID  string `json:"booking_id"`
	Pidx       string `json:"pidx"`
	PaymentURL string `json:"payment_url"`
	ExpiresAt  string `json:"expires_at"`
	Amount     string `json:"amount"`
	Status     string `json:"status"`
}

type VerifyPaymentRequest struct {
	Pidx string `json:"pidx" validate:"required"`
}

// VerifyRedirectRequest carries the query parameters the gateway appends to the return URL.
type VerifyRedirectRequest struct {
	Pidx            string `validate:"required"`
	Status          string `validate:"omitempty"`
	PurchaseOrderID string `validate:"omitempty"`
}

func (r *VerifyRedirectRequest) FromRequest(req *http.Request) {
	query := req.URL.Query()

	r.Pidx = query.Get(constant.RequestParamPidx)
	r.Status = query.Get(constant.RequestParamStatus)
	r.PurchaseOrderID = query.Get(constant.RequestParamPurchaseOrderID)
}

type VerifyPaymentResponse struct {
	PaymentID     string  `json:"payment_id"`
	BookingID     string  `json:"booking_id"`
	Pidx          string  `json:"pidx"`
	Status        string  `json:"status"`
	CompletionOTP *string `json:"completion_otp"`
	Message       string  `json:"message"`
}

// FromModel hides the completion code from everyone but the payer and from the payer too once it was used.
func (r *VerifyPaymentResponse) FromModel(payment model.Payment, viewerID string) {
	r.PaymentID = payment.ID
	r.BookingID = payment.BookingID
	r.Pidx = payment.Pidx
	r.Status = payment.Status
	r.Message = statusMessage(payment)

	if viewerID != constant.Empty && viewerID == payment.CustomerID && !payment.OTPVerified {
		r.CompletionOTP = payment.CompletionOTP
	}
}

type RefundRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// PaymentPatch lists the columns a payment transition may write. Zero fields are left untouched.
type PaymentPatch struct {
	Status        string     `db:"status"`
	TransactionID *string    `db:"transaction_id"`
	CompletionOTP *string    `db:"completion_otp"`
	RefundReason  *string    `db:"refund_reason"`
	PaidAt        *time.Time `db:"paid_at"`
	OTPVerified   bool       `db:"otp_verified"`
	OTPVerifiedAt *time.Time `db:"otp_verified_at"`
}

func (p PaymentPatch) Apply(payment *model.Payment) {
	if p.Status != constant.Empty {
		payment.Status = p.Status
	}

	if p.TransactionID != nil {
		payment.TransactionID = p.TransactionID
	}

	if p.CompletionOTP != nil {
		payment.CompletionOTP = p.CompletionOTP
	}

	if p.RefundReason != nil {
		payment.RefundReason = p.RefundReason
	}

	if p.PaidAt != nil {
		payment.PaidAt = p.PaidAt
	}

	if p.OTPVerified {
		payment.OTPVerified = true
	}

	if p.OTPVerifiedAt != nil {
		payment.OTPVerifiedAt = p.OTPVerifiedAt
	}
}

func NewPayment(bookingID, customerID, providerID, pidx string, amount decimal.Decimal) model.Payment {
	now := timezone.Now()

	return model.Payment{
		ID:         uuid.NewString(),
		BookingID:  bookingID,
		CustomerID: customerID,
		ProviderID: providerID,
		Amount:     amount,
		Pidx:       pidx,
		Status:     model.StatusInitiated,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}
}

// PaymentResponse never carries the completion code.
type PaymentResponse struct {
	ID            string  `json:"id"`
	BookingID     string  `json:"booking_id"`
	CustomerID    string  `json:"customer_id"`
	ProviderID    string  `json:"provider_id"`
	Amount        string  `json:"amount"`
	Pidx          string  `json:"pidx"`
	TransactionID *string `json:"transaction_id"`
	Status        string  `json:"status"`
	OTPVerified   bool    `json:"otp_verified"`
	RefundReason  *string `json:"refund_reason"`
	PaidAt        *string `json:"paid_at"`
	OTPVerifiedAt *string `json:"otp_verified_at"`
	gDto.Metadata
}

func (r *PaymentResponse) FromModel(payment model.Payment) {
	r.ID = payment.ID
	r.BookingID = payment.BookingID
	r.CustomerID = payment.CustomerID
	r.ProviderID = payment.ProviderID
	r.Amount = payment.Amount.StringFixed(2)
	r.Pidx = payment.Pidx
	r.TransactionID = payment.TransactionID
	r.Status = payment.Status
	r.OTPVerified = payment.OTPVerified
	r.RefundReason = payment.RefundReason
	r.PaidAt = formatTime(payment.PaidAt)
	r.OTPVerifiedAt = formatTime(payment.OTPVerifiedAt)
	r.Metadata.FromModel(payment.Metadata)
}

type GetPaymentsResponse struct {
	Payments  []PaymentResponse `json:"payments"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetPaymentsResponse) FromModels(models []model.Payment, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Payments = make([]PaymentResponse, len(models))
	for i, mod := range models {
		r.Payments[i].FromModel(mod)
	}
}

func statusMessage(payment model.Payment) string {
	switch payment.Status {
	case model.StatusCompleted:
		if payment.OTPVerified {
			return "work completed and verified"
		}

		return "payment completed"
	case model.StatusPending:
		return "payment is pending at the gateway"
	case model.StatusExpired:
		return "payment link expired, initiate a new payment"
	case model.StatusInitiated:
		return "payment not yet completed"
	case model.StatusRefundRequested:
		if payment.RefundReason != nil && *payment.RefundReason == model.RefundReasonDuplicate {
			return "booking was already paid, refund requested for this payment"
		}

		return "refund requested"
	case model.StatusRefunded:
		return "payment refunded"
	default:
		return "payment status: " + payment.Status
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}
