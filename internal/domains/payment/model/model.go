package model

import (
	"servicehub/shared/model"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "payments"
	EntityName = "payment"

	FieldID            = "id"
	FieldBookingID     = "booking_id"
	FieldCustomerID    = "customer_id"
	FieldProviderID    = "provider_id"
	FieldAmount        = "amount"
	FieldPidx          = "pidx"
	FieldStatus        = "status"
	FieldCompletionOTP = "completion_otp"
	FieldOTPVerified   = "otp_verified"
	FieldPaidAt        = "paid_at"
)

const (
	StatusInitiated       = "initiated"
	StatusCompleted       = "completed"
	StatusPending         = "pending"
	StatusExpired         = "expired"
	StatusFailed          = "failed"
	StatusRefundRequested = "refund_requested"
	StatusRefunded        = "refunded"
)

const RefundReasonDuplicate = "duplicate payment"

// settledStatuses are reached only after the gateway confirmed the money. Gateway lookups never move
// a payment out of them.
var settledStatuses = []string{StatusCompleted, StatusRefundRequested, StatusRefunded}

// deadStatuses end a payment without money moving. The gateway is not asked about them again.
var deadStatuses = []string{StatusExpired, StatusFailed}

func IsSettled(status string) bool {
	return slices.Contains(settledStatuses, status)
}

// IsFinal reports whether status is settled or dead.
func IsFinal(status string) bool {
	return IsSettled(status) || slices.Contains(deadStatuses, status)
}

type Payment struct {
	ID            string          `db:"id"`
	BookingID     string          `db:"booking_id"`
	CustomerID    string          `db:"customer_id"`
	ProviderID    string          `db:"provider_id"`
	Amount        decimal.Decimal `db:"amount"`
	Pidx          string          `db:"pidx"`
	TransactionID *string         `db:"transaction_id"`
	Status        string          `db:"status"`
	CompletionOTP *string         `db:"completion_otp"`
	OTPVerified   bool            `db:"otp_verified"`
	RefundReason  *string         `db:"refund_reason"`
	PaidAt        *time.Time      `db:"paid_at"`
	OTPVerifiedAt *time.Time      `db:"otp_verified_at"`
	model.Metadata
}

func (p *Payment) IsFinal() bool {
	return IsFinal(p.Status)
}

func (p *Payment) IsParty(userID string) bool {
	return userID != "" && (p.CustomerID == userID || p.ProviderID == userID)
}

// AmountMinor is the amount in integer minor units as exchanged with the gateway.
func (p *Payment) AmountMinor() int64 {
	return ToMinor(p.Amount)
}

func ToMinor(amount decimal.Decimal) int64 {
	return amount.Shift(2).Round(0).IntPart()
}
