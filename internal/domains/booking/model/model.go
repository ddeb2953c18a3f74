package model

import (
	"servicehub/shared/model"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "bookings"
	EntityName = "booking"

	FieldID               = "id"
	FieldCustomerID       = "customer_id"
	FieldProviderID       = "provider_id"
	FieldStatus           = "status"
	FieldPaymentStatus    = "payment_status"
	FieldPreferredAt      = "preferred_at"
	FieldScheduledAt      = "scheduled_at"
	FieldFinalAmount      = "final_amount"
	FieldVerificationCode = "verification_code"
	FieldCompletedAt      = "completed_at"
)

const (
	StatusPending    = "pending"
	StatusAccepted   = "accepted"
	StatusRejected   = "rejected"
	StatusInProgress = "in_progress"
	StatusCompleted  = "completed"
	StatusCancelled  = "cancelled"
)

const (
	PaymentStatusUnpaid    = "unpaid"
	PaymentStatusPaid      = "paid"
	PaymentStatusFinalized = "finalized"
)

// transitions lists the forward edges of the booking lifecycle. Terminal states have no entry.
var transitions = map[string][]string{
	StatusPending:    {StatusAccepted, StatusRejected, StatusCancelled},
	StatusAccepted:   {StatusInProgress, StatusCompleted, StatusCancelled},
	StatusInProgress: {StatusCompleted},
}

func CanTransition(from, to string) bool {
	return slices.Contains(transitions[from], to)
}

func IsTerminal(status string) bool {
	_, ok := transitions[status]

	return !ok
}

type Booking struct {
	ID               string              `db:"id"`
	CustomerID       string              `db:"customer_id"`
	ProviderID       string              `db:"provider_id"`
	Description      string              `db:"description"`
	Address          string              `db:"address"`
	Latitude         *float64            `db:"latitude"`
	Longitude        *float64            `db:"longitude"`
	PreferredAt      time.Time           `db:"preferred_at"`
	ScheduledAt      *time.Time          `db:"scheduled_at"`
	Status           string              `db:"status"`
	PaymentStatus    string              `db:"payment_status"`
	EstimatedAmount  decimal.NullDecimal `db:"estimated_amount"`
	FinalAmount      decimal.NullDecimal `db:"final_amount"`
	RejectionReason  *string             `db:"rejection_reason"`
	VerificationCode *string             `db:"verification_code"`
	CompletedAt      *time.Time          `db:"completed_at"`
	model.Metadata
}

func (b *Booking) CanTransition(to string) bool {
	return CanTransition(b.Status, to)
}

// IsParty reports whether userID is the booking's customer or provider.
func (b *Booking) IsParty(userID string) bool {
	return userID != "" && (b.CustomerID == userID || b.ProviderID == userID)
}
