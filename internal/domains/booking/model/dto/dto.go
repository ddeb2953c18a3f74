package dto

import (
	"servicehub/internal/domains/booking/model"
	"servicehub/shared"
	"servicehub/shared/constant"
	gDto "servicehub/shared/dto"
	gModel "servicehub/shared/model"
	"servicehub/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type CreateBookingRequest struct {
	ProviderID  string    `json:"provider_id"  validate:"required,uuid4"`
	Description string    `json:"description"  validate:"required,max=2000"`
	Address     string    `json:"address"      validate:"required,max=500"`
	Latitude    *float64  `json:"latitude"     validate:"omitempty,latitude"`
	Longitude   *float64  `json:"longitude"    validate:"omitempty,longitude"`
	PreferredAt time.Time `json:"preferred_at" validate:"required"`
}

func (c *CreateBookingRequest) ToModel(customerID string) model.Booking {
	now := timezone.Now()

	return model.Booking{
		ID:            uuid.NewString(),
		CustomerID:    customerID,
		ProviderID:    c.ProviderID,
		Description:   c.Description,
		Address:       c.Address,
		Latitude:      c.Latitude,
		Longitude:     c.Longitude,
		PreferredAt:   c.PreferredAt,
		Status:        model.StatusPending,
		PaymentStatus: model.PaymentStatusUnpaid,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  customerID,
			ModifiedBy: customerID,
		},
	}
}

type AcceptBookingRequest struct {
	ScheduledAt *time.Time      `json:"scheduled_at" validate:"omitempty"`
	TotalAmount decimal.Decimal `json:"total_amount" validate:"required,money"`
}

type RejectBookingRequest struct {
	Reason string `json:"reason" validate:"required,max=500"`
}

// BookingPatch lists the columns a lifecycle transition may write. Zero fields are left untouched.
type BookingPatch struct {
	Status           string              `db:"status"`
	PaymentStatus    string              `db:"payment_status"`
	ScheduledAt      *time.Time          `db:"scheduled_at"`
	EstimatedAmount  decimal.NullDecimal `db:"estimated_amount"`
	FinalAmount      decimal.NullDecimal `db:"final_amount"`
	RejectionReason  *string             `db:"rejection_reason"`
	VerificationCode *string             `db:"verification_code"`
	CompletedAt      *time.Time          `db:"completed_at"`
}

// Apply copies the non zero fields of the patch onto booking.
func (p BookingPatch) Apply(booking *model.Booking) {
	if p.Status != constant.Empty {
		booking.Status = p.Status
	}

	if p.PaymentStatus != constant.Empty {
		booking.PaymentStatus = p.PaymentStatus
	}

	if p.ScheduledAt != nil {
		booking.ScheduledAt = p.ScheduledAt
	}

	if p.EstimatedAmount.Valid {
		booking.EstimatedAmount = p.EstimatedAmount
	}

	if p.FinalAmount.Valid {
		booking.FinalAmount = p.FinalAmount
	}

	if p.RejectionReason != nil {
		booking.RejectionReason = p.RejectionReason
	}

	if p.VerificationCode != nil {
		booking.VerificationCode = p.VerificationCode
	}

	if p.CompletedAt != nil {
		booking.CompletedAt = p.CompletedAt
	}
}

type BookingResponse struct {
	ID               string   `json:"id"`
	CustomerID       string   `json:"customer_id"`
	ProviderID       string   `json:"provider_id"`
	Description      string   `json:"description"`
	Address          string   `json:"address"`
	Latitude         *float64 `json:"latitude"`
	Longitude        *float64 `json:"longitude"`
	PreferredAt      string   `json:"preferred_at"`
	ScheduledAt      *string  `json:"scheduled_at"`
	Status           string   `json:"status"`
	PaymentStatus    string   `json:"payment_status"`
	EstimatedAmount  *string  `json:"estimated_amount"`
	FinalAmount      *string  `json:"final_amount"`
	RejectionReason  *string  `json:"rejection_reason"`
	VerificationCode *string  `json:"verification_code,omitempty"`
	CompletedAt      *string  `json:"completed_at"`
	gDto.Metadata
}

// FromModel fills the response for viewerID. The verification code is only shown to the provider.
func (r *BookingResponse) FromModel(booking model.Booking, viewerID string) {
	r.ID = booking.ID
	r.CustomerID = booking.CustomerID
	r.ProviderID = booking.ProviderID
	r.Description = booking.Description
	r.Address = booking.Address
	r.Latitude = booking.Latitude
	r.Longitude = booking.Longitude
	r.PreferredAt = timezone.Format(booking.PreferredAt, constant.DateFormat)
	r.ScheduledAt = formatTime(booking.ScheduledAt)
	r.Status = booking.Status
	r.PaymentStatus = booking.PaymentStatus
	r.EstimatedAmount = formatAmount(booking.EstimatedAmount)
	r.FinalAmount = formatAmount(booking.FinalAmount)
	r.RejectionReason = booking.RejectionReason
	r.CompletedAt = formatTime(booking.CompletedAt)

	if viewerID != constant.Empty && viewerID == booking.ProviderID {
		r.VerificationCode = booking.VerificationCode
	}

	r.Metadata.FromModel(booking.Metadata)
}

type GetBookingsResponse struct {
	Bookings  []BookingResponse `json:"bookings"`
	TotalPage int               `json:"total_page"`
	TotalData int               `json:"total_data"`
}

func (r *GetBookingsResponse) FromModels(models []model.Booking, viewerID string, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Bookings = make([]BookingResponse, len(models))
	for i, mod := range models {
		r.Bookings[i].FromModel(mod, viewerID)
	}
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}

	formatted := timezone.Format(*t, constant.DateFormat)

	return &formatted
}

func formatAmount(amount decimal.NullDecimal) *string {
	if !amount.Valid {
		return nil
	}

	formatted := amount.Decimal.StringFixed(2)

	return &formatted
}
