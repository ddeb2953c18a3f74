package dto_test

import (
	"servicehub/internal/domains/booking/model"
	"servicehub/internal/domains/booking/model/dto"
	"servicehub/shared/validator"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateBookingRequest_ToModel(t *testing.T) {
	preferred := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	req := dto.CreateBookingRequest{
		ProviderID:  "6f1c2a7e-3b9d-4c1e-9a55-2d8e7f0b1c34",
		Description: "fix sink",
		Address:     "Kathmandu",
		PreferredAt: preferred,
	}

	booking := req.ToModel("customer-1")

	assert.NotEmpty(t, booking.ID)
	assert.Equal(t, "customer-1", booking.CustomerID)
	assert.Equal(t, req.ProviderID, booking.ProviderID)
	assert.Equal(t, model.StatusPending, booking.Status)
	assert.Equal(t, model.PaymentStatusUnpaid, booking.PaymentStatus)
	assert.Equal(t, preferred, booking.PreferredAt)
	assert.False(t, booking.FinalAmount.Valid)
	assert.Nil(t, booking.VerificationCode)
	assert.Equal(t, "customer-1", booking.CreatedBy)
}

func TestCreateBookingRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{
			name:    "valid",
			body:    `{"provider_id":"6f1c2a7e-3b9d-4c1e-9a55-2d8e7f0b1c34","description":"fix sink","address":"Kathmandu","preferred_at":"2026-03-01T09:00:00Z"}`,
			wantErr: false,
		},
		{
			name:    "missing provider",
			body:    `{"description":"fix sink","address":"Kathmandu","preferred_at":"2026-03-01T09:00:00Z"}`,
			wantErr: true,
		},
		{
			name:    "bad time",
			body:    `{"provider_id":"6f1c2a7e-3b9d-4c1e-9a55-2d8e7f0b1c34","description":"fix sink","address":"Kathmandu","preferred_at":"tomorrow"}`,
			wantErr: true,
		},
		{
			name:    "latitude out of range",
			body:    `{"provider_id":"6f1c2a7e-3b9d-4c1e-9a55-2d8e7f0b1c34","description":"fix sink","address":"Kathmandu","latitude":120,"preferred_at":"2026-03-01T09:00:00Z"}`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.CreateBookingRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAcceptBookingRequest_Validation(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{name: "valid", body: `{"total_amount":"1500.50"}`, wantErr: false},
		{name: "numeric literal", body: `{"total_amount":1500}`, wantErr: false},
		{name: "zero", body: `{"total_amount":"0"}`, wantErr: true},
		{name: "negative", body: `{"total_amount":"-10"}`, wantErr: true},
		{name: "three decimals", body: `{"total_amount":"10.505"}`, wantErr: true},
		{name: "missing", body: `{}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var req dto.AcceptBookingRequest

			err := validator.Validate(strings.NewReader(tt.body), &req)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBookingResponse_FromModel(t *testing.T) {
	code := "042917"
	booking := model.Booking{
		ID:               "b-1",
		CustomerID:       "customer-1",
		ProviderID:       "provider-1",
		Status:           model.StatusAccepted,
		FinalAmount:      decimal.NewNullDecimal(decimal.RequireFromString("1500.5")),
		VerificationCode: &code,
	}

	t.Run("provider sees verification code", func(t *testing.T) {
		var res dto.BookingResponse
		res.FromModel(booking, "provider-1")

		require.NotNil(t, res.VerificationCode)
		assert.Equal(t, code, *res.VerificationCode)
		require.NotNil(t, res.FinalAmount)
		assert.Equal(t, "1500.50", *res.FinalAmount)
		assert.Nil(t, res.EstimatedAmount)
	})

	t.Run("customer does not", func(t *testing.T) {
		var res dto.BookingResponse
		res.FromModel(booking, "customer-1")

		assert.Nil(t, res.VerificationCode)
	})
}

func TestGetBookingsResponse_FromModels(t *testing.T) {
	var res dto.GetBookingsResponse
	res.FromModels([]model.Booking{{ID: "b-1"}, {ID: "b-2"}}, "customer-1", 12, 10)

	assert.Len(t, res.Bookings, 2)
	assert.Equal(t, 12, res.TotalData)
	assert.Equal(t, 2, res.TotalPage)
}

func TestBookingPatch_Apply(t *testing.T) {
	scheduled := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	reason := "busy"
	booking := model.Booking{Status: model.StatusPending, PaymentStatus: model.PaymentStatusUnpaid, RejectionReason: &reason}

	dto.BookingPatch{
		Status:      model.StatusAccepted,
		ScheduledAt: &scheduled,
		FinalAmount: decimal.NewNullDecimal(decimal.NewFromInt(900)),
	}.Apply(&booking)

	assert.Equal(t, model.StatusAccepted, booking.Status)
	assert.Equal(t, model.PaymentStatusUnpaid, booking.PaymentStatus)
	assert.Equal(t, &scheduled, booking.ScheduledAt)
	assert.True(t, booking.FinalAmount.Decimal.Equal(decimal.NewFromInt(900)))
	assert.False(t, booking.EstimatedAmount.Valid)
	assert.Equal(t, &reason, booking.RejectionReason)
}
