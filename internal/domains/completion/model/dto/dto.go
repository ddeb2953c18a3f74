package dto

import (
	bookingModel "servicehub/internal/domains/booking/model"
	paymentModel "servicehub/internal/domains/payment/model"
	"servicehub/shared/constant"
	"servicehub/shared/timezone"
)

const (
	MessageAwaitingVerification = "share this code with the provider once the work is done"
	MessageVerified             = "work completed and verified"
	MessageReleased             = "work completed, funds released to provider"
)

type CompletionOtpResponse struct {
	BookingID     string  `json:"booking_id"`
	PaymentID     string  `json:"payment_id"`
	CompletionOTP *string `json:"completion_otp"`
	OTPVerified   bool    `json:"otp_verified"`
	Message       string  `json:"message"`
}

func (r *CompletionOtpResponse) FromModel(payment paymentModel.Payment) {
	r.BookingID = payment.BookingID
	r.PaymentID = payment.ID
	r.OTPVerified = payment.OTPVerified

	if payment.OTPVerified {
		r.Message = MessageVerified

		return
	}

	r.CompletionOTP = payment.CompletionOTP
	r.Message = MessageAwaitingVerification
}

type VerifyCompletionRequest struct {
	OTP string `json:"otp" validate:"required,numeric,len=6"`
}

type VerifyCompletionResponse struct {
	BookingID      string `json:"booking_id"`
	PaymentID      string `json:"payment_id"`
	BookingStatus  string `json:"booking_status"`
	PaymentStatus  string `json:"payment_status"`
	AmountReleased string `json:"amount_released"`
	CompletedAt    string `json:"completed_at"`
	Message        string `json:"message"`
}

func (r *VerifyCompletionResponse) FromModels(booking bookingModel.Booking, payment paymentModel.Payment) {
	r.BookingID = booking.ID
	r.PaymentID = payment.ID
	r.BookingStatus = booking.Status
	r.PaymentStatus = booking.PaymentStatus
	r.AmountReleased = payment.Amount.StringFixed(2)
	r.Message = MessageReleased

	if booking.CompletedAt != nil {
		r.CompletedAt = timezone.Format(*booking.CompletedAt, constant.DateFormat)
	}
}
