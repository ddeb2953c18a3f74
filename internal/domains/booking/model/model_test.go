package model_test

import (
	"servicehub/internal/domains/booking/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	all := []string{
		model.StatusPending,
		model.StatusAccepted,
		model.StatusRejected,
		model.StatusInProgress,
		model.StatusCompleted,
		model.StatusCancelled,
	}

	allowed := map[string][]string{
		model.StatusPending:    {model.StatusAccepted, model.StatusRejected, model.StatusCancelled},
		model.StatusAccepted:   {model.StatusInProgress, model.StatusCompleted, model.StatusCancelled},
		model.StatusInProgress: {model.StatusCompleted},
	}

	for _, from := range all {
		for _, to := range all {
			expected := false

			for _, target := range allowed[from] {
				if target == to {
					expected = true
				}
			}

			assert.Equal(t, expected, model.CanTransition(from, to), "%s -> %s", from, to)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	tests := []struct {
		status   string
		terminal bool
	}{
		{status: model.StatusPending, terminal: false},
		{status: model.StatusAccepted, terminal: false},
		{status: model.StatusInProgress, terminal: false},
		{status: model.StatusRejected, terminal: true},
		{status: model.StatusCompleted, terminal: true},
		{status: model.StatusCancelled, terminal: true},
	}

	for _, tt := range tests {
		t.Run(tt.status, func(t *testing.T) {
			assert.Equal(t, tt.terminal, model.IsTerminal(tt.status))
		})
	}
}

func TestBooking_IsParty(t *testing.T) {
	booking := model.Booking{CustomerID: "customer-1", ProviderID: "provider-1"}

	assert.True(t, booking.IsParty("customer-1"))
	assert.True(t, booking.IsParty("provider-1"))
	assert.False(t, booking.IsParty("stranger"))
	assert.False(t, booking.IsParty(""))
}
