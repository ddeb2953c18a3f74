package service_test

import (
	"context"
	"errors"
	"net/http"
	"servicehub/infras/otel/mocks"
	providerMocks "servicehub/internal/domains/provider/mocks"
	"servicehub/internal/domains/provider/model"
	"servicehub/internal/domains/provider/service"
	"servicehub/shared/failure"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

func TestProviderService_IsActive(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := providerMocks.NewMockProvider(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	tests := []struct {
		name      string
		setupMock func()
		want      bool
		wantErr   bool
	}{
		{
			name: "active provider",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			want: true,
		},
		{
			name: "unknown or inactive provider",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
			},
			want: false,
		},
		{
			name: "database error",
			setupMock: func() {
				mockRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			got, err := svc.IsActive(context.Background(), "provider-1")

			if tt.wantErr {
				assert.Error(t, err)

				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestProviderService_GetLedger(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := providerMocks.NewMockProvider(ctrl)
	svc := service.New(mockRepo, mocks.NewOtel())

	t.Run("returns counters", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Provider{
			UserID:             "provider-1",
			DisplayName:        "Ram Plumbing",
			IsActive:           true,
			TotalEarnings:      decimal.NewFromInt(1500),
			PendingEarnings:    decimal.RequireFromString("1500.5"),
			TotalCompletedJobs: 1,
		}, nil)

		res, err := svc.GetLedger(context.Background(), "provider-1")

		assert.NoError(t, err)
		assert.Equal(t, "provider-1", res.ProviderID)
		assert.Equal(t, "1500.00", res.TotalEarnings)
		assert.Equal(t, "1500.50", res.PendingEarnings)
		assert.Equal(t, 1, res.TotalCompletedJobs)
	})

	t.Run("not a provider", func(t *testing.T) {
		mockRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.Provider{}, nil)

		_, err := svc.GetLedger(context.Background(), "customer-1")

		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})
}
