package completion_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"servicehub/infras/otel/mocks"
	completionMocks "servicehub/internal/domains/completion/mocks"
	"servicehub/internal/domains/completion/model/dto"
	"servicehub/internal/handlers/completion"
	"servicehub/shared/constant"
	"servicehub/shared/failure"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"
)

const (
	bookingID  = "3f1c9a52-6c1e-4f5e-9d8a-2b7f1e0c4d11"
	providerID = "provider-1"
)

func newRouter(svc *completionMocks.MockCompletionService) http.Handler {
	handler := completion.New(svc, mocks.NewOtel())

	router := chi.NewRouter()
	router.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), constant.ContextKeyUserID, providerID)))
		})
	})
	router.Route("/bookings", handler.Router)

	return router
}

func TestHandler_VerifyCompletionOtp(t *testing.T) {
	tests := []struct {
		name      string
		body      string
		setupMock func(svc *completionMocks.MockCompletionService)
		wantCode  int
	}{
		{
			name: "released",
			body: `{"otp":"482913"}`,
			setupMock: func(svc *completionMocks.MockCompletionService) {
				svc.EXPECT().VerifyCompletionOtp(gomock.Any(), bookingID, providerID, dto.VerifyCompletionRequest{OTP: "482913"}).
					Return(dto.VerifyCompletionResponse{BookingID: bookingID, BookingStatus: "completed"}, nil)
			},
			wantCode: http.StatusOK,
		},
		{
			name:      "code not numeric",
			body:      `{"otp":"48a913"}`,
			setupMock: func(_ *completionMocks.MockCompletionService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name:      "code too short",
			body:      `{"otp":"4829"}`,
			setupMock: func(_ *completionMocks.MockCompletionService) {},
			wantCode:  http.StatusBadRequest,
		},
		{
			name: "locked out",
			body: `{"otp":"000000"}`,
			setupMock: func(svc *completionMocks.MockCompletionService) {
				svc.EXPECT().VerifyCompletionOtp(gomock.Any(), bookingID, providerID, gomock.Any()).
					Return(dto.VerifyCompletionResponse{}, failure.TooManyRequests("too many invalid completion codes, try again later"))
			},
			wantCode: http.StatusTooManyRequests,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := completionMocks.NewMockCompletionService(gomock.NewController(t))
			tt.setupMock(svc)

			router := newRouter(svc)

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(http.MethodPost, "/bookings/"+bookingID+"/completion-otp/verify", strings.NewReader(tt.body))
			router.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantCode, rec.Code)
		})
	}
}

func TestHandler_MalformedBookingID(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		body   string
	}{
		{name: "get code", method: http.MethodGet, path: "/bookings/abc/completion-otp"},
		{name: "verify code", method: http.MethodPost, path: "/bookings/42/completion-otp/verify", body: `{"otp":"482913"}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := completionMocks.NewMockCompletionService(gomock.NewController(t))

			rec := httptest.NewRecorder()
			req := httptest.NewRequest(tt.method, tt.path, strings.NewReader(tt.body))
			newRouter(svc).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Contains(t, rec.Body.String(), "id must be a valid uuid")
		})
	}
}
