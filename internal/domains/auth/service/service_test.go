package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"servicehub/config"
	"servicehub/infras/jwt"
	jwtMocks "servicehub/infras/jwt/mocks"
	"servicehub/infras/otel/mocks"
	postgresMocks "servicehub/infras/postgres/mocks"
	"servicehub/internal/domains/auth/model/dto"
	"servicehub/internal/domains/auth/service"
	providerMocks "servicehub/internal/domains/provider/mocks"
	providerModel "servicehub/internal/domains/provider/model"
	userMocks "servicehub/internal/domains/user/mocks"
	userModel "servicehub/internal/domains/user/model"
	"servicehub/shared/constant"
	"servicehub/shared/failure"
	gModel "servicehub/shared/model"
	"servicehub/shared/password"
	"servicehub/shared/timezone"
)

type fixture struct {
	userRepo     *userMocks.MockUser
	providerRepo *providerMocks.MockProvider
	jwt          *jwtMocks.MockJWT
	svc          service.Auth
}

func newFixture(t *testing.T) fixture {
	ctrl := gomock.NewController(t)

	f := fixture{
		userRepo:     userMocks.NewMockUser(ctrl),
		providerRepo: providerMocks.NewMockProvider(ctrl),
		jwt:          jwtMocks.NewMockJWT(ctrl),
	}
	f.svc = service.New(f.userRepo, f.providerRepo, postgresMocks.NewTransactor(), &config.Config{}, mocks.NewOtel(), f.jwt)

	return f
}

func TestAuthService_Register(t *testing.T) {
	customer := dto.RegisterRequest{
		Email:    "asha@example.com",
		Password: "password123",
		FullName: "Asha",
		Role:     constant.RoleCustomer,
	}

	provider := dto.RegisterRequest{
		Email:           "ram@example.com",
		Password:        "password123",
		FullName:        "Ram",
		Role:            constant.RoleProvider,
		ServiceCategory: "plumbing",
	}

	tests := []struct {
		name      string
		req       dto.RegisterRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "customer registers without ledger",
			req:  customer,
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.userRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, user userModel.User) error {
						assert.Equal(t, constant.RoleCustomer, user.Role)
						assert.NotEqual(t, customer.Password, user.Password)

						return nil
					})
			},
		},
		{
			name: "provider registers with ledger",
			req:  provider,
			setupMock: func(f fixture) {
				var userID string

				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.userRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, user userModel.User) error {
						userID = user.ID

						return nil
					})
				f.providerRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, _ *sqlx.Tx, p providerModel.Provider) error {
						assert.Equal(t, userID, p.UserID)
						assert.Equal(t, "plumbing", p.ServiceCategory)

						return nil
					})
			},
		},
		{
			name: "ledger insert fails",
			req:  provider,
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.userRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				f.providerRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("insert failed"))
			},
			wantCode: http.StatusInternalServerError,
		},
		{
			name: "email taken",
			req:  customer,
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "email taken by a concurrent registration",
			req:  customer,
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)
				f.userRepo.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&pq.Error{Code: "23505", Constraint: "users_email_key"})
			},
			wantCode: http.StatusConflict,
		},
		{
			name: "exist check fails",
			req:  customer,
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, errors.New("timeout"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			res, err := f.svc.Register(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, res.ID)
			assert.Equal(t, tt.req.Role, res.Role)
		})
	}
}

func TestAuthService_Login(t *testing.T) {
	hash, err := password.Hash("password")
	require.NoError(t, err)

	validUser := userModel.User{
		ID:       "user-id-123",
		Email:    "test@example.com",
		Password: hash,
		Role:     constant.RoleCustomer,
		FullName: "Test User",
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "system",
			ModifiedBy: "system",
		},
	}

	tests := []struct {
		name      string
		req       dto.LoginRequest
		setupMock func(f fixture)
		wantCode  int
	}{
		{
			name: "successful login",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				f.jwt.EXPECT().
					GenerateTokenPair(validUser.ID, validUser.Email, validUser.Role).
					Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name: "last login failure does not block login",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				f.jwt.EXPECT().
					GenerateTokenPair(validUser.ID, validUser.Email, validUser.Role).
					Return(&jwt.TokenPair{AccessToken: "access-token", RefreshToken: "refresh-token"}, nil)
				f.userRepo.EXPECT().Update(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("update error"))
			},
		},
		{
			name: "user not found",
			req:  dto.LoginRequest{Email: "nonexistent@example.com", Password: "password"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(userModel.User{}, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "wrong password",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "wrongpassword"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
			},
			wantCode: http.StatusUnauthorized,
		},
		{
			name: "inactive user",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func(f fixture) {
				inactiveUser := validUser
				inactiveUser.Active = false

				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactiveUser, nil)
			},
			wantCode: http.StatusForbidden,
		},
		{
			name: "token generation error",
			req:  dto.LoginRequest{Email: "test@example.com", Password: "password"},
			setupMock: func(f fixture) {
				f.userRepo.EXPECT().Get(gomock.Any(), gomock.Any()).Return(validUser, nil)
				f.jwt.EXPECT().
					GenerateTokenPair(validUser.ID, validUser.Email, validUser.Role).
					Return(nil, errors.New("token generation failed"))
			},
			wantCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.Login(context.Background(), tt.req)

			if tt.wantCode != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "access-token", result.AccessToken)
			assert.Equal(t, "refresh-token", result.RefreshToken)
			assert.Equal(t, constant.RoleCustomer, result.Role)
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func(f fixture)
		wantErr   bool
	}{
		{
			name: "successful token refresh",
			req:  dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"},
			setupMock: func(f fixture) {
				f.jwt.EXPECT().
					RefreshTokens("valid-refresh-token").
					Return(&jwt.TokenPair{AccessToken: "new-access-token", RefreshToken: "new-refresh-token"}, nil)
			},
		},
		{
			name: "invalid refresh token",
			req:  dto.RefreshTokenRequest{RefreshToken: "invalid-refresh-token"},
			setupMock: func(f fixture) {
				f.jwt.EXPECT().
					RefreshTokens("invalid-refresh-token").
					Return(nil, errors.New("invalid token"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setupMock(f)

			result, err := f.svc.RefreshToken(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, http.StatusUnauthorized, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.NotEmpty(t, result.AccessToken)
			assert.NotEmpty(t, result.RefreshToken)
		})
	}
}
