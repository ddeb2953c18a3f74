package dto

import (
	"servicehub/infras/jwt"
	providerModel "servicehub/internal/domains/provider/model"
	userModel "servicehub/internal/domains/user/model"
	"servicehub/shared/constant"
	gModel "servicehub/shared/model"
	"servicehub/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type RegisterRequest struct {
	Email           string `json:"email"            validate:"required,email"`
	Password        string `json:"password"         validate:"required,min=8,max=72"`
	FullName        string `json:"full_name"        validate:"required,min=2,max=100"`
	Phone           string `json:"phone"            validate:"omitempty,e164"`
	Role            string `json:"role"             validate:"required,oneof=customer provider"`
	DisplayName     string `json:"display_name"     validate:"omitempty,max=100"`
	ServiceCategory string `json:"service_category" validate:"required_if=Role provider,max=100"`
}

func (r *RegisterRequest) ToUserModel(hashedPassword string) userModel.User {
	now := timezone.Now()

	var phone *string
	if r.Phone != constant.Empty {
		phone = &r.Phone
	}

	return userModel.User{
		ID:       uuid.NewString(),
		Email:    r.Email,
		Password: hashedPassword,
		Role:     r.Role,
		FullName: r.FullName,
		Phone:    phone,
		Active:   true,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

// ToProviderModel builds the empty earnings ledger of a newly registered provider.
func (r *RegisterRequest) ToProviderModel(userID string) providerModel.Provider {
	now := timezone.Now()

	displayName := r.DisplayName
	if displayName == constant.Empty {
		displayName = r.FullName
	}

	return providerModel.Provider{
		UserID:          userID,
		DisplayName:     displayName,
		ServiceCategory: r.ServiceCategory,
		IsActive:        true,
		TotalEarnings:   decimal.Zero,
		PendingEarnings: decimal.Zero,
		Metadata: gModel.Metadata{
			CreatedAt:  now,
			ModifiedAt: now,
			CreatedBy:  constant.ContextGuest,
			ModifiedBy: constant.ContextGuest,
		},
	}
}

type RegisterResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type UpdateLastLoginRequest struct {
	LastLogin time.Time `db:"last_login" json:"last_login" validate:"required"`
}

type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
	Role         string `json:"role"`
}

func (l *LoginResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	l.AccessToken = tokenPair.AccessToken
	l.RefreshToken = tokenPair.RefreshToken
	l.ExpiresIn = tokenPair.ExpiresIn
}

type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type RefreshTokenResponse struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	ExpiresIn    int64  `json:"expires_in"`
}

func (r *RefreshTokenResponse) FromTokenPair(tokenPair *jwt.TokenPair) {
	r.AccessToken = tokenPair.AccessToken
	r.RefreshToken = tokenPair.RefreshToken
	r.ExpiresIn = tokenPair.ExpiresIn
}
