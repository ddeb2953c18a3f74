package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Auth=MockAuthService

import (
	"context"
	"fmt"
	"servicehub/config"
	"servicehub/infras/jwt"
	"servicehub/infras/otel"
	"servicehub/infras/postgres"
	"servicehub/internal/domains/auth/model/dto"
	providerRepo "servicehub/internal/domains/provider/repository"
	userModel "servicehub/internal/domains/user/model"
	userRepo "servicehub/internal/domains/user/repository"
	"servicehub/shared"
	"servicehub/shared/constant"
	"servicehub/shared/failure"
	"servicehub/shared/password"
	"servicehub/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Auth interface {
	Register(ctx context.Context, req dto.RegisterRequest) (dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
}

type serviceImpl struct {
	userRepo     userRepo.User
	providerRepo providerRepo.Provider
	transactor   postgres.Transactor
	cfg          *config.Config
	otel         otel.Otel
	jwtService   jwt.JWT
}

func New(
	userRepo userRepo.User,
	providerRepo providerRepo.Provider,
	transactor postgres.Transactor,
	cfg *config.Config,
	otel otel.Otel,
	jwt jwt.JWT,
) Auth {
	return &serviceImpl{
		userRepo:     userRepo,
		providerRepo: providerRepo,
		transactor:   transactor,
		cfg:          cfg,
		otel:         otel,
		jwtService:   jwt,
	}
}

// Register creates the account. Providers get their earnings ledger row in the same transaction.
func (s *serviceImpl) Register(ctx context.Context, req dto.RegisterRequest) (res dto.RegisterResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Register")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	exists, err := s.userRepo.Exist(ctx, shared.FilterByField(userModel.FieldEmail, req.Email, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if user exists")

		return res, fmt.Errorf("failed to check if user exists: %w", err)
	}

	if exists {
		return res, failure.Conflict("email already registered") // nolint:wrapcheck
	}

	hashedPassword, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return res, fmt.Errorf("failed to hash password: %w", err)
	}

	user := req.ToUserModel(hashedPassword)

	err = s.transactor.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.userRepo.InsertTx(ctx, tx, user); err != nil {
			log.Error().Err(err).Msg("failed to create user")

			return fmt.Errorf("failed to create user: %w", err)
		}

		if user.Role != constant.RoleProvider {
			return nil
		}

		if err := s.providerRepo.InsertTx(ctx, tx, req.ToProviderModel(user.ID)); err != nil {
			log.Error().Err(err).Msg("failed to create provider")

			return fmt.Errorf("failed to create provider: %w", err)
		}

		return nil
	})
	if shared.IsUniqueViolation(err) {
		return res, failure.Conflict("email already registered") // nolint:wrapcheck
	}

	if err != nil {
		return res, err //nolint:wrapcheck
	}

	res.ID = user.ID
	res.Email = user.Email
	res.Role = user.Role

	return res, nil
}

func (s *serviceImpl) Login(ctx context.Context, req dto.LoginRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.Login")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	user, err := s.userRepo.Get(ctx, shared.FilterByField(userModel.FieldEmail, req.Email, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get user")

		return res, fmt.Errorf("failed to get user: %w", err)
	}

	if user.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, user.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.Unauthorized("invalid email or password") // nolint:wrapcheck
	}

	if !user.Active {
		return res, failure.Forbidden("user account is deactivated") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(user.ID, user.Email, user.Role)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	lastLogin := dto.UpdateLastLoginRequest{LastLogin: timezone.Now()}
	updatedFields := shared.TransformFields(lastLogin, user.ID)

	if err := s.userRepo.Update(ctx, updatedFields, shared.FilterByID(user.ID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Warn().Err(err).Str("user_id", user.ID).Msg("failed to update last login")
	}

	res.FromTokenPair(tokenPair)
	res.Role = user.Role

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	_, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".auth.RefreshToken")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}
