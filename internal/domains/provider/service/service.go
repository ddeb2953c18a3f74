package service

//go:generate go run go.uber.org/mock/mockgen -source=./service.go -destination=../mocks/service_mock.go -package=mocks -mock_names=Provider=MockProviderService

import (
	"context"
	"fmt"
	"servicehub/infras/otel"
	"servicehub/internal/domains/provider/model"
	"servicehub/internal/domains/provider/model/dto"
	"servicehub/internal/domains/provider/repository"
	"servicehub/shared"
	"servicehub/shared/constant"
	gDto "servicehub/shared/dto"
	"servicehub/shared/failure"

	"github.com/rs/zerolog/log"
)

type Provider interface {
	IsActive(ctx context.Context, providerID string) (bool, error)
	GetLedger(ctx context.Context, providerID string) (dto.LedgerResponse, error)
}

type serviceImpl struct {
	repo repository.Provider
	otel otel.Otel
}

func New(repo repository.Provider, otel otel.Otel) Provider {
	return &serviceImpl{
		repo: repo,
		otel: otel,
	}
}

// IsActive reports whether providerID resolves to an active service provider account.
func (s *serviceImpl) IsActive(ctx context.Context, providerID string) (active bool, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".provider.IsActive")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldUserID, Operator: gDto.FilterOperatorEq, Value: providerID, Table: model.TableName},
			gDto.Filter{Field: model.FieldIsActive, Operator: gDto.FilterOperatorEq, Value: true, Table: model.TableName},
		},
	}

	active, err = s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Str("provider_id", providerID).Msg("failed to check provider")

		return false, fmt.Errorf("failed to check provider: %w", err)
	}

	return active, nil
}

func (s *serviceImpl) GetLedger(ctx context.Context, providerID string) (res dto.LedgerResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".provider.GetLedger")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	provider, err := s.repo.Get(ctx, shared.FilterByField(model.FieldUserID, providerID, model.TableName))
	if err != nil {
		log.Error().Err(err).Str("provider_id", providerID).Msg("failed to get provider ledger")

		return res, fmt.Errorf("failed to get provider ledger: %w", err)
	}

	if provider.UserID == constant.Empty {
		return res, failure.NotFound("provider not found") // nolint:wrapcheck
	}

	res.FromModel(provider)

	return res, nil
}
