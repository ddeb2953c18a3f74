package repository

//go:generate go run go.uber.org/mock/mockgen -source=./repository.go -destination=../mocks/repository_mock.go -package=mocks

import (
	"context"
	"errors"
	"fmt"
	"servicehub/infras/otel"
	"servicehub/infras/postgres"
	"servicehub/internal/domains/provider/model"
	"servicehub/shared/constant"
	gDto "servicehub/shared/dto"
	"servicehub/shared/logger"
	gRepo "servicehub/shared/repository"
	"servicehub/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
)

var ErrProviderNotCredited = errors.New("provider ledger row not found")

const queryCreditEarnings = `UPDATE service_providers
SET total_earnings = total_earnings + $1,
	pending_earnings = pending_earnings + $1,
	total_completed_jobs = total_completed_jobs + 1,
	modified_at = $2,
	modified_by = $3
WHERE user_id = $4`

type Provider interface {
	InsertTx(ctx context.Context, sqltx *sqlx.Tx, model model.Provider) error
	Get(ctx context.Context, filter gDto.FilterGroup, columns ...string) (model.Provider, error)
	Exist(ctx context.Context, filter gDto.FilterGroup) (bool, error)
	CreditEarningsTx(ctx context.Context, sqltx *sqlx.Tx, providerID string, amount decimal.Decimal, actor string) error
}

type repositoryImpl struct {
	gRepo.Repository[model.Provider]
	db   *postgres.Connection
	otel otel.Otel
}

func New(db *postgres.Connection, otel otel.Otel) Provider {
	return &repositoryImpl{
		Repository: gRepo.NewRepository[model.Provider](model.EntityName, model.TableName, model.FieldUserID, db, otel),
		db:         db,
		otel:       otel,
	}
}

// CreditEarningsTx applies one fund release to the ledger in a single statement inside the caller's transaction.
func (r *repositoryImpl) CreditEarningsTx(ctx context.Context, sqltx *sqlx.Tx, providerID string, amount decimal.Decimal, actor string) (err error) {
	ctx, scope := r.otel.NewScope(ctx, constant.OtelRepositoryScopeName, constant.OtelRepositoryScopeName+".provider.CreditEarningsTx")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	scope.SetAttribute(constant.OtelQueryAttributeKey, queryCreditEarnings)

	result, err := sqltx.ExecContext(ctx, queryCreditEarnings, amount, timezone.Now(), actor, providerID)
	if err != nil {
		logger.ErrorWithStack(err)

		return fmt.Errorf("failed to credit provider earnings: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read credited rows: %w", err)
	}

	if affected == 0 {
		return ErrProviderNotCredited
	}

	return nil
}
