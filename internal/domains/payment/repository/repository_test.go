package repository_test

import (
	"context"
	"errors"
	"servicehub/infras/otel/mocks"
	"servicehub/infras/postgres"
	"servicehub/internal/domains/payment/model"
	"servicehub/internal/domains/payment/repository"
	"servicehub/shared"
	gDto "servicehub/shared/dto"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepository(t *testing.T) (repository.Payment, *sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	sqlxDB := sqlx.NewDb(db, "postgres")

	return repository.New(&postgres.Connection{Read: sqlxDB, Write: sqlxDB}, mocks.NewOtel()), sqlxDB, mock
}

func TestPaymentRepository_GetForUpdateTx(t *testing.T) {
	repo, db, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(`SELECT payments\.id, payments\.amount, payments\.status FROM payments\s+WHERE \(payments\.id = \$1\)\s+FOR UPDATE`).
		ExpectQuery().
		WithArgs("p-1").
		WillReturnRows(sqlmock.NewRows([]string{"id", "amount", "status"}).AddRow("p-1", "1500.00", model.StatusInitiated))

	tx, err := db.Beginx()
	require.NoError(t, err)

	payment, err := repo.GetForUpdateTx(context.Background(), tx, shared.FilterByID("p-1", model.FieldID, model.TableName),
		model.FieldID, model.FieldAmount, model.FieldStatus)

	require.NoError(t, err)
	assert.Equal(t, "p-1", payment.ID)
	assert.True(t, decimal.NewFromInt(1500).Equal(payment.Amount))
	assert.Equal(t, model.StatusInitiated, payment.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_GetForUpdateTx_RequiresFilter(t *testing.T) {
	repo, db, mock := newRepository(t)

	mock.ExpectBegin()

	tx, err := db.Beginx()
	require.NoError(t, err)

	_, err = repo.GetForUpdateTx(context.Background(), tx, gDto.FilterGroup{})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_Get(t *testing.T) {
	tests := []struct {
		name      string
		setupMock func(mock sqlmock.Sqlmock)
		wantID    string
		wantErr   bool
	}{
		{
			name: "found",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(`SELECT payments\.id, payments\.pidx FROM payments\s+WHERE \(payments\.pidx = \$1\)`).
					ExpectQuery().
					WithArgs("px-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "pidx"}).AddRow("p-1", "px-1"))
			},
			wantID: "p-1",
		},
		{
			name: "no rows gives the zero value",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(`SELECT payments\.id, payments\.pidx FROM payments`).
					ExpectQuery().
					WithArgs("px-1").
					WillReturnRows(sqlmock.NewRows([]string{"id", "pidx"}))
			},
		},
		{
			name: "query failure",
			setupMock: func(mock sqlmock.Sqlmock) {
				mock.ExpectPrepare(`SELECT payments\.id, payments\.pidx FROM payments`).
					ExpectQuery().
					WillReturnError(errors.New("connection reset"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, _, mock := newRepository(t)
			tt.setupMock(mock)

			payment, err := repo.Get(context.Background(), shared.FilterByField(model.FieldPidx, "px-1", model.TableName),
				model.FieldID, model.FieldPidx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantID, payment.ID)
			}

			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestPaymentRepository_ExistTx(t *testing.T) {
	repo, db, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectPrepare(`SELECT EXISTS\(SELECT 1 FROM payments\s+WHERE \(payments\.booking_id = \$1 AND payments\.status = \$2\)\s*\)`).
		ExpectQuery().
		WithArgs("b-1", model.StatusCompleted).
		WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

	tx, err := db.Beginx()
	require.NoError(t, err)

	filter := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{Field: model.FieldBookingID, Operator: gDto.FilterOperatorEq, Value: "b-1", Table: model.TableName},
			gDto.Filter{Field: model.FieldStatus, Operator: gDto.FilterOperatorEq, Value: model.StatusCompleted, Table: model.TableName},
		},
	}

	exist, err := repo.ExistTx(context.Background(), tx, filter)

	require.NoError(t, err)
	assert.True(t, exist)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPaymentRepository_UpdateTx(t *testing.T) {
	repo, db, mock := newRepository(t)

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE payments SET refund_reason = \$1, status = \$2\s+WHERE \(payments\.id = \$3\)`).
		WithArgs("duplicate payment", model.StatusRefundRequested, "p-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	tx, err := db.Beginx()
	require.NoError(t, err)

	err = repo.UpdateTx(context.Background(), tx, map[string]any{
		"status":        model.StatusRefundRequested,
		"refund_reason": "duplicate payment",
	}, shared.FilterByID("p-1", model.FieldID, model.TableName))

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}
