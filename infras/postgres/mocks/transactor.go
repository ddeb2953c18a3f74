package mocks

import (
	"context"
	"servicehub/infras/postgres"

	"github.com/jmoiron/sqlx"
)

type transactorImpl struct {
}

// WithTransaction implements postgres.Transactor. fn runs with a nil transaction.
func (t *transactorImpl) WithTransaction(_ context.Context, fn func(tx *sqlx.Tx) error) error {
	return fn(nil)
}

func NewTransactor() postgres.Transactor {
	return &transactorImpl{}
}
