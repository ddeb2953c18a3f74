package model

import (
	"servicehub/shared/model"

	"github.com/shopspring/decimal"
)

const (
	TableName  = "service_providers"
	EntityName = "provider"

	FieldUserID             = "user_id"
	FieldDisplayName        = "display_name"
	FieldServiceCategory    = "service_category"
	FieldIsActive           = "is_active"
	FieldTotalEarnings      = "total_earnings"
	FieldPendingEarnings    = "pending_earnings"
	FieldTotalCompletedJobs = "total_completed_jobs"
)

// Provider carries the earnings ledger. The counters only ever grow and only through the completion gate.
type Provider struct {
	UserID             string          `db:"user_id"`
	DisplayName        string          `db:"display_name"`
	ServiceCategory    string          `db:"service_category"`
	IsActive           bool            `db:"is_active"`
	TotalEarnings      decimal.Decimal `db:"total_earnings"`
	PendingEarnings    decimal.Decimal `db:"pending_earnings"`
	TotalCompletedJobs int             `db:"total_completed_jobs"`
	model.Metadata
}
