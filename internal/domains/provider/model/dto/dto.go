package dto

import (
	"servicehub/internal/domains/provider/model"
	gDto "servicehub/shared/dto"
)

type LedgerResponse struct {
	ProviderID         string `json:"provider_id"`
	DisplayName        string `json:"display_name"`
	ServiceCategory    string `json:"service_category"`
	IsActive           bool   `json:"is_active"`
	TotalEarnings      string `json:"total_earnings"`
	PendingEarnings    string `json:"pending_earnings"`
	TotalCompletedJobs int    `json:"total_completed_jobs"`
	gDto.Metadata
}

func (r *LedgerResponse) FromModel(provider model.Provider) {
	r.ProviderID = provider.UserID
	r.DisplayName = provider.DisplayName
	r.ServiceCategory = provider.ServiceCategory
	r.IsActive = provider.IsActive
	r.TotalEarnings = provider.TotalEarnings.StringFixed(2)
	r.PendingEarnings = provider.PendingEarnings.StringFixed(2)
	r.TotalCompletedJobs = provider.TotalCompletedJobs
	r.Metadata.FromModel(provider.Metadata)
}
