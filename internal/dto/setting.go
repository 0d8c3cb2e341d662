package dto

import "github.com/craftscrm/crm_backend/internal/core/domain"

// SettingInput is one key/value pair of a settings update.
type SettingInput struct {
	Key   string `json:"key" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// UpdateSettingsRequest upserts every submitted setting in one operation.
type UpdateSettingsRequest struct {
	Settings []SettingInput `json:"settings" binding:"required,min=1,dive"`
}

// SettingsOverview is the settings screen payload: current settings, the
// formatted action history and one page of raw log entries.
type SettingsOverview struct {
	Settings     []domain.Setting        `json:"settings"`
	Logs         []string                `json:"logs"`
	LogsPaginate *Page[domain.SystemLog] `json:"logsPaginate"`
}
