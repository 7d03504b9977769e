package update_working_hour

import (
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

// UpdateWorkingHourRequest HTTP request model, все поля опциональны
type UpdateWorkingHourRequest struct {
	DayOfWeek *int    `json:"dayOfWeek,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateWorkingHourRequest) ToServiceRequest() *models.UpdateWorkingHourRequest {
	return &models.UpdateWorkingHourRequest{
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		IsActive:  r.IsActive,
	}
}
