package create_working_hour

import (
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

// CreateWorkingHourRequest HTTP request model
type CreateWorkingHourRequest struct {
	StaffID   string `json:"staffId"`
	DayOfWeek int    `json:"dayOfWeek"` // 0 = понедельник, 6 = воскресенье
	StartTime string `json:"startTime"` // HH:MM
	EndTime   string `json:"endTime"`
	IsActive  *bool  `json:"isActive,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *CreateWorkingHourRequest) ToServiceRequest() *models.CreateWorkingHourRequest {
	return &models.CreateWorkingHourRequest{
		StaffID:   r.StaffID,
		DayOfWeek: r.DayOfWeek,
		StartTime: r.StartTime,
		EndTime:   r.EndTime,
		IsActive:  r.IsActive,
	}
}
