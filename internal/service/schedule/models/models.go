package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// CreateWorkingHourRequest запрос на создание рабочих часов
type CreateWorkingHourRequest struct {
	StaffID   string `json:"staffId"`
	DayOfWeek int    `json:"dayOfWeek"` // 0 = понедельник
	StartTime string `json:"startTime"` // "09:00"
	EndTime   string `json:"endTime"`   // "17:00"
	IsActive  *bool  `json:"isActive,omitempty"`
}

// UpdateWorkingHourRequest запрос на частичное обновление рабочих часов
type UpdateWorkingHourRequest struct {
	DayOfWeek *int    `json:"dayOfWeek,omitempty"`
	StartTime *string `json:"startTime,omitempty"`
	EndTime   *string `json:"endTime,omitempty"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

// CreateBlockRequest запрос на создание блокировки (отпуск, больничный)
type CreateBlockRequest struct {
	StaffID string    `json:"staffId"`
	StartDT time.Time `json:"startDt"`
	EndDT   time.Time `json:"endDt"`
	Reason  string    `json:"reason,omitempty"`
}

// ListBlocksRequest фильтр блокировок
type ListBlocksRequest struct {
	From    *time.Time
	To      *time.Time
	StaffID *string
}

// Response модели

// WorkingHourResponse ответ с рабочими часами
type WorkingHourResponse struct {
	ID        string `json:"id"`
	StaffID   string `json:"staffId"`
	DayOfWeek int    `json:"dayOfWeek"`
	DayName   string `json:"dayName"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	IsActive  bool   `json:"isActive"`
}

// WorkingHourListResponse ответ со списком рабочих часов
type WorkingHourListResponse struct {
	WorkingHours []WorkingHourResponse `json:"workingHours"`
}

// BlockResponse ответ с блокировкой
type BlockResponse struct {
	ID        string    `json:"id"`
	StaffID   string    `json:"staffId"`
	StaffName string    `json:"staffName,omitempty"`
	StartDT   time.Time `json:"startDt"`
	EndDT     time.Time `json:"endDt"`
	Reason    string    `json:"reason,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// BlockListResponse ответ со списком блокировок
type BlockListResponse struct {
	Blocks []BlockResponse `json:"blocks"`
}

// Методы конвертации

// FromDomainWorkingHour конвертирует domain модель в DTO
func FromDomainWorkingHour(h *domain.WorkingHour) *WorkingHourResponse {
	if h == nil {
		return nil
	}
	resp := &WorkingHourResponse{
		ID:        h.ID,
		StaffID:   h.StaffID,
		DayOfWeek: h.DayOfWeek,
		StartTime: h.StartTime.String(),
		EndTime:   h.EndTime.String(),
		IsActive:  h.IsActive,
	}
	if h.DayOfWeek >= domain.MinDayOfWeek && h.DayOfWeek <= domain.MaxDayOfWeek {
		resp.DayName = domain.WeekdayNames[h.DayOfWeek]
	}
	return resp
}

// FromDomainWorkingHourList конвертирует список domain моделей в DTO
func FromDomainWorkingHourList(hours []*domain.WorkingHour) *WorkingHourListResponse {
	resp := &WorkingHourListResponse{WorkingHours: make([]WorkingHourResponse, 0, len(hours))}
	for _, h := range hours {
		if r := FromDomainWorkingHour(h); r != nil {
			resp.WorkingHours = append(resp.WorkingHours, *r)
		}
	}
	return resp
}

// FromDomainBlock конвертирует domain модель в DTO
func FromDomainBlock(b *domain.Block) *BlockResponse {
	if b == nil {
		return nil
	}
	return &BlockResponse{
		ID:        b.ID,
		StaffID:   b.StaffID,
		StaffName: b.StaffName,
		StartDT:   b.StartDT,
		EndDT:     b.EndDT,
		Reason:    b.Reason,
		CreatedAt: b.CreatedAt,
	}
}

// FromDomainBlockList конвертирует список domain моделей в DTO
func FromDomainBlockList(blocks []*domain.Block) *BlockListResponse {
	resp := &BlockListResponse{Blocks: make([]BlockResponse, 0, len(blocks))}
	for _, b := range blocks {
		if r := FromDomainBlock(b); r != nil {
			resp.Blocks = append(resp.Blocks, *r)
		}
	}
	return resp
}
