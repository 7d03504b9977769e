package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Request модели

// CreateServiceRequest запрос на создание услуги
type CreateServiceRequest struct {
	NamePublic  string `json:"namePublic"`
	DurationMin int    `json:"durationMin"`
	IsActive    *bool  `json:"isActive,omitempty"` // По умолчанию true
}

// UpdateServiceRequest запрос на частичное обновление услуги
type UpdateServiceRequest struct {
	NamePublic  *string `json:"namePublic,omitempty"`
	DurationMin *int    `json:"durationMin,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}

// CreateStaffRequest запрос на создание мастера
type CreateStaffRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// UpdateStaffRequest запрос на частичное обновление мастера
type UpdateStaffRequest struct {
	Name     *string `json:"name,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// ToDomainUpdate конвертирует request в domain обновление
func (r *UpdateServiceRequest) ToDomainUpdate() domain.ServiceUpdate {
	return domain.ServiceUpdate{
		NamePublic:  r.NamePublic,
		DurationMin: r.DurationMin,
		IsActive:    r.IsActive,
	}
}

// ToDomainUpdate конвертирует request в domain обновление
func (r *UpdateStaffRequest) ToDomainUpdate() domain.StaffUpdate {
	return domain.StaffUpdate{
		Name:     r.Name,
		IsActive: r.IsActive,
	}
}

// Response модели

// ServiceResponse ответ с данными услуги
type ServiceResponse struct {
	ID          string    `json:"id"`
	NamePublic  string    `json:"namePublic"`
	DurationMin int       `json:"durationMin"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
}

// ServiceListResponse ответ со списком услуг
type ServiceListResponse struct {
	Services []ServiceResponse `json:"services"`
}

// StaffResponse ответ с данными мастера
type StaffResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// StaffListResponse ответ со списком мастеров
type StaffListResponse struct {
	Staff []StaffResponse `json:"staff"`
}

// Методы конвертации

// FromDomainService конвертирует domain модель в DTO
func FromDomainService(s *domain.Service) *ServiceResponse {
	if s == nil {
		return nil
	}
	return &ServiceResponse{
		ID:          s.ID,
		NamePublic:  s.NamePublic,
		DurationMin: s.DurationMin,
		IsActive:    s.IsActive,
		CreatedAt:   s.CreatedAt,
	}
}

// FromDomainServiceList конвертирует список domain моделей в DTO
func FromDomainServiceList(services []*domain.Service) *ServiceListResponse {
	resp := &ServiceListResponse{Services: make([]ServiceResponse, 0, len(services))}
	for _, s := range services {
		if r := FromDomainService(s); r != nil {
			resp.Services = append(resp.Services, *r)
		}
	}
	return resp
}

// FromDomainStaff конвертирует domain модель в DTO
func FromDomainStaff(s *domain.Staff) *StaffResponse {
	if s == nil {
		return nil
	}
	return &StaffResponse{
		ID:        s.ID,
		Name:      s.Name,
		IsActive:  s.IsActive,
		CreatedAt: s.CreatedAt,
	}
}

// FromDomainStaffList конвертирует список domain моделей в DTO
func FromDomainStaffList(staff []*domain.Staff) *StaffListResponse {
	resp := &StaffListResponse{Staff: make([]StaffResponse, 0, len(staff))}
	for _, s := range staff {
		if r := FromDomainStaff(s); r != nil {
			resp.Staff = append(resp.Staff, *r)
		}
	}
	return resp
}
