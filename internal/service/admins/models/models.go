package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// CreateAdminUserRequest запрос на создание администратора
type CreateAdminUserRequest struct {
	Email    string  `json:"email"`
	Role     *string `json:"role,omitempty"`     // По умолчанию admin
	IsActive *bool   `json:"isActive,omitempty"` // По умолчанию true
}

// UpdateAdminUserRequest запрос на частичное обновление администратора
// Email после создания не меняется
type UpdateAdminUserRequest struct {
	Role     *string `json:"role,omitempty"`
	IsActive *bool   `json:"isActive,omitempty"`
}

// AdminUserResponse ответ с данными администратора
type AdminUserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// AdminUserListResponse ответ со списком администраторов
type AdminUserListResponse struct {
	AdminUsers []AdminUserResponse `json:"adminUsers"`
}

// CurrentUserResponse текущий пользователь дашборда
type CurrentUserResponse struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Role      string `json:"role"`
	SalonName string `json:"salonName"`
}

// FromDomainAdminUser конвертирует domain модель в response
func FromDomainAdminUser(a *domain.AdminUser) *AdminUserResponse {
	return &AdminUserResponse{
		ID:        a.ID,
		Email:     a.Email,
		Role:      string(a.Role),
		IsActive:  a.IsActive,
		CreatedAt: a.CreatedAt,
	}
}

// FromDomainAdminUserList конвертирует список администраторов
func FromDomainAdminUserList(items []*domain.AdminUser) *AdminUserListResponse {
	resp := &AdminUserListResponse{AdminUsers: make([]AdminUserResponse, 0, len(items))}
	for _, a := range items {
		resp.AdminUsers = append(resp.AdminUsers, *FromDomainAdminUser(a))
	}
	return resp
}

// FromDomainCurrentUser собирает ответ GET /me
func FromDomainCurrentUser(a *domain.AdminUser, salonName string) *CurrentUserResponse {
	return &CurrentUserResponse{
		ID:        a.ID,
		Email:     a.Email,
		Role:      string(a.Role),
		SalonName: salonName,
	}
}
