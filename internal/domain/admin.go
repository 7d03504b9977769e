package domain

import "time"

// AdminRole роль администратора салона
type AdminRole string

const (
	RoleAdmin AdminRole = "admin"
	RoleOwner AdminRole = "owner"
)

// MaxEmailLength ограничение колонки admin_users.email
const MaxEmailLength = 254

// IsValid проверяет, что роль известна
func (r AdminRole) IsValid() bool {
	return r == RoleAdmin || r == RoleOwner
}

// AdminUser is a person allowed into the salon dashboard
// Sign-in itself happens outside the service, here only the account is kept
type AdminUser struct {
	ID        string
	Email     string
	Role      AdminRole
	IsActive  bool
	CreatedAt time.Time
}

// IsActiveOwner true для включенного владельца
func (a *AdminUser) IsActiveOwner() bool {
	return a.IsActive && a.Role == RoleOwner
}

// AdminUserUpdate частичное обновление администратора; email не меняется
type AdminUserUpdate struct {
	Role     *AdminRole
	IsActive *bool
}
