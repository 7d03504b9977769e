package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/admins"
)

// AdminIDHeader заголовок с ID администратора салона
// Сам вход (magic link) выполняется снаружи, сюда приходит уже проверенный ID
const AdminIDHeader = "X-Admin-ID"

const (
	msgMissingAdminID = "отсутствует ID администратора"
	msgUnknownAdmin   = "администратор не найден"
	msgInactiveAdmin  = "администратор отключен"
)

type contextKey string

const adminIDKey contextKey = "adminID"

// AdminVerifier проверяет ID администратора
type AdminVerifier interface {
	VerifyAdmin(ctx context.Context, id string) (*domain.AdminUser, error)
}

// Auth требует заголовок X-Admin-ID включенного администратора и кладет ID в контекст
func Auth(verifier AdminVerifier) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			adminID := strings.TrimSpace(r.Header.Get(AdminIDHeader))
			if adminID == "" {
				handlers.RespondUnauthorized(w, msgMissingAdminID)
				return
			}

			if _, err := verifier.VerifyAdmin(r.Context(), adminID); err != nil {
				switch {
				case errors.Is(err, admins.ErrAdminNotFound):
					handlers.RespondUnauthorized(w, msgUnknownAdmin)
				case errors.Is(err, admins.ErrAdminInactive):
					handlers.RespondForbidden(w, msgInactiveAdmin)
				default:
					handlers.RespondInternalError(w)
				}
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminID достает ID администратора из контекста
func GetAdminID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(adminIDKey).(string)
	return id, ok && id != ""
}

// WithAdminID кладет ID администратора в контекст
func WithAdminID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, adminIDKey, id)
}
