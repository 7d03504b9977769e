package get_me

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/admins"
)

const (
	msgUnknownAdmin  = "администратор не найден"
	msgInactiveAdmin = "администратор отключен"
)

type Handler struct {
	service AdminService
	logger  Logger
}

func NewHandler(service AdminService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/me
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	adminID, ok := middleware.GetAdminID(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnknownAdmin)
		return
	}

	me, err := h.service.GetMe(r.Context(), adminID)
	if err != nil {
		switch {
		case errors.Is(err, admins.ErrAdminNotFound):
			h.logger.Warn("GET /me - Admin not found: admin_id=%s", adminID)
			handlers.RespondUnauthorized(w, msgUnknownAdmin)

		case errors.Is(err, admins.ErrAdminInactive):
			h.logger.Warn("GET /me - Admin inactive: admin_id=%s", adminID)
			handlers.RespondForbidden(w, msgInactiveAdmin)

		default:
			h.logger.Error("GET /me - Failed to get current user: admin_id=%s, error=%v", adminID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /me - Current user retrieved: admin_id=%s, role=%s", adminID, me.Role)
	handlers.RespondJSON(w, http.StatusOK, me)
}
