package list_admin_users

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/admins"
)

const msgOwnerRequired = "доступно только владельцу салона"

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

// Handle GET /api/v1/admin-users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetAdminID(r.Context())

	result, err := h.service.ListAdminUsers(r.Context(), actorID)
	if err != nil {
		if errors.Is(err, admins.ErrOwnerRequired) {
			h.logger.Warn("GET /admin-users - Owner role required: admin_id=%s", actorID)
			handlers.RespondForbidden(w, msgOwnerRequired)
			return
		}
		h.logger.Error("GET /admin-users - Failed to list admin users: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /admin-users - Admin users retrieved successfully: count=%d", len(result.AdminUsers))
	handlers.RespondJSON(w, http.StatusOK, result)
}
