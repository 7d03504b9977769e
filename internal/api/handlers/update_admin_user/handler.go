package update_admin_user

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/admins"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgNotFound           = "администратор не найден"
	msgInvalidRole        = "роль должна быть admin или owner"
	msgLastOwner          = "в салоне должен остаться хотя бы один активный владелец"
	msgOwnerRequired      = "доступно только владельцу салона"
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

// Handle PATCH /api/v1/admin-users/{adminUserId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetAdminID(r.Context())
	adminUserID := mux.Vars(r)["adminUserId"]

	var req UpdateAdminUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin-users/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateAdminUser(r.Context(), actorID, adminUserID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, admins.ErrOwnerRequired):
			h.logger.Warn("PATCH /admin-users/{id} - Owner role required: admin_id=%s", actorID)
			handlers.RespondForbidden(w, msgOwnerRequired)

		case errors.Is(err, admins.ErrAdminNotFound):
			h.logger.Warn("PATCH /admin-users/{id} - Admin user not found: admin_user_id=%s", adminUserID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, admins.ErrInvalidRole):
			h.logger.Warn("PATCH /admin-users/{id} - Invalid role: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRole)

		case errors.Is(err, admins.ErrLastOwner):
			h.logger.Warn("PATCH /admin-users/{id} - Last active owner: admin_user_id=%s", adminUserID)
			handlers.RespondConflict(w, msgLastOwner)

		default:
			h.logger.Error("PATCH /admin-users/{id} - Failed to update admin user: admin_user_id=%s, error=%v", adminUserID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin-users/{id} - Admin user updated successfully: admin_user_id=%s", adminUserID)
	handlers.RespondJSON(w, http.StatusOK, result)
}
