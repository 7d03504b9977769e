package create_admin_user

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/admins"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidEmail       = "некорректный email"
	msgInvalidRole        = "роль должна быть admin или owner"
	msgEmailTaken         = "email уже зарегистрирован"
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

// Handle POST /api/v1/admin-users
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	actorID, _ := middleware.GetAdminID(r.Context())

	var req CreateAdminUserRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin-users - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateAdminUser(r.Context(), actorID, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, admins.ErrOwnerRequired):
			h.logger.Warn("POST /admin-users - Owner role required: admin_id=%s", actorID)
			handlers.RespondForbidden(w, msgOwnerRequired)

		case errors.Is(err, admins.ErrInvalidEmail):
			h.logger.Warn("POST /admin-users - Invalid email: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, admins.ErrInvalidRole):
			h.logger.Warn("POST /admin-users - Invalid role: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRole)

		case errors.Is(err, admins.ErrEmailTaken):
			h.logger.Warn("POST /admin-users - Email already registered")
			handlers.RespondConflict(w, msgEmailTaken)

		default:
			h.logger.Error("POST /admin-users - Failed to create admin user: error=%v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin-users - Admin user created successfully: admin_user_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
