package create_staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidName        = "имя мастера обязательно и не длиннее 100 символов"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle POST /api/v1/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateStaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.CreateStaff(r.Context(), req.ToServiceRequest())
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidName) {
			h.logger.Warn("POST /staff - Invalid name: %v", err)
			handlers.RespondBadRequest(w, msgInvalidName)
			return
		}
		h.logger.Error("POST /staff - Failed to create staff: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /staff - Staff created successfully: staff_id=%s", result.ID)
	handlers.RespondJSON(w, http.StatusCreated, result)
}
