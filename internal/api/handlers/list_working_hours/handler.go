package list_working_hours

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

type Handler struct {
	service ScheduleService
	logger  Logger
}

func NewHandler(service ScheduleService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/working-hours
// Query params: staffId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	staffID := handlers.QueryString(r, "staffId")

	result, err := h.service.ListWorkingHours(r.Context(), staffID)
	if err != nil {
		h.logger.Error("GET /working-hours - Failed to list working hours: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /working-hours - Working hours retrieved successfully: count=%d", len(result.WorkingHours))
	handlers.RespondJSON(w, http.StatusOK, result)
}
