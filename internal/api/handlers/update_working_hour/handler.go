package update_working_hour

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidData        = "некорректные рабочие часы"
	msgNotFound           = "рабочие часы не найдены"
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

// Handle PATCH /api/v1/working-hours/{id}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req UpdateWorkingHourRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /working-hours/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.UpdateWorkingHour(r.Context(), id, req.ToServiceRequest())
	if err != nil {
		switch {
		case errors.Is(err, schedule.ErrWorkingHourNotFound):
			h.logger.Warn("PATCH /working-hours/{id} - Not found: id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, schedule.ErrInvalidDayOfWeek),
			errors.Is(err, schedule.ErrInvalidTimeRange),
			errors.Is(err, schedule.ErrInvalidInput):
			h.logger.Warn("PATCH /working-hours/{id} - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("PATCH /working-hours/{id} - Failed to update: id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /working-hours/{id} - Working hour updated successfully: id=%s", id)
	handlers.RespondJSON(w, http.StatusOK, result)
}
