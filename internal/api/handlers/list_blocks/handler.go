package list_blocks

import (
	"errors"
	"net/http"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule"
	"github.com/m04kA/SMC-SalonService/internal/service/schedule/models"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgInvalidPeriod = "начало периода должно быть раньше конца"
)

type Handler struct {
	service  ScheduleService
	location *time.Location
	logger   Logger
}

func NewHandler(service ScheduleService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/blocks
// Query params: from, to, staffId (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	from, err := handlers.QueryTime(r, "from", h.location)
	if err != nil {
		h.logger.Warn("GET /blocks - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}
	to, err := handlers.QueryTime(r, "to", h.location)
	if err != nil {
		h.logger.Warn("GET /blocks - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.ListBlocks(r.Context(), &models.ListBlocksRequest{
		From:    from,
		To:      to,
		StaffID: handlers.QueryString(r, "staffId"),
	})
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidTimeRange) {
			h.logger.Warn("GET /blocks - Invalid period: %v", err)
			handlers.RespondBadRequest(w, msgInvalidPeriod)
			return
		}
		h.logger.Error("GET /blocks - Failed to list blocks: error=%v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /blocks - Blocks retrieved successfully: count=%d", len(result.Blocks))
	handlers.RespondJSON(w, http.StatusOK, result)
}
