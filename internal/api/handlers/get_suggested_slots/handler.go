package get_suggested_slots

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/usecase/suggest_slots"
)

const (
	msgMissingServiceID = "ID услуги обязателен"
	msgServiceNotFound  = "услуга не найдена"
	msgServiceInactive  = "услуга отключена"
)

type Handler struct {
	useCase SuggestSlotsUseCase
	logger  Logger
}

func NewHandler(useCase SuggestSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/services/{serviceId}/suggested-slots
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	serviceID := mux.Vars(r)["serviceId"]
	if serviceID == "" {
		h.logger.Warn("GET /services/{id}/suggested-slots - Missing service ID")
		handlers.RespondBadRequest(w, msgMissingServiceID)
		return
	}

	resp, err := h.useCase.Execute(r.Context(), &suggest_slots.Request{ServiceID: serviceID})
	if err != nil {
		switch {
		case errors.Is(err, suggest_slots.ErrInvalidInput):
			h.logger.Warn("GET /services/{id}/suggested-slots - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgMissingServiceID)

		case errors.Is(err, suggest_slots.ErrServiceNotFound):
			h.logger.Warn("GET /services/{id}/suggested-slots - Service not found: service_id=%s", serviceID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, suggest_slots.ErrServiceInactive):
			h.logger.Warn("GET /services/{id}/suggested-slots - Service inactive: service_id=%s", serviceID)
			handlers.RespondConflict(w, msgServiceInactive)

		default:
			h.logger.Error("GET /services/{id}/suggested-slots - Failed to suggest slots: service_id=%s, error=%v",
				serviceID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /services/{id}/suggested-slots - Slots suggested: service_id=%s, count=%d",
		serviceID, len(resp.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(resp))
}
