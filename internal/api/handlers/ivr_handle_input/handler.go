package ivr_handle_input

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/handlers/ivr_models"
	"github.com/m04kA/SMC-SalonService/internal/ivr"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDigit       = "допустимы только кнопки 0-9, * и #"
)

type Handler struct {
	engine Engine
	logger Logger
}

func NewHandler(engine Engine, logger Logger) *Handler {
	return &Handler{
		engine: engine,
		logger: logger,
	}
}

// Handle POST /api/v1/ivr/sim/input
// Ошибки брони и подтверждения не ломают звонок: ответ 200 с репликой движка
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req HandleInputRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /ivr/sim/input - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	reply, err := h.engine.HandleDigit(r.Context(), req.CallID, req.Digit)
	if err != nil {
		switch {
		case errors.Is(err, ivr.ErrInvalidInput):
			h.logger.Warn("POST /ivr/sim/input - Invalid digit: call_id=%s, digit=%q", req.CallID, req.Digit)
			handlers.RespondBadRequest(w, msgInvalidDigit)
			return

		case errors.Is(err, ivr.ErrSessionNotFound):
			h.logger.Warn("POST /ivr/sim/input - Call not found: call_id=%s", req.CallID)
			handlers.RespondNotFound(w, reply.Message)
			return

		case errors.Is(err, ivr.ErrHoldUnavailable), errors.Is(err, ivr.ErrConfirmationFailed):
			h.logger.Warn("POST /ivr/sim/input - Collaborator failure: call_id=%s, error=%v", req.CallID, err)

		default:
			h.logger.Error("POST /ivr/sim/input - Failed to handle digit: call_id=%s, error=%v", req.CallID, err)
			handlers.RespondInternalError(w)
			return
		}
	}

	handlers.RespondJSON(w, http.StatusOK, ivr_models.FromReply(reply))
}
