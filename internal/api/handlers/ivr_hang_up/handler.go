package ivr_hang_up

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/handlers/ivr_models"
	"github.com/m04kA/SMC-SalonService/internal/ivr"
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

// Handle POST /api/v1/ivr/sim/calls/{callId}/hangup
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callID := mux.Vars(r)["callId"]

	reply, err := h.engine.HangUp(r.Context(), callID)
	if err != nil {
		if errors.Is(err, ivr.ErrSessionNotFound) {
			h.logger.Warn("POST /ivr/sim/calls/{callId}/hangup - Call not found: call_id=%s", callID)
			handlers.RespondNotFound(w, reply.Message)
			return
		}
		h.logger.Error("POST /ivr/sim/calls/{callId}/hangup - Failed to hang up: call_id=%s, error=%v", callID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /ivr/sim/calls/{callId}/hangup - Call ended: call_id=%s", callID)
	handlers.RespondJSON(w, http.StatusOK, ivr_models.FromReply(reply))
}
