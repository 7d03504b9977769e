package ivr_reset_call

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

const msgCallNotFound = "звонок не найден"

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

// Handle DELETE /api/v1/ivr/sim/calls/{callId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callID := mux.Vars(r)["callId"]

	if !h.engine.Reset(r.Context(), callID) {
		h.logger.Warn("DELETE /ivr/sim/calls/{callId} - Call not found: call_id=%s", callID)
		handlers.RespondNotFound(w, msgCallNotFound)
		return
	}

	h.logger.Info("DELETE /ivr/sim/calls/{callId} - Call reset: call_id=%s", callID)
	handlers.RespondNoContent(w)
}
