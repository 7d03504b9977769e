package ivr_get_call

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/handlers/ivr_models"
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

// Handle GET /api/v1/ivr/sim/calls/{callId}
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	callID := mux.Vars(r)["callId"]

	snap, ok := h.engine.Snapshot(callID)
	if !ok {
		h.logger.Warn("GET /ivr/sim/calls/{callId} - Call not found: call_id=%s", callID)
		handlers.RespondNotFound(w, msgCallNotFound)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, ivr_models.FromSnapshot(snap))
}
