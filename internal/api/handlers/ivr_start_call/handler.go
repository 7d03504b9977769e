package ivr_start_call

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/handlers/ivr_models"
	"github.com/m04kA/SMC-SalonService/internal/ivr"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidCall        = "не указан номер телефона или нет активных услуг"
)

type Handler struct {
	engine  Engine
	catalog CatalogSource
	logger  Logger
}

func NewHandler(engine Engine, catalog CatalogSource, logger Logger) *Handler {
	return &Handler{
		engine:  engine,
		catalog: catalog,
		logger:  logger,
	}
}

// Handle POST /api/v1/ivr/sim/start
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req StartCallRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /ivr/sim/start - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	offerings, err := h.catalog.ListOfferings(r.Context())
	if err != nil {
		h.logger.Error("POST /ivr/sim/start - Failed to load offerings: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	reply, err := h.engine.StartCall(r.Context(), req.CallerPhone, offerings)
	if err != nil {
		if errors.Is(err, ivr.ErrInvalidInput) {
			h.logger.Warn("POST /ivr/sim/start - Invalid call: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCall)
			return
		}
		h.logger.Error("POST /ivr/sim/start - Failed to start call: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /ivr/sim/start - Call started: call_id=%s", reply.CallID)
	handlers.RespondJSON(w, http.StatusCreated, ivr_models.FromReply(reply))
}
