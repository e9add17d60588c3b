package set_client_type

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/clients"
)

const (
	msgInvalidType    = "Tipo de cliente invalido."
	msgClientNotFound = "Cliente nao encontrado."
	msgUpdated        = "Tipo de cliente atualizado."
)

type Handler struct {
	service ClientService
	logger  Logger
}

func NewHandler(service ClientService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/clients/{id}/type
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID := mux.Vars(r)["id"]

	var req SetClientTypeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/clients/{id}/type - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidType)
		return
	}

	client, err := h.service.SetClientType(r.Context(), clientID, req.ClientType)
	if err != nil {
		switch {
		case errors.Is(err, clients.ErrInvalidClientType):
			h.logger.Warn("PATCH /admin/clients/{id}/type - Invalid type: %q", req.ClientType)
			handlers.RespondBadRequest(w, msgInvalidType)

		case errors.Is(err, clients.ErrClientNotFound):
			h.logger.Warn("PATCH /admin/clients/{id}/type - Client not found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		default:
			h.logger.Error("PATCH /admin/clients/{id}/type - Failed to set type: client_id=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/clients/{id}/type - Type set: client_id=%s, type=%s", clientID, req.ClientType)
	handlers.RespondSuccess(w, http.StatusOK, msgUpdated, client)
}
