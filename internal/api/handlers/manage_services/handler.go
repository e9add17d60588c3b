package manage_services

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

const (
	msgInvalidCreate = "Dados invalidos para criar servico."
	msgInvalidUpdate = "Dados invalidos para atualizar servico."
	msgNotFound      = "Servico nao encontrado."
	msgCreated       = "Servico criado."
	msgUpdated       = "Servico atualizado."
	msgRemoved       = "Servico removido."
)

// Handler CRUD услуг каталога для администратора
type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Create POST /api/v1/admin/services
func (h *Handler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/services - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidCreate)
		return
	}

	service, err := h.service.CreateService(r.Context(), &req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /admin/services - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidCreate)
			return
		}
		h.logger.Error("POST /admin/services - Failed to create service: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/services - Service created: service_id=%s", service.ID)
	handlers.RespondSuccess(w, http.StatusCreated, msgCreated, service)
}

// Update PUT /api/v1/admin/services/{id}
func (h *Handler) Update(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	var req models.ServiceRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /admin/services/{id} - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidUpdate)
		return
	}

	service, err := h.service.UpdateService(r.Context(), id, &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrServiceNotFound):
			h.logger.Warn("PUT /admin/services/{id} - Service not found: service_id=%s", id)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("PUT /admin/services/{id} - Invalid input: service_id=%s, error=%v", id, err)
			handlers.RespondBadRequest(w, msgInvalidUpdate)

		default:
			h.logger.Error("PUT /admin/services/{id} - Failed to update service: service_id=%s, error=%v", id, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /admin/services/{id} - Service updated: service_id=%s", id)
	handlers.RespondSuccess(w, http.StatusOK, msgUpdated, service)
}

// Delete DELETE /api/v1/admin/services/{id}
func (h *Handler) Delete(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.service.DeleteService(r.Context(), id); err != nil {
		h.logger.Error("DELETE /admin/services/{id} - Failed to delete service: service_id=%s, error=%v", id, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("DELETE /admin/services/{id} - Service removed: service_id=%s", id)
	handlers.RespondSuccess(w, http.StatusOK, msgRemoved, nil)
}
