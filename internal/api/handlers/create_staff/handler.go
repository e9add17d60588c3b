package create_staff

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

const (
	msgInvalidInput = "Informe o nome do profissional."
	msgCreated      = "Profissional adicionado."
)

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

// Handle POST /api/v1/admin/staff
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.StaffRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/staff - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidInput)
		return
	}

	staff, err := h.service.CreateStaff(r.Context(), &req)
	if err != nil {
		if errors.Is(err, catalog.ErrInvalidInput) {
			h.logger.Warn("POST /admin/staff - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidInput)
			return
		}
		h.logger.Error("POST /admin/staff - Failed to create staff: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("POST /admin/staff - Staff created: staff_id=%s", staff.ID)
	handlers.RespondSuccess(w, http.StatusCreated, msgCreated, staff)
}
