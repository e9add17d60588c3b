package finance

import (
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
)

type Handler struct {
	service ReportService
	logger  Logger
}

func NewHandler(service ReportService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/admin/finance
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	finance, err := h.service.Finance(r.Context())
	if err != nil {
		h.logger.Error("GET /admin/finance - Failed to load finance: %v", err)
		handlers.RespondInternalError(w)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, finance)
}
