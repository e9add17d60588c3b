package export_clients_pdf

import (
	"bytes"
	"fmt"
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
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

// Handle GET /api/v1/admin/clients/export.pdf?q=
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	// PDF собирается в буфер, чтобы при ошибке ответить JSON
	var buf bytes.Buffer
	fileName, err := h.service.ExportPDF(r.Context(), query, &buf)
	if err != nil {
		h.logger.Error("GET /admin/clients/export.pdf - Failed to export: q=%q, error=%v", query, err)
		handlers.RespondInternalError(w)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", fileName))
	w.Header().Set("Content-Length", strconv.Itoa(buf.Len()))
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.logger.Warn("GET /admin/clients/export.pdf - Failed to write response: %v", err)
	}
}
