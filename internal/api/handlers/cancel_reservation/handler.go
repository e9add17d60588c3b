package cancel_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations"
)

const (
	msgUnauthorized = "Faca login para continuar."
	msgNotFound     = "Reserva nao encontrada."
	msgCannotCancel = "Reserva nao pode ser cancelada."
	msgCancelled    = "Reserva cancelada."
)

type Handler struct {
	service ReservationService
	logger  Logger
}

func NewHandler(service ReservationService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/client/reservations/{id}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	reservationID := mux.Vars(r)["id"]

	reservation, err := h.service.CancelOwn(r.Context(), clientID, reservationID)
	if err != nil {
		switch {
		case errors.Is(err, reservations.ErrReservationNotFound):
			h.logger.Warn("PATCH /client/reservations/{id}/cancel - Not found: reservation_id=%s, client_id=%s",
				reservationID, clientID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, reservations.ErrCannotCancel):
			h.logger.Warn("PATCH /client/reservations/{id}/cancel - Cannot cancel: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgCannotCancel)

		default:
			h.logger.Error("PATCH /client/reservations/{id}/cancel - Failed to cancel: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /client/reservations/{id}/cancel - Reservation cancelled: reservation_id=%s, client_id=%s",
		reservationID, clientID)
	handlers.RespondSuccess(w, http.StatusOK, msgCancelled, reservation)
}
