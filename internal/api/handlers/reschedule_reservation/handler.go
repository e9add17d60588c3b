package reschedule_reservation

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	rescheduleUC "github.com/m04kA/SMC-SalonService/internal/usecase/reschedule_reservation"
)

const (
	msgInvalidDateTime = "Data ou horario invalido."
	msgNotFound        = "Reserva nao encontrada."
	msgInvalidState    = "Reserva cancelada ou concluida nao pode ser reagendada."
	msgTimeConflict    = "Conflito de horario para esse profissional."
	msgRescheduled     = "Reserva reagendada."
)

type Handler struct {
	useCase RescheduleUseCase
	logger  Logger
}

func NewHandler(useCase RescheduleUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/admin/reservations/{id}/reschedule
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	reservationID := mux.Vars(r)["id"]

	var req RescheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/reschedule - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(reservationID)
	if err != nil {
		h.logger.Warn("PATCH /admin/reservations/{id}/reschedule - Invalid time %q: %v", req.Time, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, rescheduleUC.ErrInvalidInput):
			h.logger.Warn("PATCH /admin/reservations/{id}/reschedule - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		case errors.Is(err, rescheduleUC.ErrReservationNotFound):
			h.logger.Warn("PATCH /admin/reservations/{id}/reschedule - Not found: reservation_id=%s", reservationID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, rescheduleUC.ErrInvalidState):
			h.logger.Warn("PATCH /admin/reservations/{id}/reschedule - Invalid state: reservation_id=%s", reservationID)
			handlers.RespondConflict(w, msgInvalidState)

		case errors.Is(err, rescheduleUC.ErrTimeConflict):
			h.logger.Warn("PATCH /admin/reservations/{id}/reschedule - Time conflict: reservation_id=%s, date=%s, time=%s",
				reservationID, req.Date, req.Time)
			handlers.RespondConflict(w, msgTimeConflict)

		default:
			h.logger.Error("PATCH /admin/reservations/{id}/reschedule - Failed to reschedule: reservation_id=%s, error=%v",
				reservationID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /admin/reservations/{id}/reschedule - Rescheduled: reservation_id=%s, date=%s, time=%s",
		reservationID, result.Reservation.Date, result.Reservation.Time)
	handlers.RespondSuccess(w, http.StatusOK, msgRescheduled, result.Reservation)
}
