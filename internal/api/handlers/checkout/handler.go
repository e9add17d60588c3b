package checkout

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	checkoutUC "github.com/m04kA/SMC-SalonService/internal/usecase/checkout"
)

const (
	msgUnauthorized          = "Faca login para continuar."
	msgInvalidRequestBody    = "Dados invalidos."
	msgInvalidDateTime       = "Data ou horario invalido."
	msgEmptyCart             = "Adicione servicos ao carrinho antes de reservar."
	msgInvalidStaff          = "Carrinho vazio ou profissional invalido."
	msgClientNotFound        = "Cliente nao encontrado."
	msgPaymentMethodRequired = "Cliente pre-pago precisa escolher o metodo de pagamento."
	msgTimeConflict          = "Horario indisponivel para a duracao total dos servicos."
	msgCreatedWithDebt       = "Reserva criada para cliente pos-pago. Divida registrada no sistema."
	msgCreatedPaid           = "Reserva criada com multiplos servicos e pagamento confirmado."
)

type Handler struct {
	useCase CheckoutUseCase
	logger  Logger
}

func NewHandler(useCase CheckoutUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/client/reservations
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	clientID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		handlers.RespondUnauthorized(w, msgUnauthorized)
		return
	}

	var req CheckoutRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /client/reservations - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(clientID)
	if err != nil {
		h.logger.Warn("POST /client/reservations - Invalid time %q: %v", req.Time, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkoutUC.ErrInvalidInput):
			h.logger.Warn("POST /client/reservations - Invalid input: client_id=%s, error=%v", clientID, err)
			handlers.RespondBadRequest(w, msgInvalidDateTime)

		case errors.Is(err, checkoutUC.ErrEmptyCart):
			h.logger.Warn("POST /client/reservations - Empty cart: client_id=%s", clientID)
			handlers.RespondBadRequest(w, msgEmptyCart)

		case errors.Is(err, checkoutUC.ErrStaffNotFound):
			h.logger.Warn("POST /client/reservations - Staff not found: staff_id=%s", req.StaffID)
			handlers.RespondBadRequest(w, msgInvalidStaff)

		case errors.Is(err, checkoutUC.ErrClientNotFound):
			h.logger.Warn("POST /client/reservations - Client not found: client_id=%s", clientID)
			handlers.RespondNotFound(w, msgClientNotFound)

		case errors.Is(err, checkoutUC.ErrPaymentMethodRequired):
			h.logger.Warn("POST /client/reservations - Payment method required: client_id=%s", clientID)
			handlers.RespondBadRequest(w, msgPaymentMethodRequired)

		case errors.Is(err, checkoutUC.ErrTimeConflict):
			h.logger.Warn("POST /client/reservations - Time conflict: staff_id=%s, date=%s, time=%s",
				req.StaffID, req.Date, req.Time)
			handlers.RespondConflict(w, msgTimeConflict)

		default:
			h.logger.Error("POST /client/reservations - Failed to checkout: client_id=%s, error=%v", clientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	message := msgCreatedPaid
	if result.DebtCreated() {
		message = msgCreatedWithDebt
	}

	h.logger.Info("POST /client/reservations - Reservation created: reservation_id=%s, client_id=%s, debt=%t",
		result.Reservation.ID, clientID, result.DebtCreated())
	handlers.RespondSuccess(w, http.StatusCreated, message, FromUseCaseResponse(result))
}
