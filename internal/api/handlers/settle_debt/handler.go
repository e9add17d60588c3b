package settle_debt

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	settleUC "github.com/m04kA/SMC-SalonService/internal/usecase/settle_debt"
)

const (
	msgMethodRequired = "Escolha um metodo de pagamento."
	msgDebtNotOpen    = "Divida nao encontrada ou ja paga."
	msgSettled        = "Divida marcada como paga."
)

type Handler struct {
	useCase SettleDebtUseCase
	logger  Logger
}

func NewHandler(useCase SettleDebtUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/admin/debts/{id}/settle
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	debtID := mux.Vars(r)["id"]

	var req SettleDebtRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /admin/debts/{id}/settle - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgMethodRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest(debtID))
	if err != nil {
		switch {
		case errors.Is(err, settleUC.ErrPaymentMethodRequired):
			h.logger.Warn("POST /admin/debts/{id}/settle - Payment method required: debt_id=%s", debtID)
			handlers.RespondBadRequest(w, msgMethodRequired)

		case errors.Is(err, settleUC.ErrDebtNotFound), errors.Is(err, settleUC.ErrDebtNotOpen):
			h.logger.Warn("POST /admin/debts/{id}/settle - Debt not open: debt_id=%s, error=%v", debtID, err)
			handlers.RespondNotFound(w, msgDebtNotOpen)

		default:
			h.logger.Error("POST /admin/debts/{id}/settle - Failed to settle: debt_id=%s, error=%v", debtID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /admin/debts/{id}/settle - Debt settled: debt_id=%s, payment_id=%s, linked=%t",
		debtID, result.Payment.ID, result.ReservationLinked)
	handlers.RespondSuccess(w, http.StatusOK, msgSettled, FromUseCaseResponse(result))
}
