package settle_debt

import (
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	settleUC "github.com/m04kA/SMC-SalonService/internal/usecase/settle_debt"
)

// SettleDebtRequest HTTP request model
type SettleDebtRequest struct {
	PaymentMethod string `json:"paymentMethod"`
}

// SettleDebtResponse HTTP response model
type SettleDebtResponse struct {
	Debt              domain.Debt    `json:"debt"`
	Payment           domain.Payment `json:"payment"`
	ReservationLinked bool           `json:"reservationLinked"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SettleDebtRequest) ToUseCaseRequest(debtID string) *settleUC.Request {
	return &settleUC.Request{
		DebtID:        debtID,
		PaymentMethod: strings.TrimSpace(r.PaymentMethod),
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *settleUC.Response) *SettleDebtResponse {
	return &SettleDebtResponse{
		Debt:              resp.Debt,
		Payment:           resp.Payment,
		ReservationLinked: resp.ReservationLinked,
	}
}
