package checkout

import (
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	checkoutUC "github.com/m04kA/SMC-SalonService/internal/usecase/checkout"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// CheckoutRequest HTTP request model
type CheckoutRequest struct {
	StaffID       string `json:"staffId"`
	Date          string `json:"date"` // "2025-03-10"
	Time          string `json:"time"` // "09:00"
	PaymentMethod string `json:"paymentMethod,omitempty"`
}

// CheckoutResponse HTTP response model
type CheckoutResponse struct {
	Reservation domain.Reservation `json:"reservation"`
	Payment     *domain.Payment    `json:"payment,omitempty"`
	Debt        *domain.Debt       `json:"debt,omitempty"`
	ClientType  domain.ClientType  `json:"clientType"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CheckoutRequest) ToUseCaseRequest(clientID string) (*checkoutUC.Request, error) {
	start, err := types.NewTimeStringFromString(strings.TrimSpace(r.Time))
	if err != nil {
		return nil, err
	}

	return &checkoutUC.Request{
		ClientID:      clientID,
		StaffID:       strings.TrimSpace(r.StaffID),
		Date:          strings.TrimSpace(r.Date),
		Time:          start,
		PaymentMethod: strings.TrimSpace(r.PaymentMethod),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkoutUC.Response) *CheckoutResponse {
	return &CheckoutResponse{
		Reservation: resp.Reservation,
		Payment:     resp.Payment,
		Debt:        resp.Debt,
		ClientType:  resp.ClientType,
	}
}
