package settle_debt

import (
	"fmt"
	"strings"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if strings.TrimSpace(req.PaymentMethod) == "" {
		return ErrPaymentMethodRequired
	}

	if req.DebtID == "" {
		return fmt.Errorf("%w: empty debt id", ErrDebtNotFound)
	}

	return nil
}
