package settle_debt

import "github.com/m04kA/SMC-SalonService/internal/domain"

// Request модель запроса на погашение долга
type Request struct {
	DebtID        string
	PaymentMethod string
}

// Response погашенный долг и созданный платеж
type Response struct {
	Debt    domain.Debt
	Payment domain.Payment
	// ReservationLinked false, если бронирование долга уже удалено
	ReservationLinked bool
}
