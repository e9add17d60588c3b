package checkout

import (
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса на оформление корзины
type Request struct {
	ClientID      string           // ID клиента (из токена)
	StaffID       string           // ID профессионала
	Date          string           // Дата в формате YYYY-MM-DD
	Time          types.TimeString // Время начала, HH:MM
	PaymentMethod string           // Способ оплаты, пусто для постоплатных клиентов
}

// Response результат оформления
type Response struct {
	Reservation domain.Reservation
	Payment     *domain.Payment // nil, если оплаты не было
	Debt        *domain.Debt    // долг постоплатного клиента
	ClientType  domain.ClientType
}

// DebtCreated сообщает, что бронирование создано в долг
func (r *Response) DebtCreated() bool {
	return r.Debt != nil
}
