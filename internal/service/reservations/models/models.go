package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ServiceLine услуга в составе бронирования
type ServiceLine struct {
	ServiceID string `json:"serviceId"`
	Name      string `json:"name"`
	Qty       int    `json:"qty"`
}

// ReservationResponse бронирование с именами клиента, профессионала и услуг
type ReservationResponse struct {
	ID             string                   `json:"id"`
	ClientID       string                   `json:"clientId"`
	ClientName     string                   `json:"clientName,omitempty"`
	ClientType     domain.ClientType        `json:"clientType,omitempty"`
	StaffID        string                   `json:"staffId"`
	StaffName      string                   `json:"staffName,omitempty"`
	Services       []ServiceLine            `json:"services"`
	Date           string                   `json:"date"`
	Time           string                   `json:"time"`
	TotalAmount    float64                  `json:"totalAmount"`
	TotalDuration  int                      `json:"totalDuration"`
	DurationSource domain.DurationSource    `json:"durationSource"`
	Status         domain.ReservationStatus `json:"status"`
	PaymentStatus  domain.PaymentStatus     `json:"paymentStatus,omitempty"`
	PaymentID      *string                  `json:"paymentId"`
	CreatedAt      *time.Time               `json:"createdAt,omitempty"`
	CancelledAt    *time.Time               `json:"cancelledAt,omitempty"`
	RescheduledAt  *time.Time               `json:"rescheduledAt,omitempty"`
}

// Lookup справочники документа для денормализации ответов
type Lookup struct {
	users    map[string]*domain.User
	staff    map[string]*domain.Staff
	services map[string]*domain.Service
}

// NewLookup индексирует пользователей, профессионалов и услуги документа
func NewLookup(doc *domain.Document) *Lookup {
	l := &Lookup{
		users:    make(map[string]*domain.User, len(doc.Users)),
		staff:    make(map[string]*domain.Staff, len(doc.Staff)),
		services: make(map[string]*domain.Service, len(doc.Services)),
	}
	for i := range doc.Users {
		l.users[doc.Users[i].ID] = &doc.Users[i]
	}
	for i := range doc.Staff {
		l.staff[doc.Staff[i].ID] = &doc.Staff[i]
	}
	for i := range doc.Services {
		l.services[doc.Services[i].ID] = &doc.Services[i]
	}
	return l
}

// FromDomainReservation конвертирует бронирование в ответ.
// Имена услуг берутся из снимка корзины, для старых записей из каталога.
func FromDomainReservation(r *domain.Reservation, lookup *Lookup) ReservationResponse {
	resp := ReservationResponse{
		ID:             r.ID,
		ClientID:       r.ClientID,
		ClientType:     r.ClientTypeAtBooking,
		StaffID:        r.StaffID,
		Services:       serviceLines(r, lookup),
		Date:           r.Date,
		Time:           r.Time.String(),
		TotalAmount:    r.TotalAmount,
		TotalDuration:  r.TotalDuration,
		DurationSource: r.DurationSource,
		Status:         r.Status,
		PaymentStatus:  r.PaymentStatus,
		PaymentID:      r.PaymentID,
		CancelledAt:    r.CancelledAt,
		RescheduledAt:  r.RescheduledAt,
	}
	if !r.CreatedAt.IsZero() {
		createdAt := r.CreatedAt
		resp.CreatedAt = &createdAt
	}
	if u, ok := lookup.users[r.ClientID]; ok {
		resp.ClientName = u.Name
	}
	if s, ok := lookup.staff[r.StaffID]; ok {
		resp.StaffName = s.Name
	}
	return resp
}

// FromDomainReservationList конвертирует список бронирований
func FromDomainReservationList(list []domain.Reservation, lookup *Lookup) []ReservationResponse {
	result := make([]ReservationResponse, 0, len(list))
	for i := range list {
		result = append(result, FromDomainReservation(&list[i], lookup))
	}
	return result
}

func serviceLines(r *domain.Reservation, lookup *Lookup) []ServiceLine {
	if len(r.CartItems) > 0 {
		lines := make([]ServiceLine, 0, len(r.CartItems))
		for _, item := range r.CartItems {
			name := item.Name
			if name == "" {
				if s, ok := lookup.services[item.ServiceID]; ok {
					name = s.Name
				}
			}
			lines = append(lines, ServiceLine{ServiceID: item.ServiceID, Name: name, Qty: item.Qty})
		}
		return lines
	}

	if r.ServiceID == "" {
		return []ServiceLine{}
	}
	line := ServiceLine{ServiceID: r.ServiceID, Qty: 1}
	if s, ok := lookup.services[r.ServiceID]; ok {
		line.Name = s.Name
	}
	return []ServiceLine{line}
}

// SetStatusResponse результат смены статуса
type SetStatusResponse struct {
	Reservation ReservationResponse `json:"reservation"`
	Changed     bool                `json:"changed"`
}

// CalendarDay ячейка календаря
type CalendarDay struct {
	Date           string                `json:"date"`
	Day            int                   `json:"day"`
	InCurrentMonth bool                  `json:"inCurrentMonth"`
	Reservations   []ReservationResponse `json:"reservations"`
}

// MonthRange первый и последний день месяца
type MonthRange struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// ScheduleResponse агенда администратора: список и календарь месяца
type ScheduleResponse struct {
	Month        string                `json:"month"`
	MonthLabel   string                `json:"monthLabel"`
	PrevMonth    string                `json:"prevMonth"`
	NextMonth    string                `json:"nextMonth"`
	MonthRange   MonthRange            `json:"monthRange"`
	WeekdayNames []string              `json:"weekdayNames"`
	Reservations []ReservationResponse `json:"reservations"`
	CalendarDays []CalendarDay         `json:"calendarDays"`
}
