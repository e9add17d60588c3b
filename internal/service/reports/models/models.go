package models

import (
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	reservationModels "github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
)

// Series подписи и значения графика
type Series struct {
	Labels []string  `json:"labels"`
	Values []float64 `json:"values"`
}

// CountSeries подписи и количества
type CountSeries struct {
	Labels []string `json:"labels"`
	Values []int    `json:"values"`
}

// Charts данные графиков отчета
type Charts struct {
	// Status: pending, confirmed, completed, cancelled
	Status  [4]int      `json:"status"`
	Methods Series      `json:"methods"`
	Daily   CountSeries `json:"daily"`
}

// ReportResponse отчет за период
type ReportResponse struct {
	Period               domain.ReportPeriod                     `json:"period"`
	ReservationsByStatus domain.StatusTotals                     `json:"reservationsByStatus"`
	Revenue              domain.Revenue                          `json:"revenue"`
	Reservations         []reservationModels.ReservationResponse `json:"reservations"`
	Charts               Charts                                  `json:"charts"`
}

// DashboardResponse сводка администратора
type DashboardResponse struct {
	Totals             domain.StatusTotals                     `json:"totals"`
	Revenue            domain.Revenue                          `json:"revenue"`
	TodayReservations  int                                     `json:"todayReservations"`
	TotalClients       int                                     `json:"totalClients"`
	TotalServices      int                                     `json:"totalServices"`
	SelectedStatus     string                                  `json:"selectedStatus"`
	RecentReservations []reservationModels.ReservationResponse `json:"recentReservations"`
	TodayRevenue       float64                                 `json:"todayRevenue"`
	AcceptanceRate     int                                     `json:"acceptanceRate"`
	CompletionRate     int                                     `json:"completionRate"`
}

// PaymentResponse платеж
type PaymentResponse struct {
	ID             string               `json:"id"`
	ReservationID  *string              `json:"reservationId"`
	Amount         float64              `json:"amount"`
	Method         string               `json:"method"`
	Status         domain.PaymentStatus `json:"status"`
	TransactionRef string               `json:"transactionRef"`
	PaidAt         *time.Time           `json:"paidAt,omitempty"`
}

// FinanceResponse платежи и открытые долги
type FinanceResponse struct {
	Payments        []PaymentResponse `json:"payments"`
	Revenue         domain.Revenue    `json:"revenue"`
	OpenDebtsCount  int               `json:"openDebtsCount"`
	OpenDebtsAmount float64           `json:"openDebtsAmount"`
}

func FromDomainPayment(p *domain.Payment) PaymentResponse {
	resp := PaymentResponse{
		ID:             p.ID,
		ReservationID:  p.ReservationID,
		Amount:         p.Amount,
		Method:         p.Method,
		Status:         p.Status,
		TransactionRef: p.TransactionRef,
	}
	if !p.PaidAt.IsZero() {
		paidAt := p.PaidAt
		resp.PaidAt = &paidAt
	}
	return resp
}
