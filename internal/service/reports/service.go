package reports

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/reports/models"
	reservationModels "github.com/m04kA/SMC-SalonService/internal/service/reservations/models"
)

const (
	recentReservationsLimit = 8
	dailySeriesDays         = 7
	statusAll               = "all"
)

// Service агрегаты для панели администратора, финансов и отчетов
type Service struct {
	store        DocumentStore
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса отчетов
func NewService(store DocumentStore, logger Logger) *Service {
	return &Service{
		store:        store,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

func (s *Service) load(ctx context.Context, op string) (*domain.Document, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("%s: failed to load document: %v", op, err)
		return nil, fmt.Errorf("%w: %s - store error: %v", ErrInternal, op, err)
	}
	return doc, nil
}

// Dashboard сводка: итоги по статусам, выручка, последние 8 бронирований.
// Фильтр статуса применяется после отбора последних восьми.
func (s *Service) Dashboard(ctx context.Context, status string) (*models.DashboardResponse, error) {
	if status == "" {
		status = statusAll
	}
	s.logger.Info("Dashboard: status=%s", status)

	doc, err := s.load(ctx, "Dashboard")
	if err != nil {
		return nil, err
	}
	now := s.timeProvider.Now()
	today := now.Format(domain.DateFormat)

	totals := domain.ReservationTotals(doc.Reservations)

	todayReservations := 0
	for _, r := range doc.Reservations {
		if r.Date == today {
			todayReservations++
		}
	}

	recent := make([]domain.Reservation, len(doc.Reservations))
	copy(recent, doc.Reservations)
	sort.SliceStable(recent, func(i, j int) bool {
		return scheduleKey(&recent[i]) > scheduleKey(&recent[j])
	})
	if len(recent) > recentReservationsLimit {
		recent = recent[:recentReservationsLimit]
	}
	if status != statusAll {
		filtered := recent[:0]
		for _, r := range recent {
			if string(r.Status) == status {
				filtered = append(filtered, r)
			}
		}
		recent = filtered
	}

	todayRevenue := 0.0
	for _, p := range doc.Payments {
		if p.Status == domain.PaymentStatusPaid && !p.PaidAt.IsZero() && p.PaidAt.In(now.Location()).Format(domain.DateFormat) == today {
			todayRevenue += p.Amount
		}
	}

	return &models.DashboardResponse{
		Totals:             totals,
		Revenue:            domain.RevenueTotals(doc.Payments, now),
		TodayReservations:  todayReservations,
		TotalClients:       len(doc.Clients()),
		TotalServices:      len(doc.Services),
		SelectedStatus:     status,
		RecentReservations: reservationModels.FromDomainReservationList(recent, reservationModels.NewLookup(doc)),
		TodayRevenue:       todayRevenue,
		AcceptanceRate:     domain.Percent(totals.Confirmed+totals.Completed, totals.Total),
		CompletionRate:     domain.Percent(totals.Completed, totals.Total),
	}, nil
}

// Finance платежи от новых к старым, выручка и открытые долги
func (s *Service) Finance(ctx context.Context) (*models.FinanceResponse, error) {
	s.logger.Info("Finance: building summary")

	doc, err := s.load(ctx, "Finance")
	if err != nil {
		return nil, err
	}

	payments := make([]domain.Payment, len(doc.Payments))
	copy(payments, doc.Payments)
	sort.SliceStable(payments, func(i, j int) bool {
		return payments[i].PaidAt.After(payments[j].PaidAt)
	})

	resp := &models.FinanceResponse{
		Payments: make([]models.PaymentResponse, 0, len(payments)),
		Revenue:  domain.RevenueTotals(doc.Payments, s.timeProvider.Now()),
	}
	for i := range payments {
		resp.Payments = append(resp.Payments, models.FromDomainPayment(&payments[i]))
	}
	for _, d := range doc.Debts {
		if d.IsOpen() {
			resp.OpenDebtsCount++
			resp.OpenDebtsAmount += d.Amount
		}
	}
	return resp, nil
}

// Report отчет за период: all, day, week, month, year. Неизвестный период считается all.
func (s *Service) Report(ctx context.Context, period string) (*models.ReportResponse, error) {
	p := domain.ParsePeriod(period)
	s.logger.Info("Report: period=%s", p)

	doc, err := s.load(ctx, "Report")
	if err != nil {
		return nil, err
	}
	now := s.timeProvider.Now()

	// 1. Бронирования периода по дате создания, иначе по дате визита
	reservations := make([]domain.Reservation, 0, len(doc.Reservations))
	for i := range doc.Reservations {
		if domain.InPeriod(p, reservationDate(&doc.Reservations[i], now.Location()), now) {
			reservations = append(reservations, doc.Reservations[i])
		}
	}

	// 2. Оплаченные платежи периода
	paid := make([]domain.Payment, 0, len(doc.Payments))
	for _, payment := range doc.Payments {
		if payment.Status == domain.PaymentStatusPaid && domain.InPeriod(p, payment.PaidAt, now) {
			paid = append(paid, payment)
		}
	}

	totals := domain.ReservationTotals(reservations)

	return &models.ReportResponse{
		Period:               p,
		ReservationsByStatus: totals,
		Revenue:              domain.RevenueTotals(paid, now),
		Reservations:         reservationModels.FromDomainReservationList(reservations, reservationModels.NewLookup(doc)),
		Charts: models.Charts{
			Status:  [4]int{totals.Pending, totals.Confirmed, totals.Completed, totals.Cancelled},
			Methods: methodSeries(paid),
			Daily:   dailySeries(doc.Reservations, now),
		},
	}, nil
}

// methodSeries сумма по способу оплаты в порядке первого появления
func methodSeries(payments []domain.Payment) models.Series {
	series := models.Series{Labels: []string{}, Values: []float64{}}
	index := make(map[string]int)
	for _, p := range payments {
		method := p.Method
		if method == "" {
			method = domain.UnknownPaymentMethod
		}
		i, ok := index[method]
		if !ok {
			i = len(series.Labels)
			index[method] = i
			series.Labels = append(series.Labels, method)
			series.Values = append(series.Values, 0)
		}
		series.Values[i] += p.Amount
	}
	return series
}

// dailySeries количество бронирований за последние 7 дней, включая сегодня, подписи MM-DD
func dailySeries(reservations []domain.Reservation, now time.Time) models.CountSeries {
	start := domain.StartOfDay(now).AddDate(0, 0, -(dailySeriesDays - 1))

	series := models.CountSeries{
		Labels: make([]string, 0, dailySeriesDays),
		Values: make([]int, dailySeriesDays),
	}
	index := make(map[string]int, dailySeriesDays)
	for i := 0; i < dailySeriesDays; i++ {
		day := start.AddDate(0, 0, i)
		index[day.Format(domain.DateFormat)] = i
		series.Labels = append(series.Labels, day.Format("01-02"))
	}

	for i := range reservations {
		r := &reservations[i]
		var key string
		switch {
		case !r.CreatedAt.IsZero():
			key = r.CreatedAt.In(now.Location()).Format(domain.DateFormat)
		case r.Date != "":
			key = r.Date
		default:
			continue
		}
		if bucket, ok := index[key]; ok {
			series.Values[bucket]++
		}
	}
	return series
}

// reservationDate дата создания, иначе дата и время визита; нулевое время, если ничего нет
func reservationDate(r *domain.Reservation, loc *time.Location) time.Time {
	if !r.CreatedAt.IsZero() {
		return r.CreatedAt
	}
	if at, ok := r.ScheduledAt(loc); ok {
		return at
	}
	return time.Time{}
}

func scheduleKey(r *domain.Reservation) string {
	return r.Date + "T" + r.Time.String()
}
