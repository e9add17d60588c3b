package domain

// Time format constants
const (
	TimeFormat  = "15:04"      // HH:MM
	DateFormat  = "2006-01-02" // YYYY-MM-DD
	MonthFormat = "2006-01"    // YYYY-MM
)

// DefaultReservationDurationMinutes длительность записи, у которой нельзя вычислить услуги
const DefaultReservationDurationMinutes = 60

// UnknownPaymentMethod подпись для платежей без указанного метода в отчетах
const UnknownPaymentMethod = "Outro"

// CatalogEntry запись каталога услуг по умолчанию
type CatalogEntry struct {
	Name     string
	Price    float64
	Duration int
}

// DefaultCatalog каталог, который досоздается при старте (сопоставление по имени без учета регистра)
var DefaultCatalog = []CatalogEntry{
	{Name: "Corte Feminino", Price: 900, Duration: 60},
	{Name: "Corte Masculino", Price: 600, Duration: 45},
	{Name: "Manicure + Pedicure", Price: 1200, Duration: 75},
	{Name: "Limpeza de Pele", Price: 1800, Duration: 90},
	{Name: "Escova Simples", Price: 700, Duration: 40},
	{Name: "Escova Modelada", Price: 950, Duration: 55},
	{Name: "Hidratacao Capilar", Price: 1300, Duration: 70},
	{Name: "Cauterizacao", Price: 1600, Duration: 85},
	{Name: "Coloracao Completa", Price: 2500, Duration: 120},
	{Name: "Retoque de Raiz", Price: 1700, Duration: 90},
	{Name: "Progressiva", Price: 3200, Duration: 180},
	{Name: "Botox Capilar", Price: 2800, Duration: 150},
	{Name: "Trancas Basicas", Price: 2000, Duration: 120},
	{Name: "Trancas Nagô", Price: 2600, Duration: 160},
	{Name: "Dread Retwist", Price: 2200, Duration: 130},
	{Name: "Barba Completa", Price: 500, Duration: 30},
	{Name: "Sobrancelha", Price: 300, Duration: 20},
	{Name: "Design de Sobrancelha + Henna", Price: 650, Duration: 35},
	{Name: "Pedicure Simples", Price: 650, Duration: 45},
	{Name: "Manicure Simples", Price: 550, Duration: 35},
	{Name: "Spa dos Pes", Price: 1400, Duration: 80},
	{Name: "Depilacao Facial", Price: 800, Duration: 40},
	{Name: "Depilacao Completa", Price: 2300, Duration: 110},
	{Name: "Maquiagem Social", Price: 1900, Duration: 95},
}

// DefaultStaff профессионалы, создаваемые при пустом списке
var DefaultStaff = []Staff{
	{Name: "Carla M.", Specialty: "Cabelos"},
	{Name: "Bruno P.", Specialty: "Barbearia"},
	{Name: "Lina S.", Specialty: "Estetica"},
}

// ReservationStatuses все допустимые статусы записи
var ReservationStatuses = []ReservationStatus{
	StatusPending,
	StatusConfirmed,
	StatusCancelled,
	StatusCompleted,
}

// ReportPeriods допустимые периоды отчетов
var ReportPeriods = []ReportPeriod{
	PeriodAll,
	PeriodDay,
	PeriodWeek,
	PeriodMonth,
	PeriodYear,
}
