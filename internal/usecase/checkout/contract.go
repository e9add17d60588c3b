package checkout

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// DocumentStore хранилище документа приложения
type DocumentStore interface {
	Update(ctx context.Context, fn func(doc *domain.Document) error) error
}

// CartStore хранилище корзин
type CartStore interface {
	Get(ctx context.Context, userID string) ([]domain.CartItem, error)
	Clear(ctx context.Context, userID string) error
}

// IDGenerator генератор идентификаторов и ссылок на транзакции
type IDGenerator interface {
	NewID() string
	NewTransactionRef() string
}

// Metrics бизнес-метрики оформления
type Metrics interface {
	IncReservationCreated(clientType string)
	IncCheckoutRejected(reason string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
