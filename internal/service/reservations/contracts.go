package reservations

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// DocumentStore хранилище документа приложения
type DocumentStore interface {
	Load(ctx context.Context) (*domain.Document, error)
	Update(ctx context.Context, fn func(doc *domain.Document) error) error
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
