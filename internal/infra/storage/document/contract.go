package document

import (
	"context"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Store хранит состояние приложения одним документом
type Store interface {
	// Load возвращает документ целиком; отсутствующий документ создается с пустыми коллекциями
	Load(ctx context.Context) (*domain.Document, error)
	// Save перезаписывает документ целиком
	Save(ctx context.Context, doc *domain.Document) error
	// Update выполняет чтение-изменение-запись как одну операцию.
	// Если fn вернула ошибку, ничего не записывается и ошибка возвращается без изменений.
	Update(ctx context.Context, fn func(doc *domain.Document) error) error
}

// PasswordHasher интерфейс для хеширования пароля администратора
type PasswordHasher interface {
	Hash(password string) (string, error)
}

// IDGenerator интерфейс генератора идентификаторов
type IDGenerator interface {
	NewID() string
}

// TimeProvider интерфейс для получения текущего времени
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реализация TimeProvider с реальным временем
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
