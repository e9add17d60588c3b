package catalog

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// DocumentStore хранилище документа приложения
type DocumentStore interface {
	Load(ctx context.Context) (*domain.Document, error)
	Update(ctx context.Context, fn func(doc *domain.Document) error) error
}

// IDGenerator генератор идентификаторов
type IDGenerator interface {
	NewID() string
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
