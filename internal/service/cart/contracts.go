package cart

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// DocumentStore источник каталога услуг
type DocumentStore interface {
	Load(ctx context.Context) (*domain.Document, error)
}

// CartStore хранилище корзин
type CartStore interface {
	Get(ctx context.Context, userID string) ([]domain.CartItem, error)
	Set(ctx context.Context, userID string, items []domain.CartItem) error
	Clear(ctx context.Context, userID string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
