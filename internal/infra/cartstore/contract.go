package cartstore

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

var (
	// ErrCartStore возвращается при ошибке доступа к хранилищу корзин
	ErrCartStore = errors.New("cartstore: storage error")
)

// Store хранит корзину пользователя между запросами
type Store interface {
	Get(ctx context.Context, userID string) ([]domain.CartItem, error)
	Set(ctx context.Context, userID string, items []domain.CartItem) error
	Clear(ctx context.Context, userID string) error
}
