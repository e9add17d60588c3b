package client_cart

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type CartService interface {
	Summary(ctx context.Context, userID string) (*domain.CartSummary, error)
	Add(ctx context.Context, userID, serviceID string) (*domain.CartSummary, error)
	Remove(ctx context.Context, userID, serviceID string) (*domain.CartSummary, error)
	Clear(ctx context.Context, userID string) error
	Count(ctx context.Context, userID string) (int, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
