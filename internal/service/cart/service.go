package cart

import (
	"context"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// Service операции с корзиной клиента. Корзина хранится отдельно от документа.
type Service struct {
	store  DocumentStore
	carts  CartStore
	logger Logger
}

// NewService создает новый экземпляр сервиса корзины
func NewService(store DocumentStore, carts CartStore, logger Logger) *Service {
	return &Service{
		store:  store,
		carts:  carts,
		logger: logger,
	}
}

// Summary возвращает корзину, оцененную по текущему каталогу
func (s *Service) Summary(ctx context.Context, userID string) (*domain.CartSummary, error) {
	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.summarize(ctx, items)
}

// Add добавляет одну единицу услуги
func (s *Service) Add(ctx context.Context, userID, serviceID string) (*domain.CartSummary, error) {
	serviceID = strings.TrimSpace(serviceID)
	s.logger.Info("CartAdd: user=%s, service=%s", userID, serviceID)

	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("CartAdd: failed to load document: %v", err)
		return nil, fmt.Errorf("%w: CartAdd - store error: %v", ErrInternal, err)
	}
	if serviceID == "" || doc.FindService(serviceID) == nil {
		s.logger.Warn("CartAdd: service=%q not found", serviceID)
		return nil, ErrServiceNotFound
	}

	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}
	items = domain.AddToCart(items, serviceID)

	if err := s.save(ctx, userID, items); err != nil {
		return nil, err
	}

	summary := domain.BuildCartSummary(items, doc.Services)
	return &summary, nil
}

// Remove убирает одну единицу услуги; отсутствующая услуга ничего не меняет
func (s *Service) Remove(ctx context.Context, userID, serviceID string) (*domain.CartSummary, error) {
	s.logger.Info("CartRemove: user=%s, service=%s", userID, serviceID)

	items, err := s.load(ctx, userID)
	if err != nil {
		return nil, err
	}

	updated, ok := domain.RemoveFromCart(items, serviceID)
	if ok {
		if err := s.save(ctx, userID, updated); err != nil {
			return nil, err
		}
	} else {
		s.logger.Info("CartRemove: service=%s is not in cart of user=%s", serviceID, userID)
	}

	return s.summarize(ctx, updated)
}

// Clear очищает корзину
func (s *Service) Clear(ctx context.Context, userID string) error {
	s.logger.Info("CartClear: user=%s", userID)

	if err := s.carts.Clear(ctx, userID); err != nil {
		s.logger.Error("CartClear: failed to clear cart of user=%s: %v", userID, err)
		return fmt.Errorf("%w: CartClear - cart store error: %v", ErrInternal, err)
	}
	return nil
}

// Count количество единиц в корзине, без обращения к каталогу
func (s *Service) Count(ctx context.Context, userID string) (int, error) {
	items, err := s.load(ctx, userID)
	if err != nil {
		return 0, err
	}
	return domain.CartCount(items), nil
}

func (s *Service) load(ctx context.Context, userID string) ([]domain.CartItem, error) {
	items, err := s.carts.Get(ctx, userID)
	if err != nil {
		s.logger.Error("Cart: failed to get cart of user=%s: %v", userID, err)
		return nil, fmt.Errorf("%w: cart store error: %v", ErrInternal, err)
	}
	return domain.NormalizeCart(items), nil
}

func (s *Service) save(ctx context.Context, userID string, items []domain.CartItem) error {
	if err := s.carts.Set(ctx, userID, items); err != nil {
		s.logger.Error("Cart: failed to save cart of user=%s: %v", userID, err)
		return fmt.Errorf("%w: cart store error: %v", ErrInternal, err)
	}
	return nil
}

func (s *Service) summarize(ctx context.Context, items []domain.CartItem) (*domain.CartSummary, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("Cart: failed to load document: %v", err)
		return nil, fmt.Errorf("%w: store error: %v", ErrInternal, err)
	}
	summary := domain.BuildCartSummary(items, doc.Services)
	return &summary, nil
}
