package cartstore

import (
	"context"
	"sync"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

type memoryEntry struct {
	items     []domain.CartItem
	expiresAt time.Time
}

// MemoryStore корзины в памяти процесса с TTL
type MemoryStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	now     func() time.Time
	entries map[string]memoryEntry
}

// NewMemoryStore ttl <= 0 означает хранение без срока
func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[string]memoryEntry),
	}
}

func (s *MemoryStore) expired(entry memoryEntry, now time.Time) bool {
	return s.ttl > 0 && now.After(entry.expiresAt)
}

// Cleanup удаляет просроченные корзины, возвращает количество удаленных
func (s *MemoryStore) Cleanup() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	removed := 0
	now := s.now()
	for userID, entry := range s.entries {
		if s.expired(entry, now) {
			delete(s.entries, userID)
			removed++
		}
	}
	return removed
}

// RunCleanup периодически вызывает Cleanup до закрытия stopCh
func (s *MemoryStore) RunCleanup(interval time.Duration, stopCh <-chan struct{}) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-stopCh:
			return
		case <-ticker.C:
			s.Cleanup()
		}
	}
}

func (s *MemoryStore) Get(ctx context.Context, userID string) ([]domain.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	entry, ok := s.entries[userID]
	if !ok {
		return []domain.CartItem{}, nil
	}
	if s.expired(entry, s.now()) {
		delete(s.entries, userID)
		return []domain.CartItem{}, nil
	}

	items := make([]domain.CartItem, len(entry.items))
	copy(items, entry.items)
	return items, nil
}

func (s *MemoryStore) Set(ctx context.Context, userID string, items []domain.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored := make([]domain.CartItem, len(items))
	copy(stored, items)
	s.entries[userID] = memoryEntry{items: stored, expiresAt: s.now().Add(s.ttl)}
	return nil
}

func (s *MemoryStore) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.entries, userID)
	return nil
}
