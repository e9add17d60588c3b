package memdb

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
)

// Store держит документ в памяти в сериализованном виде, каждый Load отдает независимую копию
type Store struct {
	mu   sync.Mutex
	data []byte
}

// New создает пустое хранилище
func New() *Store {
	return &Store{}
}

// NewWithDocument создает хранилище с начальным документом
func NewWithDocument(doc *domain.Document) (*Store, error) {
	data, err := document.Encode(doc)
	if err != nil {
		return nil, err
	}
	return &Store{data: data}, nil
}

func (s *Store) Load(ctx context.Context) (*domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.readLocked()
}

func (s *Store) Save(ctx context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}
	return s.writeLocked(doc)
}

func (s *Store) Update(ctx context.Context, fn func(doc *domain.Document) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := s.readLocked()
	if err != nil {
		return err
	}
	if err := fn(doc); err != nil {
		return err
	}
	return s.writeLocked(doc)
}

func (s *Store) readLocked() (*domain.Document, error) {
	if s.data == nil {
		doc := domain.NewDocument()
		if err := s.writeLocked(doc); err != nil {
			return nil, err
		}
		return doc, nil
	}
	return document.Decode(s.data)
}

func (s *Store) writeLocked(doc *domain.Document) error {
	data, err := document.Encode(doc)
	if err != nil {
		return err
	}
	s.data = data
	return nil
}
