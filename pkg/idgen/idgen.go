package idgen

import (
	"fmt"
	"math/rand"

	"github.com/google/uuid"
)

// Generator выдает идентификаторы сущностей и ссылки на транзакции
type Generator struct{}

// New создает генератор на основе UUID v4
func New() *Generator {
	return &Generator{}
}

// NewID возвращает новый UUID v4
func (g *Generator) NewID() string {
	return uuid.NewString()
}

// NewTransactionRef возвращает синтетическую ссылку вида TX-123456
func (g *Generator) NewTransactionRef() string {
	return fmt.Sprintf("TX-%d", 100000+rand.Intn(900000))
}

// Sequence детерминированный генератор для тестов: prefix-1, prefix-2, ...
type Sequence struct {
	prefix string
	n      int
	tx     int
}

func NewSequence(prefix string) *Sequence {
	return &Sequence{prefix: prefix}
}

func (s *Sequence) NewID() string {
	s.n++
	return fmt.Sprintf("%s-%d", s.prefix, s.n)
}

func (s *Sequence) NewTransactionRef() string {
	s.tx++
	return fmt.Sprintf("TX-%06d", 100000+s.tx)
}
