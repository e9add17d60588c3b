package clients

import (
	"context"
	"io"
	"time"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/pdfexport"
)

// DocumentStore хранилище документа приложения
type DocumentStore interface {
	Load(ctx context.Context) (*domain.Document, error)
	Update(ctx context.Context, fn func(doc *domain.Document) error) error
}

// PasswordHasher хеширование и проверка паролей
type PasswordHasher interface {
	Hash(password string) (string, error)
	Compare(hash, password string) error
}

// TokenIssuer выпускает токен сессии для пользователя
type TokenIssuer interface {
	Generate(user *domain.User) (string, error)
}

// ListingRenderer рендерит выгрузку клиентов
type ListingRenderer interface {
	Render(w io.Writer, listing *pdfexport.ClientListing) error
}

// IDGenerator генератор идентификаторов
type IDGenerator interface {
	NewID() string
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
