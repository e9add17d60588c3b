package document

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// SeedOptions учетная запись администратора по умолчанию
type SeedOptions struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
	AdminPhone    string
}

// errUnchanged прерывает Update без записи, когда заполнять нечего
var errUnchanged = errors.New("document: nothing to seed")

// Seed дополняет документ данными по умолчанию. Существующие записи не изменяются и не удаляются,
// кроме нормализации типа клиента. Документ сохраняется только при изменениях.
func Seed(
	ctx context.Context,
	store Store,
	hasher PasswordHasher,
	ids IDGenerator,
	clock TimeProvider,
	opts SeedOptions,
	logger Logger,
) (bool, error) {
	err := store.Update(ctx, func(doc *domain.Document) error {
		changed, err := seedDocument(doc, hasher, ids, clock, opts, logger)
		if err != nil {
			return err
		}
		if !changed {
			return errUnchanged
		}
		return nil
	})

	switch {
	case errors.Is(err, errUnchanged):
		logger.Info("Seed: document is up to date")
		return false, nil
	case err != nil:
		logger.Error("Seed: failed: %v", err)
		return false, err
	}

	logger.Info("Seed: document updated")
	return true, nil
}

func seedDocument(
	doc *domain.Document,
	hasher PasswordHasher,
	ids IDGenerator,
	clock TimeProvider,
	opts SeedOptions,
	logger Logger,
) (bool, error) {
	changed := false

	// 1. Коллекция долгов
	if doc.Debts == nil {
		doc.Debts = []domain.Debt{}
		changed = true
	}

	// 2. Администратор
	if !hasAdmin(doc) {
		hash, err := hasher.Hash(opts.AdminPassword)
		if err != nil {
			return false, fmt.Errorf("%w: hash admin password: %v", ErrSeed, err)
		}
		doc.Users = append(doc.Users, domain.User{
			ID:           ids.NewID(),
			Role:         domain.RoleAdmin,
			Name:         opts.AdminName,
			Email:        opts.AdminEmail,
			Phone:        opts.AdminPhone,
			PasswordHash: hash,
			CreatedAt:    clock.Now(),
		})
		logger.Info("Seed: admin %s created", opts.AdminEmail)
		changed = true
	}

	// 3. Каталог услуг, только добавление
	existing := make(map[string]struct{}, len(doc.Services))
	for _, s := range doc.Services {
		existing[strings.ToLower(s.Name)] = struct{}{}
	}
	added := 0
	for _, entry := range domain.DefaultCatalog {
		if _, ok := existing[strings.ToLower(entry.Name)]; ok {
			continue
		}
		doc.Services = append(doc.Services, domain.Service{
			ID:       ids.NewID(),
			Name:     entry.Name,
			Price:    entry.Price,
			Duration: entry.Duration,
		})
		added++
	}
	if added > 0 {
		logger.Info("Seed: %d default services added", added)
		changed = true
	}

	// 4. Профессионалы, если их нет
	if len(doc.Staff) == 0 {
		for _, s := range domain.DefaultStaff {
			s.ID = ids.NewID()
			doc.Staff = append(doc.Staff, s)
		}
		logger.Info("Seed: %d default staff added", len(domain.DefaultStaff))
		changed = true
	}

	// 5. Тип клиента
	for i := range doc.Users {
		u := &doc.Users[i]
		if u.IsClient() && !u.ClientType.IsValid() {
			u.ClientType = domain.ClientTypePrepaid
			changed = true
		}
	}

	return changed, nil
}

func hasAdmin(doc *domain.Document) bool {
	for i := range doc.Users {
		if doc.Users[i].IsAdmin() {
			return true
		}
	}
	return false
}
