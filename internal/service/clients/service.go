package clients

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/pdfexport"
	"github.com/m04kA/SMC-SalonService/internal/service/clients/models"
)

// Service сервис клиентов: регистрация, вход, тип оплаты, поиск и выгрузка
type Service struct {
	store        DocumentStore
	hasher       PasswordHasher
	tokens       TokenIssuer
	renderer     ListingRenderer
	ids          IDGenerator
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса клиентов
func NewService(
	store DocumentStore,
	hasher PasswordHasher,
	tokens TokenIssuer,
	renderer ListingRenderer,
	ids IDGenerator,
	logger Logger,
) *Service {
	return &Service{
		store:        store,
		hasher:       hasher,
		tokens:       tokens,
		renderer:     renderer,
		ids:          ids,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Register создает клиента с предоплатой. Email уникален без учета регистра.
func (s *Service) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	email := strings.TrimSpace(req.Email)
	s.logger.Info("Register: email=%s", email)

	// 1. Валидация
	if err := validateRegister(req); err != nil {
		s.logger.Warn("Register: validation failed: %v", err)
		return nil, err
	}

	// 2. Хеш пароля вне обновления документа
	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		s.logger.Error("Register: failed to hash password: %v", err)
		return nil, fmt.Errorf("%w: Register - hash error: %v", ErrInternal, err)
	}

	user := domain.User{
		ID:           s.ids.NewID(),
		Role:         domain.RoleClient,
		ClientType:   domain.ClientTypePrepaid,
		Name:         strings.TrimSpace(req.Name),
		Email:        email,
		Phone:        strings.TrimSpace(req.Phone),
		PasswordHash: hash,
		CreatedAt:    s.timeProvider.Now(),
	}

	// 3. Проверка уникальности и запись
	err = s.store.Update(ctx, func(doc *domain.Document) error {
		if doc.FindUserByEmail(email) != nil {
			return ErrEmailTaken
		}
		doc.Users = append(doc.Users, user)
		return nil
	})

	switch {
	case errors.Is(err, ErrEmailTaken):
		s.logger.Warn("Register: email=%s already registered", email)
		return nil, err
	case err != nil:
		s.logger.Error("Register: failed to save user: %v", err)
		return nil, fmt.Errorf("%w: Register - store error: %v", ErrInternal, err)
	}

	s.logger.Info("Register: client id=%s registered", user.ID)
	resp := models.FromDomainUser(&user)
	return &resp, nil
}

// Login проверяет пароль и выпускает токен сессии
func (s *Service) Login(ctx context.Context, req *models.LoginRequest) (*models.LoginResponse, error) {
	email := strings.TrimSpace(req.Email)
	s.logger.Info("Login: email=%s", email)

	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("Login: failed to load document: %v", err)
		return nil, fmt.Errorf("%w: Login - store error: %v", ErrInternal, err)
	}

	user := doc.FindUserByEmail(email)
	if user == nil || email == "" {
		s.logger.Warn("Login: unknown email=%s", email)
		return nil, ErrInvalidCredentials
	}
	if err := s.hasher.Compare(user.PasswordHash, req.Password); err != nil {
		s.logger.Warn("Login: wrong password for user=%s", user.ID)
		return nil, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(user)
	if err != nil {
		s.logger.Error("Login: failed to issue token for user=%s: %v", user.ID, err)
		return nil, fmt.Errorf("%w: Login - token error: %v", ErrInternal, err)
	}

	s.logger.Info("Login: user=%s role=%s signed in", user.ID, user.Role)
	return &models.LoginResponse{Token: token, User: models.FromDomainUser(user)}, nil
}

// SetClientType меняет тип оплаты клиента
func (s *Service) SetClientType(ctx context.Context, clientID, clientType string) (*models.UserResponse, error) {
	s.logger.Info("SetClientType: client=%s, type=%s", clientID, clientType)

	target := domain.ClientType(clientType)
	if !target.IsValid() {
		s.logger.Warn("SetClientType: invalid type=%q", clientType)
		return nil, ErrInvalidClientType
	}

	var resp models.UserResponse
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		client := doc.FindClient(clientID)
		if client == nil {
			return ErrClientNotFound
		}
		client.ClientType = target
		resp = models.FromDomainUser(client)
		return nil
	})

	switch {
	case errors.Is(err, ErrClientNotFound):
		s.logger.Warn("SetClientType: client=%s not found", clientID)
		return nil, err
	case err != nil:
		s.logger.Error("SetClientType: failed to save client=%s: %v", clientID, err)
		return nil, fmt.Errorf("%w: SetClientType - store error: %v", ErrInternal, err)
	}

	return &resp, nil
}

// ListClients ищет клиентов по имени, email или телефону, новые первыми, и возвращает все долги
func (s *Service) ListClients(ctx context.Context, query string) (*models.ClientsResponse, error) {
	query = strings.TrimSpace(query)
	s.logger.Info("ListClients: q=%q", query)

	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("ListClients: failed to load document: %v", err)
		return nil, fmt.Errorf("%w: ListClients - store error: %v", ErrInternal, err)
	}

	found := domain.FilterClients(doc.Users, query)
	sort.SliceStable(found, func(i, j int) bool {
		return found[i].CreatedAt.After(found[j].CreatedAt)
	})

	clients := make([]models.UserResponse, 0, len(found))
	for i := range found {
		clients = append(clients, models.FromDomainUser(&found[i]))
	}

	debts := make([]domain.Debt, len(doc.Debts))
	copy(debts, doc.Debts)
	sort.SliceStable(debts, func(i, j int) bool {
		return debts[i].CreatedAt.After(debts[j].CreatedAt)
	})

	debtList := make([]models.DebtResponse, 0, len(debts))
	for i := range debts {
		name := ""
		if u := doc.FindUser(debts[i].ClientID); u != nil {
			name = u.Name
		}
		debtList = append(debtList, models.FromDomainDebt(&debts[i], name))
	}

	return &models.ClientsResponse{
		Query:   query,
		Counts:  domain.CountClients(found),
		Clients: clients,
		Debts:   debtList,
	}, nil
}

// ExportRows клиенты для выгрузки: фильтр по запросу, сортировка по имени
func (s *Service) ExportRows(ctx context.Context, query string) (*pdfexport.ClientListing, error) {
	query = strings.TrimSpace(query)

	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("ExportRows: failed to load document: %v", err)
		return nil, fmt.Errorf("%w: ExportRows - store error: %v", ErrInternal, err)
	}

	found := domain.FilterClients(doc.Users, query)
	sort.SliceStable(found, func(i, j int) bool {
		return strings.ToLower(found[i].Name) < strings.ToLower(found[j].Name)
	})

	return &pdfexport.ClientListing{
		Clients:     found,
		Counts:      domain.CountClients(found),
		Query:       query,
		GeneratedAt: s.timeProvider.Now(),
	}, nil
}

// ExportPDF пишет PDF со списком клиентов в w и возвращает имя файла
func (s *Service) ExportPDF(ctx context.Context, query string, w io.Writer) (string, error) {
	s.logger.Info("ExportPDF: q=%q", query)

	listing, err := s.ExportRows(ctx, query)
	if err != nil {
		return "", err
	}

	if err := s.renderer.Render(w, listing); err != nil {
		s.logger.Error("ExportPDF: failed to render %d clients: %v", len(listing.Clients), err)
		return "", fmt.Errorf("%w: ExportPDF - render error: %v", ErrInternal, err)
	}

	s.logger.Info("ExportPDF: exported %d clients", len(listing.Clients))
	return pdfexport.FileName(listing.GeneratedAt), nil
}

// validateRegister валидирует данные регистрации
func validateRegister(req *models.RegisterRequest) error {
	if strings.TrimSpace(req.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	email := strings.TrimSpace(req.Email)
	if email == "" || !strings.Contains(email, "@") {
		return fmt.Errorf("%w: invalid email", ErrInvalidInput)
	}
	if req.Password == "" {
		return fmt.Errorf("%w: password is required", ErrInvalidInput)
	}
	return nil
}
