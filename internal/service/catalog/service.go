package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

// Service сервис каталога услуг и профессионалов
type Service struct {
	store  DocumentStore
	ids    IDGenerator
	logger Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(store DocumentStore, ids IDGenerator, logger Logger) *Service {
	return &Service{
		store:  store,
		ids:    ids,
		logger: logger,
	}
}

// ListServices возвращает услуги в порядке хранения
func (s *Service) ListServices(ctx context.Context) ([]models.ServiceResponse, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("ListServices: failed to load document: %v", err)
		return nil, fmt.Errorf("%w: ListServices - store error: %v", ErrInternal, err)
	}
	return models.FromDomainServiceList(doc.Services), nil
}

// CreateService добавляет услугу в каталог
func (s *Service) CreateService(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("CreateService: name=%q, price=%.2f, duration=%d", req.Name, req.Price, req.Duration)

	if err := req.Validate(); err != nil {
		s.logger.Warn("CreateService: validation failed: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	service := domain.Service{
		ID:       s.ids.NewID(),
		Name:     strings.TrimSpace(req.Name),
		Price:    req.Price,
		Duration: req.Duration,
	}

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		doc.Services = append(doc.Services, service)
		return nil
	})
	if err != nil {
		s.logger.Error("CreateService: failed to save service: %v", err)
		return nil, fmt.Errorf("%w: CreateService - store error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateService: service id=%s created", service.ID)
	resp := models.FromDomainService(&service)
	return &resp, nil
}

// UpdateService изменяет имя, цену и длительность услуги
func (s *Service) UpdateService(ctx context.Context, id string, req *models.ServiceRequest) (*models.ServiceResponse, error) {
	s.logger.Info("UpdateService: id=%s, name=%q, price=%.2f, duration=%d", id, req.Name, req.Price, req.Duration)

	var resp models.ServiceResponse
	err := s.store.Update(ctx, func(doc *domain.Document) error {
		service := doc.FindService(id)
		if service == nil {
			return ErrServiceNotFound
		}
		if err := req.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}

		service.Name = strings.TrimSpace(req.Name)
		service.Price = req.Price
		service.Duration = req.Duration
		resp = models.FromDomainService(service)
		return nil
	})

	switch {
	case errors.Is(err, ErrServiceNotFound), errors.Is(err, ErrInvalidInput):
		s.logger.Warn("UpdateService: id=%s: %v", id, err)
		return nil, err
	case err != nil:
		s.logger.Error("UpdateService: failed to save service id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateService - store error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateService: service id=%s updated", id)
	return &resp, nil
}

// DeleteService удаляет услугу по id. Отсутствующий id не ошибка, документ не перезаписывается.
// Бронирования сохраняют свой снимок корзины.
func (s *Service) DeleteService(ctx context.Context, id string) error {
	s.logger.Info("DeleteService: id=%s", id)

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		if !doc.RemoveService(id) {
			return ErrServiceNotFound
		}
		return nil
	})

	switch {
	case errors.Is(err, ErrServiceNotFound):
		s.logger.Info("DeleteService: service id=%s already absent", id)
		return nil
	case err != nil:
		s.logger.Error("DeleteService: failed to delete service id=%s: %v", id, err)
		return fmt.Errorf("%w: DeleteService - store error: %v", ErrInternal, err)
	}

	s.logger.Info("DeleteService: service id=%s deleted", id)
	return nil
}

// ListStaff возвращает профессионалов
func (s *Service) ListStaff(ctx context.Context) ([]models.StaffResponse, error) {
	doc, err := s.store.Load(ctx)
	if err != nil {
		s.logger.Error("ListStaff: failed to load document: %v", err)
		return nil, fmt.Errorf("%w: ListStaff - store error: %v", ErrInternal, err)
	}
	return models.FromDomainStaffList(doc.Staff), nil
}

// CreateStaff добавляет профессионала, специализация необязательна
func (s *Service) CreateStaff(ctx context.Context, req *models.StaffRequest) (*models.StaffResponse, error) {
	s.logger.Info("CreateStaff: name=%q, specialty=%q", req.Name, req.Specialty)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		s.logger.Warn("CreateStaff: empty name")
		return nil, fmt.Errorf("%w: name is required", ErrInvalidInput)
	}

	staff := domain.Staff{
		ID:        s.ids.NewID(),
		Name:      name,
		Specialty: strings.TrimSpace(req.Specialty),
	}

	err := s.store.Update(ctx, func(doc *domain.Document) error {
		doc.Staff = append(doc.Staff, staff)
		return nil
	})
	if err != nil {
		s.logger.Error("CreateStaff: failed to save staff: %v", err)
		return nil, fmt.Errorf("%w: CreateStaff - store error: %v", ErrInternal, err)
	}

	s.logger.Info("CreateStaff: staff id=%s created", staff.ID)
	resp := models.FromDomainStaff(&staff)
	return &resp, nil
}
