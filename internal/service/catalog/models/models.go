package models

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-SalonService/internal/domain"
)

// ServiceRequest данные для создания и обновления услуги
type ServiceRequest struct {
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// Validate проверяет имя, цену >= 0 и длительность > 0
func (r *ServiceRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" {
		return fmt.Errorf("name is required")
	}
	if r.Price < 0 {
		return fmt.Errorf("price must not be negative")
	}
	if r.Duration <= 0 {
		return fmt.Errorf("duration must be positive")
	}
	return nil
}

// StaffRequest данные нового профессионала
type StaffRequest struct {
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

// ServiceResponse услуга каталога
type ServiceResponse struct {
	ID       string  `json:"id"`
	Name     string  `json:"name"`
	Price    float64 `json:"price"`
	Duration int     `json:"duration"`
}

// StaffResponse профессионал
type StaffResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Specialty string `json:"specialty"`
}

func FromDomainService(s *domain.Service) ServiceResponse {
	return ServiceResponse{ID: s.ID, Name: s.Name, Price: s.Price, Duration: s.Duration}
}

func FromDomainServiceList(list []domain.Service) []ServiceResponse {
	result := make([]ServiceResponse, 0, len(list))
	for i := range list {
		result = append(result, FromDomainService(&list[i]))
	}
	return result
}

func FromDomainStaff(s *domain.Staff) StaffResponse {
	return StaffResponse{ID: s.ID, Name: s.Name, Specialty: s.Specialty}
}

func FromDomainStaffList(list []domain.Staff) []StaffResponse {
	result := make([]StaffResponse, 0, len(list))
	for i := range list {
		result = append(result, FromDomainStaff(&list[i]))
	}
	return result
}
