package manage_services

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
)

type CatalogService interface {
	CreateService(ctx context.Context, req *models.ServiceRequest) (*models.ServiceResponse, error)
	UpdateService(ctx context.Context, id string, req *models.ServiceRequest) (*models.ServiceResponse, error)
	DeleteService(ctx context.Context, id string) error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
