package list_clients

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/clients/models"
)

type ClientService interface {
	ListClients(ctx context.Context, query string) (*models.ClientsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
