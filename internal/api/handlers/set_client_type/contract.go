package set_client_type

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/clients/models"
)

type ClientService interface {
	SetClientType(ctx context.Context, clientID, clientType string) (*models.UserResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
