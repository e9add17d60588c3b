package finance

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/reports/models"
)

type ReportService interface {
	Finance(ctx context.Context) (*models.FinanceResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
