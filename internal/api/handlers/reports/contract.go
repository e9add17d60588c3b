package reports

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/reports/models"
)

type ReportService interface {
	Report(ctx context.Context, period string) (*models.ReportResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
