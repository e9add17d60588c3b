package dashboard

import (
	"context"

	"github.com/m04kA/SMC-SalonService/internal/service/reports/models"
)

type ReportService interface {
	Dashboard(ctx context.Context, status string) (*models.DashboardResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
