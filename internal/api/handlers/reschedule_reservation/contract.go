package reschedule_reservation

import (
	"context"

	rescheduleUC "github.com/m04kA/SMC-SalonService/internal/usecase/reschedule_reservation"
)

type RescheduleUseCase interface {
	Execute(ctx context.Context, req *rescheduleUC.Request) (*rescheduleUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
