package settle_debt

import (
	"context"

	settleUC "github.com/m04kA/SMC-SalonService/internal/usecase/settle_debt"
)

type SettleDebtUseCase interface {
	Execute(ctx context.Context, req *settleUC.Request) (*settleUC.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
