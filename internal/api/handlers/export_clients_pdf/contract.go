package export_clients_pdf

import (
	"context"
	"io"
)

type ClientService interface {
	ExportPDF(ctx context.Context, query string, w io.Writer) (string, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
