package reports

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/service/reports/models"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type stubService struct {
	period string
	err    error
}

func (s *stubService) Report(ctx context.Context, period string) (*models.ReportResponse, error) {
	s.period = period
	if s.err != nil {
		return nil, s.err
	}
	return &models.ReportResponse{Period: domain.ParsePeriod(period)}, nil
}

func TestHandle(t *testing.T) {
	service := &stubService{}
	h := NewHandler(service, logger.NewNop())

	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports?period=week", nil))

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "week", service.period)
	var got models.ReportResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	assert.Equal(t, domain.PeriodWeek, got.Period)
}

func TestHandleError(t *testing.T) {
	h := NewHandler(&stubService{err: errors.New("disk")}, logger.NewNop())
	w := httptest.NewRecorder()
	h.Handle(w, httptest.NewRequest(http.MethodGet, "/api/v1/admin/reports", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
