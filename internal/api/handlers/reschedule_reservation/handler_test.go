package reschedule_reservation

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	rescheduleUC "github.com/m04kA/SMC-SalonService/internal/usecase/reschedule_reservation"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type stubUseCase struct {
	got *rescheduleUC.Request
	err error
}

func (s *stubUseCase) Execute(ctx context.Context, req *rescheduleUC.Request) (*rescheduleUC.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &rescheduleUC.Response{Reservation: domain.Reservation{
		ID: req.ReservationID, Date: req.Date, Time: req.Time, Status: domain.StatusConfirmed,
	}}, nil
}

func TestHandle(t *testing.T) {
	body := `{"date":"2025-03-12","time":"14:30"}`

	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "success", body: body, wantStatus: http.StatusOK, wantMessage: msgRescheduled},
		{name: "bad time", body: `{"date":"2025-03-12","time":"25:00"}`, wantStatus: http.StatusBadRequest, wantMessage: msgInvalidDateTime},
		{name: "not found", body: body, err: rescheduleUC.ErrReservationNotFound, wantStatus: http.StatusNotFound, wantMessage: msgNotFound},
		{name: "terminal", body: body, err: rescheduleUC.ErrInvalidState, wantStatus: http.StatusConflict, wantMessage: msgInvalidState},
		{name: "conflict", body: body, err: rescheduleUC.ErrTimeConflict, wantStatus: http.StatusConflict, wantMessage: msgTimeConflict},
		{name: "internal", body: body, err: errors.New("disk"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &stubUseCase{err: tt.err}
			h := NewHandler(uc, logger.NewNop())

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/admin/reservations/r1/reschedule", strings.NewReader(tt.body))
			w := httptest.NewRecorder()
			h.Handle(w, mux.SetURLVars(req, map[string]string{"id": "r1"}))

			assert.Equal(t, tt.wantStatus, w.Code)
			var outcome handlers.Outcome
			require.NoError(t, json.NewDecoder(w.Body).Decode(&outcome))
			if tt.wantMessage != "" {
				assert.Equal(t, tt.wantMessage, outcome.Message)
			}
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "r1", uc.got.ReservationID)
			}
		})
	}
}
