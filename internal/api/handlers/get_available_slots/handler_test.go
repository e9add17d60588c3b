package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	getAvailableSlots "github.com/m04kA/SMC-SalonService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type stubUseCase struct {
	got *getAvailableSlots.Request
	err error
}

func (s *stubUseCase) Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.got = req
	if s.err != nil {
		return nil, s.err
	}
	return &getAvailableSlots.Response{
		StaffID:         req.StaffID,
		Date:            req.Date,
		DurationMinutes: req.DurationMinutes,
		Slots: []getAvailableSlots.Slot{
			{StartTime: "09:00", EndTime: "10:30", Available: true},
			{StartTime: "09:30", EndTime: "11:00", Available: false},
		},
	}, nil
}

func call(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/staff/s1/available-slots"+query, nil)
	w := httptest.NewRecorder()
	h.Handle(w, mux.SetURLVars(req, map[string]string{"id": "s1"}))
	return w
}

func TestHandle(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, logger.NewNop())

	w := call(h, "?date=2025-03-12&duration=90")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, 90, uc.got.DurationMinutes)
	assert.Equal(t, "s1", uc.got.StaffID)

	var got AvailableSlotsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&got))
	require.Len(t, got.Slots, 2)
	assert.Equal(t, AvailableSlot{StartTime: "09:00", EndTime: "10:30", Available: true}, got.Slots[0])
}

func TestHandleErrors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		err        error
		wantStatus int
	}{
		{name: "missing date", query: "", wantStatus: http.StatusBadRequest},
		{name: "bad duration", query: "?date=2025-03-12&duration=abc", wantStatus: http.StatusBadRequest},
		{name: "past", query: "?date=2025-03-01", err: getAvailableSlots.ErrInvalidDate, wantStatus: http.StatusBadRequest},
		{name: "unknown staff", query: "?date=2025-03-12", err: getAvailableSlots.ErrStaffNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", query: "?date=2025-03-12", err: getAvailableSlots.ErrInternal, wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, logger.NewNop())
			assert.Equal(t, tt.wantStatus, call(h, tt.query).Code)
		})
	}
}
