package cancel_reservation

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/middleware"
	"github.com/m04kA/SMC-SalonService/internal/auth"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memdb"
	"github.com/m04kA/SMC-SalonService/internal/service/reservations"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func TestHandle(t *testing.T) {
	store := memdb.New()
	require.NoError(t, store.Update(context.Background(), func(doc *domain.Document) error {
		doc.Users = []domain.User{
			{ID: "c1", Role: domain.RoleClient, Name: "Ana"},
			{ID: "c2", Role: domain.RoleClient, Name: "Bia"},
		}
		doc.Reservations = []domain.Reservation{
			{ID: "r1", ClientID: "c1", StaffID: "s1", Date: "2025-03-10", Time: "09:00", Status: domain.StatusPending, CreatedAt: time.Now()},
			{ID: "r2", ClientID: "c1", StaffID: "s1", Date: "2025-03-11", Time: "09:00", Status: domain.StatusCompleted, CreatedAt: time.Now()},
		}
		return nil
	}))

	log := logger.NewNop()
	h := NewHandler(reservations.NewService(store, log), log)

	tests := []struct {
		name       string
		clientID   string
		id         string
		wantStatus int
	}{
		{name: "own pending", clientID: "c1", id: "r1", wantStatus: http.StatusOK},
		{name: "already cancelled", clientID: "c1", id: "r1", wantStatus: http.StatusConflict},
		{name: "completed", clientID: "c1", id: "r2", wantStatus: http.StatusConflict},
		{name: "other client", clientID: "c2", id: "r2", wantStatus: http.StatusNotFound},
		{name: "missing", clientID: "c1", id: "nope", wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			claims := &auth.Claims{Role: domain.RoleClient}
			claims.Subject = tt.clientID

			req := httptest.NewRequest(http.MethodPatch, "/api/v1/client/reservations/"+tt.id+"/cancel", nil)
			req = mux.SetURLVars(req, map[string]string{"id": tt.id})
			req = req.WithContext(middleware.WithClaims(req.Context(), claims))

			w := httptest.NewRecorder()
			h.Handle(w, req)
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
