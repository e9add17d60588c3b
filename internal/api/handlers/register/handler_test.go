package register

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/service/clients"
	"github.com/m04kA/SMC-SalonService/internal/service/clients/models"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type stubService struct{ err error }

func (s *stubService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	if s.err != nil {
		return nil, s.err
	}
	return &models.UserResponse{ID: "u1", Name: req.Name, Email: req.Email}, nil
}

func TestHandle(t *testing.T) {
	body := `{"name":"Ana","email":"ana@mail.com","password":"123","phone":"841"}`

	tests := []struct {
		name        string
		body        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{name: "created", body: body, wantStatus: http.StatusCreated, wantMessage: msgRegistered},
		{name: "email taken", body: body, err: clients.ErrEmailTaken, wantStatus: http.StatusConflict, wantMessage: msgEmailTaken},
		{name: "invalid", body: body, err: clients.ErrInvalidInput, wantStatus: http.StatusBadRequest, wantMessage: msgInvalidInput},
		{name: "unknown field", body: `{"name":"Ana","role":"admin"}`, wantStatus: http.StatusBadRequest, wantMessage: msgInvalidRequestBody},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubService{err: tt.err}, logger.NewNop())
			w := httptest.NewRecorder()
			h.Handle(w, httptest.NewRequest(http.MethodPost, "/api/v1/auth/register", strings.NewReader(tt.body)))

			assert.Equal(t, tt.wantStatus, w.Code)
			var outcome handlers.Outcome
			require.NoError(t, json.NewDecoder(w.Body).Decode(&outcome))
			assert.Equal(t, tt.wantMessage, outcome.Message)
		})
	}
}
