package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/auth"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func echoUser(w http.ResponseWriter, r *http.Request) {
	claims, ok := ClaimsFromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusTeapot)
		return
	}
	_, _ = w.Write([]byte(claims.UserID()))
}

func TestAuthAndRole(t *testing.T) {
	tokens := auth.NewTokenManager("secret", "salon", time.Hour)
	log := logger.NewNop()

	adminToken, err := tokens.Generate(&domain.User{ID: "adm", Role: domain.RoleAdmin})
	require.NoError(t, err)
	clientToken, err := tokens.Generate(&domain.User{ID: "c1", Role: domain.RoleClient})
	require.NoError(t, err)

	handler := Auth(tokens, log)(RequireRole(domain.RoleAdmin, log)(http.HandlerFunc(echoUser)))

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{name: "admin", header: "Bearer " + adminToken, wantStatus: http.StatusOK, wantBody: "adm"},
		{name: "client forbidden", header: "Bearer " + clientToken, wantStatus: http.StatusForbidden},
		{name: "no header", header: "", wantStatus: http.StatusUnauthorized},
		{name: "wrong scheme", header: "Basic abc", wantStatus: http.StatusUnauthorized},
		{name: "garbage token", header: "Bearer abc.def.ghi", wantStatus: http.StatusUnauthorized},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/finance", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.wantStatus, w.Code)
			if tt.wantBody != "" {
				assert.Equal(t, tt.wantBody, w.Body.String())
			}
		})
	}
}

func TestRequireRoleWithoutAuth(t *testing.T) {
	handler := RequireRole(domain.RoleClient, logger.NewNop())(http.HandlerFunc(echoUser))
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

type recordedHTTP struct {
	method, route string
	status        int
}

type fakeHTTPMetrics struct{ calls []recordedHTTP }

func (m *fakeHTTPMetrics) ObserveHTTP(method, route string, status int, elapsed time.Duration) {
	m.calls = append(m.calls, recordedHTTP{method: method, route: route, status: status})
}

func TestMetricsMiddlewareUsesRouteTemplate(t *testing.T) {
	m := &fakeHTTPMetrics{}
	r := mux.NewRouter()
	r.Use(MetricsMiddleware(m))
	r.HandleFunc("/api/v1/admin/services/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}).Methods(http.MethodDelete)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodDelete, "/api/v1/admin/services/abc-123", nil))

	require.Len(t, m.calls, 1)
	assert.Equal(t, recordedHTTP{method: "DELETE", route: "/api/v1/admin/services/{id}", status: http.StatusNoContent}, m.calls[0])
}

func TestRateLimiter(t *testing.T) {
	rl := NewRateLimiter(1, 2, time.Minute)
	current := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)
	rl.now = func() time.Time { return current }

	handler := rl.Limit(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	call := func(addr string) int {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/auth/login", nil)
		req.RemoteAddr = addr
		w := httptest.NewRecorder()
		handler.ServeHTTP(w, req)
		return w.Code
	}

	assert.Equal(t, http.StatusOK, call("10.0.0.1:5000"))
	assert.Equal(t, http.StatusOK, call("10.0.0.1:5001"))
	assert.Equal(t, http.StatusTooManyRequests, call("10.0.0.1:5002"))
	assert.Equal(t, http.StatusOK, call("10.0.0.2:5000"), "limit is per IP")

	current = current.Add(time.Second)
	assert.Equal(t, http.StatusOK, call("10.0.0.1:5003"))

	current = current.Add(2 * time.Minute)
	assert.Equal(t, 2, rl.Cleanup())
}
