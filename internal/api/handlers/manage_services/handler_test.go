package manage_services

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/api/handlers"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memdb"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonService/pkg/idgen"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func TestServiceLifecycle(t *testing.T) {
	log := logger.NewNop()
	h := NewHandler(catalog.NewService(memdb.New(), idgen.NewSequence("svc"), log), log)

	// создание
	w := httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/services",
		strings.NewReader(`{"name":"Manicure","price":350,"duration":40}`)))
	require.Equal(t, http.StatusCreated, w.Code)

	var created struct {
		handlers.Outcome
		Data models.ServiceResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&created))
	assert.Equal(t, msgCreated, created.Message)
	id := created.Data.ID
	require.NotEmpty(t, id)

	// невалидное создание
	w = httptest.NewRecorder()
	h.Create(w, httptest.NewRequest(http.MethodPost, "/api/v1/admin/services",
		strings.NewReader(`{"name":"X","price":10,"duration":0}`)))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	update := func(id, body string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPut, "/api/v1/admin/services/"+id, strings.NewReader(body))
		h.Update(w, mux.SetURLVars(req, map[string]string{"id": id}))
		return w.Code
	}
	assert.Equal(t, http.StatusOK, update(id, `{"name":"Manicure Gel","price":400,"duration":50}`))
	assert.Equal(t, http.StatusBadRequest, update(id, `{"name":"","price":400,"duration":50}`))
	assert.Equal(t, http.StatusNotFound, update("ghost", `{"name":"A","price":1,"duration":1}`))

	remove := func(id string) int {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodDelete, "/api/v1/admin/services/"+id, nil)
		h.Delete(w, mux.SetURLVars(req, map[string]string{"id": id}))
		return w.Code
	}
	assert.Equal(t, http.StatusOK, remove(id))
	assert.Equal(t, http.StatusOK, remove(id))
	assert.Equal(t, http.StatusOK, remove("ghost"))
}
