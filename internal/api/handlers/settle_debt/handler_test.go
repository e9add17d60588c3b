package settle_debt

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
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memdb"
	settleUC "github.com/m04kA/SMC-SalonService/internal/usecase/settle_debt"
	"github.com/m04kA/SMC-SalonService/pkg/idgen"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
	"github.com/m04kA/SMC-SalonService/pkg/metrics"
)

func TestHandle(t *testing.T) {
	doc := domain.NewDocument()
	doc.Reservations = []domain.Reservation{
		{ID: "r1", ClientID: "c1", StaffID: "s1", Date: "2025-03-11", Time: "09:00", Status: domain.StatusPending, PaymentStatus: domain.PaymentStatusUnpaid},
	}
	doc.Debts = []domain.Debt{
		{ID: "d1", ClientID: "c1", ReservationID: "r1", Amount: 800, Status: domain.DebtStatusOpen},
	}
	store, err := memdb.NewWithDocument(doc)
	require.NoError(t, err)

	log := logger.NewNop()
	h := NewHandler(settleUC.NewUseCase(store, idgen.NewSequence("pay"), (*metrics.Metrics)(nil), log), log)

	call := func(id, body string) *httptest.ResponseRecorder {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/debts/"+id+"/settle", strings.NewReader(body))
		h.Handle(w, mux.SetURLVars(req, map[string]string{"id": id}))
		return w
	}

	w := call("d1", `{"paymentMethod":"  "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = call("d1", `{"paymentMethod":"e-Mola"}`)
	require.Equal(t, http.StatusOK, w.Code)
	var outcome struct {
		handlers.Outcome
		Data SettleDebtResponse `json:"data"`
	}
	require.NoError(t, json.NewDecoder(w.Body).Decode(&outcome))
	assert.Equal(t, msgSettled, outcome.Message)
	assert.Equal(t, domain.DebtStatusPaid, outcome.Data.Debt.Status)
	assert.Equal(t, "e-Mola", outcome.Data.Payment.Method)
	assert.True(t, outcome.Data.ReservationLinked)

	w = call("d1", `{"paymentMethod":"Cash"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = call("ghost", `{"paymentMethod":"Cash"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
