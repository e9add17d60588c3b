package catalog

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memdb"
	"github.com/m04kA/SMC-SalonService/internal/service/catalog/models"
	"github.com/m04kA/SMC-SalonService/pkg/idgen"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

func newService(t *testing.T) (*Service, *memdb.Store) {
	t.Helper()
	doc := domain.NewDocument()
	doc.Services = []domain.Service{{ID: "A", Name: "Corte", Price: 900, Duration: 60}}
	doc.Staff = []domain.Staff{{ID: "s1", Name: "Carla", Specialty: "Cabelos"}}
	doc.Reservations = []domain.Reservation{
		{ID: "r1", ServiceID: "A", StaffID: "s1", Date: "2025-03-11", Time: "09:00", Status: domain.StatusPending,
			CartItems: []domain.CartItem{{ServiceID: "A", Qty: 1, Name: "Corte", UnitPrice: 900, UnitDuration: 60}},
			TotalAmount: 900, TotalDuration: 60},
	}
	store, err := memdb.NewWithDocument(doc)
	require.NoError(t, err)
	return NewService(store, idgen.NewSequence("svc"), logger.NewNop()), store
}

func TestCreateService(t *testing.T) {
	tests := []struct {
		name    string
		req     models.ServiceRequest
		wantErr error
	}{
		{name: "valid", req: models.ServiceRequest{Name: "  Barba  ", Price: 500, Duration: 30}},
		{name: "free service", req: models.ServiceRequest{Name: "Avaliacao", Price: 0, Duration: 15}},
		{name: "blank name", req: models.ServiceRequest{Name: "   ", Price: 500, Duration: 30}, wantErr: ErrInvalidInput},
		{name: "negative price", req: models.ServiceRequest{Name: "Barba", Price: -1, Duration: 30}, wantErr: ErrInvalidInput},
		{name: "zero duration", req: models.ServiceRequest{Name: "Barba", Price: 500}, wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, store := newService(t)
			ctx := context.Background()

			resp, err := s.CreateService(ctx, &tt.req)
			doc, loadErr := store.Load(ctx)
			require.NoError(t, loadErr)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Len(t, doc.Services, 1)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "svc-1", resp.ID)
			assert.NotContains(t, resp.Name, " ", "name is trimmed")
			assert.Len(t, doc.Services, 2)
		})
	}
}

func TestUpdateService(t *testing.T) {
	s, store := newService(t)
	ctx := context.Background()

	resp, err := s.UpdateService(ctx, "A", &models.ServiceRequest{Name: "Corte Feminino", Price: 950, Duration: 70})
	require.NoError(t, err)
	assert.Equal(t, 950.0, resp.Price)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Corte Feminino", doc.FindService("A").Name)
	// снимок в бронировании не меняется
	assert.Equal(t, "Corte", doc.Reservations[0].CartItems[0].Name)
	assert.Equal(t, 60, doc.Reservations[0].TotalDuration)

	_, err = s.UpdateService(ctx, "nope", &models.ServiceRequest{Name: "X", Price: 1, Duration: 1})
	assert.ErrorIs(t, err, ErrServiceNotFound)

	_, err = s.UpdateService(ctx, "A", &models.ServiceRequest{Name: "X", Price: 1, Duration: 0})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestDeleteService(t *testing.T) {
	s, store := newService(t)
	ctx := context.Background()

	require.NoError(t, s.DeleteService(ctx, "A"))
	require.NoError(t, s.DeleteService(ctx, "A"))
	require.NoError(t, s.DeleteService(ctx, "never-existed"))

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Empty(t, doc.Services)
	require.Len(t, doc.Reservations, 1)
	assert.Equal(t, 900.0, doc.Reservations[0].TotalAmount)

	list, err := s.ListServices(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestStaff(t *testing.T) {
	s, _ := newService(t)
	ctx := context.Background()

	_, err := s.CreateStaff(ctx, &models.StaffRequest{Name: " "})
	assert.ErrorIs(t, err, ErrInvalidInput)

	created, err := s.CreateStaff(ctx, &models.StaffRequest{Name: "Lina S."})
	require.NoError(t, err)
	assert.Equal(t, "", created.Specialty)

	list, err := s.ListStaff(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Carla", list[0].Name)
	assert.Equal(t, "Lina S.", list[1].Name)
}
