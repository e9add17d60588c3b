package pgdoc

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"
	"testing"
	"time"

	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/document"
	"github.com/m04kA/SMC-SalonService/pkg/dbmetrics"
	"github.com/m04kA/SMC-SalonService/pkg/txmanager"
)

// Тесты требуют PostgreSQL: RUN_PG_INTEGRATION=true SALON_TEST_PG_DSN=postgres://...
func newIntegrationStore(t *testing.T) *Store {
	t.Helper()
	if os.Getenv("RUN_PG_INTEGRATION") != "true" {
		t.Skip("set RUN_PG_INTEGRATION=true to run PostgreSQL integration tests")
	}

	dsn := os.Getenv("SALON_TEST_PG_DSN")
	require.NotEmpty(t, dsn, "SALON_TEST_PG_DSN is required")

	db, err := sql.Open("postgres", dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	wrapped := dbmetrics.Wrap(db, nil)
	store := New(wrapped, txmanager.NewTransactionManager(wrapped), fmt.Sprintf("test-%d", time.Now().UnixNano()))

	ctx := context.Background()
	require.NoError(t, store.Migrate(ctx))
	t.Cleanup(func() {
		_, _ = db.ExecContext(context.Background(), "DELETE FROM salon_documents WHERE id = $1", store.id)
	})
	return store
}

func TestStoreLoadCreatesDocument(t *testing.T) {
	store := newIntegrationStore(t)

	doc, err := store.Load(context.Background())
	require.NoError(t, err)
	assert.Empty(t, doc.Reservations)
	assert.NotNil(t, doc.Debts)
}

func TestStoreUpdateSerializes(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	const workers = 5
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		accepted int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			err := store.Update(ctx, func(doc *domain.Document) error {
				doc.Staff = append(doc.Staff, domain.Staff{ID: fmt.Sprintf("s%d", i)})
				return nil
			})
			if err == nil {
				mu.Lock()
				accepted++
				mu.Unlock()
				return
			}
			assert.ErrorIs(t, err, document.ErrConcurrentUpdate)
		}(i)
	}
	wg.Wait()

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Len(t, doc.Staff, accepted, "every accepted update is visible, none is lost")
}

func TestStoreSaveOverwrites(t *testing.T) {
	store := newIntegrationStore(t)
	ctx := context.Background()

	doc := domain.NewDocument()
	doc.Services = append(doc.Services, domain.Service{ID: "svc", Name: "Corte", Price: 900, Duration: 60})
	require.NoError(t, store.Save(ctx, doc))

	got, err := store.Load(ctx)
	require.NoError(t, err)
	require.Len(t, got.Services, 1)
	assert.Equal(t, "Corte", got.Services[0].Name)
}
