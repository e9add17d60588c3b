package clients

import (
	"bytes"
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-SalonService/internal/auth"
	"github.com/m04kA/SMC-SalonService/internal/domain"
	"github.com/m04kA/SMC-SalonService/internal/infra/pdfexport"
	"github.com/m04kA/SMC-SalonService/internal/infra/storage/memdb"
	"github.com/m04kA/SMC-SalonService/internal/service/clients/models"
	"github.com/m04kA/SMC-SalonService/pkg/idgen"
	"github.com/m04kA/SMC-SalonService/pkg/logger"
)

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type captureRenderer struct{ listing *pdfexport.ClientListing }

func (r *captureRenderer) Render(w io.Writer, listing *pdfexport.ClientListing) error {
	r.listing = listing
	_, err := w.Write([]byte("%PDF-"))
	return err
}

var now = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newService(t *testing.T) (*Service, *memdb.Store, *captureRenderer, *auth.TokenManager) {
	t.Helper()
	hasher := auth.NewPasswordHasher(4)
	adminHash, err := hasher.Hash("admin123")
	require.NoError(t, err)

	doc := domain.NewDocument()
	doc.Users = []domain.User{
		{ID: "adm", Role: domain.RoleAdmin, Name: "Admin", Email: "admin@salon.local", PasswordHash: adminHash},
		{ID: "c1", Role: domain.RoleClient, Name: "bia Souza", Email: "bia@mail.com", Phone: "841112233",
			ClientType: domain.ClientTypePostpaid, CreatedAt: now.Add(-48 * time.Hour)},
		{ID: "c2", Role: domain.RoleClient, Name: "Ana Lima", Email: "ana@mail.com", Phone: "849998877",
			CreatedAt: now.Add(-24 * time.Hour)},
	}
	doc.Debts = []domain.Debt{
		{ID: "d1", ClientID: "c1", ReservationID: "r1", Amount: 300, Status: domain.DebtStatusOpen, CreatedAt: now.Add(-2 * time.Hour)},
		{ID: "d2", ClientID: "c1", ReservationID: "r2", Amount: 700, Status: domain.DebtStatusPaid, CreatedAt: now.Add(-time.Hour)},
	}
	store, err := memdb.NewWithDocument(doc)
	require.NoError(t, err)

	tokens := auth.NewTokenManager("secret", "salon", time.Hour)
	renderer := &captureRenderer{}
	s := NewService(store, hasher, tokens, renderer, idgen.NewSequence("u"), logger.NewNop())
	s.timeProvider = fixedTime{t: now}
	return s, store, renderer, tokens
}

func TestRegister(t *testing.T) {
	s, store, _, _ := newService(t)
	ctx := context.Background()

	resp, err := s.Register(ctx, &models.RegisterRequest{Name: "Rui", Email: "rui@mail.com", Password: "pw", Phone: "84"})
	require.NoError(t, err)
	assert.Equal(t, domain.RoleClient, resp.Role)
	assert.Equal(t, domain.ClientTypePrepaid, resp.ClientType)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	saved := doc.FindUser(resp.ID)
	require.NotNil(t, saved)
	assert.NotEqual(t, "pw", saved.PasswordHash)

	_, err = s.Register(ctx, &models.RegisterRequest{Name: "Other", Email: "RUI@mail.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrEmailTaken)

	_, err = s.Register(ctx, &models.RegisterRequest{Name: "", Email: "x@mail.com", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = s.Register(ctx, &models.RegisterRequest{Name: "X", Email: "not-an-email", Password: "pw"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestLogin(t *testing.T) {
	s, _, _, tokens := newService(t)
	ctx := context.Background()

	resp, err := s.Login(ctx, &models.LoginRequest{Email: "ADMIN@salon.local", Password: "admin123"})
	require.NoError(t, err)
	assert.Equal(t, "adm", resp.User.ID)

	claims, err := tokens.Parse(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, "adm", claims.UserID())
	assert.Equal(t, domain.RoleAdmin, claims.Role)

	_, err = s.Login(ctx, &models.LoginRequest{Email: "admin@salon.local", Password: "wrong"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = s.Login(ctx, &models.LoginRequest{Email: "ghost@salon.local", Password: "admin123"})
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestSetClientType(t *testing.T) {
	s, store, _, _ := newService(t)
	ctx := context.Background()

	resp, err := s.SetClientType(ctx, "c2", "postpaid")
	require.NoError(t, err)
	assert.Equal(t, domain.ClientTypePostpaid, resp.ClientType)

	doc, err := store.Load(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.ClientTypePostpaid, doc.FindUser("c2").ClientType)

	_, err = s.SetClientType(ctx, "c2", "vip")
	assert.ErrorIs(t, err, ErrInvalidClientType)

	_, err = s.SetClientType(ctx, "adm", "postpaid")
	assert.ErrorIs(t, err, ErrClientNotFound)
}

func TestListClients(t *testing.T) {
	s, _, _, _ := newService(t)
	ctx := context.Background()

	resp, err := s.ListClients(ctx, "")
	require.NoError(t, err)
	require.Len(t, resp.Clients, 2)
	assert.Equal(t, "c2", resp.Clients[0].ID, "newest first")
	assert.Equal(t, domain.ClientCounts{Total: 2, Prepaid: 1, Postpaid: 1}, resp.Counts)

	require.Len(t, resp.Debts, 2)
	assert.Equal(t, "d2", resp.Debts[0].ID)
	assert.Equal(t, "bia Souza", resp.Debts[0].ClientName)

	resp, err = s.ListClients(ctx, " 8499 ")
	require.NoError(t, err)
	require.Len(t, resp.Clients, 1)
	assert.Equal(t, "c2", resp.Clients[0].ID)
	assert.Equal(t, "8499", resp.Query)
}

func TestExportPDF(t *testing.T) {
	s, _, renderer, _ := newService(t)

	var buf bytes.Buffer
	name, err := s.ExportPDF(context.Background(), "mail.com", &buf)
	require.NoError(t, err)
	assert.Equal(t, pdfexport.FileName(now), name)
	assert.Equal(t, "%PDF-", buf.String())

	require.NotNil(t, renderer.listing)
	require.Len(t, renderer.listing.Clients, 2)
	assert.Equal(t, "Ana Lima", renderer.listing.Clients[0].Name)
	assert.Equal(t, "bia Souza", renderer.listing.Clients[1].Name)
	assert.Equal(t, 1, renderer.listing.Counts.Postpaid)
}
