package collaborator_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Jinzyy/project-eza-sub000/internal/domain"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/entity"
	"github.com/Jinzyy/project-eza-sub000/internal/domain/repository"
	"github.com/Jinzyy/project-eza-sub000/internal/infrastructure/collaborator"
	"github.com/Jinzyy/project-eza-sub000/pkg/config"
)

func newClient(t *testing.T, h http.HandlerFunc) *collaborator.Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	c, err := collaborator.NewClient(config.CollaboratorConfig{BaseURL: srv.URL + "/api/", Token: "tok-1", Timeout: time.Second})
	require.NoError(t, err)
	return c
}

func query(t entity.DocumentType, page int) repository.DocumentQuery {
	return repository.DocumentQuery{Type: t, Page: page, PageSize: 10, Filter: entity.ActiveFilter(t)}
}

func TestListDocuments_ConstruyeQueryYDecodificaEnvelope(t *testing.T) {
	var got *http.Request
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = r
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"status": true,
			"data": [{"id": 42, "number": "SO-042", "counterparty_name": "PT Laut Biru"}],
			"pagination": {"page": 2, "limit": 10, "total": 31}
		}`))
	})

	page, err := c.ListDocuments(context.Background(), query(entity.DocGoodsReceipt, 2))
	require.NoError(t, err)

	require.NotNil(t, got)
	assert.Equal(t, "/api/penerimaan_barang", got.URL.Path)
	assert.Equal(t, "2", got.URL.Query().Get("page"))
	assert.Equal(t, "10", got.URL.Query().Get("limit"))
	assert.Equal(t, "false", got.URL.Query().Get("penerimaan_barang.is_deleted"))
	assert.Equal(t, "Bearer tok-1", got.Header.Get("Authorization"))

	assert.Equal(t, 31, page.Total)
	assert.Equal(t, []entity.DocumentSummary{{ID: 42, Number: "SO-042", CounterpartyName: "PT Laut Biru"}}, page.Items)
}

func TestListDocuments_FiltroPorTipo(t *testing.T) {
	cases := map[entity.DocumentType]string{
		entity.DocInvoice:       "is_cancel",
		entity.DocPurchaseNote:  "is_cancel",
		entity.DocSalesOrder:    "is_deleted",
		entity.DocDeliveryOrder: "is_deleted",
	}
	for dt, param := range cases {
		t.Run(dt.String(), func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, "/api/"+dt.Resource(), r.URL.Path)
				assert.Equal(t, "false", r.URL.Query().Get(param))
				_, _ = w.Write([]byte(`{"status": true, "data": []}`))
			})
			page, err := c.ListDocuments(context.Background(), query(dt, 1))
			require.NoError(t, err)
			assert.Empty(t, page.Items)
			assert.Zero(t, page.Total)
		})
	}
}

func TestListDocuments_Errores(t *testing.T) {
	cases := []struct {
		name    string
		status  int
		body    string
		message string
	}{
		{"status false", http.StatusOK, `{"status": false, "message": "token expirado"}`, "token expirado"},
		{"http 500 con envelope", http.StatusInternalServerError, `{"status": false, "message": "db caída"}`, "HTTP 500: db caída"},
		{"http 502 sin cuerpo", http.StatusBadGateway, ``, "HTTP 502"},
		{"json roto", http.StatusOK, `{"status": tr`, "decodificar"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				_, _ = w.Write([]byte(tc.body))
			})
			_, err := c.ListDocuments(context.Background(), query(entity.DocInvoice, 1))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.message)
		})
	}
}

func TestListDocuments_TipoDesconocido(t *testing.T) {
	c := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no debe llamar al colaborador")
	})
	_, err := c.ListDocuments(context.Background(), repository.DocumentQuery{Type: entity.DocumentType(9)})
	assert.ErrorIs(t, err, domain.ErrUnknownDocumentType)
}

func TestNewClient_URLInvalida(t *testing.T) {
	_, err := collaborator.NewClient(config.CollaboratorConfig{BaseURL: "erp.local"})
	assert.Error(t, err)
}
