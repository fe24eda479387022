package router

import (
	"context"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/config"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/infra"
	"github.com/hernandez26lds-coder/Evolution-Beauty-Center/internal/store"
)

func newTestRouter(t *testing.T) (*store.Store, http.Handler) {
	t.Helper()
	snap := infra.NewFileSnapshotStore(filepath.Join(t.TempDir(), "snap.json"))
	st := store.New(snap)
	require.NoError(t, st.Load(context.Background()))
	return st, New(&config.Config{Env: "production"}, st, snap, nil)
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	_, h := newTestRouter(t)
	w := do(h, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"ok":true`)
}

func TestAdminReachesEverything(t *testing.T) {
	_, h := newTestRouter(t)
	for _, path := range []string{
		"/v1/state", "/v1/services", "/v1/products", "/v1/clients",
		"/v1/providers", "/v1/inventory", "/v1/transactions", "/v1/dashboard",
	} {
		w := do(h, http.MethodGet, path, "")
		assert.Equal(t, http.StatusOK, w.Code, path)
	}
}

func TestRoleGatesMirrorTabVisibility(t *testing.T) {
	_, h := newTestRouter(t)

	// switch the session to the cash desk role
	w := do(h, http.MethodPut, "/v1/role", `{"role":"CASHIER"}`)
	require.Equal(t, http.StatusOK, w.Code)

	// cashier: finance and clients yes, catalogs no, stock view yes
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/v1/transactions", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/v1/clients", "").Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/v1/inventory", "").Code)
	assert.Equal(t, http.StatusForbidden, do(h, http.MethodGet, "/v1/products", "").Code)
	assert.Equal(t, http.StatusForbidden, do(h, http.MethodGet, "/v1/exports/products", "").Code)
	assert.Equal(t, http.StatusForbidden, do(h, http.MethodPost, "/v1/reset", "").Code)

	// inventory: the mirror image
	w = do(h, http.MethodPut, "/v1/role", `{"role":"INVENTORY"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, http.StatusOK, do(h, http.MethodGet, "/v1/products", "").Code)
	assert.Equal(t, http.StatusForbidden, do(h, http.MethodGet, "/v1/transactions", "").Code)
}

func TestSaleOverSellingReturnsConflict(t *testing.T) {
	st, h := newTestRouter(t)

	// p2 seeded at stock 3
	body := `{
		"type": "INCOME", "category": "Venta de Producto", "paymentMethod": "Cash",
		"items": [{"id":"P002","name":"Tinte 7.1 Rubio Ceniza","price":15,"quantity":5,"type":"product"}]
	}`
	w := do(h, http.MethodPost, "/v1/transactions", body)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "No hay suficiente stock")
	assert.Len(t, st.Current().Transactions, 1) // only the seeded one
}

func TestValidationErrorEnvelope(t *testing.T) {
	_, h := newTestRouter(t)

	w := do(h, http.MethodPost, "/v1/clients", `{"name":"Ana"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "Error de validación")
	assert.Contains(t, w.Body.String(), "Phone")
}
