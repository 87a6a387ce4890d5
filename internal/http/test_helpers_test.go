package http_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/rogerio-castellano/products-msv/internal/auth"
	api "github.com/rogerio-castellano/products-msv/internal/http"
	"github.com/rogerio-castellano/products-msv/internal/http/handlers"
	"github.com/rogerio-castellano/products-msv/internal/inventory"
	"github.com/rogerio-castellano/products-msv/internal/repo"
)

const (
	adminUser     = "admin"
	adminPassword = "secret"
)

type testServer struct {
	router    http.Handler
	products  *repo.InMemoryProductRepository
	movements *repo.InMemoryMovementRepository
	token     string
}

// newTestServer wires the router over fresh in-memory repositories.
// With withAuth the mutating routes require the token stored in the result.
func newTestServer(t *testing.T, withAuth bool) *testServer {
	t.Helper()

	movements := repo.NewInMemoryMovementRepository()
	products := repo.NewInMemoryProductRepository(movements)
	svc := inventory.NewService(products, nil)

	var authenticator *auth.Authenticator
	if withAuth {
		hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.MinCost)
		if err != nil {
			t.Fatalf("failed to hash password: %v", err)
		}
		authenticator = auth.NewAuthenticator("test-secret", adminUser, string(hash))
	}

	ts := &testServer{
		router: api.NewRouter(api.RouterConfig{
			Handlers: handlers.New(svc, movements, repo.NewInMemorySummaryRepository(products, movements), authenticator, nil),
			Auth:     authenticator,
		}),
		products:  products,
		movements: movements,
	}

	if withAuth {
		w := ts.do(http.MethodPost, "/login", handlers.CredentialsRequest{Username: adminUser, Password: adminPassword})
		if w.Code != http.StatusOK {
			t.Fatalf("login failed: %d %s", w.Code, w.Body.String())
		}
		var resp handlers.LoginResult
		decode(t, w, &resp)
		ts.token = resp.Token
	}

	return ts
}

func (ts *testServer) do(method, path string, body any) *httptest.ResponseRecorder {
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, _ := json.Marshal(b)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if ts.token != "" {
		req.Header.Set("Authorization", "Bearer "+ts.token)
	}
	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

func (ts *testServer) createProduct(t *testing.T, name, sku string, stock int) handlers.ProductResponse {
	t.Helper()
	w := ts.do(http.MethodPost, "/api/products", handlers.ProductRequest{Name: name, SKU: sku, Stock: &stock})
	if w.Code != http.StatusOK {
		t.Fatalf("product creation failed: %d %s", w.Code, w.Body.String())
	}
	var resp handlers.ProductResponse
	decode(t, w, &resp)
	return resp
}

func decode(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
}

func detail(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()
	var resp handlers.ErrorResponse
	decode(t, w, &resp)
	s, _ := resp.Detail.(string)
	return s
}

func intPtr(v int) *int {
	return &v
}
