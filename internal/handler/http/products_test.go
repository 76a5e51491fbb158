package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/acme-store/internal/service"
	"github.com/MKhiriev/acme-store/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock ProductService
// ─────────────────────────────────────────────

type mockProductService struct {
	createFn func(ctx context.Context, name string) (models.Product, error)
	listFn   func(ctx context.Context) ([]models.Product, error)
}

func (m *mockProductService) Create(ctx context.Context, name string) (models.Product, error) {
	return m.createFn(ctx, name)
}

func (m *mockProductService) List(ctx context.Context) ([]models.Product, error) {
	return m.listFn(ctx)
}

// ─────────────────────────────────────────────
// GET /api/products
// ─────────────────────────────────────────────

func TestListProducts_Success(t *testing.T) {
	want := []models.Product{
		{ID: uuid.New(), Name: "coffeeMug"},
		{ID: uuid.New(), Name: "wirelessCharger"},
		{ID: uuid.New(), Name: "gamingMouse"},
	}
	products := &mockProductService{
		listFn: func(_ context.Context) ([]models.Product, error) {
			return want, nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{ProductService: products})
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Product
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestListProducts_Empty(t *testing.T) {
	products := &mockProductService{
		listFn: func(_ context.Context) ([]models.Product, error) {
			return []models.Product{}, nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{ProductService: products})
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListProducts_StorageError(t *testing.T) {
	products := &mockProductService{
		listFn: func(_ context.Context) ([]models.Product, error) {
			return nil, errBoom
		},
	}

	h := newHandlerWithServices(t, &service.Services{ProductService: products})
	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
