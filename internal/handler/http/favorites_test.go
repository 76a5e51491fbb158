package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/acme-store/internal/service"
	"github.com/MKhiriev/acme-store/internal/store"
	"github.com/MKhiriev/acme-store/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mock FavoriteService
// ─────────────────────────────────────────────

type mockFavoriteService struct {
	addFn         func(ctx context.Context, userID, productID uuid.UUID) (models.Favorite, error)
	listForUserFn func(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error)
	removeFn      func(ctx context.Context, userID, favoriteID uuid.UUID) error
}

func (m *mockFavoriteService) Add(ctx context.Context, userID, productID uuid.UUID) (models.Favorite, error) {
	return m.addFn(ctx, userID, productID)
}

func (m *mockFavoriteService) ListForUser(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	return m.listForUserFn(ctx, userID)
}

func (m *mockFavoriteService) Remove(ctx context.Context, userID, favoriteID uuid.UUID) error {
	return m.removeFn(ctx, userID, favoriteID)
}

// ─────────────────────────────────────────────
// GET /api/users/{userID}/favorites
// ─────────────────────────────────────────────

func TestListFavorites_Success(t *testing.T) {
	userID := uuid.New()
	want := []models.Favorite{
		{ID: uuid.New(), UserID: userID, ProductID: uuid.New()},
	}
	favorites := &mockFavoriteService{
		listForUserFn: func(_ context.Context, u uuid.UUID) ([]models.Favorite, error) {
			assert.Equal(t, userID, u)
			return want, nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{FavoriteService: favorites})
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+userID.String()+"/favorites", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var got []models.Favorite
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, want, got)
}

func TestListFavorites_UnknownUserYieldsEmptyList(t *testing.T) {
	favorites := &mockFavoriteService{
		listForUserFn: func(_ context.Context, _ uuid.UUID) ([]models.Favorite, error) {
			return []models.Favorite{}, nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{FavoriteService: favorites})
	req := httptest.NewRequest(http.MethodGet, "/api/users/"+uuid.NewString()+"/favorites", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, "[]", rec.Body.String())
}

func TestListFavorites_MalformedUserID(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{FavoriteService: &mockFavoriteService{}})
	req := httptest.NewRequest(http.MethodGet, "/api/users/not-a-uuid/favorites", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid user ID")
}

// ─────────────────────────────────────────────
// POST /api/users/{userID}/favorites
// ─────────────────────────────────────────────

func TestAddFavorite_Success(t *testing.T) {
	userID := uuid.New()
	productID := uuid.New()
	favoriteID := uuid.New()

	favorites := &mockFavoriteService{
		addFn: func(_ context.Context, u, p uuid.UUID) (models.Favorite, error) {
			assert.Equal(t, userID, u)
			assert.Equal(t, productID, p)
			return models.Favorite{ID: favoriteID, UserID: u, ProductID: p}, nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{FavoriteService: favorites})
	body := fmt.Sprintf(`{"product_id":%q}`, productID)
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+userID.String()+"/favorites", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	require.Equal(t, http.StatusCreated, rec.Code)

	var got models.Favorite
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, favoriteID, got.ID)
	assert.Equal(t, userID, got.UserID)
	assert.Equal(t, productID, got.ProductID)
}

func TestAddFavorite_InvalidJSON(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{FavoriteService: &mockFavoriteService{}})
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+uuid.NewString()+"/favorites", strings.NewReader("{invalid json}"))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "Invalid JSON was passed")
}

func TestAddFavorite_Duplicate(t *testing.T) {
	favorites := &mockFavoriteService{
		addFn: func(_ context.Context, _, _ uuid.UUID) (models.Favorite, error) {
			return models.Favorite{}, fmt.Errorf("favorite creation ended with error: %w", store.ErrFavoriteAlreadyExists)
		},
	}

	h := newHandlerWithServices(t, &service.Services{FavoriteService: favorites})
	body := fmt.Sprintf(`{"product_id":%q}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+uuid.NewString()+"/favorites", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddFavorite_UnknownParent(t *testing.T) {
	favorites := &mockFavoriteService{
		addFn: func(_ context.Context, _, _ uuid.UUID) (models.Favorite, error) {
			return models.Favorite{}, store.ErrFavoriteParentNotFound
		},
	}

	h := newHandlerWithServices(t, &service.Services{FavoriteService: favorites})
	body := fmt.Sprintf(`{"product_id":%q}`, uuid.New())
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+uuid.NewString()+"/favorites", strings.NewReader(body))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestAddFavorite_MissingProductID(t *testing.T) {
	favorites := &mockFavoriteService{
		addFn: func(_ context.Context, _, _ uuid.UUID) (models.Favorite, error) {
			return models.Favorite{}, service.ErrInvalidDataProvided
		},
	}

	h := newHandlerWithServices(t, &service.Services{FavoriteService: favorites})
	req := httptest.NewRequest(http.MethodPost, "/api/users/"+uuid.NewString()+"/favorites", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ─────────────────────────────────────────────
// DELETE /api/users/{userID}/favorites/{favoriteID}
// ─────────────────────────────────────────────

func TestRemoveFavorite_Success(t *testing.T) {
	userID := uuid.New()
	favoriteID := uuid.New()

	var called bool
	favorites := &mockFavoriteService{
		removeFn: func(_ context.Context, u, f uuid.UUID) error {
			called = true
			assert.Equal(t, userID, u)
			assert.Equal(t, favoriteID, f)
			return nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{FavoriteService: favorites})
	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+userID.String()+"/favorites/"+favoriteID.String(), nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.True(t, called)
	assert.Empty(t, rec.Body.String())
}

func TestRemoveFavorite_AbsentFavoriteStillNoContent(t *testing.T) {
	// the service reports success even when nothing matched
	favorites := &mockFavoriteService{
		removeFn: func(_ context.Context, _, _ uuid.UUID) error {
			return nil
		},
	}

	h := newHandlerWithServices(t, &service.Services{FavoriteService: favorites})
	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+uuid.NewString()+"/favorites/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestRemoveFavorite_MalformedFavoriteID(t *testing.T) {
	h := newHandlerWithServices(t, &service.Services{FavoriteService: &mockFavoriteService{}})
	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+uuid.NewString()+"/favorites/not-a-uuid", nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "invalid favorite ID")
}

func TestRemoveFavorite_StorageError(t *testing.T) {
	favorites := &mockFavoriteService{
		removeFn: func(_ context.Context, _, _ uuid.UUID) error {
			return store.ErrExecutingStatement
		},
	}

	h := newHandlerWithServices(t, &service.Services{FavoriteService: favorites})
	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+uuid.NewString()+"/favorites/"+uuid.NewString(), nil)
	rec := httptest.NewRecorder()

	h.Init().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
