package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/MKhiriev/acme-store/internal/logger"
	"github.com/MKhiriev/acme-store/internal/utils"
	"github.com/MKhiriev/acme-store/models"
	"github.com/google/uuid"
)

type httpStoreClient struct {
	client *utils.HTTPClient

	logger *logger.Logger
}

// NewHTTPStoreClient constructs an HTTP/REST implementation of [StoreClient].
// It normalises and validates the base URL from address and configures the
// underlying HTTP client with the resolved base URL and request timeout.
//
// Returns an error if address is empty or cannot be parsed as a valid URL.
func NewHTTPStoreClient(address string, requestTimeout time.Duration, logger *logger.Logger) (StoreClient, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(address)
	if err != nil {
		return nil, fmt.Errorf("invalid store address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(requestTimeout)

	return &httpStoreClient{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// ListUsers implements [StoreClient]. It GETs /api/users and decodes the
// response body into a slice of users.
func (h *httpStoreClient) ListUsers(ctx context.Context) ([]models.User, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/users")
	if err != nil {
		return nil, fmt.Errorf("list users request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var users []models.User
	if err = json.Unmarshal(resp.Body(), &users); err != nil {
		return nil, fmt.Errorf("list users decode: %w", err)
	}

	return users, nil
}

// ListProducts implements [StoreClient]. It GETs /api/products.
func (h *httpStoreClient) ListProducts(ctx context.Context) ([]models.Product, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/products")
	if err != nil {
		return nil, fmt.Errorf("list products request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var products []models.Product
	if err = json.Unmarshal(resp.Body(), &products); err != nil {
		return nil, fmt.Errorf("list products decode: %w", err)
	}

	return products, nil
}

// ListFavorites implements [StoreClient]. It GETs
// /api/users/{userID}/favorites.
func (h *httpStoreClient) ListFavorites(ctx context.Context, userID uuid.UUID) ([]models.Favorite, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get(fmt.Sprintf("/api/users/%s/favorites", userID))
	if err != nil {
		return nil, fmt.Errorf("list favorites request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var favorites []models.Favorite
	if err = json.Unmarshal(resp.Body(), &favorites); err != nil {
		return nil, fmt.Errorf("list favorites decode: %w", err)
	}

	return favorites, nil
}

// AddFavorite implements [StoreClient]. It POSTs the product reference to
// /api/users/{userID}/favorites and decodes the created favorite from the
// response.
func (h *httpStoreClient) AddFavorite(ctx context.Context, userID, productID uuid.UUID) (models.Favorite, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(map[string]uuid.UUID{"product_id": productID}).
		Post(fmt.Sprintf("/api/users/%s/favorites", userID))
	if err != nil {
		return models.Favorite{}, fmt.Errorf("add favorite request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Favorite{}, err
	}

	var favorite models.Favorite
	if err = json.Unmarshal(resp.Body(), &favorite); err != nil {
		return models.Favorite{}, fmt.Errorf("add favorite decode: %w", err)
	}

	return favorite, nil
}

// RemoveFavorite implements [StoreClient]. It DELETEs
// /api/users/{userID}/favorites/{favoriteID}. A 204 with no body is the
// expected success response.
func (h *httpStoreClient) RemoveFavorite(ctx context.Context, userID, favoriteID uuid.UUID) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Delete(fmt.Sprintf("/api/users/%s/favorites/%s", userID, favoriteID))
	if err != nil {
		return fmt.Errorf("remove favorite request: %w", err)
	}

	return mapHTTPError(resp)
}
