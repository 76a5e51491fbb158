package http

import (
	"encoding/json"
	"net/http"

	"github.com/MKhiriev/acme-store/internal/logger"
	"github.com/MKhiriev/acme-store/internal/utils"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// addFavoriteRequest is the body of POST /api/users/{userID}/favorites.
type addFavoriteRequest struct {
	ProductID uuid.UUID `json:"product_id"`
}

// listFavorites handles GET /api/users/{userID}/favorites.
//
// An unknown user is indistinguishable from a user with no favorites: both
// yield an empty JSON array.
func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		log.Err(err).Msg("invalid user ID in path")
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	favorites, err := h.services.FavoriteService.ListForUser(ctx, userID)
	if err != nil {
		log.Err(err).Msg("favorite listing failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, favorites, http.StatusOK)
}

// addFavorite handles POST /api/users/{userID}/favorites.
//
// On success the created favorite is returned with status 201. Favoriting
// the same product twice, or referencing a missing user or product, is
// rejected with 409.
func (h *Handler) addFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		log.Err(err).Msg("invalid user ID in path")
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	var req addFavoriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	favorite, err := h.services.FavoriteService.Add(ctx, userID, req.ProductID)
	if err != nil {
		log.Err(err).Msg("favorite creation failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	utils.WriteJSON(w, favorite, http.StatusCreated)
}

// removeFavorite handles DELETE /api/users/{userID}/favorites/{favoriteID}.
//
// The response is 204 whether or not a row was deleted: removal of an absent
// favorite is not an error.
func (h *Handler) removeFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, err := uuid.Parse(chi.URLParam(r, "userID"))
	if err != nil {
		log.Err(err).Msg("invalid user ID in path")
		http.Error(w, "invalid user ID", http.StatusBadRequest)
		return
	}

	favoriteID, err := uuid.Parse(chi.URLParam(r, "favoriteID"))
	if err != nil {
		log.Err(err).Msg("invalid favorite ID in path")
		http.Error(w, "invalid favorite ID", http.StatusBadRequest)
		return
	}

	if err := h.services.FavoriteService.Remove(ctx, userID, favoriteID); err != nil {
		log.Err(err).Msg("favorite removal failed")
		http.Error(w, http.StatusText(statusFromError(err)), statusFromError(err))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
