package http

import (
	"net/http"

	"github.com/MKhiriev/acme-store/internal/logger"
	"github.com/MKhiriev/acme-store/internal/utils"
)

// listUsers handles GET /api/users.
//
// It returns every registered user as a JSON array. Stored passwords are
// bcrypt hashes, matching what the persistence layer holds.
func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	users, err := h.services.UserService.List(ctx)
	if err != nil {
		log.Err(err).Msg("user listing failed")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, users, http.StatusOK)
}
