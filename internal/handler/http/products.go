package http

import (
	"net/http"

	"github.com/MKhiriev/acme-store/internal/logger"
	"github.com/MKhiriev/acme-store/internal/utils"
)

// listProducts handles GET /api/products.
func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	products, err := h.services.ProductService.List(ctx)
	if err != nil {
		log.Err(err).Msg("product listing failed")
		status := statusFromError(err)
		http.Error(w, http.StatusText(status), status)
		return
	}

	utils.WriteJSON(w, products, http.StatusOK)
}
