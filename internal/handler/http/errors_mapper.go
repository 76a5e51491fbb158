package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/acme-store/internal/service"
	"github.com/MKhiriev/acme-store/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,

	store.ErrUsernameAlreadyExists:  http.StatusConflict,
	store.ErrFavoriteAlreadyExists:  http.StatusConflict,
	store.ErrFavoriteParentNotFound: http.StatusConflict,

	store.ErrConnectionFailure:  http.StatusInternalServerError,
	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
