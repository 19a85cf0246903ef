package http

import (
	"errors"
	"net/http"

	"smart-notes/internal/note"
	pkgErrors "smart-notes/pkg/errors"
)

var errMissingID = pkgErrors.NewHTTPError(http.StatusBadRequest, "id is required")

// mapError translates domain errors into HTTP errors. ok is false for
// errors the client cannot act on.
func (h *handler) mapError(err error) (httpErr error, ok bool) {
	switch {
	case errors.Is(err, note.ErrEmptyContent):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()), true
	case errors.Is(err, note.ErrMissingCredential):
		return pkgErrors.NewHTTPError(http.StatusBadRequest, err.Error()), true
	case errors.Is(err, note.ErrNotFound):
		return pkgErrors.NewHTTPError(http.StatusNotFound, err.Error()), true
	case errors.Is(err, note.ErrNoDueDate):
		return pkgErrors.NewHTTPError(http.StatusUnprocessableEntity, err.Error()), true
	default:
		return nil, false
	}
}
