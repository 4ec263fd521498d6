package shared

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/meridian-erp/meridian/internal/platform/httpx"
)

// RespondError translates masterdata domain errors into the platform's
// HTTP problem responses.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.RespondError(w, httpx.ErrNotFound)
	case errors.Is(err, ErrDuplicate):
		httpx.RespondError(w, httpx.ErrDuplicate)
	case errors.Is(err, ErrValidation), errors.Is(err, ErrInvalidID), errors.Is(err, ErrRequiredField):
		httpx.RespondError(w, fmt.Errorf("%w: %s", httpx.ErrValidation, err.Error()))
	default:
		httpx.RespondError(w, err)
	}
}
