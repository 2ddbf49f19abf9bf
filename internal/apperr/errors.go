package apperr

import (
	"errors"
	"net/http"
	"strings"
)

// Sentinel errors for the failure classes the API distinguishes. Services
// wrap these with fmt.Errorf("...: %w", ...) so callers keep the class while
// logs keep the detail.
var (
	ErrValidation   = errors.New("validation error")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
	ErrConflict     = errors.New("conflict")
	ErrInternal     = errors.New("internal error")
)

// HTTPStatus maps an error chain to the status code its class is surfaced as.
// Unknown errors are treated as internal.
func HTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

var sentinels = []error{ErrValidation, ErrUnauthorized, ErrForbidden, ErrNotFound, ErrConflict}

// Message returns the client-facing message for an error: the text the
// service wrapped around the sentinel, without the sentinel's own prefix.
// Internal failures are collapsed to a generic message so details stay in
// the server logs.
func Message(err error) string {
	if HTTPStatus(err) == http.StatusInternalServerError {
		return "Internal Server Error"
	}
	msg := err.Error()
	for _, sentinel := range sentinels {
		if !errors.Is(err, sentinel) {
			continue
		}
		if rest, ok := strings.CutPrefix(msg, sentinel.Error()+": "); ok {
			return rest
		}
	}
	return msg
}
