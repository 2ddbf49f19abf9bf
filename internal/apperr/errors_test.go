package apperr

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: Title is required", ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("%w: Invalid credentials", ErrUnauthorized), http.StatusUnauthorized},
		{fmt.Errorf("%w: Unauthorized access", ErrForbidden), http.StatusForbidden},
		{fmt.Errorf("%w: Form not found", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("%w: You have already submitted this form", ErrConflict), http.StatusConflict},
		{fmt.Errorf("%w: details", ErrInternal), http.StatusInternalServerError},
		{errors.New("anything unclassified"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, HTTPStatus(tc.err), tc.err.Error())
	}
}

func TestMessage_StripsSentinelPrefix(t *testing.T) {
	err := fmt.Errorf("%w: Form not found", ErrNotFound)
	assert.Equal(t, "Form not found", Message(err))
}

func TestMessage_HidesInternalDetail(t *testing.T) {
	err := fmt.Errorf("%w: pq: connection refused", ErrInternal)
	assert.Equal(t, "Internal Server Error", Message(err))
	assert.Equal(t, "Internal Server Error", Message(errors.New("raw driver error")))
}
