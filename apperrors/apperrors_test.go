// File: /apperrors/apperrors_test.go
package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestHTTPStatusMapsWrappedErrors(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("vehicle abc: %w", ErrNotFound), http.StatusNotFound},
		{fmt.Errorf("favorite (u, v) already exists: %w", ErrConflict), http.StatusConflict},
		{fmt.Errorf("preferred time: %w", ErrValidation), http.StatusBadRequest},
		{fmt.Errorf("invalid token: %w", ErrUnauthorized), http.StatusUnauthorized},
		{errors.New("database gone"), http.StatusInternalServerError},
		{nil, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}
