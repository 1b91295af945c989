package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/piczmar/pure-go-rest-api/internal/apperr"
)

func TestKind_HTTPStatus(t *testing.T) {
	tests := []struct {
		name string
		kind apperr.Kind
		want int
	}{
		{"invalid request", apperr.InvalidRequest, http.StatusBadRequest},
		{"resource not found", apperr.ResourceNotFound, http.StatusNotFound},
		{"method not allowed", apperr.MethodNotAllowed, http.StatusMethodNotAllowed},
		{"unclassified", apperr.Unclassified, http.StatusInternalServerError},
		{"unknown kind defaults to 500", apperr.Kind(99), http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.kind.HTTPStatus())
		})
	}
}

func TestKindOf(t *testing.T) {
	cause := errors.New("bad field")
	invalid := apperr.NewInvalidRequest(cause)

	assert.Equal(t, apperr.InvalidRequest, apperr.KindOf(invalid))
	assert.Equal(t, apperr.ResourceNotFound, apperr.KindOf(apperr.NewNotFound("gone")))
	assert.Equal(t, apperr.MethodNotAllowed, apperr.KindOf(apperr.NewMethodNotAllowed("nope")))

	// The kind survives wrapping.
	wrapped := fmt.Errorf("handling request: %w", invalid)
	assert.Equal(t, apperr.InvalidRequest, apperr.KindOf(wrapped))

	// Plain errors are unclassified.
	assert.Equal(t, apperr.Unclassified, apperr.KindOf(errors.New("boom")))
}

func TestError_MessageAndUnwrap(t *testing.T) {
	cause := errors.New("bad field")
	err := apperr.NewInvalidRequest(cause)

	assert.Equal(t, "bad field", err.Error())
	require.ErrorIs(t, err, cause)

	assert.Equal(t, "gone", apperr.NewNotFound("gone").Error())
}
