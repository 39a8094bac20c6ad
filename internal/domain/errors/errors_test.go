package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestAppError_MessageAndWrapping(t *testing.T) {
	inner := errors.New("boom")
	appErr := NewAppError(http.StatusBadGateway, "upstream failed", inner)

	require.Equal(t, "boom", appErr.Error())
	require.ErrorIs(t, appErr, inner)

	noInner := NewAppError(http.StatusTeapot, "just a message", nil)
	require.Equal(t, "just a message", noInner.Error())
}

func TestConstructors(t *testing.T) {
	require.Equal(t, http.StatusNotFound, NotFound("x").Status)
	require.ErrorIs(t, NotFound("x"), ErrNotFound)

	require.Equal(t, http.StatusBadRequest, BadRequest("x").Status)
	require.ErrorIs(t, BadRequest("x"), ErrInvalidInput)

	require.Equal(t, http.StatusUnauthorized, Unauthorized("x").Status)
	require.Equal(t, http.StatusForbidden, Forbidden("x").Status)
	require.Equal(t, http.StatusInternalServerError, InternalError(errors.New("y")).Status)
}

func TestValidationError(t *testing.T) {
	err := NewValidationError("review", 2, "client_name")
	require.Equal(t, "review 3: client_name is required", err.Error())
	require.Equal(t, "review", err.Entity)
	require.Equal(t, 2, err.Index)
	require.Equal(t, "client_name", err.Field)

	var ve *ValidationError
	require.ErrorAs(t, error(err), &ve)
}
