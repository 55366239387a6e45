package apperrors

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWrapUnwrap(t *testing.T) {
	cause := errors.New("dial tcp: refused")
	appErr := InternalError(cause)

	assert.Equal(t, http.StatusInternalServerError, appErr.HTTPCode)
	assert.ErrorIs(t, appErr, cause)
}

func TestAsAppError(t *testing.T) {
	appErr, ok := AsAppError(fmt.Errorf("handler: %w", ErrNewsNotFound))
	require.True(t, ok)
	assert.Equal(t, CodeNewsNotFound, appErr.Code)
	assert.Equal(t, http.StatusNotFound, appErr.HTTPCode)

	_, ok = AsAppError(errors.New("plain"))
	assert.False(t, ok)
}

func TestMarshalHidesInternals(t *testing.T) {
	appErr := InternalError(errors.New("secret detail"))

	data, err := appErr.MarshalJSON()
	require.NoError(t, err)
	assert.NotContains(t, string(data), "secret detail")
	assert.Contains(t, string(data), string(CodeInternalError))
}

func TestWithDetailsDoesNotMutate(t *testing.T) {
	detailed := ErrValidationFailed.WithDetails(map[string]string{"title": "required"})

	assert.Nil(t, ErrValidationFailed.Details)
	assert.NotNil(t, detailed.Details)
	assert.Equal(t, ErrValidationFailed.Code, detailed.Code)
}
