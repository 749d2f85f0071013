package utils

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorContract(t *testing.T) {
	cause := errors.New("pq: connection refused")
	err := E(CodeInternal, "ContactService.Create", "Error submitting contact form", cause)

	assert.True(t, IsCode(err, CodeInternal))
	assert.False(t, IsCode(err, CodeNotFound))
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "ContactService.Create: Error submitting contact form: pq: connection refused", err.Error())
}

func TestIsCodeThroughWrapping(t *testing.T) {
	inner := E(CodeNotFound, "MediaService.Get", "Media not found", ErrNotFound)
	wrapped := fmt.Errorf("handler: %w", inner)

	assert.True(t, IsCode(wrapped, CodeNotFound))
	assert.Equal(t, "Media not found", Message(wrapped, "fallback"))
}

func TestMessageFallback(t *testing.T) {
	assert.Equal(t, "fallback", Message(errors.New("internal detail"), "fallback"))
	assert.Equal(t, "fallback", Message(E(CodeInternal, "Op", "", nil), "fallback"))
}

func TestHTTPStatusMapping(t *testing.T) {
	cases := map[Code]int{
		CodeInvalidArgument: http.StatusBadRequest,
		CodeConflict:        http.StatusBadRequest,
		CodeUnauthorized:    http.StatusUnauthorized,
		CodeForbidden:       http.StatusForbidden,
		CodeNotFound:        http.StatusNotFound,
		CodeInternal:        http.StatusInternalServerError,
	}
	for code, want := range cases {
		assert.Equal(t, want, HTTPStatus(E(code, "Op", "msg", nil)), string(code))
	}

	assert.Equal(t, http.StatusNotFound, HTTPStatus(ErrNotFound))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("anything")))
}
