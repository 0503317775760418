package apperror

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKindOf(t *testing.T) {
	k, ok := KindOf(Conflict("already registered"))
	require.True(t, ok)
	assert.Equal(t, KindConflict, k)

	_, ok = KindOf(errors.New("plain"))
	assert.False(t, ok)
}

func TestKindOf_Wrapped(t *testing.T) {
	wrapped := fmt.Errorf("register attendee: %w", NotFound("event not found"))
	k, ok := KindOf(wrapped)
	require.True(t, ok)
	assert.Equal(t, KindNotFound, k)
	assert.True(t, IsNotFound(wrapped))
}

func TestPersistence_KeepsCause(t *testing.T) {
	cause := errors.New("connection reset")
	err := Persistence(cause)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection reset")
}

func TestPublicMessage(t *testing.T) {
	assert.Equal(t, "event not found", PublicMessage(NotFound("event not found")))
	assert.Equal(t, "max attendees reached", PublicMessage(Conflict("max attendees reached")))

	// Store failure text never reaches clients.
	leaky := Persistence(errors.New(`dial tcp: dbname=events password=hunter2`))
	assert.Equal(t, "internal server error", PublicMessage(leaky))
	assert.NotContains(t, PublicMessage(leaky), "hunter2")
	assert.Equal(t, "internal server error", PublicMessage(errors.New("raw driver error")))
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(NotFound("missing")))
	assert.Equal(t, http.StatusConflict, HTTPStatus(Conflict("duplicate")))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(Validation("bad input")))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(Persistence(errors.New("boom"))))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(errors.New("unknown")))
}
