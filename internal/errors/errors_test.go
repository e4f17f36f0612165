package errors

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppError_Error(t *testing.T) {
	e := NotFound("name has no record")
	assert.Equal(t, "name has no record", e.Error())

	wrapped := Wrap(stderrors.New("boom"), ErrCodeInternal, "lookup failed")
	assert.Equal(t, "lookup failed: boom", wrapped.Error())
}

func TestWrap_NilIsNil(t *testing.T) {
	assert.Nil(t, Wrap(nil, ErrCodeInternal, "ignored"))
	assert.Nil(t, Wrapf(nil, ErrCodeInternal, "ignored %d", 1))
}

func TestCodeHelpers(t *testing.T) {
	assert.True(t, IsNotFound(NotFound("x")))
	assert.True(t, IsAuthentication(Authentication("x")))
	assert.True(t, IsProtocol(Protocol("x")))
	assert.True(t, IsUnavailable(Unavailable("x")))
	assert.True(t, IsValidation(Validation("x")))
	assert.True(t, IsConflict(Conflict("x")))
	assert.True(t, IsInternal(Internal("x")))

	assert.False(t, IsNotFound(Authentication("x")))
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(stderrors.New("plain")))
}

func TestCodeHelpers_ThroughWrapping(t *testing.T) {
	inner := NotFound("name has no record")
	outer := fmt.Errorf("resolve: %w", inner)
	assert.True(t, IsNotFound(outer))

	rewrapped := Wrap(inner, ErrCodeAuthentication, "identity is not registered")
	// The outermost code wins.
	assert.True(t, IsAuthentication(rewrapped))
	assert.Equal(t, ErrCodeAuthentication, GetCode(rewrapped))
}

func TestGetCodeAndField(t *testing.T) {
	assert.Equal(t, ErrorCode(""), GetCode(stderrors.New("plain")))
	assert.Equal(t, ErrCodeValidation, GetCode(ValidationField("identity", "required")))
	assert.Equal(t, "identity", GetField(ValidationField("identity", "required")))
	assert.Empty(t, GetField(NotFound("x")))
}

func TestUnwrap(t *testing.T) {
	cause := stderrors.New("root cause")
	e := Wrap(cause, ErrCodeUnavailable, "daemon unreachable")
	require.ErrorIs(t, e, cause)
}
