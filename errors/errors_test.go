package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError(t *testing.T) {
	cause := errors.New("connection refused")
	err := Database("load room", cause)

	assert.Equal(t, "[DB_ERROR] load room: connection refused", err.Error())
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "[NOT_FOUND] room 4 not found", NotFound("room 4 not found").Error())
}

func TestIs_FollowsWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create: %w", NewAppError(ErrCodeConflict, "room is taken", ErrRoomNotAvailable))

	assert.True(t, IsAppError(wrapped))
	assert.True(t, Is(wrapped, ErrCodeConflict))
	assert.False(t, Is(wrapped, ErrCodeValidation))
	assert.ErrorIs(t, wrapped, ErrRoomNotAvailable)
	assert.Equal(t, "room is taken", GetAppError(wrapped).Message)

	assert.False(t, IsAppError(errors.New("plain")))
	assert.Nil(t, GetAppError(nil))
	assert.False(t, Is(nil, ErrCodeConflict))
}

func TestConstructors(t *testing.T) {
	cases := map[ErrorCode]*AppError{
		ErrCodeValidation:        Validation("x"),
		ErrCodeNotFound:          NotFound("x"),
		ErrCodeConflict:          Conflict("x"),
		ErrCodeInvalidTransition: InvalidTransition("x"),
		ErrCodeUnauthorized:      Unauthorized("x"),
	}
	for code, err := range cases {
		assert.Equal(t, code, err.Code)
		assert.Nil(t, err.Unwrap())
	}
}
