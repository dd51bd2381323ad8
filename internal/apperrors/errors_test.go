package apperrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundCarriesEntity(t *testing.T) {
	err := NotFound("room", 42)

	assert.Equal(t, KindNotFound, err.Kind)
	assert.Equal(t, "room", err.Entity)
	assert.Equal(t, uint64(42), err.ID)
	assert.Equal(t, "NOT_FOUND: room 42 not found", err.Error())
}

func TestIsMatchesByKindThroughWrapping(t *testing.T) {
	wrapped := fmt.Errorf("create reservation: %w", Conflict("not enough free rooms"))

	assert.True(t, errors.Is(wrapped, ErrConflict))
	assert.False(t, errors.Is(wrapped, ErrNotFound))
}

func TestValidationUnwraps(t *testing.T) {
	cause := errors.New("bad json")
	err := Validation("invalid body", cause)

	assert.ErrorIs(t, err, cause)
	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "VALIDATION: invalid body: bad json", err.Error())
}
