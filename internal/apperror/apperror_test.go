package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppErrorUnwrap(t *testing.T) {
	err := fmt.Errorf("submit: %w", ValidationFailed("content", "content is required"))

	assert.ErrorIs(t, err, ErrValidation)
	assert.Equal(t, "content", Field(err))
	assert.Equal(t, "submit: content is required", err.Error())
}

func TestInFlight(t *testing.T) {
	err := InFlight("suggestion:42")

	assert.True(t, errors.Is(err, ErrInFlight))
	assert.False(t, errors.Is(err, ErrValidation))
	assert.Empty(t, Field(err))
}

func TestFieldOnPlainError(t *testing.T) {
	assert.Empty(t, Field(errors.New("boom")))
}
