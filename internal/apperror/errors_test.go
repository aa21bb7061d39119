package apperror

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidation_WrapsCause(t *testing.T) {
	err := Validation(ErrDuplicateLogin, "profile with login %q already exists", "alice123")

	assert.Equal(t, `profile with login "alice123" already exists`, err.Error())
	assert.True(t, errors.Is(err, ErrDuplicateLogin))
	assert.False(t, errors.Is(err, ErrDuplicateEmail))
	assert.True(t, IsValidation(err))
	assert.False(t, IsNotFound(err))
}

func TestKindOf_ThroughWrapping(t *testing.T) {
	err := fmt.Errorf("handler: %w", NotFound(ErrNotFound, "entry missing"))

	assert.Equal(t, KindNotFound, KindOf(err))
	assert.True(t, IsNotFound(err))
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestKindOf_PlainError(t *testing.T) {
	assert.Equal(t, Kind(0), KindOf(errors.New("boom")))
	assert.Equal(t, "unknown", Kind(0).String())
	assert.Equal(t, "validation", KindValidation.String())
	assert.Equal(t, "not_found", KindNotFound.String())
}
