package coursegen_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/coursegen"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := coursegen.Errorf(coursegen.ENOTFOUND, "section %q not found", "schedule")

	assert.Equal(t, coursegen.ENOTFOUND, coursegen.ErrorCode(err))
	assert.Equal(t, "section \"schedule\" not found", coursegen.ErrorMessage(err))
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("reading host: %w", coursegen.Errorf(coursegen.EINVALID, "bad"))

	assert.Equal(t, coursegen.EINVALID, coursegen.ErrorCode(err))
	assert.Equal(t, "bad", coursegen.ErrorMessage(err))
}

func TestErrorCode_PlainError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, coursegen.EINTERNAL, coursegen.ErrorCode(err))
	assert.Equal(t, "Internal error.", coursegen.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, coursegen.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, coursegen.ErrorMessage(nil))
}
