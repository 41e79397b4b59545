package notemd_test

import (
	"errors"
	"testing"

	"github.com/notemd/notemd"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := notemd.Errorf(notemd.ENOCONTENT, "no content found in %q", "page")

	assert.Equal(t, notemd.ENOCONTENT, notemd.ErrorCode(err))
	assert.Equal(t, "no content found in \"page\"", notemd.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, notemd.ErrorCode(nil))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, notemd.EINTERNAL, notemd.ErrorCode(errors.New("boom")))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, notemd.ErrorMessage(nil))
}

func TestErrorMessage_NonApplicationError(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Internal error.", notemd.ErrorMessage(errors.New("boom")))
}
