package mathindex_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/fwojciec/mathindex"
	"github.com/stretchr/testify/assert"
)

func TestErrorf(t *testing.T) {
	t.Parallel()

	err := mathindex.Errorf(mathindex.ENOTFOUND, "No such file or directory: %s", "./nope")

	assert.Equal(t, mathindex.ENOTFOUND, mathindex.ErrorCode(err))
	assert.Equal(t, "No such file or directory: ./nope", mathindex.ErrorMessage(err))
	assert.Equal(t, "No such file or directory: ./nope", err.Error())
}

func TestErrorCode_WrappedError(t *testing.T) {
	t.Parallel()

	err := fmt.Errorf("scan nb.ipynb: %w", mathindex.Errorf(mathindex.EINVALID, "bad notebook"))

	assert.Equal(t, mathindex.EINVALID, mathindex.ErrorCode(err))
	assert.Equal(t, "bad notebook", mathindex.ErrorMessage(err))
}

func TestErrorCode_NonApplicationError(t *testing.T) {
	t.Parallel()

	err := errors.New("disk on fire")

	assert.Equal(t, mathindex.EINTERNAL, mathindex.ErrorCode(err))
	assert.Equal(t, "disk on fire", mathindex.ErrorMessage(err))
}

func TestErrorCode_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mathindex.ErrorCode(nil))
}

func TestErrorMessage_NilError(t *testing.T) {
	t.Parallel()

	assert.Empty(t, mathindex.ErrorMessage(nil))
}
