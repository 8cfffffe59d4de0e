package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sunswift/srpkg/pkg/errors"
)

func TestNew(t *testing.T) {
	err := errors.New(errors.ErrInvalidInput, "bad name")
	assert.Equal(t, "[INVALID_INPUT] bad name", err.Error())
	assert.Equal(t, errors.ErrInvalidInput, errors.GetErrorCode(err))
}

func TestNewf(t *testing.T) {
	err := errors.Newf(errors.ErrAlreadyExists, "package %q exists", "motor_ctl")
	assert.Equal(t, `[ALREADY_EXISTS] package "motor_ctl" exists`, err.Error())
}

func TestWrap(t *testing.T) {
	cause := stderrors.New("permission denied")
	err := errors.Wrap(cause, errors.ErrDirCreate, "failed to create directory src")

	require.NotNil(t, err)
	assert.Contains(t, err.Error(), "DIR_CREATE")
	assert.Contains(t, err.Error(), "permission denied")
	assert.ErrorIs(t, err, cause)

	assert.Nil(t, errors.Wrap(nil, errors.ErrDirCreate, "no-op"))
}

func TestIsByCode(t *testing.T) {
	err := errors.Newf(errors.ErrFileWrite, "failed to write README.md")
	wrapped := fmt.Errorf("creation failed: %w", err)

	assert.True(t, errors.IsErrorCode(wrapped, errors.ErrFileWrite))
	assert.False(t, errors.IsErrorCode(wrapped, errors.ErrDirCreate))
	assert.True(t, stderrors.Is(wrapped, errors.New(errors.ErrFileWrite, "anything")))
}

func TestGetErrorCodeForeignError(t *testing.T) {
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(stderrors.New("plain")))
}
