package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/forgelight/charbuilder/internal/errors"
)

func TestErrorFormatting(t *testing.T) {
	err := errors.NotFound("draft not found")
	assert.Equal(t, "NOT_FOUND: draft not found", err.Error())

	wrapped := errors.Wrap(fmt.Errorf("dial tcp: refused"), "failed to load draft")
	assert.Equal(t, errors.CodeInternal, wrapped.Code)
	assert.Contains(t, wrapped.Error(), "failed to load draft")
	assert.Contains(t, wrapped.Error(), "dial tcp: refused")
}

func TestWrapPreservesCode(t *testing.T) {
	inner := errors.NotFound("draft not found")
	wrapped := errors.Wrapf(inner, "get draft %q", "abc")

	assert.Equal(t, errors.CodeNotFound, errors.GetCode(wrapped))
	assert.True(t, errors.IsNotFound(wrapped))
	assert.True(t, stderrors.Is(wrapped, inner))
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, "nothing"))
}

func TestGetCode(t *testing.T) {
	assert.Equal(t, errors.CodeOK, errors.GetCode(nil))
	assert.Equal(t, errors.CodeInternal, errors.GetCode(fmt.Errorf("plain")))
	assert.Equal(t, errors.CodeInvalidArgument, errors.GetCode(errors.InvalidArgument("bad")))
}

func TestGetMessage(t *testing.T) {
	assert.Equal(t, "", errors.GetMessage(nil))
	assert.Equal(t, "bad input", errors.GetMessage(errors.InvalidArgument("bad input")))
	assert.Equal(t, "plain", errors.GetMessage(fmt.Errorf("plain")))
}

func TestTypeChecks(t *testing.T) {
	assert.True(t, errors.IsInvalidArgument(errors.InvalidArgument("x")))
	assert.False(t, errors.IsInvalidArgument(errors.NotFound("x")))
	assert.True(t, errors.IsUnimplemented(errors.Unimplemented("x")))
	assert.True(t, errors.IsAlreadyExists(errors.AlreadyExists("x")))
}

func TestValidationBuilder(t *testing.T) {
	t.Run("no errors builds nil", func(t *testing.T) {
		assert.NoError(t, errors.NewValidationBuilder().Build())
	})

	t.Run("accumulates fields", func(t *testing.T) {
		err := errors.NewValidationBuilder().
			RequiredField("ownerID").
			InvalidField("level", "must be positive").
			Build()

		require.Error(t, err)
		assert.True(t, errors.IsInvalidArgument(err))
		assert.Contains(t, err.Error(), "ownerID: is required")
		assert.Contains(t, err.Error(), "level: is invalid: must be positive")
	})

	t.Run("deterministic field order", func(t *testing.T) {
		build := func() string {
			return errors.NewValidationBuilder().
				RequiredField("b").
				RequiredField("a").
				Build().Error()
		}
		assert.Equal(t, build(), build())
	})
}
