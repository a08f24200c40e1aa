package errs_test

import (
	"errors"
	"fmt"
	"testing"

	"loadbooking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("loadId", "123")

		assert.Equal(t, "loadId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("loadId", "123", cause)

		assert.Equal(t, "loadId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: loadId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with non string ID", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("bookingId", 456)
		assert.Equal(t, "object not found: 456", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("weight")

		assert.Equal(t, "weight", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: weight", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("-1 is not greater than 0")
		err := errs.NewValueIsInvalidErrorWithCause("weight", cause)

		assert.Equal(t, "weight", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: weight (cause: -1 is not greater than 0)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("size", 150, 1, 100)

		assert.Equal(t, "size", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is out of range: 150 is size, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("page", -5, 1, 1000, cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is out of range: -5 is page, min value is 1, max value is 1000 (cause: validation failed)",
			err.Error())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("shipperId")

		assert.Equal(t, "shipperId", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: shipperId", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("blank string")
		err := errs.NewValueIsRequiredErrorWithCause("shipperId", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: shipperId (cause: blank string)", err.Error())
	})
}

func TestBusinessRuleError(t *testing.T) {
	t.Run("NewBusinessRuleError", func(t *testing.T) {
		err := errs.NewBusinessRuleError("cannot update cancelled load")

		assert.Equal(t, "cannot update cancelled load", err.Reason)
		require.NoError(t, err.Cause)
		assert.Equal(t, "business rule violated: cannot update cancelled load", err.Error())
		assert.Equal(t, errs.ErrBusinessRuleViolated, err.Unwrap())
	})

	t.Run("NewBusinessRuleErrorf", func(t *testing.T) {
		err := errs.NewBusinessRuleErrorf("invalid status transition from %s to %s", "CANCELLED", "POSTED")

		assert.Equal(t, "invalid status transition from CANCELLED to POSTED", err.Reason)
	})

	t.Run("NewBusinessRuleErrorWithCause", func(t *testing.T) {
		cause := errors.New("load is terminal")
		err := errs.NewBusinessRuleErrorWithCause("cannot book load", cause)

		assert.Equal(t, "business rule violated: cannot book load (cause: load is terminal)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
	assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
	assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
	assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
	assert.Equal(t, "business rule violated", errs.ErrBusinessRuleViolated.Error())
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		require.ErrorIs(t, errs.NewObjectNotFoundError("loadId", "123"), errs.ErrObjectNotFound)
		require.ErrorIs(t, errs.NewValueIsInvalidError("weight"), errs.ErrValueIsInvalid)
		require.ErrorIs(t, errs.NewValueIsOutOfRangeError("size", 150, 1, 100), errs.ErrValueIsOutOfRange)
		require.ErrorIs(t, errs.NewValueIsRequiredError("shipperId"), errs.ErrValueIsRequired)
		require.ErrorIs(t, errs.NewBusinessRuleError("nope"), errs.ErrBusinessRuleViolated)
	})

	t.Run("errors.Is works through wrapping and joining", func(t *testing.T) {
		wrapped := fmt.Errorf("accept booking: %w", errs.NewBusinessRuleError("only pending bookings can be accepted"))
		require.ErrorIs(t, wrapped, errs.ErrBusinessRuleViolated)

		joined := errors.Join(errs.NewValueIsRequiredError("shipperId"), errs.NewValueIsInvalidError("weight"))
		require.ErrorIs(t, joined, errs.ErrValueIsRequired)
		require.ErrorIs(t, joined, errs.ErrValueIsInvalid)
	})

	t.Run("errors.As recovers the business reason", func(t *testing.T) {
		var target *errs.BusinessRuleError
		err := fmt.Errorf("wrapped: %w", errs.NewBusinessRuleError("cannot update rejected booking"))

		require.ErrorAs(t, err, &target)
		assert.Equal(t, "cannot update rejected booking", target.Reason)
	})
}
