package errs_test

import (
	"errors"
	"testing"

	"nannyadmin/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestObjectNotFoundError(t *testing.T) {
	t.Run("NewObjectNotFoundError", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("customerId", "123")

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		require.NoError(t, err.Cause)
		assert.Equal(t, "object not found: 123", err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("NewObjectNotFoundErrorWithCause", func(t *testing.T) {
		cause := errors.New("database connection failed")
		err := errs.NewObjectNotFoundErrorWithCause("customerId", "123", cause)

		assert.Equal(t, "customerId", err.ParamName)
		assert.Equal(t, "123", err.ID)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"object not found: param is: customerId, ID is: 123 (cause: database connection failed)",
			err.Error())
		assert.Equal(t, errs.ErrObjectNotFound, err.Unwrap())
	})

	t.Run("Error with different ID types", func(t *testing.T) {
		err := errs.NewObjectNotFoundError("orderId", 456)
		assert.Equal(t, "object not found: %!s(int=456)", err.Error())
	})
}

func TestValueIsInvalidError(t *testing.T) {
	t.Run("NewValueIsInvalidError", func(t *testing.T) {
		err := errs.NewValueIsInvalidError("photoUrl")

		assert.Equal(t, "photoUrl", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: photoUrl", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})

	t.Run("NewValueIsInvalidErrorWithCause", func(t *testing.T) {
		cause := errors.New("invalid format")
		err := errs.NewValueIsInvalidErrorWithCause("photoUrl", cause)

		assert.Equal(t, "photoUrl", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is invalid: photoUrl (cause: invalid format)", err.Error())
		assert.Equal(t, errs.ErrValueIsInvalid, err.Unwrap())
	})
}

func TestValueIsOutOfRangeError(t *testing.T) {
	t.Run("NewValueIsOutOfRangeError", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("pageSize", 150, 1, 100)

		assert.Equal(t, "pageSize", err.ParamName)
		assert.Equal(t, 150, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is invalid: 150 is pageSize, min value is 1, max value is 100", err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("NewValueIsOutOfRangeErrorWithCause", func(t *testing.T) {
		cause := errors.New("validation failed")
		err := errs.NewValueIsOutOfRangeErrorWithCause("page", -5, 1, 100, cause)

		assert.Equal(t, "page", err.ParamName)
		assert.Equal(t, -5, err.Value)
		assert.Equal(t, 1, err.Min)
		assert.Equal(t, 100, err.Max)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t,
			"value is invalid: -5 is page, min value is 1, max value is 100 (cause: validation failed)",
			err.Error())
		assert.Equal(t, errs.ErrValueIsOutOfRange, err.Unwrap())
	})

	t.Run("sanitize function with newlines", func(t *testing.T) {
		err := errs.NewValueIsOutOfRangeError("text", "hello\nworld", 0, 10)
		assert.Contains(t, err.Error(), "hello world")
		assert.NotContains(t, err.Error(), "\n")
	})
}

func TestValueIsRequiredError(t *testing.T) {
	t.Run("NewValueIsRequiredError", func(t *testing.T) {
		err := errs.NewValueIsRequiredError("name")

		assert.Equal(t, "name", err.ParamName)
		require.NoError(t, err.Cause)
		assert.Equal(t, "value is required: name", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})

	t.Run("NewValueIsRequiredErrorWithCause", func(t *testing.T) {
		cause := errors.New("missing required field")
		err := errs.NewValueIsRequiredErrorWithCause("name", cause)

		assert.Equal(t, "name", err.ParamName)
		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "value is required: name (cause: missing required field)", err.Error())
		assert.Equal(t, errs.ErrValueIsRequired, err.Unwrap())
	})
}

func TestDomainValidationError(t *testing.T) {
	t.Run("NewDomainValidationError", func(t *testing.T) {
		fieldErrors := map[string][]string{
			"Name":  {"Name cannot be empty."},
			"Price": {"Price cannot be negative."},
		}
		err := errs.NewDomainValidationError("Product", fieldErrors)

		assert.Equal(t, "Product", err.EntityType)
		assert.Equal(t, fieldErrors, err.Errors)
		assert.Equal(t, errs.ErrDomainValidation, err.Unwrap())
	})

	t.Run("Error lists fields in deterministic order", func(t *testing.T) {
		err := errs.NewDomainValidationError("Product", map[string][]string{
			"Price": {"Price cannot be negative."},
			"Name":  {"Name cannot be empty."},
		})

		assert.Equal(t,
			"domain validation failed: Product (Name: Name cannot be empty., Price: Price cannot be negative.)",
			err.Error())
	})

	t.Run("multiple messages per field are joined", func(t *testing.T) {
		err := errs.NewDomainValidationError("Customer", map[string][]string{
			"Name": {"Name cannot be empty.", "Name is too short."},
		})

		assert.Equal(t,
			"domain validation failed: Customer (Name: Name cannot be empty.; Name is too short.)",
			err.Error())
	})
}

func TestOperationFailedError(t *testing.T) {
	t.Run("NewOperationFailedError", func(t *testing.T) {
		err := errs.NewOperationFailedError("update order")

		assert.Equal(t, "update order", err.Operation)
		require.NoError(t, err.Cause)
		assert.Equal(t, "operation failed: update order", err.Error())
		assert.Equal(t, errs.ErrOperationFailed, err.Unwrap())
	})

	t.Run("NewOperationFailedErrorWithCause", func(t *testing.T) {
		cause := errors.New("record not found")
		err := errs.NewOperationFailedErrorWithCause("update order", cause)

		assert.Equal(t, cause, err.Cause)
		assert.Equal(t, "operation failed: update order (cause: record not found)", err.Error())
	})
}

func TestSentinelErrors(t *testing.T) {
	t.Run("sentinel errors are defined", func(t *testing.T) {
		require.Error(t, errs.ErrObjectNotFound)
		require.Error(t, errs.ErrValueIsInvalid)
		require.Error(t, errs.ErrValueIsOutOfRange)
		require.Error(t, errs.ErrValueIsRequired)
		require.Error(t, errs.ErrDomainValidation)
		require.Error(t, errs.ErrOperationFailed)
	})

	t.Run("error messages match expectations", func(t *testing.T) {
		assert.Equal(t, "object not found", errs.ErrObjectNotFound.Error())
		assert.Equal(t, "value is invalid", errs.ErrValueIsInvalid.Error())
		assert.Equal(t, "value is out of range", errs.ErrValueIsOutOfRange.Error())
		assert.Equal(t, "value is required", errs.ErrValueIsRequired.Error())
		assert.Equal(t, "domain validation failed", errs.ErrDomainValidation.Error())
		assert.Equal(t, "operation failed", errs.ErrOperationFailed.Error())
	})
}

func TestErrorsCanBeUnwrapped(t *testing.T) {
	t.Run("errors.Is works with custom errors", func(t *testing.T) {
		objectNotFoundErr := errs.NewObjectNotFoundError("customerId", "123")
		require.ErrorIs(t, objectNotFoundErr, errs.ErrObjectNotFound)

		valueInvalidErr := errs.NewValueIsInvalidError("photoUrl")
		require.ErrorIs(t, valueInvalidErr, errs.ErrValueIsInvalid)

		valueOutOfRangeErr := errs.NewValueIsOutOfRangeError("pageSize", 150, 1, 100)
		require.ErrorIs(t, valueOutOfRangeErr, errs.ErrValueIsOutOfRange)

		valueRequiredErr := errs.NewValueIsRequiredError("name")
		require.ErrorIs(t, valueRequiredErr, errs.ErrValueIsRequired)

		validationErr := errs.NewDomainValidationError("Product", nil)
		require.ErrorIs(t, validationErr, errs.ErrDomainValidation)

		operationFailedErr := errs.NewOperationFailedError("update order")
		require.ErrorIs(t, operationFailedErr, errs.ErrOperationFailed)
	})
}
