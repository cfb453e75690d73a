package guard_test

import (
	"errors"
	"testing"

	"nannyadmin/internal/pkg/guard"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConstructorGuard(t *testing.T) {
	t.Run("creates_properly_constructed_guard", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		customError := errors.New("test object not constructed")
		require.NoError(t, g.Validate(customError))
		require.NoError(t, g.Validate(nil))
	})
}

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("properly_constructed_guard_returns_nil", func(t *testing.T) {
		g := guard.NewConstructorGuard()

		require.NoError(t, g.Validate(errors.New("not constructed")))
	})

	t.Run("zero_value_guard_returns_custom_error", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value
		expectedError := errors.New("entity not constructed")

		err := g.Validate(expectedError)

		require.Error(t, err)
		assert.Equal(t, expectedError, err)
	})

	t.Run("zero_value_guard_returns_default_error_when_nil", func(t *testing.T) {
		var g guard.ConstructorGuard // zero value

		err := g.Validate(nil)

		require.Error(t, err)
		assert.Equal(t, guard.ErrDefaultConstructorGuard, err)
	})

	t.Run("default_error_constant_has_meaningful_message", func(t *testing.T) {
		require.Error(t, guard.ErrDefaultConstructorGuard)
		assert.Equal(t, "object must be created via its constructor", guard.ErrDefaultConstructorGuard.Error())
	})
}

// TestConstructorGuardUsageExample demonstrates how ConstructorGuard should be used
// in a domain object to enforce constructor usage.
func TestConstructorGuardUsageExample(t *testing.T) {
	type Product struct {
		name  string
		price int
		guard guard.ConstructorGuard
	}

	var errProductNotConstructed = errors.New("Product must be created via NewProduct")

	newProduct := func(name string, price int) (Product, error) {
		if name == "" {
			return Product{}, errors.New("name is required")
		}
		if price < 0 {
			return Product{}, errors.New("price cannot be negative")
		}
		return Product{
			name:  name,
			price: price,
			guard: guard.NewConstructorGuard(),
		}, nil
	}

	validateProduct := func(p Product) error {
		return p.guard.Validate(errProductNotConstructed)
	}

	t.Run("valid_construction_through_constructor", func(t *testing.T) {
		product, err := newProduct("Teddy Bear", 1999)

		require.NoError(t, err)
		require.NoError(t, validateProduct(product))
		assert.Equal(t, "Teddy Bear", product.name)
		assert.Equal(t, 1999, product.price)
	})

	t.Run("zero_value_construction_validation", func(t *testing.T) {
		var product Product // zero value

		err := validateProduct(product)

		require.Error(t, err)
		assert.Equal(t, errProductNotConstructed, err)
	})

	t.Run("constructor_validates_business_rules", func(t *testing.T) {
		_, err := newProduct("", 1999)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "name is required")

		_, err = newProduct("Teddy Bear", -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "price cannot be negative")
	})
}

// TestConstructorGuardConcurrency verifies that ConstructorGuard is safe for concurrent use.
func TestConstructorGuardConcurrency(t *testing.T) {
	g := guard.NewConstructorGuard()
	validationError := errors.New("not constructed")

	done := make(chan bool)
	for range 100 {
		go func() {
			for range 1000 {
				err := g.Validate(validationError)
				assert.NoError(t, err)
			}
			done <- true
		}()
	}

	for range 100 {
		<-done
	}
}

func TestConstructorGuardCopySemantics(t *testing.T) {
	t.Run("guard_can_be_safely_passed_by_value", func(t *testing.T) {
		g := guard.NewConstructorGuard()
		testError := errors.New("test error")

		guardCopy := g

		require.NoError(t, g.Validate(testError))
		require.NoError(t, guardCopy.Validate(testError))
	})
}
