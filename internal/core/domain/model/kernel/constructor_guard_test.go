package kernel_test

import (
	"errors"
	"testing"

	"bizza/internal/core/domain/model/kernel"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConstructorGuard_Validate(t *testing.T) {
	t.Run("constructed guard passes with any sentinel", func(t *testing.T) {
		guard := kernel.NewConstructorGuard()

		assert.NoError(t, guard.Validate(errors.New("proposal not constructed")))
		assert.NoError(t, guard.Validate(nil))
	})

	t.Run("zero-value guard returns the caller's sentinel", func(t *testing.T) {
		var guard kernel.ConstructorGuard
		sentinel := errors.New("proposal not constructed")

		assert.Equal(t, sentinel, guard.Validate(sentinel))
	})

	t.Run("zero-value guard falls back to the default error", func(t *testing.T) {
		var guard kernel.ConstructorGuard

		err := guard.Validate(nil)
		require.Error(t, err)
		assert.Equal(t, kernel.ErrDefaultConstructorGuard, err)
		assert.Contains(t, err.Error(), "constructor")
	})
}

// The guard exists so a domain value skipped past its constructor fails
// loudly. Money is the in-package consumer; exercise the pattern through it.
func TestConstructorGuard_GuardsMoney(t *testing.T) {
	t.Run("constructed money validates", func(t *testing.T) {
		price, err := kernel.MoneyFromString("50000")
		require.NoError(t, err)

		assert.NoError(t, price.Validate())
	})

	t.Run("zero-value money is refused", func(t *testing.T) {
		var price kernel.Money

		err := price.Validate()
		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})

	t.Run("a copy carries the constructed state with it", func(t *testing.T) {
		price, err := kernel.MoneyFromString("125000.50")
		require.NoError(t, err)

		lineItemPrice := price

		assert.NoError(t, lineItemPrice.Validate())
	})
}
