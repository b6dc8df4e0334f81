package budget_test

import (
	"testing"
	"time"

	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewExpense(t *testing.T) {
	purchasedAt := time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)

	t.Run("creates expense with proof", func(t *testing.T) {
		proof := "receipts/2025/03/semen.jpg"

		expense, err := budget.NewExpense(
			kernel.NewUUID(), kernel.NewUUID(), "Semen", 2, mustMoney(t, "55000"), purchasedAt, &proof,
		)

		require.NoError(t, err)
		require.NoError(t, expense.Validate())
		assert.Equal(t, "Semen", expense.ItemName())
		assert.Equal(t, 2, expense.Quantity())
		assert.True(t, expense.Total().IsEqual(mustMoney(t, "110000")))
		assert.Equal(t, purchasedAt, expense.PurchasedAt())
		require.NotNil(t, expense.ProofRef())
		assert.Equal(t, proof, *expense.ProofRef())
	})

	t.Run("proof is optional", func(t *testing.T) {
		expense, err := budget.NewExpense(
			kernel.NewUUID(), kernel.NewUUID(), "Semen", 1, mustMoney(t, "55000"), purchasedAt, nil,
		)

		require.NoError(t, err)
		assert.Nil(t, expense.ProofRef())
	})

	t.Run("rejects empty proof reference", func(t *testing.T) {
		proof := ""

		_, err := budget.NewExpense(
			kernel.NewUUID(), kernel.NewUUID(), "Semen", 1, mustMoney(t, "55000"), purchasedAt, &proof,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := budget.NewExpense(
			kernel.NewUUID(), kernel.NewUUID(), "Semen", 0, mustMoney(t, "55000"), purchasedAt, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("rejects empty item name", func(t *testing.T) {
		_, err := budget.NewExpense(
			kernel.NewUUID(), kernel.NewUUID(), "", 1, mustMoney(t, "55000"), purchasedAt, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("rejects zero purchase time", func(t *testing.T) {
		_, err := budget.NewExpense(
			kernel.NewUUID(), kernel.NewUUID(), "Semen", 1, mustMoney(t, "55000"), time.Time{}, nil,
		)

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestRestoreExpense(t *testing.T) {
	purchasedAt := time.Date(2025, 3, 12, 14, 0, 0, 0, time.UTC)

	expense, err := budget.RestoreExpense(
		kernel.NewUUID(), kernel.NewUUID(), "Cat", 3, mustMoney(t, "75000"), purchasedAt, nil,
	)

	require.NoError(t, err)
	assert.True(t, expense.Total().IsEqual(mustMoney(t, "225000")))
}
