package budget_test

import (
	"testing"

	"bizza/internal/core/domain/model/budget"
	"bizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatusValidate(t *testing.T) {
	t.Run("valid statuses", func(t *testing.T) {
		for _, status := range []budget.Status{budget.PendingApproval, budget.Approved, budget.Rejected} {
			assert.NoError(t, status.Validate())
		}
	})

	t.Run("invalid statuses", func(t *testing.T) {
		assert.ErrorIs(t, budget.Unknown.Validate(), errs.ErrValueIsInvalid)
		assert.ErrorIs(t, budget.Status(42).Validate(), errs.ErrValueIsInvalid)
	})
}

func TestStatusString(t *testing.T) {
	assert.Equal(t, "PendingApproval", budget.PendingApproval.String())
	assert.Equal(t, "Approved", budget.Approved.String())
	assert.Equal(t, "Rejected", budget.Rejected.String())
	assert.Equal(t, "Unknown", budget.Unknown.String())
}

func TestStatusIsFinal(t *testing.T) {
	assert.False(t, budget.PendingApproval.IsFinal())
	assert.True(t, budget.Approved.IsFinal())
	assert.True(t, budget.Rejected.IsFinal())
}

func TestStatusApprove(t *testing.T) {
	t.Run("pending to approved", func(t *testing.T) {
		next, err := budget.PendingApproval.Approve()

		require.NoError(t, err)
		assert.Equal(t, budget.Approved, next)
	})

	t.Run("final statuses cannot be approved", func(t *testing.T) {
		for _, status := range []budget.Status{budget.Approved, budget.Rejected} {
			_, err := status.Approve()
			assert.Error(t, err)
		}
	})
}

func TestStatusReject(t *testing.T) {
	t.Run("pending to rejected", func(t *testing.T) {
		next, err := budget.PendingApproval.Reject()

		require.NoError(t, err)
		assert.Equal(t, budget.Rejected, next)
	})

	t.Run("final statuses cannot be rejected", func(t *testing.T) {
		for _, status := range []budget.Status{budget.Approved, budget.Rejected} {
			_, err := status.Reject()
			assert.Error(t, err)
		}
	})
}
