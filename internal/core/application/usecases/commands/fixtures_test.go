package commands_test

import (
	"testing"
	"time"

	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/kernel"
	"bizza/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func testCategory(t *testing.T, name string) order.ServiceCategory {
	t.Helper()
	category, err := order.NewServiceCategory(name)
	require.NoError(t, err)
	return category
}

func testScheduledAt() time.Time {
	return time.Date(2025, 7, 14, 9, 0, 0, 0, time.UTC)
}

func newPendingOrder(t *testing.T, requiresBudgetApproval bool) *order.Order {
	t.Helper()
	aggregate, err := order.NewOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		testCategory(t, "plumbing"),
		"Jl. Sudirman 12",
		testScheduledAt(),
		"",
		requiresBudgetApproval,
	)
	require.NoError(t, err)
	return aggregate
}

func newOrderInStatus(t *testing.T, status order.Status, progress int) *order.Order {
	t.Helper()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(),
		kernel.NewUUID(),
		testCategory(t, "plumbing"),
		"Jl. Sudirman 12",
		testScheduledAt(),
		"",
		false,
		status,
		nil,
		nil,
		progress,
		1,
	)
	require.NoError(t, err)
	return aggregate
}

func testItems(t *testing.T) []budget.LineItem {
	t.Helper()
	price, err := kernel.MoneyFromString("50000")
	require.NoError(t, err)
	item, err := budget.NewLineItem("Semen", 2, price)
	require.NoError(t, err)
	return []budget.LineItem{item}
}

func newPendingProposal(t *testing.T, orderID kernel.UUID) *budget.Proposal {
	t.Helper()
	proposal, err := budget.NewProposal(
		kernel.NewUUID(),
		orderID,
		kernel.NewUUID(),
		testItems(t),
		"",
	)
	require.NoError(t, err)
	return proposal
}
