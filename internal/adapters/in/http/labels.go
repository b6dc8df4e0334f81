package http

import (
	"bizza/internal/core/domain/model/budget"
	"bizza/internal/core/domain/model/order"
)

// The domain stores statuses as compact codes; clients see human labels.
// The mapping lives only here so the rest of the system never deals with
// presentation wording.
var orderStatusLabels = map[order.Status]string{
	order.NeedValidation: "Awaiting validation",
	order.OnProgress:     "In progress",
	order.Done:           "Done",
	order.Cancelled:      "Cancelled",
}

var proposalStatusLabels = map[budget.Status]string{
	budget.PendingApproval: "Pending approval",
	budget.Approved:        "Approved",
	budget.Rejected:        "Rejected",
}

func orderStatusLabel(s order.Status) string {
	if label, ok := orderStatusLabels[s]; ok {
		return label
	}
	return s.String()
}

func proposalStatusLabel(s budget.Status) string {
	if label, ok := proposalStatusLabels[s]; ok {
		return label
	}
	return s.String()
}
