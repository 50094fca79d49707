package constants

// WorkflowAction is what the rule engine decides to do with an invoice
// after validation.
type WorkflowAction string

const (
	ActionAutoApprove            WorkflowAction = "AutoApprove"
	ActionRequireManagerApproval WorkflowAction = "RequireManagerApproval"
	ActionRequireReview          WorkflowAction = "RequireReview"
)

// WorkflowActions holds the allowed action values for the workflow_rules
// action column.
var WorkflowActions = []string{
	string(ActionAutoApprove),
	string(ActionRequireManagerApproval),
	string(ActionRequireReview),
}

// StatusFor maps an action to the invoice status it produces. Unrecognized
// actions fall through to Pending Review.
func (a WorkflowAction) StatusFor() InvoiceStatus {
	switch a {
	case ActionAutoApprove:
		return StatusApproved
	case ActionRequireManagerApproval:
		return StatusPendingApproval
	default:
		return StatusPendingReview
	}
}
