package constants

// InvoiceStatus is the canonical lifecycle status for rows in invoices.
type InvoiceStatus string

// Stable values (store these exact strings in DB).
const (
	StatusReceived        InvoiceStatus = "Received"         // uploaded, not yet processed
	StatusProcessing      InvoiceStatus = "Processing"       // pipeline run in progress
	StatusOCRd            InvoiceStatus = "OCRd"             // text + fields extracted
	StatusValidated       InvoiceStatus = "Validated"        // matched contract, no blocking discrepancies
	StatusFlagged         InvoiceStatus = "Flagged"          // matched contract, discrepancies found
	StatusApproved        InvoiceStatus = "Approved"         // terminal: auto- or manually approved
	StatusRejected        InvoiceStatus = "Rejected"         // terminal: manually rejected
	StatusPendingApproval InvoiceStatus = "Pending Approval" // pipeline-terminal: waiting on a manager
	StatusPendingReview   InvoiceStatus = "Pending Review"   // pipeline-terminal: waiting on a clerk
	StatusError           InvoiceStatus = "Error"            // terminal: a stage failed
)

// InvoiceStatuses holds every valid status value, for schema validation.
var InvoiceStatuses = []string{
	string(StatusReceived),
	string(StatusProcessing),
	string(StatusOCRd),
	string(StatusValidated),
	string(StatusFlagged),
	string(StatusApproved),
	string(StatusRejected),
	string(StatusPendingApproval),
	string(StatusPendingReview),
	string(StatusError),
}

// Terminal reports whether the pipeline may not advance an invoice past s.
func (s InvoiceStatus) Terminal() bool {
	switch s {
	case StatusApproved, StatusRejected, StatusPendingApproval, StatusPendingReview, StatusError:
		return true
	}
	return false
}
