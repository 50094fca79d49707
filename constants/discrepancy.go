package constants

// DiscrepancyType classifies a finding from invoice-vs-contract comparison.
type DiscrepancyType string

const (
	DiscrepancyPriceMismatch DiscrepancyType = "price_mismatch"
	DiscrepancyItemMismatch  DiscrepancyType = "item_mismatch"
	DiscrepancyDateIssue     DiscrepancyType = "date_issue"
	DiscrepancyPaymentTerm   DiscrepancyType = "payment_term"
	DiscrepancyOther         DiscrepancyType = "other"
)

// Severity grades a discrepancy.
type Severity string

const (
	SeverityHigh   Severity = "high"
	SeverityMedium Severity = "medium"
	SeverityLow    Severity = "low"
)

var DiscrepancyTypes = []string{
	string(DiscrepancyPriceMismatch),
	string(DiscrepancyItemMismatch),
	string(DiscrepancyDateIssue),
	string(DiscrepancyPaymentTerm),
	string(DiscrepancyOther),
}

var Severities = []string{
	string(SeverityHigh),
	string(SeverityMedium),
	string(SeverityLow),
}
