package llm

import "strings"

// BuildInvoicePrompt composes the system message for invoice field
// extraction.
func BuildInvoicePrompt() string {
	parts := []string{
		"You are an accounts-payable invoice parser. Return ONLY JSON that matches the provided JSON Schema.",
		"Use ISO-8601 dates (YYYY-MM-DD).",
		"Money fields are decimal strings with up to two fraction digits, no currency symbols.",
		"vendor_name is the party issuing the invoice, not the recipient.",
		"Include every line item you can read; omit fields you cannot determine.",
		"Set 'confidence' to your overall extraction confidence between 0 and 1.",
	}
	return strings.Join(parts, " ")
}

// BuildTermsPrompt composes the system message for contract key-term
// extraction.
func BuildTermsPrompt() string {
	parts := []string{
		"You are a contract analyst. Return ONLY JSON that matches the provided JSON Schema.",
		"Extract payment terms, effective and expiration dates, agreed pricing, and termination clauses.",
		"Use ISO-8601 dates (YYYY-MM-DD) and decimal strings for money.",
		"Omit fields the contract does not state; never invent terms.",
	}
	return strings.Join(parts, " ")
}

// BuildComparisonPrompt composes the system message for invoice-vs-contract
// comparison.
func BuildComparisonPrompt() string {
	parts := []string{
		"You compare extracted invoice data against contract terms. Return ONLY JSON that matches the provided JSON Schema.",
		"Report every discrepancy with a type (price_mismatch, item_mismatch, date_issue, payment_term, other) and a severity (high, medium, low).",
		"Set is_valid to true only when no discrepancy would block payment.",
		"Order discrepancies from most to least severe.",
	}
	return strings.Join(parts, " ")
}
