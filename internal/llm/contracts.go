package llm

import (
	"context"
	"encoding/json"

	"github.com/docuflow/invoice-pipeline/internal/entity"
)

// LineItem is one invoice line as extracted from OCR text.
type LineItem struct {
	Description string  `json:"description"`
	Quantity    float64 `json:"quantity,omitempty"`
	UnitPrice   string  `json:"unit_price,omitempty"` // decimal
	Amount      string  `json:"amount,omitempty"`     // decimal
}

// InvoiceFields is the normalized shape we want from the LLM for one
// invoice document.
type InvoiceFields struct {
	VendorName      string     `json:"vendor_name"`
	InvoiceNumber   string     `json:"invoice_number,omitempty"`
	InvoiceDate     string     `json:"invoice_date,omitempty"` // YYYY-MM-DD
	TotalAmount     string     `json:"total_amount"`           // decimal
	CurrencyCode    string     `json:"currency_code,omitempty"`
	PaymentTerms    string     `json:"payment_terms,omitempty"`
	LineItems       []LineItem `json:"line_items,omitempty"`
	ModelConfidence float32    `json:"confidence,omitempty"` // 0..1
}

// ContractTerms is the normalized shape extracted from a contract document.
type ContractTerms struct {
	VendorName         string     `json:"vendor_name,omitempty"`
	EffectiveDate      string     `json:"effective_date,omitempty"`  // YYYY-MM-DD
	ExpirationDate     string     `json:"expiration_date,omitempty"` // YYYY-MM-DD
	PaymentTerms       string     `json:"payment_terms,omitempty"`
	PricingItems       []LineItem `json:"pricing_items,omitempty"`
	TerminationClauses []string   `json:"termination_clauses,omitempty"`
}

// ComparisonResult is the outcome of comparing extracted invoice data
// against contract terms.
type ComparisonResult struct {
	IsValid       bool                 `json:"is_valid"`
	Discrepancies []entity.Discrepancy `json:"discrepancies"`
	Summary       string               `json:"summary,omitempty"`
}

// FieldExtractor turns invoice text into structured fields.
type FieldExtractor interface {
	ExtractFields(ctx context.Context, text string) (InvoiceFields, []byte /*rawJSON*/, error)
}

// TermExtractor turns contract text into structured key terms.
type TermExtractor interface {
	ExtractTerms(ctx context.Context, text string) (ContractTerms, []byte /*rawJSON*/, error)
}

// Comparator checks extracted invoice data against contract terms.
type Comparator interface {
	Compare(ctx context.Context, invoiceData json.RawMessage, terms json.RawMessage) (ComparisonResult, error)
}
