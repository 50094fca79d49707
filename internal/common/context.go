package common

import (
	"context"
)

// Context keys for storing values in context
type contextKey string

const (
	ContextKeyRunID     contextKey = "run_id"
	ContextKeyInvoiceID contextKey = "invoice_id"
)

// WithRunID adds a pipeline run ID to the context
func WithRunID(ctx context.Context, runID string) context.Context {
	return context.WithValue(ctx, ContextKeyRunID, runID)
}

// RunIDFromContext extracts the pipeline run ID from context
func RunIDFromContext(ctx context.Context) string {
	if runID, ok := ctx.Value(ContextKeyRunID).(string); ok {
		return runID
	}
	return ""
}

// WithInvoiceID adds an invoice ID to the context
func WithInvoiceID(ctx context.Context, invoiceID string) context.Context {
	return context.WithValue(ctx, ContextKeyInvoiceID, invoiceID)
}

// InvoiceIDFromContext extracts the invoice ID from context
func InvoiceIDFromContext(ctx context.Context) string {
	if invoiceID, ok := ctx.Value(ContextKeyInvoiceID).(string); ok {
		return invoiceID
	}
	return ""
}
