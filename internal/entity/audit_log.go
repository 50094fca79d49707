package entity

import (
	"time"

	"github.com/google/uuid"
)

// AuditLogEntry is one append-only record of an invoice state transition
// or decision. Ordering by Timestamp is the canonical history.
type AuditLogEntry struct {
	ID        uuid.UUID `json:"id"`
	InvoiceID uuid.UUID `json:"invoice_id"`
	Timestamp time.Time `json:"timestamp"`
	Action    string    `json:"action"`
	Details   string    `json:"details,omitempty"`
}
