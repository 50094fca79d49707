package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"github.com/docuflow/invoice-pipeline/constants"
)

// Invoice represents an invoice for data transfer between layers.
type Invoice struct {
	ID                   uuid.UUID               `json:"id"`
	FileName             string                  `json:"file_name"`
	SourcePath           string                  `json:"source_path"`
	UploadedAt           time.Time               `json:"uploaded_at"`
	Status               constants.InvoiceStatus `json:"status"`
	VendorName           *string                 `json:"vendor_name,omitempty"`
	InvoiceNumber        *string                 `json:"invoice_number,omitempty"`
	InvoiceDate          *time.Time              `json:"invoice_date,omitempty"`
	TotalAmount          *float64                `json:"total_amount,omitempty"`
	ExtractedData        json.RawMessage         `json:"extracted_data,omitempty"`
	FlaggedDiscrepancies []Discrepancy           `json:"flagged_discrepancies,omitempty"`
	ContractID           *uuid.UUID              `json:"contract_id,omitempty"`
	ApprovedBy           *string                 `json:"approved_by,omitempty"`
	ApprovalTime         *time.Time              `json:"approval_time,omitempty"`
	CreatedAt            time.Time               `json:"created_at"`
	UpdatedAt            time.Time               `json:"updated_at"`
}

// Discrepancy is one structured finding from invoice-vs-contract comparison.
type Discrepancy struct {
	Type        constants.DiscrepancyType `json:"type"`
	Severity    constants.Severity        `json:"severity"`
	Description string                    `json:"description"`
	Field       string                    `json:"field,omitempty"`
}
