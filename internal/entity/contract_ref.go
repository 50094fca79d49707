package entity

import "github.com/google/uuid"

// Contract reference sources.
const (
	ContractSourceIndex         = "index"
	ContractSourceDocumentStore = "document_store"
)

// ContractRef points the validator at a reference document. ContractID is
// nil when the document was found only in the document store and has no
// indexed identity yet.
type ContractRef struct {
	ContractID *uuid.UUID `json:"contract_id,omitempty"`
	VendorName string     `json:"vendor_name"`
	Path       string     `json:"path"`
	Source     string     `json:"source"`
}
