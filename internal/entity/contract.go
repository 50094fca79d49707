package entity

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Contract represents contract metadata for data transfer between layers.
type Contract struct {
	ID         uuid.UUID       `json:"id"`
	VendorName string          `json:"vendor_name"`
	FilePath   string          `json:"file_path"`
	StartDate  *time.Time      `json:"start_date,omitempty"`
	EndDate    *time.Time      `json:"end_date,omitempty"`
	KeyTerms   json.RawMessage `json:"key_terms,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}
