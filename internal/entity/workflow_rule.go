package entity

import (
	"time"

	"github.com/google/uuid"

	"github.com/docuflow/invoice-pipeline/constants"
)

// WorkflowRule is a condition -> action mapping evaluated after validation.
// The pipeline only ever consumes an immutable snapshot of these.
type WorkflowRule struct {
	ID        uuid.UUID                `json:"id"`
	Name      string                   `json:"name"`
	Condition string                   `json:"condition"`
	Action    constants.WorkflowAction `json:"action"`
	Priority  int                      `json:"priority"`
	IsActive  bool                     `json:"is_active"`
	CreatedAt time.Time                `json:"created_at"`
	UpdatedAt time.Time                `json:"updated_at"`
}
