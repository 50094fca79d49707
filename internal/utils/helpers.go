package utils

import (
	"encoding/json"
	"time"

	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/gen/ent"
	"github.com/docuflow/invoice-pipeline/internal/entity"
)

// ToInvoice converts an Ent row to the transfer struct.
func ToInvoice(e *ent.Invoice) *entity.Invoice {
	inv := &entity.Invoice{
		ID:            e.ID,
		FileName:      e.FileName,
		SourcePath:    e.SourcePath,
		UploadedAt:    e.UploadedAt,
		Status:        constants.InvoiceStatus(e.Status),
		VendorName:    e.VendorName,
		InvoiceNumber: e.InvoiceNumber,
		InvoiceDate:   e.InvoiceDate,
		TotalAmount:   e.TotalAmount,
		ExtractedData: e.ExtractedData,
		ContractID:    e.ContractID,
		ApprovedBy:    e.ApprovedBy,
		ApprovalTime:  e.ApprovalTime,
		CreatedAt:     e.CreatedAt,
		UpdatedAt:     e.UpdatedAt,
	}
	if len(e.FlaggedDiscrepancies) > 0 {
		// Tolerate malformed stored JSON; callers treat nil as "none".
		_ = json.Unmarshal(e.FlaggedDiscrepancies, &inv.FlaggedDiscrepancies)
	}
	return inv
}

func ToContract(e *ent.Contract) *entity.Contract {
	return &entity.Contract{
		ID:         e.ID,
		VendorName: e.VendorName,
		FilePath:   e.FilePath,
		StartDate:  e.StartDate,
		EndDate:    e.EndDate,
		KeyTerms:   e.KeyTerms,
		CreatedAt:  e.CreatedAt,
		UpdatedAt:  e.UpdatedAt,
	}
}

func ToAuditLogEntry(e *ent.AuditLog) *entity.AuditLogEntry {
	return &entity.AuditLogEntry{
		ID:        e.ID,
		InvoiceID: e.InvoiceID,
		Timestamp: e.Timestamp,
		Action:    e.Action,
		Details:   e.Details,
	}
}

func ToWorkflowRule(e *ent.WorkflowRule) *entity.WorkflowRule {
	return &entity.WorkflowRule{
		ID:        e.ID,
		Name:      e.Name,
		Condition: e.Condition,
		Action:    constants.WorkflowAction(e.Action),
		Priority:  e.Priority,
		IsActive:  e.IsActive,
		CreatedAt: e.CreatedAt,
		UpdatedAt: e.UpdatedAt,
	}
}

// ParseYMD parses a YYYY-MM-DD date at midnight UTC to match DATE semantics.
func ParseYMD(s string) (time.Time, error) {
	t, err := time.ParseInLocation("2006-01-02", s, time.UTC)
	if err != nil {
		return time.Time{}, err
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}
