package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docuflow/invoice-pipeline/gen/ent"
	"github.com/docuflow/invoice-pipeline/gen/ent/auditlog"
	"github.com/docuflow/invoice-pipeline/internal/entity"
	"github.com/docuflow/invoice-pipeline/internal/utils"
)

// AuditLogRepository appends to and reads the per-invoice audit trail.
// Entries are never updated or deleted.
type AuditLogRepository interface {
	Append(ctx context.Context, invoiceID uuid.UUID, action, details string) error
	ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entity.AuditLogEntry, error)
}

type auditLogRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewAuditLogRepository(client *ent.Client, logger *slog.Logger) AuditLogRepository {
	return &auditLogRepository{
		client: client,
		logger: logger,
	}
}

func (r *auditLogRepository) Append(ctx context.Context, invoiceID uuid.UUID, action, details string) error {
	err := r.client.AuditLog.Create().
		SetInvoiceID(invoiceID).
		SetAction(action).
		SetDetails(details).
		Exec(ctx)
	if err != nil {
		// The audit trail is the canonical history; a failed append is loud.
		r.logger.Error("failed to append audit log entry",
			"invoice_id", invoiceID, "action", action, "error", err)
	}
	return err
}

func (r *auditLogRepository) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entity.AuditLogEntry, error) {
	rows, err := r.client.AuditLog.Query().
		Where(auditlog.InvoiceID(invoiceID)).
		Order(auditlog.ByTimestamp()).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list audit log", "invoice_id", invoiceID, "error", err)
		return nil, err
	}

	result := make([]*entity.AuditLogEntry, len(rows))
	for i, row := range rows {
		result[i] = utils.ToAuditLogEntry(row)
	}
	return result, nil
}
