package repository

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/gen/ent"
	"github.com/docuflow/invoice-pipeline/gen/ent/invoice"
	"github.com/docuflow/invoice-pipeline/internal/entity"
	"github.com/docuflow/invoice-pipeline/internal/utils"
)

// ExtractedInvoice wraps the structured fields written back after the
// extraction stage.
type ExtractedInvoice struct {
	VendorName    string
	InvoiceNumber string
	InvoiceDate   *time.Time
	TotalAmount   *float64
	Raw           json.RawMessage
}

type InvoiceRepository interface {
	Create(ctx context.Context, fileName, sourcePath string) (*entity.Invoice, error)
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	ListByStatus(ctx context.Context, status *constants.InvoiceStatus, fromDate, toDate *time.Time) ([]*entity.Invoice, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status constants.InvoiceStatus) error
	SetExtracted(ctx context.Context, id uuid.UUID, data ExtractedInvoice) error
	SetValidation(ctx context.Context, id uuid.UUID, status constants.InvoiceStatus, discrepancies []entity.Discrepancy, contractID *uuid.UUID) error
	Approve(ctx context.Context, id uuid.UUID, approverID string) (*entity.Invoice, error)
	Reject(ctx context.Context, id uuid.UUID, approverID string) (*entity.Invoice, error)
}

type invoiceRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewInvoiceRepository(client *ent.Client, logger *slog.Logger) InvoiceRepository {
	return &invoiceRepository{
		client: client,
		logger: logger,
	}
}

func (r *invoiceRepository) Create(ctx context.Context, fileName, sourcePath string) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Create().
		SetFileName(fileName).
		SetSourcePath(sourcePath).
		SetStatus(string(constants.StatusReceived)).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to create invoice", "file_name", fileName, "error", err)
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	row, err := r.client.Invoice.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) ListByStatus(ctx context.Context, status *constants.InvoiceStatus, fromDate, toDate *time.Time) ([]*entity.Invoice, error) {
	q := r.client.Invoice.Query()
	if status != nil {
		q = q.Where(invoice.Status(string(*status)))
	}
	if fromDate != nil {
		q = q.Where(invoice.UploadedAtGTE(*fromDate))
	}
	if toDate != nil {
		q = q.Where(invoice.UploadedAtLTE(*toDate))
	}
	rows, err := q.Order(invoice.ByUploadedAt()).All(ctx)
	if err != nil {
		r.logger.Error("failed to list invoices", "error", err)
		return nil, err
	}

	result := make([]*entity.Invoice, len(rows))
	for i, row := range rows {
		result[i] = utils.ToInvoice(row)
	}
	return result, nil
}

func (r *invoiceRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.InvoiceStatus) error {
	return r.client.Invoice.UpdateOneID(id).
		SetStatus(string(status)).
		Exec(ctx)
}

func (r *invoiceRepository) SetExtracted(ctx context.Context, id uuid.UUID, data ExtractedInvoice) error {
	builder := r.client.Invoice.UpdateOneID(id).
		SetStatus(string(constants.StatusOCRd)).
		SetExtractedData(data.Raw)
	if data.VendorName != "" {
		builder = builder.SetVendorName(data.VendorName)
	}
	if data.InvoiceNumber != "" {
		builder = builder.SetInvoiceNumber(data.InvoiceNumber)
	}
	if data.InvoiceDate != nil {
		builder = builder.SetInvoiceDate(*data.InvoiceDate)
	}
	if data.TotalAmount != nil {
		builder = builder.SetTotalAmount(*data.TotalAmount)
	}
	return builder.Exec(ctx)
}

func (r *invoiceRepository) SetValidation(ctx context.Context, id uuid.UUID, status constants.InvoiceStatus, discrepancies []entity.Discrepancy, contractID *uuid.UUID) error {
	raw, err := json.Marshal(discrepancies)
	if err != nil {
		return err
	}
	builder := r.client.Invoice.UpdateOneID(id).
		SetStatus(string(status)).
		SetFlaggedDiscrepancies(raw)
	if contractID != nil {
		builder = builder.SetContractID(*contractID)
	}
	return builder.Exec(ctx)
}

func (r *invoiceRepository) Approve(ctx context.Context, id uuid.UUID, approverID string) (*entity.Invoice, error) {
	row, err := r.client.Invoice.UpdateOneID(id).
		SetStatus(string(constants.StatusApproved)).
		SetApprovedBy(approverID).
		SetApprovalTime(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to approve invoice", "invoice_id", id, "error", err)
		return nil, err
	}
	return utils.ToInvoice(row), nil
}

func (r *invoiceRepository) Reject(ctx context.Context, id uuid.UUID, approverID string) (*entity.Invoice, error) {
	row, err := r.client.Invoice.UpdateOneID(id).
		SetStatus(string(constants.StatusRejected)).
		SetApprovedBy(approverID).
		SetApprovalTime(time.Now().UTC()).
		Save(ctx)
	if err != nil {
		r.logger.Error("failed to reject invoice", "invoice_id", id, "error", err)
		return nil, err
	}
	return utils.ToInvoice(row), nil
}
