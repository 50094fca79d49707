package export

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/internal/repository"
)

// Service is a tiny façade over repositories that produces XLSX bytes for exports.
type Service struct {
	invoicesRepo repository.InvoiceRepository
	auditRepo    repository.AuditLogRepository
	logger       *slog.Logger
}

func NewService(invoicesRepo repository.InvoiceRepository, auditRepo repository.AuditLogRepository, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{invoicesRepo: invoicesRepo, auditRepo: auditRepo, logger: logger}
}

// ExportInvoicesXLSX returns an XLSX workbook (as bytes) for the given
// status and upload-date window.
// If only from is provided -> from..today (inclusive).
// If only to is provided   -> beginning..to (inclusive).
// If neither is provided   -> all invoices matching the status filter.
func (s *Service) ExportInvoicesXLSX(ctx context.Context, status *constants.InvoiceStatus, from, to *time.Time) ([]byte, error) {
	start := time.Now()

	// Normalize dates (date-only, UTC)
	var fromDate, toDate *time.Time
	if from != nil {
		f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
		fromDate = &f
	}
	if to != nil {
		t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}
	if fromDate != nil && toDate == nil {
		today := time.Now().UTC()
		t := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
		toDate = &t
	}

	invoices, err := s.invoicesRepo.ListByStatus(ctx, status, fromDate, toDate)
	if err != nil {
		return nil, fmt.Errorf("query invoices: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Invoices"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{
		"Uploaded",
		"File Name",
		"Status",
		"Vendor",
		"Invoice #",
		"Invoice Date",
		"Amount",
		"Discrepancies",
		"Approved By",
	}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, inv := range invoices {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}

		write(1, inv.UploadedAt.Format("2006-01-02"))
		write(2, inv.FileName)
		write(3, string(inv.Status))
		if inv.VendorName != nil {
			write(4, *inv.VendorName)
		}
		if inv.InvoiceNumber != nil {
			write(5, *inv.InvoiceNumber)
		}
		if inv.InvoiceDate != nil {
			write(6, inv.InvoiceDate.Format("2006-01-02"))
		}
		if inv.TotalAmount != nil {
			write(7, *inv.TotalAmount)
		}
		write(8, len(inv.FlaggedDiscrepancies))
		if inv.ApprovedBy != nil {
			write(9, *inv.ApprovedBy)
		}

		row++
	}

	// Widen a few columns
	_ = f.SetColWidth(sheet, "A", "A", 12) // uploaded
	_ = f.SetColWidth(sheet, "B", "B", 36) // file name
	_ = f.SetColWidth(sheet, "C", "C", 18) // status
	_ = f.SetColWidth(sheet, "D", "D", 28) // vendor
	_ = f.SetColWidth(sheet, "E", "F", 14) // number, date
	_ = f.SetColWidth(sheet, "G", "H", 14) // amount, discrepancies
	_ = f.SetColWidth(sheet, "I", "I", 22) // approver

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.xlsx.ok",
		"rows", len(invoices),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

// ExportAuditTrailXLSX returns the full audit trail for one invoice as an
// XLSX workbook, oldest entry first.
func (s *Service) ExportAuditTrailXLSX(ctx context.Context, invoiceID uuid.UUID) ([]byte, error) {
	start := time.Now()

	entries, err := s.auditRepo.ListByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, fmt.Errorf("query audit trail: %w", err)
	}

	f := excelize.NewFile()
	const sheet = "Audit Trail"
	if index, _ := f.GetSheetIndex(sheet); index == -1 {
		if _, err := f.NewSheet(sheet); err != nil {
			return nil, err
		}
	}
	activeIndex, _ := f.GetSheetIndex(sheet)
	f.SetActiveSheet(activeIndex)

	headers := []string{"Timestamp", "Action", "Details"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		_ = f.SetCellValue(sheet, cell, h)
	}

	row := 2
	for _, e := range entries {
		write := func(col int, v any) {
			cell, _ := excelize.CoordinatesToCellName(col, row)
			_ = f.SetCellValue(sheet, cell, v)
		}
		write(1, e.Timestamp.UTC().Format(time.RFC3339))
		write(2, e.Action)
		write(3, truncate(e.Details, 500))
		row++
	}

	_ = f.SetColWidth(sheet, "A", "A", 22)
	_ = f.SetColWidth(sheet, "B", "B", 28)
	_ = f.SetColWidth(sheet, "C", "C", 80)

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx write: %w", err)
	}

	s.logger.Info("export.audit.ok",
		"invoice_id", invoiceID.String(),
		"rows", len(entries),
		"elapsed_ms", time.Since(start).Milliseconds(),
	)
	return buf.Bytes(), nil
}

func truncate(s string, n int) string {
	if n <= 0 || len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
