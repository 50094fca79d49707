package export

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/internal/entity"
	"github.com/docuflow/invoice-pipeline/internal/repository"
)

type stubInvoices struct {
	repository.InvoiceRepository
	invoices []*entity.Invoice
	gotFrom  *time.Time
	gotTo    *time.Time
}

func (s *stubInvoices) ListByStatus(ctx context.Context, status *constants.InvoiceStatus, fromDate, toDate *time.Time) ([]*entity.Invoice, error) {
	s.gotFrom, s.gotTo = fromDate, toDate
	return s.invoices, nil
}

type stubAudit struct {
	repository.AuditLogRepository
	entries []*entity.AuditLogEntry
}

func (s *stubAudit) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entity.AuditLogEntry, error) {
	return s.entries, nil
}

func strptr(s string) *string   { return &s }
func f64ptr(v float64) *float64 { return &v }

func TestExportInvoicesXLSX(t *testing.T) {
	uploaded := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	invoices := &stubInvoices{invoices: []*entity.Invoice{
		{
			ID:            uuid.New(),
			FileName:      "inv-001.txt",
			UploadedAt:    uploaded,
			Status:        constants.StatusApproved,
			VendorName:    strptr("Acme Corp"),
			InvoiceNumber: strptr("INV-001"),
			TotalAmount:   f64ptr(512.50),
		},
		{
			ID:         uuid.New(),
			FileName:   "inv-002.txt",
			UploadedAt: uploaded.Add(24 * time.Hour),
			Status:     constants.StatusFlagged,
			FlaggedDiscrepancies: []entity.Discrepancy{
				{Type: constants.DiscrepancyPriceMismatch, Severity: constants.SeverityHigh},
			},
		},
	}}
	svc := NewService(invoices, &stubAudit{}, nil)

	from := time.Date(2026, 3, 1, 15, 30, 0, 0, time.UTC)
	raw, err := svc.ExportInvoicesXLSX(context.Background(), nil, &from, nil)
	if err != nil {
		t.Fatalf("ExportInvoicesXLSX: %v", err)
	}

	// from-only windows close at today, date-normalized.
	if invoices.gotFrom == nil || invoices.gotFrom.Hour() != 0 {
		t.Errorf("from date not normalized: %v", invoices.gotFrom)
	}
	if invoices.gotTo == nil {
		t.Error("to date not defaulted to today")
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Invoices")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[1][3] != "Acme Corp" {
		t.Errorf("vendor cell = %q, want Acme Corp", rows[1][3])
	}
	if rows[2][2] != string(constants.StatusFlagged) {
		t.Errorf("status cell = %q, want Flagged", rows[2][2])
	}
}

func TestExportAuditTrailXLSX(t *testing.T) {
	invoiceID := uuid.New()
	ts := time.Date(2026, 3, 5, 10, 0, 0, 0, time.UTC)
	audit := &stubAudit{entries: []*entity.AuditLogEntry{
		{ID: uuid.New(), InvoiceID: invoiceID, Timestamp: ts, Action: "Processing Started", Details: "Invoice processing workflow initiated"},
		{ID: uuid.New(), InvoiceID: invoiceID, Timestamp: ts.Add(time.Second), Action: "OCR Completed", Details: "OCR processing completed with 182 characters extracted"},
	}}
	svc := NewService(&stubInvoices{}, audit, nil)

	raw, err := svc.ExportAuditTrailXLSX(context.Background(), invoiceID)
	if err != nil {
		t.Fatalf("ExportAuditTrailXLSX: %v", err)
	}

	f, err := excelize.OpenReader(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("open workbook: %v", err)
	}
	defer f.Close()

	rows, err := f.GetRows("Audit Trail")
	if err != nil {
		t.Fatalf("read sheet: %v", err)
	}
	if len(rows) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(rows))
	}
	if rows[1][1] != "Processing Started" {
		t.Errorf("action cell = %q", rows[1][1])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("hello", 10); got != "hello" {
		t.Errorf("truncate short = %q", got)
	}
	if got := truncate("hello world", 5); got != "hell…" {
		t.Errorf("truncate long = %q", got)
	}
}
