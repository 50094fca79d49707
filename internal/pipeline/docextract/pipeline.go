package docextract

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strconv"

	"github.com/google/uuid"

	"github.com/docuflow/invoice-pipeline/internal/docstore"
	"github.com/docuflow/invoice-pipeline/internal/llm"
	"github.com/docuflow/invoice-pipeline/internal/repository"
	"github.com/docuflow/invoice-pipeline/internal/utils"
)

// Terminal extraction failures. ErrNoText and ErrUnparseable are distinct
// outcomes: the first means the document yielded nothing, the second that
// the structured-extraction collaborator returned something unusable.
var (
	ErrNoText      = errors.New("no text extracted from invoice")
	ErrUnparseable = errors.New("failed to parse extracted data")
)

type Pipeline struct {
	Invoices repository.InvoiceRepository
	Audit    repository.AuditLogRepository
	Store    docstore.Store
	Fields   llm.FieldExtractor
	Log      *slog.Logger
}

func NewPipeline(invoices repository.InvoiceRepository, audit repository.AuditLogRepository, store docstore.Store, fields llm.FieldExtractor, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{Invoices: invoices, Audit: audit, Store: store, Fields: fields, Log: log}
}

// Run retrieves the invoice document text, extracts structured fields, and
// persists them (status moves to OCRd). The caller owns failure handling;
// this stage only audits its progress.
func (p *Pipeline) Run(ctx context.Context, invoiceID uuid.UUID, path string) (llm.InvoiceFields, []byte, error) {
	if err := p.Audit.Append(ctx, invoiceID, "OCR Started",
		fmt.Sprintf("Starting OCR processing for file: %s", filepath.Base(path))); err != nil {
		return llm.InvoiceFields{}, nil, fmt.Errorf("audit ocr start: %w", err)
	}

	text, err := p.Store.Read(ctx, path)
	if err != nil {
		p.Log.Error("docextract.read.failed", "invoice_id", invoiceID, "path", path, "err", err)
		return llm.InvoiceFields{}, nil, fmt.Errorf("%w: %v", ErrNoText, err)
	}
	if text == "" {
		return llm.InvoiceFields{}, nil, ErrNoText
	}

	if err := p.Audit.Append(ctx, invoiceID, "OCR Completed",
		fmt.Sprintf("OCR processing completed with %d characters extracted", len(text))); err != nil {
		return llm.InvoiceFields{}, nil, fmt.Errorf("audit ocr completion: %w", err)
	}

	fields, raw, err := p.Fields.ExtractFields(ctx, text)
	if err != nil {
		p.Log.Error("docextract.fields.failed", "invoice_id", invoiceID, "err", err)
		return llm.InvoiceFields{}, raw, fmt.Errorf("%w: %v", ErrUnparseable, err)
	}

	extracted := repository.ExtractedInvoice{
		VendorName:    fields.VendorName,
		InvoiceNumber: fields.InvoiceNumber,
		Raw:           raw,
	}
	if fields.InvoiceDate != "" {
		if d, err := utils.ParseYMD(fields.InvoiceDate); err == nil {
			extracted.InvoiceDate = &d
		}
	}
	if amount, ok := parseAmount(fields.TotalAmount); ok {
		extracted.TotalAmount = &amount
	}
	if err := p.Invoices.SetExtracted(ctx, invoiceID, extracted); err != nil {
		return fields, raw, fmt.Errorf("persist extracted fields: %w", err)
	}

	if err := p.Audit.Append(ctx, invoiceID, "Data Extraction Completed",
		fmt.Sprintf("Extracted vendor: %s, invoice #: %s, amount: %s",
			fields.VendorName, fields.InvoiceNumber, fields.TotalAmount)); err != nil {
		return fields, raw, fmt.Errorf("audit extraction completion: %w", err)
	}

	p.Log.Info("docextract.ok",
		"invoice_id", invoiceID,
		"vendor", fields.VendorName,
		"invoice_number", fields.InvoiceNumber,
		"total", fields.TotalAmount,
		"line_items", len(fields.LineItems),
		"chars", len(text),
	)
	return fields, raw, nil
}

func parseAmount(s string) (float64, bool) {
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
