package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/google/uuid"

	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/internal/common"
	"github.com/docuflow/invoice-pipeline/internal/pipeline/docextract"
	"github.com/docuflow/invoice-pipeline/internal/pipeline/validation"
	"github.com/docuflow/invoice-pipeline/internal/repository"
	"github.com/docuflow/invoice-pipeline/internal/rules"
)

// ErrMissingVendor reports extracted data with no usable vendor name, which
// makes contract resolution impossible.
var ErrMissingVendor = errors.New("vendor name not found in extracted invoice data")

// Result summarizes one completed pipeline run.
type Result struct {
	InvoiceID   uuid.UUID
	Status      constants.InvoiceStatus
	Action      constants.WorkflowAction
	MatchedRule string
	IsValid     bool
}

// Orchestrator drives an invoice through extraction, contract resolution,
// validation, and the workflow decision. Any stage failure parks the
// invoice in Error with a single audit entry naming the stage and reason;
// re-running a failed invoice starts the pipeline from the top.
type Orchestrator struct {
	Invoices  repository.InvoiceRepository
	Audit     repository.AuditLogRepository
	Extract   *docextract.Pipeline
	Resolver  *Resolver
	Validator *validation.Pipeline
	Decider   *Decider
	Log       *slog.Logger
}

func NewOrchestrator(
	invoices repository.InvoiceRepository,
	audit repository.AuditLogRepository,
	extract *docextract.Pipeline,
	resolver *Resolver,
	validator *validation.Pipeline,
	decider *Decider,
	log *slog.Logger,
) *Orchestrator {
	if log == nil {
		log = slog.Default()
	}
	return &Orchestrator{
		Invoices:  invoices,
		Audit:     audit,
		Extract:   extract,
		Resolver:  resolver,
		Validator: validator,
		Decider:   decider,
		Log:       log,
	}
}

// ProcessInvoice runs the full pipeline for one invoice.
func (o *Orchestrator) ProcessInvoice(ctx context.Context, invoiceID uuid.UUID) (result Result, err error) {
	runID := common.RunIDFromContext(ctx)
	if runID == "" {
		runID = uuid.New().String()
		ctx = common.WithRunID(ctx, runID)
	}
	ctx = common.WithInvoiceID(ctx, invoiceID.String())

	defer func() {
		if r := recover(); r != nil {
			o.Log.Error("processor.panic", "invoice_id", invoiceID, "panic", r)
			// Best-effort: the invoice must not stay stuck in Processing.
			_ = o.Invoices.UpdateStatus(ctx, invoiceID, constants.StatusError)
			_ = o.Audit.Append(ctx, invoiceID, "Processing Error",
				"Processing aborted by an internal error")
			result = Result{InvoiceID: invoiceID, Status: constants.StatusError}
			err = fmt.Errorf("invoice processing aborted: %v", r)
		}
	}()

	invoice, err := o.Invoices.GetByID(ctx, invoiceID)
	if err != nil {
		return Result{}, fmt.Errorf("load invoice %s: %w", invoiceID, err)
	}

	if err := o.Invoices.UpdateStatus(ctx, invoiceID, constants.StatusProcessing); err != nil {
		return Result{}, fmt.Errorf("mark invoice processing: %w", err)
	}
	if err := o.Audit.Append(ctx, invoiceID, "Processing Started",
		"Invoice processing workflow initiated"); err != nil {
		return Result{}, err
	}

	fields, raw, err := o.Extract.Run(ctx, invoiceID, invoice.SourcePath)
	if err != nil {
		return o.fail(ctx, invoiceID, "extraction", err)
	}

	if fields.VendorName == "" {
		return o.fail(ctx, invoiceID, "contract resolution", ErrMissingVendor)
	}

	ref, err := o.Resolver.Resolve(ctx, fields.VendorName)
	if err != nil {
		return o.fail(ctx, invoiceID, "contract resolution", err)
	}

	validated, err := o.Validator.Run(ctx, invoiceID, raw, ref)
	if err != nil {
		return o.fail(ctx, invoiceID, "validation", err)
	}

	amount := 0.0
	if v, err := strconv.ParseFloat(fields.TotalAmount, 64); err == nil {
		amount = v
	}
	facts := rules.Facts{
		Status:           string(validated.Status),
		Amount:           amount,
		DiscrepancyCount: len(validated.Discrepancies),
		VendorName:       fields.VendorName,
	}

	decision, status, err := o.Decider.Decide(ctx, invoiceID, facts)
	if err != nil {
		return o.fail(ctx, invoiceID, "workflow decision", err)
	}

	o.Log.Info("processor.ok",
		"run_id", runID,
		"invoice_id", invoiceID,
		"status", status,
		"action", decision.Action,
		"contract_source", ref.Source,
	)
	return Result{
		InvoiceID:   invoiceID,
		Status:      status,
		Action:      decision.Action,
		MatchedRule: decision.MatchedRule,
		IsValid:     validated.IsValid,
	}, nil
}

// fail parks the invoice in Error and writes the single failure audit
// entry for this run.
func (o *Orchestrator) fail(ctx context.Context, invoiceID uuid.UUID, stage string, cause error) (Result, error) {
	o.Log.Error("processor.stage_failed", "invoice_id", invoiceID, "stage", stage, "err", cause)

	if err := o.Invoices.UpdateStatus(ctx, invoiceID, constants.StatusError); err != nil {
		o.Log.Error("processor.error_status_failed", "invoice_id", invoiceID, "err", err)
	}
	if err := o.Audit.Append(ctx, invoiceID, "Processing Error",
		fmt.Sprintf("Processing failed during %s: %v", stage, cause)); err != nil {
		o.Log.Error("processor.error_audit_failed", "invoice_id", invoiceID, "err", err)
	}

	return Result{InvoiceID: invoiceID, Status: constants.StatusError},
		fmt.Errorf("%s: %w", stage, cause)
}
