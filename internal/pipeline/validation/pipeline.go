package validation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"

	"github.com/google/uuid"

	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/internal/docstore"
	"github.com/docuflow/invoice-pipeline/internal/entity"
	"github.com/docuflow/invoice-pipeline/internal/llm"
	"github.com/docuflow/invoice-pipeline/internal/repository"
)

// Typed validation failures. A binary contract document is never treated
// as validated; it is its own terminal outcome.
var (
	ErrDocumentMissing   = errors.New("contract document missing")
	ErrBinaryDocument    = errors.New("binary document requires extraction")
	ErrTermExtraction    = errors.New("contract term extraction failed")
	ErrComparisonFailure = errors.New("invoice comparison failed")
)

// Result is the terminal outcome of a successful validation.
type Result struct {
	Status        constants.InvoiceStatus
	IsValid       bool
	Discrepancies []entity.Discrepancy
	Summary       string
}

type Pipeline struct {
	Invoices  repository.InvoiceRepository
	Contracts repository.ContractRepository
	Audit     repository.AuditLogRepository
	Store     docstore.Store
	Terms     llm.TermExtractor
	Compare   llm.Comparator
	Log       *slog.Logger
}

func NewPipeline(
	invoices repository.InvoiceRepository,
	contracts repository.ContractRepository,
	audit repository.AuditLogRepository,
	store docstore.Store,
	terms llm.TermExtractor,
	compare llm.Comparator,
	log *slog.Logger,
) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{
		Invoices:  invoices,
		Contracts: contracts,
		Audit:     audit,
		Store:     store,
		Terms:     terms,
		Compare:   compare,
		Log:       log,
	}
}

// Run validates extracted invoice data against the referenced contract
// document. It reads the document, extracts key terms (refreshing the
// contract's cached terms when it has identity), runs the comparison, and
// persists the Validated/Flagged outcome with its discrepancies. Failures
// come back as typed errors; the orchestrator owns the failure audit and
// the Error status.
func (p *Pipeline) Run(ctx context.Context, invoiceID uuid.UUID, invoiceData json.RawMessage, ref entity.ContractRef) (Result, error) {
	if err := p.Audit.Append(ctx, invoiceID, "Validation Started",
		fmt.Sprintf("Starting validation against contract: %s", filepath.Base(ref.Path))); err != nil {
		return Result{}, fmt.Errorf("audit validation start: %w", err)
	}

	text, err := p.Store.Read(ctx, ref.Path)
	if err != nil {
		switch {
		case errors.Is(err, docstore.ErrBinary):
			return Result{}, fmt.Errorf("%w: %s", ErrBinaryDocument, ref.Path)
		default:
			return Result{}, fmt.Errorf("%w: %s", ErrDocumentMissing, ref.Path)
		}
	}

	terms, rawTerms, err := p.Terms.ExtractTerms(ctx, text)
	if err != nil {
		// Collaborator errors surface verbatim inside the typed failure.
		return Result{}, fmt.Errorf("%w: %v", ErrTermExtraction, err)
	}

	// Refresh the cached terms when the contract is indexed. Best-effort:
	// a stale cache must not fail the run.
	if ref.ContractID != nil {
		if err := p.Contracts.UpdateKeyTerms(ctx, *ref.ContractID, rawTerms); err != nil {
			p.Log.Warn("validation.key_terms_refresh_failed",
				"invoice_id", invoiceID, "contract_id", *ref.ContractID, "err", err)
		}
	}

	cmp, err := p.Compare.Compare(ctx, invoiceData, rawTerms)
	if err != nil {
		return Result{}, fmt.Errorf("%w: %v", ErrComparisonFailure, err)
	}

	status := constants.StatusFlagged
	if cmp.IsValid {
		status = constants.StatusValidated
	}
	if err := p.Invoices.SetValidation(ctx, invoiceID, status, cmp.Discrepancies, ref.ContractID); err != nil {
		return Result{}, fmt.Errorf("persist validation outcome: %w", err)
	}

	if err := p.Audit.Append(ctx, invoiceID, fmt.Sprintf("Validation %s", status),
		fmt.Sprintf("Validation completed with status: %s. Found %d discrepancies.",
			status, len(cmp.Discrepancies))); err != nil {
		return Result{}, fmt.Errorf("audit validation completion: %w", err)
	}

	p.Log.Info("validation.ok",
		"invoice_id", invoiceID,
		"status", status,
		"is_valid", cmp.IsValid,
		"discrepancies", len(cmp.Discrepancies),
		"payment_terms", terms.PaymentTerms != "",
	)
	return Result{
		Status:        status,
		IsValid:       cmp.IsValid,
		Discrepancies: cmp.Discrepancies,
		Summary:       cmp.Summary,
	}, nil
}
