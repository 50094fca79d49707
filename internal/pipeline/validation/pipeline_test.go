package validation

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/internal/docstore"
	"github.com/docuflow/invoice-pipeline/internal/entity"
	"github.com/docuflow/invoice-pipeline/internal/llm"
	"github.com/docuflow/invoice-pipeline/internal/repository"
)

type stubInvoices struct {
	repository.InvoiceRepository
	status        constants.InvoiceStatus
	discrepancies []entity.Discrepancy
	contractID    *uuid.UUID
}

func (s *stubInvoices) SetValidation(ctx context.Context, id uuid.UUID, status constants.InvoiceStatus, discrepancies []entity.Discrepancy, contractID *uuid.UUID) error {
	s.status = status
	s.discrepancies = discrepancies
	s.contractID = contractID
	return nil
}

type stubContracts struct {
	updated map[uuid.UUID]json.RawMessage
	err     error
}

func (s *stubContracts) GetByVendor(ctx context.Context, vendorName string) (*entity.Contract, error) {
	return nil, errors.New("not implemented")
}

func (s *stubContracts) UpdateKeyTerms(ctx context.Context, id uuid.UUID, keyTerms json.RawMessage) error {
	if s.err != nil {
		return s.err
	}
	if s.updated == nil {
		s.updated = map[uuid.UUID]json.RawMessage{}
	}
	s.updated[id] = keyTerms
	return nil
}

type stubAudit struct {
	entries []string
}

func (s *stubAudit) Append(ctx context.Context, invoiceID uuid.UUID, action, details string) error {
	s.entries = append(s.entries, action+": "+details)
	return nil
}

func (s *stubAudit) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entity.AuditLogEntry, error) {
	return nil, nil
}

type stubStore struct {
	text string
	err  error
}

func (s *stubStore) Read(ctx context.Context, path string) (string, error) { return s.text, s.err }
func (s *stubStore) Exists(ctx context.Context, path string) bool          { return s.err == nil }
func (s *stubStore) FindByVendor(ctx context.Context, vendorName string) (string, error) {
	return "", nil
}
func (s *stubStore) List(ctx context.Context) ([]docstore.DocumentInfo, error) { return nil, nil }

type stubTerms struct {
	err   error
	calls int
}

func (s *stubTerms) ExtractTerms(ctx context.Context, text string) (llm.ContractTerms, []byte, error) {
	s.calls++
	if s.err != nil {
		return llm.ContractTerms{}, nil, s.err
	}
	terms := llm.ContractTerms{PaymentTerms: "Net 30"}
	raw, _ := json.Marshal(terms)
	return terms, raw, nil
}

type stubCompare struct {
	result llm.ComparisonResult
	err    error
}

func (s *stubCompare) Compare(ctx context.Context, invoiceData, terms json.RawMessage) (llm.ComparisonResult, error) {
	return s.result, s.err
}

func pipelineUnderTest(store *stubStore, terms *stubTerms, compare *stubCompare) (*Pipeline, *stubInvoices, *stubContracts, *stubAudit) {
	invoices := &stubInvoices{}
	contracts := &stubContracts{}
	audit := &stubAudit{}
	p := NewPipeline(invoices, contracts, audit, store, terms, compare, nil)
	return p, invoices, contracts, audit
}

func indexRef(contractID uuid.UUID) entity.ContractRef {
	return entity.ContractRef{
		ContractID: &contractID,
		VendorName: "Acme Corp",
		Path:       "contracts/acme.txt",
		Source:     entity.ContractSourceIndex,
	}
}

func TestRunValidatedOutcome(t *testing.T) {
	contractID := uuid.New()
	p, invoices, contracts, audit := pipelineUnderTest(
		&stubStore{text: "contract text"},
		&stubTerms{},
		&stubCompare{result: llm.ComparisonResult{IsValid: true}},
	)

	result, err := p.Run(context.Background(), uuid.New(), json.RawMessage(`{}`), indexRef(contractID))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Status != constants.StatusValidated {
		t.Errorf("status = %s, want Validated", result.Status)
	}
	if invoices.status != constants.StatusValidated {
		t.Errorf("persisted status = %s, want Validated", invoices.status)
	}
	if invoices.contractID == nil || *invoices.contractID != contractID {
		t.Errorf("persisted contract id = %v, want %s", invoices.contractID, contractID)
	}
	if len(contracts.updated) != 1 {
		t.Errorf("key terms updates = %d, want 1", len(contracts.updated))
	}
	if len(audit.entries) != 2 {
		t.Fatalf("audit entries = %v, want start + completion", audit.entries)
	}
	if !strings.Contains(audit.entries[1], "0 discrepancies") {
		t.Errorf("completion entry = %q, want discrepancy count", audit.entries[1])
	}
}

func TestRunFlaggedOutcome(t *testing.T) {
	p, invoices, _, audit := pipelineUnderTest(
		&stubStore{text: "contract text"},
		&stubTerms{},
		&stubCompare{result: llm.ComparisonResult{
			IsValid: false,
			Discrepancies: []entity.Discrepancy{
				{Type: constants.DiscrepancyPriceMismatch, Severity: constants.SeverityHigh, Description: "rate too high"},
				{Type: constants.DiscrepancyPaymentTerm, Severity: constants.SeverityMedium, Description: "Net 60 vs Net 30"},
			},
		}},
	)

	result, err := p.Run(context.Background(), uuid.New(), json.RawMessage(`{}`), indexRef(uuid.New()))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Status != constants.StatusFlagged {
		t.Errorf("status = %s, want Flagged", result.Status)
	}
	if len(invoices.discrepancies) != 2 {
		t.Errorf("persisted discrepancies = %d, want 2", len(invoices.discrepancies))
	}
	if !strings.Contains(audit.entries[1], "2 discrepancies") {
		t.Errorf("completion entry = %q, want 2 discrepancies", audit.entries[1])
	}
}

func TestRunBinaryDocument(t *testing.T) {
	p, invoices, _, audit := pipelineUnderTest(
		&stubStore{err: fmt.Errorf("%w: contracts/acme.pdf", docstore.ErrBinary)},
		&stubTerms{},
		&stubCompare{},
	)

	_, err := p.Run(context.Background(), uuid.New(), json.RawMessage(`{}`), indexRef(uuid.New()))
	if !errors.Is(err, ErrBinaryDocument) {
		t.Fatalf("err = %v, want ErrBinaryDocument", err)
	}
	// The stage never decides failure status; that belongs to the caller.
	if invoices.status != "" {
		t.Errorf("status written = %s, want none", invoices.status)
	}
	if len(audit.entries) != 1 {
		t.Errorf("audit entries = %v, want only the start entry", audit.entries)
	}
}

func TestRunMissingDocument(t *testing.T) {
	p, _, _, _ := pipelineUnderTest(
		&stubStore{err: fmt.Errorf("%w: contracts/acme.txt", docstore.ErrNotFound)},
		&stubTerms{},
		&stubCompare{},
	)

	_, err := p.Run(context.Background(), uuid.New(), json.RawMessage(`{}`), indexRef(uuid.New()))
	if !errors.Is(err, ErrDocumentMissing) {
		t.Fatalf("err = %v, want ErrDocumentMissing", err)
	}
}

func TestRunTermExtractionFailure(t *testing.T) {
	p, invoices, _, _ := pipelineUnderTest(
		&stubStore{text: "contract text"},
		&stubTerms{err: errors.New("model timeout")},
		&stubCompare{},
	)

	_, err := p.Run(context.Background(), uuid.New(), json.RawMessage(`{}`), indexRef(uuid.New()))
	if !errors.Is(err, ErrTermExtraction) {
		t.Fatalf("err = %v, want ErrTermExtraction", err)
	}
	if !strings.Contains(err.Error(), "model timeout") {
		t.Errorf("err = %v, want underlying cause in message", err)
	}
	if invoices.status != "" {
		t.Errorf("status written = %s, want none", invoices.status)
	}
}

func TestRunKeyTermsRefreshFailureDoesNotAbort(t *testing.T) {
	store := &stubStore{text: "contract text"}
	invoices := &stubInvoices{}
	contracts := &stubContracts{err: errors.New("write conflict")}
	audit := &stubAudit{}
	p := NewPipeline(invoices, contracts, audit, store, &stubTerms{},
		&stubCompare{result: llm.ComparisonResult{IsValid: true}}, nil)

	result, err := p.Run(context.Background(), uuid.New(), json.RawMessage(`{}`), indexRef(uuid.New()))
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if result.Status != constants.StatusValidated {
		t.Errorf("status = %s, want Validated", result.Status)
	}
}

func TestRunStoreSourcedContractSkipsKeyTermsRefresh(t *testing.T) {
	p, invoices, contracts, _ := pipelineUnderTest(
		&stubStore{text: "contract text"},
		&stubTerms{},
		&stubCompare{result: llm.ComparisonResult{IsValid: true}},
	)
	ref := entity.ContractRef{
		VendorName: "Acme Corp",
		Path:       "contracts/acme_corp.txt",
		Source:     entity.ContractSourceDocumentStore,
	}

	_, err := p.Run(context.Background(), uuid.New(), json.RawMessage(`{}`), ref)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if invoices.contractID != nil {
		t.Errorf("contract id = %v, want nil", invoices.contractID)
	}
	if len(contracts.updated) != 0 {
		t.Error("key terms refreshed without an indexed contract")
	}
}
