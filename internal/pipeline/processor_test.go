package processor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/internal/docstore"
	"github.com/docuflow/invoice-pipeline/internal/entity"
	"github.com/docuflow/invoice-pipeline/internal/llm"
	"github.com/docuflow/invoice-pipeline/internal/pipeline/docextract"
	"github.com/docuflow/invoice-pipeline/internal/pipeline/validation"
	"github.com/docuflow/invoice-pipeline/internal/repository"
	"github.com/docuflow/invoice-pipeline/internal/rules"
)

// --- in-memory fakes ---

type fakeInvoiceRepo struct {
	invoices map[uuid.UUID]*entity.Invoice
	statuses []constants.InvoiceStatus
}

func newFakeInvoiceRepo() *fakeInvoiceRepo {
	return &fakeInvoiceRepo{invoices: map[uuid.UUID]*entity.Invoice{}}
}

func (r *fakeInvoiceRepo) add(sourcePath string) uuid.UUID {
	id := uuid.New()
	r.invoices[id] = &entity.Invoice{
		ID:         id,
		FileName:   sourcePath,
		SourcePath: sourcePath,
		Status:     constants.StatusReceived,
	}
	return id
}

func (r *fakeInvoiceRepo) Create(ctx context.Context, fileName, sourcePath string) (*entity.Invoice, error) {
	id := r.add(sourcePath)
	return r.invoices[id], nil
}

func (r *fakeInvoiceRepo) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	inv, ok := r.invoices[id]
	if !ok {
		return nil, fmt.Errorf("invoice %s: not found", id)
	}
	return inv, nil
}

func (r *fakeInvoiceRepo) ListByStatus(ctx context.Context, status *constants.InvoiceStatus, fromDate, toDate *time.Time) ([]*entity.Invoice, error) {
	var out []*entity.Invoice
	for _, inv := range r.invoices {
		if status == nil || inv.Status == *status {
			out = append(out, inv)
		}
	}
	return out, nil
}

func (r *fakeInvoiceRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status constants.InvoiceStatus) error {
	r.invoices[id].Status = status
	r.statuses = append(r.statuses, status)
	return nil
}

func (r *fakeInvoiceRepo) SetExtracted(ctx context.Context, id uuid.UUID, data repository.ExtractedInvoice) error {
	inv := r.invoices[id]
	inv.Status = constants.StatusOCRd
	r.statuses = append(r.statuses, constants.StatusOCRd)
	if data.VendorName != "" {
		inv.VendorName = &data.VendorName
	}
	if data.InvoiceNumber != "" {
		inv.InvoiceNumber = &data.InvoiceNumber
	}
	inv.InvoiceDate = data.InvoiceDate
	inv.TotalAmount = data.TotalAmount
	inv.ExtractedData = data.Raw
	return nil
}

func (r *fakeInvoiceRepo) SetValidation(ctx context.Context, id uuid.UUID, status constants.InvoiceStatus, discrepancies []entity.Discrepancy, contractID *uuid.UUID) error {
	inv := r.invoices[id]
	inv.Status = status
	inv.FlaggedDiscrepancies = discrepancies
	inv.ContractID = contractID
	r.statuses = append(r.statuses, status)
	return nil
}

func (r *fakeInvoiceRepo) Approve(ctx context.Context, id uuid.UUID, approverID string) (*entity.Invoice, error) {
	inv := r.invoices[id]
	inv.Status = constants.StatusApproved
	inv.ApprovedBy = &approverID
	return inv, nil
}

func (r *fakeInvoiceRepo) Reject(ctx context.Context, id uuid.UUID, approverID string) (*entity.Invoice, error) {
	inv := r.invoices[id]
	inv.Status = constants.StatusRejected
	inv.ApprovedBy = &approverID
	return inv, nil
}

type fakeAuditRepo struct {
	entries []*entity.AuditLogEntry
}

func (r *fakeAuditRepo) Append(ctx context.Context, invoiceID uuid.UUID, action, details string) error {
	r.entries = append(r.entries, &entity.AuditLogEntry{
		ID:        uuid.New(),
		InvoiceID: invoiceID,
		Timestamp: time.Now(),
		Action:    action,
		Details:   details,
	})
	return nil
}

func (r *fakeAuditRepo) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*entity.AuditLogEntry, error) {
	var out []*entity.AuditLogEntry
	for _, e := range r.entries {
		if e.InvoiceID == invoiceID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *fakeAuditRepo) countMentioning(substr string) int {
	n := 0
	for _, e := range r.entries {
		if strings.Contains(strings.ToLower(e.Action), strings.ToLower(substr)) ||
			strings.Contains(strings.ToLower(e.Details), strings.ToLower(substr)) {
			n++
		}
	}
	return n
}

type fakeContractRepo struct {
	contracts map[string]*entity.Contract // keyed by vendor name
	keyTerms  map[uuid.UUID]json.RawMessage
}

func newFakeContractRepo() *fakeContractRepo {
	return &fakeContractRepo{
		contracts: map[string]*entity.Contract{},
		keyTerms:  map[uuid.UUID]json.RawMessage{},
	}
}

func (r *fakeContractRepo) GetByVendor(ctx context.Context, vendorName string) (*entity.Contract, error) {
	for name, c := range r.contracts {
		if strings.Contains(strings.ToLower(name), strings.ToLower(vendorName)) {
			return c, nil
		}
	}
	return nil, errors.New("contract not found")
}

func (r *fakeContractRepo) UpdateKeyTerms(ctx context.Context, id uuid.UUID, keyTerms json.RawMessage) error {
	r.keyTerms[id] = keyTerms
	return nil
}

type fakeRuleRepo struct {
	rules []*entity.WorkflowRule
	err   error
}

func (r *fakeRuleRepo) ListActive(ctx context.Context) ([]*entity.WorkflowRule, error) {
	return r.rules, r.err
}

// fakeStore serves documents from a map; paths in binary are rejected the
// way the filesystem store rejects non-text extensions.
type fakeStore struct {
	docs   map[string]string
	binary map[string]bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{docs: map[string]string{}, binary: map[string]bool{}}
}

func (s *fakeStore) Read(ctx context.Context, path string) (string, error) {
	if s.binary[path] {
		return "", fmt.Errorf("%w: %s", docstore.ErrBinary, path)
	}
	text, ok := s.docs[path]
	if !ok {
		return "", fmt.Errorf("%w: %s", docstore.ErrNotFound, path)
	}
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: %s", docstore.ErrEmpty, path)
	}
	return text, nil
}

func (s *fakeStore) Exists(ctx context.Context, path string) bool {
	_, ok := s.docs[path]
	return ok || s.binary[path]
}

func (s *fakeStore) FindByVendor(ctx context.Context, vendorName string) (string, error) {
	for path := range s.docs {
		if strings.Contains(strings.ToLower(path), strings.ToLower(vendorName)) {
			return path, nil
		}
	}
	return "", nil
}

func (s *fakeStore) List(ctx context.Context) ([]docstore.DocumentInfo, error) {
	var out []docstore.DocumentInfo
	for path := range s.docs {
		out = append(out, docstore.DocumentInfo{Name: path, Path: path})
	}
	return out, nil
}

type fakeFieldExtractor struct {
	fields llm.InvoiceFields
	err    error
	calls  int
}

func (f *fakeFieldExtractor) ExtractFields(ctx context.Context, text string) (llm.InvoiceFields, []byte, error) {
	f.calls++
	if f.err != nil {
		return llm.InvoiceFields{}, nil, f.err
	}
	raw, _ := json.Marshal(f.fields)
	return f.fields, raw, nil
}

type fakeTermExtractor struct {
	terms llm.ContractTerms
	err   error
	calls int
}

func (f *fakeTermExtractor) ExtractTerms(ctx context.Context, text string) (llm.ContractTerms, []byte, error) {
	f.calls++
	if f.err != nil {
		return llm.ContractTerms{}, nil, f.err
	}
	raw, _ := json.Marshal(f.terms)
	return f.terms, raw, nil
}

type fakeComparator struct {
	result llm.ComparisonResult
	err    error
	calls  int
}

func (f *fakeComparator) Compare(ctx context.Context, invoiceData, terms json.RawMessage) (llm.ComparisonResult, error) {
	f.calls++
	return f.result, f.err
}

// --- harness ---

type harness struct {
	invoices  *fakeInvoiceRepo
	audit     *fakeAuditRepo
	contracts *fakeContractRepo
	ruleRepo  *fakeRuleRepo
	store     *fakeStore
	fields    *fakeFieldExtractor
	terms     *fakeTermExtractor
	compare   *fakeComparator
	orch      *Orchestrator
}

func newHarness() *harness {
	h := &harness{
		invoices:  newFakeInvoiceRepo(),
		audit:     &fakeAuditRepo{},
		contracts: newFakeContractRepo(),
		ruleRepo:  &fakeRuleRepo{rules: rules.DefaultRules()},
		store:     newFakeStore(),
		fields:    &fakeFieldExtractor{},
		terms:     &fakeTermExtractor{terms: llm.ContractTerms{PaymentTerms: "Net 30"}},
		compare:   &fakeComparator{result: llm.ComparisonResult{IsValid: true}},
	}
	h.orch = NewOrchestrator(
		h.invoices,
		h.audit,
		docextract.NewPipeline(h.invoices, h.audit, h.store, h.fields, nil),
		NewResolver(h.contracts, h.store, nil),
		validation.NewPipeline(h.invoices, h.contracts, h.audit, h.store, h.terms, h.compare, nil),
		NewDecider(h.ruleRepo, h.invoices, h.audit, nil),
		nil,
	)
	return h
}

func (h *harness) seedContract(vendor, path string) uuid.UUID {
	id := uuid.New()
	h.contracts.contracts[vendor] = &entity.Contract{ID: id, VendorName: vendor, FilePath: path}
	h.store.docs[path] = "Contract terms for " + vendor
	h.contracts.keyTerms[id] = nil
	return id
}

// --- tests ---

func TestProcessSmallValidInvoiceAutoApproves(t *testing.T) {
	h := newHarness()
	h.fields.fields = llm.InvoiceFields{VendorName: "Acme Corp", InvoiceNumber: "INV-001", TotalAmount: "500.00"}
	h.store.docs["invoices/inv-001.txt"] = "Invoice from Acme Corp for $500"
	contractID := h.seedContract("Acme Corp", "contracts/acme.txt")
	id := h.invoices.add("invoices/inv-001.txt")

	result, err := h.orch.ProcessInvoice(context.Background(), id)
	if err != nil {
		t.Fatalf("ProcessInvoice: %v", err)
	}
	if result.Status != constants.StatusApproved {
		t.Errorf("status = %s, want Approved", result.Status)
	}
	if result.Action != constants.ActionAutoApprove {
		t.Errorf("action = %s, want AutoApprove", result.Action)
	}

	inv := h.invoices.invoices[id]
	if inv.Status != constants.StatusApproved {
		t.Errorf("persisted status = %s, want Approved", inv.Status)
	}
	if inv.ContractID == nil || *inv.ContractID != contractID {
		t.Errorf("contract id = %v, want %s", inv.ContractID, contractID)
	}
	if got := h.contracts.keyTerms[contractID]; len(got) == 0 {
		t.Error("contract key terms were not refreshed")
	}

	// The run must pass through the full status sequence.
	wantSeq := []constants.InvoiceStatus{
		constants.StatusProcessing,
		constants.StatusOCRd,
		constants.StatusValidated,
		constants.StatusApproved,
	}
	if len(h.invoices.statuses) != len(wantSeq) {
		t.Fatalf("status transitions = %v, want %v", h.invoices.statuses, wantSeq)
	}
	for i, want := range wantSeq {
		if h.invoices.statuses[i] != want {
			t.Errorf("transition %d = %s, want %s", i, h.invoices.statuses[i], want)
		}
	}

	if n := h.audit.countMentioning("Auto-Approved"); n != 1 {
		t.Errorf("auto-approve audit entries = %d, want 1", n)
	}
}

func TestProcessLargeFlaggedInvoiceRequiresManagerApproval(t *testing.T) {
	h := newHarness()
	h.fields.fields = llm.InvoiceFields{VendorName: "Globex", InvoiceNumber: "INV-002", TotalAmount: "1500.00"}
	h.store.docs["invoices/inv-002.txt"] = "Invoice from Globex for $1500"
	h.seedContract("Globex", "contracts/globex.txt")
	h.compare.result = llm.ComparisonResult{
		IsValid: false,
		Discrepancies: []entity.Discrepancy{{
			Type:        constants.DiscrepancyPriceMismatch,
			Severity:    constants.SeverityHigh,
			Description: "unit price exceeds contract rate",
		}},
	}
	id := h.invoices.add("invoices/inv-002.txt")

	result, err := h.orch.ProcessInvoice(context.Background(), id)
	if err != nil {
		t.Fatalf("ProcessInvoice: %v", err)
	}
	if result.Status != constants.StatusPendingApproval {
		t.Errorf("status = %s, want Pending Approval", result.Status)
	}
	if result.Action != constants.ActionRequireManagerApproval {
		t.Errorf("action = %s, want RequireManagerApproval", result.Action)
	}
	if len(h.invoices.invoices[id].FlaggedDiscrepancies) != 1 {
		t.Errorf("discrepancies persisted = %d, want 1", len(h.invoices.invoices[id].FlaggedDiscrepancies))
	}
	if n := h.audit.countMentioning("Validation Flagged"); n != 1 {
		t.Errorf("flagged audit entries = %d, want 1", n)
	}
}

func TestProcessBinaryContractFailsWithSingleAuditEntry(t *testing.T) {
	h := newHarness()
	h.fields.fields = llm.InvoiceFields{VendorName: "Initech", TotalAmount: "200.00"}
	h.store.docs["invoices/inv-003.txt"] = "Invoice from Initech"
	contractID := uuid.New()
	h.contracts.contracts["Initech"] = &entity.Contract{
		ID: contractID, VendorName: "Initech", FilePath: "contracts/initech.pdf",
	}
	h.store.binary["contracts/initech.pdf"] = true
	id := h.invoices.add("invoices/inv-003.txt")

	_, err := h.orch.ProcessInvoice(context.Background(), id)
	if err == nil {
		t.Fatal("ProcessInvoice succeeded, want error")
	}
	if !errors.Is(err, validation.ErrBinaryDocument) {
		t.Errorf("err = %v, want ErrBinaryDocument", err)
	}
	if h.invoices.invoices[id].Status != constants.StatusError {
		t.Errorf("status = %s, want Error", h.invoices.invoices[id].Status)
	}
	if n := h.audit.countMentioning("binary"); n != 1 {
		t.Errorf("audit entries mentioning binary = %d, want exactly 1", n)
	}
	if h.terms.calls != 0 {
		t.Errorf("term extraction ran %d times after unreadable document", h.terms.calls)
	}
	if h.compare.calls != 0 {
		t.Errorf("comparison ran %d times after unreadable document", h.compare.calls)
	}
}

func TestProcessMissingVendorFailsBeforeResolution(t *testing.T) {
	h := newHarness()
	h.fields.fields = llm.InvoiceFields{TotalAmount: "300.00"} // no vendor name
	h.store.docs["invoices/inv-004.txt"] = "Invoice with no vendor header"
	id := h.invoices.add("invoices/inv-004.txt")

	_, err := h.orch.ProcessInvoice(context.Background(), id)
	if !errors.Is(err, ErrMissingVendor) {
		t.Fatalf("err = %v, want ErrMissingVendor", err)
	}
	if h.invoices.invoices[id].Status != constants.StatusError {
		t.Errorf("status = %s, want Error", h.invoices.invoices[id].Status)
	}
	if n := h.audit.countMentioning("vendor name"); n != 1 {
		t.Errorf("audit entries mentioning vendor name = %d, want 1", n)
	}
	if h.terms.calls != 0 || h.compare.calls != 0 {
		t.Error("validation collaborators invoked despite missing vendor")
	}
}

func TestProcessExtractionFailureStopsPipeline(t *testing.T) {
	h := newHarness()
	h.fields.err = errors.New("model returned garbage")
	h.store.docs["invoices/inv-005.txt"] = "Invoice text"
	id := h.invoices.add("invoices/inv-005.txt")

	_, err := h.orch.ProcessInvoice(context.Background(), id)
	if !errors.Is(err, docextract.ErrUnparseable) {
		t.Fatalf("err = %v, want ErrUnparseable", err)
	}
	if h.invoices.invoices[id].Status != constants.StatusError {
		t.Errorf("status = %s, want Error", h.invoices.invoices[id].Status)
	}
	if h.terms.calls != 0 || h.compare.calls != 0 {
		t.Error("later stages ran after extraction failure")
	}
	if n := h.audit.countMentioning("Processing Error"); n != 1 {
		t.Errorf("Processing Error audit entries = %d, want exactly 1", n)
	}
}

func TestProcessContractNotFoundAnywhere(t *testing.T) {
	h := newHarness()
	h.fields.fields = llm.InvoiceFields{VendorName: "Umbrella", TotalAmount: "100.00"}
	h.store.docs["invoices/inv-006.txt"] = "Invoice from Umbrella"
	id := h.invoices.add("invoices/inv-006.txt")

	_, err := h.orch.ProcessInvoice(context.Background(), id)
	if !errors.Is(err, ErrContractNotFound) {
		t.Fatalf("err = %v, want ErrContractNotFound", err)
	}
	if !strings.Contains(err.Error(), "Umbrella") {
		t.Errorf("err = %v, want vendor name in message", err)
	}
	if h.invoices.invoices[id].Status != constants.StatusError {
		t.Errorf("status = %s, want Error", h.invoices.invoices[id].Status)
	}
}

func TestProcessDocumentStoreFallback(t *testing.T) {
	h := newHarness()
	h.fields.fields = llm.InvoiceFields{VendorName: "Stark", TotalAmount: "750.00"}
	h.store.docs["invoices/inv-007.txt"] = "Invoice from Stark"
	// No indexed contract; the document store has one by filename.
	h.store.docs["contracts/stark_industries.txt"] = "Contract terms for Stark"
	id := h.invoices.add("invoices/inv-007.txt")

	result, err := h.orch.ProcessInvoice(context.Background(), id)
	if err != nil {
		t.Fatalf("ProcessInvoice: %v", err)
	}
	if result.Status != constants.StatusApproved {
		t.Errorf("status = %s, want Approved", result.Status)
	}
	// A store-sourced contract has no identity to attach.
	if h.invoices.invoices[id].ContractID != nil {
		t.Errorf("contract id = %v, want nil for document-store contract", h.invoices.invoices[id].ContractID)
	}
	if len(h.contracts.keyTerms) != 0 {
		t.Error("key terms refreshed for a contract with no indexed identity")
	}
}

func TestProcessEmptyRuleStoreUsesSafeDefault(t *testing.T) {
	h := newHarness()
	h.ruleRepo.rules = nil // store is reachable but has no rules
	h.fields.fields = llm.InvoiceFields{VendorName: "Acme Corp", TotalAmount: "500.00"}
	h.store.docs["invoices/inv-008.txt"] = "Invoice from Acme Corp"
	h.seedContract("Acme Corp", "contracts/acme.txt")
	id := h.invoices.add("invoices/inv-008.txt")

	result, err := h.orch.ProcessInvoice(context.Background(), id)
	if err != nil {
		t.Fatalf("ProcessInvoice: %v", err)
	}
	if result.Status != constants.StatusPendingReview {
		t.Errorf("status = %s, want Pending Review", result.Status)
	}
	if n := h.audit.countMentioning("No workflow rules defined"); n != 1 {
		t.Errorf("audit entries with empty-rules reason = %d, want 1", n)
	}
}

func TestProcessRuleStoreErrorFallsBackToDefaults(t *testing.T) {
	h := newHarness()
	h.ruleRepo.rules = nil
	h.ruleRepo.err = errors.New("connection refused")
	h.fields.fields = llm.InvoiceFields{VendorName: "Acme Corp", TotalAmount: "500.00"}
	h.store.docs["invoices/inv-009.txt"] = "Invoice from Acme Corp"
	h.seedContract("Acme Corp", "contracts/acme.txt")
	id := h.invoices.add("invoices/inv-009.txt")

	result, err := h.orch.ProcessInvoice(context.Background(), id)
	if err != nil {
		t.Fatalf("ProcessInvoice: %v", err)
	}
	// Built-in defaults auto-approve a small validated invoice.
	if result.Status != constants.StatusApproved {
		t.Errorf("status = %s, want Approved via default rules", result.Status)
	}
}

func TestResolverPrefersIndexOverStore(t *testing.T) {
	h := newHarness()
	contractID := h.seedContract("Wayne Enterprises", "contracts/wayne.txt")
	h.store.docs["contracts/wayne_enterprises_old.txt"] = "stale copy"

	ref, err := h.orch.Resolver.Resolve(context.Background(), "Wayne Enterprises")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ref.Source != entity.ContractSourceIndex {
		t.Errorf("source = %s, want index", ref.Source)
	}
	if ref.ContractID == nil || *ref.ContractID != contractID {
		t.Errorf("contract id = %v, want %s", ref.ContractID, contractID)
	}
}

type panickingContractRepo struct{}

func (panickingContractRepo) GetByVendor(ctx context.Context, vendorName string) (*entity.Contract, error) {
	panic("index lookup blew up")
}

func (panickingContractRepo) UpdateKeyTerms(ctx context.Context, id uuid.UUID, keyTerms json.RawMessage) error {
	return nil
}

func TestResolverPanicDegradesToNotFound(t *testing.T) {
	r := NewResolver(panickingContractRepo{}, newFakeStore(), nil)

	_, err := r.Resolve(context.Background(), "Acme Corp")
	if !errors.Is(err, ErrContractNotFound) {
		t.Fatalf("err = %v, want ErrContractNotFound", err)
	}
	if !strings.Contains(err.Error(), "Acme Corp") {
		t.Errorf("err = %v, want vendor name in message", err)
	}
}

func TestResolverFallsBackWhenIndexedFileMissing(t *testing.T) {
	h := newHarness()
	// Indexed contract points at a path the store does not have.
	h.contracts.contracts["Cyberdyne"] = &entity.Contract{
		ID: uuid.New(), VendorName: "Cyberdyne", FilePath: "contracts/gone.txt",
	}
	h.store.docs["contracts/cyberdyne.txt"] = "live copy"

	ref, err := h.orch.Resolver.Resolve(context.Background(), "Cyberdyne")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if ref.Source != entity.ContractSourceDocumentStore {
		t.Errorf("source = %s, want document_store", ref.Source)
	}
	if ref.ContractID != nil {
		t.Errorf("contract id = %v, want nil", ref.ContractID)
	}
}
