package server

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	invoicesv1 "github.com/docuflow/invoice-pipeline/gen/invoices/v1"

	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/internal/async"
	"github.com/docuflow/invoice-pipeline/internal/common"
	"github.com/docuflow/invoice-pipeline/internal/entity"
	processor "github.com/docuflow/invoice-pipeline/internal/pipeline"
	"github.com/docuflow/invoice-pipeline/internal/repository"
)

type InvoicesService struct {
	invoicesv1.UnimplementedInvoicesServiceServer
	invoicesRepo repository.InvoiceRepository
	auditRepo    repository.AuditLogRepository
	orchestrator *processor.Orchestrator
	queue        async.Queue
	logger       *slog.Logger
}

func NewInvoicesService(
	invoicesRepo repository.InvoiceRepository,
	auditRepo repository.AuditLogRepository,
	orchestrator *processor.Orchestrator,
	queue async.Queue,
	logger *slog.Logger,
) *InvoicesService {
	if logger == nil {
		logger = slog.Default()
	}
	return &InvoicesService{
		invoicesRepo: invoicesRepo,
		auditRepo:    auditRepo,
		orchestrator: orchestrator,
		queue:        queue,
		logger:       logger,
	}
}

func (s *InvoicesService) CreateInvoice(ctx context.Context, req *invoicesv1.CreateInvoiceRequest) (*invoicesv1.CreateInvoiceResponse, error) {
	fileName := strings.TrimSpace(req.GetFileName())
	sourcePath := strings.TrimSpace(req.GetSourcePath())
	if sourcePath == "" {
		return nil, common.InvalidArgumentError("source_path is required")
	}
	if fileName == "" {
		fileName = sourcePath
	}

	inv, err := s.invoicesRepo.Create(ctx, fileName, sourcePath)
	if err != nil {
		s.logger.Error("create invoice failed", "source_path", sourcePath, "error", err)
		return nil, common.InternalError("create invoice failed")
	}
	if err := s.auditRepo.Append(ctx, inv.ID, "Invoice Received",
		"Invoice registered: "+fileName); err != nil {
		return nil, common.InternalError("audit invoice creation failed")
	}

	queued := false
	if req.GetProcess() && s.queue != nil {
		job := async.Job{InvoiceID: inv.ID, SubmittedAt: time.Now(), TraceID: uuid.NewString()}
		if err := s.queue.Enqueue(ctx, job); err == nil {
			queued = true
		}
	}

	return &invoicesv1.CreateInvoiceResponse{
		Invoice: toProtoInvoice(inv),
		Queued:  queued,
	}, nil
}

func (s *InvoicesService) ProcessInvoice(ctx context.Context, req *invoicesv1.ProcessInvoiceRequest) (*invoicesv1.ProcessInvoiceResponse, error) {
	id, err := parseInvoiceID(req.GetInvoiceId())
	if err != nil {
		return nil, err
	}

	current, err := s.invoicesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("invoice not found")
	}
	// Failed runs may be retried from the top; anything else terminal is
	// settled or waiting on a human.
	if current.Status.Terminal() && current.Status != constants.StatusError {
		return nil, common.FailedPreconditionError(
			"invoice is not processable (status: " + string(current.Status) + ")")
	}

	result, err := s.orchestrator.ProcessInvoice(ctx, id)
	if err != nil {
		// The invoice is parked in Error with its failure audited; report
		// the terminal state rather than masking it behind codes.Internal.
		s.logger.Warn("process invoice failed", "invoice_id", id, "error", err)
		return &invoicesv1.ProcessInvoiceResponse{
			InvoiceId: id.String(),
			Status:    string(constants.StatusError),
		}, nil
	}

	return &invoicesv1.ProcessInvoiceResponse{
		InvoiceId:   result.InvoiceID.String(),
		Status:      string(result.Status),
		Action:      string(result.Action),
		MatchedRule: result.MatchedRule,
	}, nil
}

func (s *InvoicesService) GetInvoice(ctx context.Context, req *invoicesv1.GetInvoiceRequest) (*invoicesv1.GetInvoiceResponse, error) {
	id, err := parseInvoiceID(req.GetInvoiceId())
	if err != nil {
		return nil, err
	}

	inv, err := s.invoicesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("invoice not found")
	}
	return &invoicesv1.GetInvoiceResponse{Invoice: toProtoInvoice(inv)}, nil
}

func (s *InvoicesService) ListInvoices(ctx context.Context, req *invoicesv1.ListInvoicesRequest) (*invoicesv1.ListInvoicesResponse, error) {
	var statusPtr *constants.InvoiceStatus
	if st := strings.TrimSpace(req.GetStatus()); st != "" {
		status := constants.InvoiceStatus(st)
		if !validStatus(status) {
			return nil, common.InvalidArgumentErrorf("unknown status %q", st)
		}
		statusPtr = &status
	}

	fromPtr, err := parseDate(req.GetFromDate(), "from_date")
	if err != nil {
		return nil, err
	}
	toPtr, err := parseDate(req.GetToDate(), "to_date")
	if err != nil {
		return nil, err
	}

	invoices, err := s.invoicesRepo.ListByStatus(ctx, statusPtr, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("list invoices failed", "error", err)
		return nil, common.InternalError("list invoices failed")
	}

	out := make([]*invoicesv1.Invoice, 0, len(invoices))
	for _, inv := range invoices {
		out = append(out, toProtoInvoice(inv))
	}
	return &invoicesv1.ListInvoicesResponse{Invoices: out}, nil
}

func (s *InvoicesService) GetAuditTrail(ctx context.Context, req *invoicesv1.GetAuditTrailRequest) (*invoicesv1.GetAuditTrailResponse, error) {
	id, err := parseInvoiceID(req.GetInvoiceId())
	if err != nil {
		return nil, err
	}

	entries, err := s.auditRepo.ListByInvoice(ctx, id)
	if err != nil {
		s.logger.Error("get audit trail failed", "invoice_id", id, "error", err)
		return nil, common.InternalError("get audit trail failed")
	}

	out := make([]*invoicesv1.AuditLogEntry, 0, len(entries))
	for _, e := range entries {
		out = append(out, &invoicesv1.AuditLogEntry{
			Id:        e.ID.String(),
			InvoiceId: e.InvoiceID.String(),
			Timestamp: e.Timestamp.UTC().Format(time.RFC3339),
			Action:    e.Action,
			Details:   e.Details,
		})
	}
	return &invoicesv1.GetAuditTrailResponse{Entries: out}, nil
}

func (s *InvoicesService) ApproveInvoice(ctx context.Context, req *invoicesv1.ApproveInvoiceRequest) (*invoicesv1.ApproveInvoiceResponse, error) {
	inv, err := s.decide(ctx, req.GetInvoiceId(), req.GetApproverId(), true)
	if err != nil {
		return nil, err
	}
	return &invoicesv1.ApproveInvoiceResponse{Invoice: toProtoInvoice(inv)}, nil
}

func (s *InvoicesService) RejectInvoice(ctx context.Context, req *invoicesv1.RejectInvoiceRequest) (*invoicesv1.RejectInvoiceResponse, error) {
	inv, err := s.decide(ctx, req.GetInvoiceId(), req.GetApproverId(), false)
	if err != nil {
		return nil, err
	}
	return &invoicesv1.RejectInvoiceResponse{Invoice: toProtoInvoice(inv)}, nil
}

// decide handles the shared approve/reject flow: only invoices waiting on
// a human may be decided, and the decision is audited with the approver.
func (s *InvoicesService) decide(ctx context.Context, rawID, approverID string, approve bool) (*entity.Invoice, error) {
	id, err := parseInvoiceID(rawID)
	if err != nil {
		return nil, err
	}
	approverID = strings.TrimSpace(approverID)
	if approverID == "" {
		return nil, common.InvalidArgumentError("approver_id is required")
	}

	current, err := s.invoicesRepo.GetByID(ctx, id)
	if err != nil {
		return nil, common.NotFoundError("invoice not found")
	}
	if current.Status != constants.StatusPendingApproval && current.Status != constants.StatusPendingReview {
		return nil, common.FailedPreconditionError(
			"invoice is not awaiting approval (status: " + string(current.Status) + ")")
	}

	var inv *entity.Invoice
	action, verb := "Invoice Approved", "approved"
	if approve {
		inv, err = s.invoicesRepo.Approve(ctx, id, approverID)
	} else {
		action, verb = "Invoice Rejected", "rejected"
		inv, err = s.invoicesRepo.Reject(ctx, id, approverID)
	}
	if err != nil {
		return nil, common.InternalError("record decision failed")
	}
	if err := s.auditRepo.Append(ctx, id, action,
		"Invoice "+verb+" by "+approverID); err != nil {
		return nil, common.InternalError("audit decision failed")
	}

	s.logger.Info("invoice decision recorded",
		"invoice_id", id, "approver", approverID, "approved", approve)
	return inv, nil
}

func parseInvoiceID(raw string) (uuid.UUID, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, common.InvalidArgumentError("invoice_id is required")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, common.InvalidArgumentError("invoice_id must be a UUID")
	}
	return id, nil
}

func parseDate(raw, field string) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.Parse("2006-01-02", raw)
	if err != nil {
		return nil, common.InvalidArgumentErrorf("%s must be YYYY-MM-DD", field)
	}
	return &t, nil
}

func validStatus(status constants.InvoiceStatus) bool {
	for _, s := range constants.InvoiceStatuses {
		if s == string(status) {
			return true
		}
	}
	return false
}

func toProtoInvoice(inv *entity.Invoice) *invoicesv1.Invoice {
	out := &invoicesv1.Invoice{
		Id:         inv.ID.String(),
		FileName:   inv.FileName,
		SourcePath: inv.SourcePath,
		UploadedAt: inv.UploadedAt.UTC().Format(time.RFC3339),
		Status:     string(inv.Status),
	}
	if inv.VendorName != nil {
		out.VendorName = *inv.VendorName
	}
	if inv.InvoiceNumber != nil {
		out.InvoiceNumber = *inv.InvoiceNumber
	}
	if inv.InvoiceDate != nil {
		out.InvoiceDate = inv.InvoiceDate.Format("2006-01-02")
	}
	if inv.TotalAmount != nil {
		out.TotalAmount = *inv.TotalAmount
		out.HasAmount = true
	}
	for _, d := range inv.FlaggedDiscrepancies {
		out.Discrepancies = append(out.Discrepancies, &invoicesv1.Discrepancy{
			Type:        string(d.Type),
			Severity:    string(d.Severity),
			Description: d.Description,
			Field:       d.Field,
		})
	}
	if inv.ContractID != nil {
		out.ContractId = inv.ContractID.String()
	}
	if inv.ApprovedBy != nil {
		out.ApprovedBy = *inv.ApprovedBy
	}
	if inv.ApprovalTime != nil {
		out.ApprovalTime = inv.ApprovalTime.UTC().Format(time.RFC3339)
	}
	return out
}
