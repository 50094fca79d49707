package server

import (
	"context"
	"log/slog"
	"strings"

	invoicesv1 "github.com/docuflow/invoice-pipeline/gen/invoices/v1"

	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/internal/common"
	"github.com/docuflow/invoice-pipeline/internal/export"
)

type ExportServer struct {
	invoicesv1.UnimplementedExportServiceServer
	svc    *export.Service
	logger *slog.Logger
}

func NewExportServer(svc *export.Service, logger *slog.Logger) *ExportServer {
	if logger == nil {
		logger = slog.Default()
	}
	return &ExportServer{svc: svc, logger: logger}
}

func (s *ExportServer) ExportInvoices(ctx context.Context, req *invoicesv1.ExportInvoicesRequest) (*invoicesv1.ExportInvoicesResponse, error) {
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

	xlsx, err := s.svc.ExportInvoicesXLSX(ctx, statusPtr, fromPtr, toPtr)
	if err != nil {
		s.logger.Error("export.xlsx.failed", "err", err)
		return nil, common.InternalError("export invoices failed")
	}
	return &invoicesv1.ExportInvoicesResponse{Xlsx: xlsx}, nil
}

func (s *ExportServer) ExportAuditTrail(ctx context.Context, req *invoicesv1.ExportAuditTrailRequest) (*invoicesv1.ExportAuditTrailResponse, error) {
	id, err := parseInvoiceID(req.GetInvoiceId())
	if err != nil {
		return nil, err
	}

	xlsx, err := s.svc.ExportAuditTrailXLSX(ctx, id)
	if err != nil {
		s.logger.Error("export.audit.failed", "invoice_id", id, "err", err)
		return nil, common.InternalError("export audit trail failed")
	}
	return &invoicesv1.ExportAuditTrailResponse{Xlsx: xlsx}, nil
}
