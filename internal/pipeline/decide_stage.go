package processor

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docuflow/invoice-pipeline/constants"
	"github.com/docuflow/invoice-pipeline/internal/repository"
	"github.com/docuflow/invoice-pipeline/internal/rules"
)

// Decider applies the workflow rule set to a validated invoice and moves
// it to its post-decision status.
type Decider struct {
	Rules    repository.WorkflowRuleRepository
	Invoices repository.InvoiceRepository
	Audit    repository.AuditLogRepository
	Log      *slog.Logger
}

func NewDecider(ruleRepo repository.WorkflowRuleRepository, invoices repository.InvoiceRepository, audit repository.AuditLogRepository, log *slog.Logger) *Decider {
	if log == nil {
		log = slog.Default()
	}
	return &Decider{Rules: ruleRepo, Invoices: invoices, Audit: audit, Log: log}
}

// Decide evaluates the active rules against facts, persists the resulting
// status, and audits the decision. A rule-store read failure degrades to
// the built-in defaults; an empty store is honored as-is so the engine
// reports "No workflow rules defined".
func (d *Decider) Decide(ctx context.Context, invoiceID uuid.UUID, facts rules.Facts) (rules.Decision, constants.InvoiceStatus, error) {
	if err := d.Audit.Append(ctx, invoiceID, "Workflow Processing",
		"Evaluating workflow rules for invoice routing"); err != nil {
		return rules.Decision{}, "", fmt.Errorf("audit workflow start: %w", err)
	}

	snapshot, err := d.Rules.ListActive(ctx)
	if err != nil {
		d.Log.Warn("decide.rules_unavailable", "invoice_id", invoiceID, "err", err)
		snapshot = rules.DefaultRules()
	}

	decision := rules.Select(facts, snapshot)
	if decision.Err != nil {
		d.Log.Error("decide.facts_rejected", "invoice_id", invoiceID, "err", decision.Err)
	}

	status := decision.Action.StatusFor()
	if err := d.Invoices.UpdateStatus(ctx, invoiceID, status); err != nil {
		return decision, status, fmt.Errorf("persist decision status: %w", err)
	}

	if err := d.Audit.Append(ctx, invoiceID, auditAction(decision.Action), decision.Reason); err != nil {
		return decision, status, fmt.Errorf("audit decision: %w", err)
	}

	d.Log.Info("decide.ok",
		"invoice_id", invoiceID,
		"action", decision.Action,
		"status", status,
		"matched_rule", decision.MatchedRule,
	)
	return decision, status, nil
}

func auditAction(action constants.WorkflowAction) string {
	switch action {
	case constants.ActionAutoApprove:
		return "Auto-Approved"
	case constants.ActionRequireManagerApproval:
		return "Requires Manager Approval"
	default:
		return "Requires Review"
	}
}
