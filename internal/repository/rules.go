package repository

import (
	"context"
	"log/slog"

	entsql "entgo.io/ent/dialect/sql"

	"github.com/docuflow/invoice-pipeline/gen/ent"
	"github.com/docuflow/invoice-pipeline/gen/ent/workflowrule"
	"github.com/docuflow/invoice-pipeline/internal/entity"
	"github.com/docuflow/invoice-pipeline/internal/utils"
)

// WorkflowRuleRepository serves immutable rule snapshots to the decision
// stage. Rule mutation happens outside the pipeline.
type WorkflowRuleRepository interface {
	// ListActive returns active rules ordered by priority descending,
	// creation order as the stable tiebreak.
	ListActive(ctx context.Context) ([]*entity.WorkflowRule, error)
}

type workflowRuleRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewWorkflowRuleRepository(client *ent.Client, logger *slog.Logger) WorkflowRuleRepository {
	return &workflowRuleRepository{
		client: client,
		logger: logger,
	}
}

func (r *workflowRuleRepository) ListActive(ctx context.Context) ([]*entity.WorkflowRule, error) {
	rows, err := r.client.WorkflowRule.Query().
		Where(workflowrule.IsActive(true)).
		Order(
			workflowrule.ByPriority(entsql.OrderDesc()),
			workflowrule.ByCreatedAt(),
		).
		All(ctx)
	if err != nil {
		r.logger.Error("failed to list workflow rules", "error", err)
		return nil, err
	}

	result := make([]*entity.WorkflowRule, len(rows))
	for i, row := range rows {
		result[i] = utils.ToWorkflowRule(row)
	}
	return result, nil
}
