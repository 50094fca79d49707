package repository

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/google/uuid"

	"github.com/docuflow/invoice-pipeline/gen/ent"
	"github.com/docuflow/invoice-pipeline/gen/ent/contract"
	"github.com/docuflow/invoice-pipeline/internal/entity"
	"github.com/docuflow/invoice-pipeline/internal/utils"
)

type ContractRepository interface {
	// GetByVendor returns the first contract whose vendor name contains
	// vendorName (case-insensitive). Returns an ent not-found error when
	// nothing matches.
	GetByVendor(ctx context.Context, vendorName string) (*entity.Contract, error)
	// UpdateKeyTerms refreshes the cached key terms (last-extraction-wins).
	UpdateKeyTerms(ctx context.Context, id uuid.UUID, keyTerms json.RawMessage) error
}

type contractRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContractRepository(client *ent.Client, logger *slog.Logger) ContractRepository {
	return &contractRepository{
		client: client,
		logger: logger,
	}
}

func (r *contractRepository) GetByVendor(ctx context.Context, vendorName string) (*entity.Contract, error) {
	row, err := r.client.Contract.Query().
		Where(contract.VendorNameContainsFold(vendorName)).
		Order(contract.ByCreatedAt()).
		First(ctx)
	if err != nil {
		return nil, err
	}
	return utils.ToContract(row), nil
}

func (r *contractRepository) UpdateKeyTerms(ctx context.Context, id uuid.UUID, keyTerms json.RawMessage) error {
	err := r.client.Contract.UpdateOneID(id).
		SetKeyTerms(keyTerms).
		Exec(ctx)
	if err != nil {
		r.logger.Error("failed to update contract key terms", "contract_id", id, "error", err)
	}
	return err
}
