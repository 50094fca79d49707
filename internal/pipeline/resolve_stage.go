package processor

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/docuflow/invoice-pipeline/internal/docstore"
	"github.com/docuflow/invoice-pipeline/internal/entity"
	"github.com/docuflow/invoice-pipeline/internal/repository"
)

// ErrContractNotFound reports that neither the contract index nor the
// document store had a reference document for the vendor.
var ErrContractNotFound = errors.New("no contract found")

// Resolver locates the reference contract document for a vendor. The
// indexed contract wins; the document store is the fallback for contracts
// that exist on disk but were never registered.
type Resolver struct {
	Contracts repository.ContractRepository
	Store     docstore.Store
	Log       *slog.Logger
}

func NewResolver(contracts repository.ContractRepository, store docstore.Store, log *slog.Logger) *Resolver {
	if log == nil {
		log = slog.Default()
	}
	return &Resolver{Contracts: contracts, Store: store, Log: log}
}

// Resolve returns a contract reference for vendorName. An index lookup
// error is logged and falls through to the store scan; only the combined
// miss is an error, wrapping ErrContractNotFound with the vendor name.
// A misbehaving collaborator cannot abort the caller: panics degrade to
// the same not-found result.
func (r *Resolver) Resolve(ctx context.Context, vendorName string) (ref entity.ContractRef, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			r.Log.Error("resolve.panic", "vendor", vendorName, "panic", rec)
			ref = entity.ContractRef{}
			err = fmt.Errorf("%w for vendor: %s", ErrContractNotFound, vendorName)
		}
	}()
	return r.resolve(ctx, vendorName)
}

func (r *Resolver) resolve(ctx context.Context, vendorName string) (entity.ContractRef, error) {
	contract, err := r.Contracts.GetByVendor(ctx, vendorName)
	if err == nil {
		if r.Store.Exists(ctx, contract.FilePath) {
			r.Log.Info("resolve.index_hit",
				"vendor", vendorName, "contract_id", contract.ID, "path", contract.FilePath)
			id := contract.ID
			return entity.ContractRef{
				ContractID: &id,
				VendorName: contract.VendorName,
				Path:       contract.FilePath,
				Source:     entity.ContractSourceIndex,
			}, nil
		}
		// Indexed but the file is gone; the store scan may still find a
		// usable document under a different name.
		r.Log.Warn("resolve.index_stale",
			"vendor", vendorName, "contract_id", contract.ID, "path", contract.FilePath)
	} else {
		r.Log.Debug("resolve.index_miss", "vendor", vendorName, "err", err)
	}

	path, err := r.Store.FindByVendor(ctx, vendorName)
	if err != nil {
		r.Log.Warn("resolve.store_scan_failed", "vendor", vendorName, "err", err)
	} else if path != "" {
		r.Log.Info("resolve.store_hit", "vendor", vendorName, "path", path)
		return entity.ContractRef{
			VendorName: vendorName,
			Path:       path,
			Source:     entity.ContractSourceDocumentStore,
		}, nil
	}

	return entity.ContractRef{}, fmt.Errorf("%w for vendor: %s", ErrContractNotFound, vendorName)
}
