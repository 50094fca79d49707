package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/google/uuid"

	"github.com/docuflow/invoice-pipeline/gen/ent"
	"github.com/docuflow/invoice-pipeline/internal/common"
	"github.com/docuflow/invoice-pipeline/internal/docstore"
	"github.com/docuflow/invoice-pipeline/internal/llm/openai"
	processor "github.com/docuflow/invoice-pipeline/internal/pipeline"
	"github.com/docuflow/invoice-pipeline/internal/pipeline/docextract"
	"github.com/docuflow/invoice-pipeline/internal/pipeline/validation"
	repo "github.com/docuflow/invoice-pipeline/internal/repository"
)

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	if len(os.Args) != 2 {
		logger.Error("usage", "cmd", "invoicerun <invoice-id-uuid>")
		os.Exit(2)
	}
	invoiceID, err := uuid.Parse(os.Args[1])
	if err != nil {
		logger.Error("invalid invoice id (must be UUID)", "arg", os.Args[1], "error", err)
		os.Exit(2)
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
	defer cancel()

	entc, pool, err := repo.Open(ctx, repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        10,
		MinConns:        1,
		MaxConnLifetime: 30 * time.Minute,
		MaxConnIdleTime: 5 * time.Minute,
		DialTimeout:     3 * time.Second,
	}, logger)
	if err != nil {
		logger.Error("open db", "error", err)
		os.Exit(1)
	}
	defer func(entc *ent.Client) {
		if cerr := entc.Close(); cerr != nil {
			logger.Error("close ent client", "error", cerr)
		}
	}(entc)
	defer pool.Close()

	invoicesRepo := repo.NewInvoiceRepository(entc, logger)
	contractsRepo := repo.NewContractRepository(entc, logger)
	auditRepo := repo.NewAuditLogRepository(entc, logger)
	rulesRepo := repo.NewWorkflowRuleRepository(entc, logger)

	store, err := docstore.NewFSStore(cfg.Documents.ContractDir, logger)
	if err != nil {
		logger.Error("document store", "error", err)
		os.Exit(1)
	}

	llmClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	orch := processor.NewOrchestrator(
		invoicesRepo,
		auditRepo,
		docextract.NewPipeline(invoicesRepo, auditRepo, store, llmClient, logger),
		processor.NewResolver(contractsRepo, store, logger),
		validation.NewPipeline(invoicesRepo, contractsRepo, auditRepo, store, llmClient, llmClient, logger),
		processor.NewDecider(rulesRepo, invoicesRepo, auditRepo, logger),
		logger,
	)

	start := time.Now()
	result, err := orch.ProcessInvoice(ctx, invoiceID)
	dur := time.Since(start)

	if err != nil {
		logger.Error("invoice processing failed",
			"invoice_id", invoiceID, "error", err, "duration_ms", dur.Milliseconds())
		os.Exit(1)
	}

	logger.Info("invoice processing OK",
		"invoice_id", result.InvoiceID,
		"status", result.Status,
		"action", result.Action,
		"matched_rule", result.MatchedRule,
		"duration_ms", dur.Milliseconds(),
	)
}
