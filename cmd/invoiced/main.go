package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	"go.uber.org/zap"

	invoicesv1 "github.com/docuflow/invoice-pipeline/gen/invoices/v1"

	"github.com/docuflow/invoice-pipeline/internal/async"
	"github.com/docuflow/invoice-pipeline/internal/common"
	"github.com/docuflow/invoice-pipeline/internal/docstore"
	"github.com/docuflow/invoice-pipeline/internal/export"
	"github.com/docuflow/invoice-pipeline/internal/llm/openai"
	processor "github.com/docuflow/invoice-pipeline/internal/pipeline"
	"github.com/docuflow/invoice-pipeline/internal/pipeline/docextract"
	"github.com/docuflow/invoice-pipeline/internal/pipeline/validation"
	"github.com/docuflow/invoice-pipeline/internal/repository"
	"github.com/docuflow/invoice-pipeline/internal/server"
)

func main() {
	// Logger
	zlog, _ := zap.NewProduction()
	defer zlog.Sync()
	log := zlog.Sugar()

	slogger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(slogger)

	// Config
	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("config: %v", err)
	}

	// Context with signal
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// DB
	entc, pool, err := server.ConnectDB(ctx, cfg.Database.DSN, slogger)
	if err != nil {
		log.Fatalf("opening DB: %v", err)
	}
	defer server.CloseDB(entc, pool, slogger)

	if err := server.PingDB(ctx, pool, slogger, 3*time.Second); err != nil {
		log.Fatalf("DB health failed: %v", err)
	}
	log.Infow("DB health OK")

	// Repositories
	invoicesRepo := repository.NewInvoiceRepository(entc, slogger)
	contractsRepo := repository.NewContractRepository(entc, slogger)
	auditRepo := repository.NewAuditLogRepository(entc, slogger)
	rulesRepo := repository.NewWorkflowRuleRepository(entc, slogger)

	// Document store rooted at the contract directory
	store, err := docstore.NewFSStore(cfg.Documents.ContractDir, slogger)
	if err != nil {
		log.Fatalf("document store: %v", err)
	}

	// LLM collaborators
	llmClient := openai.NewClient(openai.Config{
		APIKey:      cfg.LLM.APIKey,
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, slogger)

	// Pipeline
	orch := processor.NewOrchestrator(
		invoicesRepo,
		auditRepo,
		docextract.NewPipeline(invoicesRepo, auditRepo, store, llmClient, slogger),
		processor.NewResolver(contractsRepo, store, slogger),
		validation.NewPipeline(invoicesRepo, contractsRepo, auditRepo, store, llmClient, llmClient, slogger),
		processor.NewDecider(rulesRepo, invoicesRepo, auditRepo, slogger),
		slogger,
	)

	queue := async.NewPipelineQueue(orch, slogger,
		async.WithWorkers(cfg.Queue.Workers),
		async.WithQueueSize(cfg.Queue.Depth),
	)

	// gRPC server
	grpcServer := grpc.NewServer()
	// Health service
	hs := health.NewServer()
	healthpb.RegisterHealthServer(grpcServer, hs)
	hs.SetServingStatus("", healthpb.HealthCheckResponse_SERVING)
	// Reflection for grpcurl
	reflection.Register(grpcServer)

	// Business services
	invoicesv1.RegisterInvoicesServiceServer(grpcServer,
		server.NewInvoicesService(invoicesRepo, auditRepo, orch, queue, slogger))
	invoicesv1.RegisterExportServiceServer(grpcServer,
		server.NewExportServer(export.NewService(invoicesRepo, auditRepo, slogger), slogger))

	lis, err := net.Listen("tcp", cfg.Server.GRPCAddr)
	if err != nil {
		log.Fatalf("listen: %v", err)
	}
	log.Infof("gRPC serving on %s", cfg.Server.GRPCAddr)

	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			log.Fatalf("grpc serve: %v", err)
		}
	}()

	<-ctx.Done()
	log.Info("shutting down...")
	grpcServer.GracefulStop()

	drainCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	queue.Shutdown(drainCtx)
	cancel()
	fmt.Println("stopped.")
}
