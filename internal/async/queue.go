package async

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/docuflow/invoice-pipeline/internal/common"
	processor "github.com/docuflow/invoice-pipeline/internal/pipeline"
)

// Job is one queued pipeline run.
type Job struct {
	InvoiceID   uuid.UUID
	SubmittedAt time.Time
	TraceID     string
}

type Queue interface {
	Enqueue(ctx context.Context, job Job) error
	Shutdown(ctx context.Context)
}

// PipelineQueue fans queued invoices out to a fixed worker pool. Each
// worker runs the full orchestrated pipeline with its own timeout.
type PipelineQueue struct {
	orch    *processor.Orchestrator
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.Mutex
	closed bool
}

type Option func(*PipelineQueue)

func WithWorkers(n int) Option {
	return func(q *PipelineQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}
func WithQueueSize(n int) Option {
	return func(q *PipelineQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}
func WithProcessTimeout(d time.Duration) Option {
	return func(q *PipelineQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewPipelineQueue(orch *processor.Orchestrator, logger *slog.Logger, opts ...Option) *PipelineQueue {
	if logger == nil {
		logger = slog.Default()
	}
	q := &PipelineQueue{
		orch:    orch,
		logger:  logger,
		workers: 4,
		timeout: 3 * time.Minute,
		ch:      make(chan Job, 256),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *PipelineQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					if job.TraceID != "" {
						ctx = common.WithRunID(ctx, job.TraceID)
					}
					result, err := q.orch.ProcessInvoice(ctx, job.InvoiceID)
					cancel()

					if err != nil {
						q.logger.Error("processing failed",
							"worker_id", workerID, "invoice_id", job.InvoiceID, "error", err)
					} else {
						q.logger.Info("processed invoice",
							"worker_id", workerID, "invoice_id", job.InvoiceID, "status", result.Status)
					}
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

func (q *PipelineQueue) Enqueue(_ context.Context, job Job) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "invoice_id", job.InvoiceID)
		return nil
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued invoice for processing", "invoice_id", job.InvoiceID)
	default:
		q.logger.Warn("queue full, applying backpressure", "invoice_id", job.InvoiceID)
		q.ch <- job
	}
	return nil
}

func (q *PipelineQueue) Shutdown(ctx context.Context) {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	close(q.ch)
	q.mu.Unlock()

	done := make(chan struct{})
	go func() { defer close(done); q.wg.Wait() }()

	select {
	case <-ctx.Done():
		q.logger.Warn("shutdown interrupted by context")
	case <-done:
		q.logger.Info("queue drained, shutdown complete")
	}
}
