package server

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okempf/boardbatch/internal/ingest"
)

// Job is one queued batch: the raw uploads plus the id handed back to the
// client.
type Job struct {
	BatchID     uuid.UUID
	Orders      []ingest.Upload
	Labels      []ingest.Upload
	SubmittedAt time.Time
}

type processFunc func(ctx context.Context, job Job)

// BatchQueue runs queued batches on a fixed worker pool.
type BatchQueue struct {
	proc    processFunc
	logger  *slog.Logger
	workers int
	timeout time.Duration

	ch   chan Job
	wg   sync.WaitGroup
	once sync.Once

	mu     sync.RWMutex
	closed bool
}

type QueueOption func(*BatchQueue)

func WithWorkers(n int) QueueOption {
	return func(q *BatchQueue) {
		if n > 0 {
			q.workers = n
		}
	}
}

func WithQueueSize(n int) QueueOption {
	return func(q *BatchQueue) {
		if n > 0 {
			q.ch = make(chan Job, n)
		}
	}
}

func WithProcessTimeout(d time.Duration) QueueOption {
	return func(q *BatchQueue) {
		if d > 0 {
			q.timeout = d
		}
	}
}

func NewBatchQueue(proc processFunc, logger *slog.Logger, opts ...QueueOption) *BatchQueue {
	q := &BatchQueue{
		proc:    proc,
		logger:  logger,
		workers: 2,
		timeout: 2 * time.Minute,
		ch:      make(chan Job, 64),
	}
	for _, o := range opts {
		o(q)
	}
	q.start()
	return q
}

func (q *BatchQueue) start() {
	q.once.Do(func() {
		for i := 0; i < q.workers; i++ {
			q.wg.Add(1)
			go func(workerID int) {
				defer q.wg.Done()
				q.logger.Info("worker started", "worker_id", workerID)

				for job := range q.ch {
					ctx, cancel := context.WithTimeout(context.Background(), q.timeout)
					q.proc(ctx, job)
					cancel()
				}

				q.logger.Info("worker stopped", "worker_id", workerID)
			}(i + 1)
		}
	})
}

// Enqueue hands a job to the worker pool, blocking when the queue is full.
// The read lock is shared so a blocked send only waits on the workers, not
// on other callers; Shutdown takes the write lock and therefore waits for
// every in-flight send before closing the channel.
func (q *BatchQueue) Enqueue(_ context.Context, job Job) {
	q.mu.RLock()
	defer q.mu.RUnlock()
	if q.closed {
		q.logger.Warn("cannot enqueue: queue is shutting down", "batch_id", job.BatchID)
		return
	}
	select {
	case q.ch <- job:
		q.logger.Info("queued batch", "batch_id", job.BatchID)
	default:
		q.logger.Warn("queue full, applying backpressure", "batch_id", job.BatchID)
		q.ch <- job
	}
}

func (q *BatchQueue) Shutdown(ctx context.Context) {
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
