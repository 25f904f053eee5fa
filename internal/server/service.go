// Package server exposes the batch pipeline over HTTP: multipart upload of
// order and label PDFs, batch status, and artifact downloads.
package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/okempf/boardbatch/constants"
	"github.com/okempf/boardbatch/internal/common"
	"github.com/okempf/boardbatch/internal/export"
	"github.com/okempf/boardbatch/internal/ingest"
	"github.com/okempf/boardbatch/internal/pipeline"
)

type Server struct {
	logger *slog.Logger
	cfg    *common.Config
	proc   *pipeline.Processor
	store  *batchStore
	queue  *BatchQueue
}

func New(logger *slog.Logger, cfg *common.Config, proc *pipeline.Processor) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Server{
		logger: logger,
		cfg:    cfg,
		proc:   proc,
		store:  newBatchStore(),
	}
	s.queue = NewBatchQueue(s.runJob, logger,
		WithWorkers(cfg.Queue.Workers),
		WithQueueSize(cfg.Queue.Size),
		WithProcessTimeout(cfg.Queue.ProcessTimeout),
	)
	return s
}

// Router builds the gin engine with all routes attached.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.MaxMultipartMemory = s.cfg.Server.MaxUploadBytes
	// MaxMultipartMemory only tunes buffering; the cap itself is enforced
	// by bounding the request body.
	r.Use(func(c *gin.Context) {
		c.Request.Body = http.MaxBytesReader(c.Writer, c.Request.Body, s.cfg.Server.MaxUploadBytes)
		c.Next()
	})

	api := r.Group("/api/v1")
	api.POST("/batches", s.createBatch)
	api.GET("/batches/:id", s.getBatch)
	api.GET("/batches/:id/orders", s.getOrders)
	api.GET("/batches/:id/artifacts/:name", s.getArtifact)
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	return r
}

// Shutdown drains the queue.
func (s *Server) Shutdown(ctx context.Context) {
	s.queue.Shutdown(ctx)
}

// runJob is the queue worker body: process the batch and render artifacts.
func (s *Server) runJob(ctx context.Context, job Job) {
	s.store.setStatus(job.BatchID, constants.BatchStatusRunning, "")
	start := time.Now()

	res, err := s.proc.Run(ctx, job.Orders, job.Labels)
	if err != nil {
		s.logger.Error("batch failed", "batch_id", job.BatchID, "error", err)
		s.store.setStatus(job.BatchID, constants.BatchStatusFailed, err.Error())
		return
	}

	artifacts, err := export.BuildArtifacts(res.Orders, res.Expanded)
	if err != nil {
		s.logger.Error("artifact build failed", "batch_id", job.BatchID, "error", err)
		s.store.setStatus(job.BatchID, constants.BatchStatusFailed, err.Error())
		return
	}

	s.store.setResult(job.BatchID, res, artifacts)
	s.store.setStatus(job.BatchID, constants.BatchStatusDone, "")
	s.logger.Info("batch done",
		"batch_id", job.BatchID,
		"orders", len(res.Orders),
		"expanded", len(res.Expanded),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}

// newBatch registers a batch and either runs it inline or enqueues it.
func (s *Server) newBatch(ctx context.Context, orders, labels []ingest.Upload, async bool) *Batch {
	b := &Batch{
		ID:          uuid.New(),
		Status:      constants.BatchStatusQueued,
		SubmittedAt: time.Now(),
	}
	s.store.put(b)

	job := Job{BatchID: b.ID, Orders: orders, Labels: labels, SubmittedAt: b.SubmittedAt}
	if async {
		// Snapshot before the enqueue: once a worker picks the job up it
		// mutates the stored record.
		snap := *b
		s.queue.Enqueue(ctx, job)
		return &snap
	}
	s.runJob(ctx, job)
	got, _ := s.store.get(b.ID)
	return got
}
