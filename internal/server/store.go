package server

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/okempf/boardbatch/constants"
	"github.com/okempf/boardbatch/internal/pipeline"
)

// Batch is one processed (or in-flight) upload batch. Artifacts live in
// memory for the lifetime of the process; nothing persists across runs.
type Batch struct {
	ID          uuid.UUID
	Status      constants.BatchStatus
	Error       string
	SubmittedAt time.Time
	FinishedAt  time.Time
	Result      *pipeline.Result
	Artifacts   map[string][]byte
}

// batchStore is a process-local registry of batches keyed by id.
type batchStore struct {
	mu      sync.RWMutex
	batches map[uuid.UUID]*Batch
}

func newBatchStore() *batchStore {
	return &batchStore{batches: make(map[uuid.UUID]*Batch)}
}

func (s *batchStore) put(b *Batch) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.batches[b.ID] = b
}

// get returns a snapshot of the batch. Workers keep mutating the stored
// record through setStatus/setResult, so the shared pointer must never leave
// the lock; Result and Artifacts are written once before DONE and are safe
// to share.
func (s *batchStore) get(id uuid.UUID) (*Batch, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	b, ok := s.batches[id]
	if !ok {
		return nil, false
	}
	snap := *b
	return &snap, true
}

func (s *batchStore) setStatus(id uuid.UUID, status constants.BatchStatus, errMsg string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.batches[id]; ok {
		b.Status = status
		b.Error = errMsg
		if status == constants.BatchStatusDone || status == constants.BatchStatusFailed {
			b.FinishedAt = time.Now()
		}
	}
}

func (s *batchStore) setResult(id uuid.UUID, res *pipeline.Result, artifacts map[string][]byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if b, ok := s.batches[id]; ok {
		b.Result = res
		b.Artifacts = artifacts
	}
}
