package server

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okempf/boardbatch/constants"
	"github.com/okempf/boardbatch/internal/pipeline"
)

func TestBatchStorePutGet(t *testing.T) {
	store := newBatchStore()
	b := &Batch{ID: uuid.New(), Status: constants.BatchStatusQueued, SubmittedAt: time.Now()}
	store.put(b)

	got, ok := store.get(b.ID)
	require.True(t, ok)
	assert.Equal(t, b.ID, got.ID)
	assert.Equal(t, constants.BatchStatusQueued, got.Status)

	_, ok = store.get(uuid.New())
	assert.False(t, ok)
}

func TestBatchStoreGetReturnsSnapshot(t *testing.T) {
	store := newBatchStore()
	b := &Batch{ID: uuid.New(), Status: constants.BatchStatusQueued}
	store.put(b)

	snap, ok := store.get(b.ID)
	require.True(t, ok)

	// A later status transition must not show up in the snapshot, and
	// writing to the snapshot must not leak back into the store.
	store.setStatus(b.ID, constants.BatchStatusDone, "")
	assert.Equal(t, constants.BatchStatusQueued, snap.Status)

	snap.Status = constants.BatchStatusFailed
	fresh, _ := store.get(b.ID)
	assert.Equal(t, constants.BatchStatusDone, fresh.Status)
	assert.False(t, fresh.FinishedAt.IsZero())
}

func TestBatchStoreConcurrentReadsDuringTransitions(t *testing.T) {
	store := newBatchStore()
	b := &Batch{ID: uuid.New(), Status: constants.BatchStatusQueued}
	store.put(b)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; i < 500; i++ {
			store.setStatus(b.ID, constants.BatchStatusRunning, "")
			store.setResult(b.ID, &pipeline.Result{}, map[string][]byte{"orders.xlsx": nil})
			store.setStatus(b.ID, constants.BatchStatusDone, "")
		}
	}()

	// Mirrors what the status handler does while a worker runs the batch.
	for i := 0; i < 500; i++ {
		if got, ok := store.get(b.ID); ok {
			_ = got.Status
			_ = got.Error
			if got.Result != nil {
				_ = len(got.Artifacts)
			}
		}
	}
	wg.Wait()

	got, ok := store.get(b.ID)
	require.True(t, ok)
	assert.Equal(t, constants.BatchStatusDone, got.Status)
	require.NotNil(t, got.Result)
	assert.Contains(t, got.Artifacts, "orders.xlsx")
}
