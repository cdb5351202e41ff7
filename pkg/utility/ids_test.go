package utility

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUtility_GetExecutionID(t *testing.T) {
	id1 := GetExecutionID()
	id2 := GetExecutionID()

	assert.Equal(t, id1, id2)
	assert.EqualValues(t, 7, id1.Version())
}

func TestUtility_ResetExecutionID(t *testing.T) {
	oldID := GetExecutionID()
	newID := ResetExecutionID()

	assert.NotEqual(t, oldID, newID)
	assert.Equal(t, newID, GetExecutionID())
}

func TestUtility_GetExecutionIDConcurrent(t *testing.T) {
	const goroutines = 64

	var wg sync.WaitGroup
	results := make([]ExecutionID, goroutines)

	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()
			results[idx] = GetExecutionID()
		}(i)
	}
	wg.Wait()

	for i, id := range results {
		assert.Equal(t, results[0], id, "goroutine %d", i)
	}
}

func TestUtility_CreateTraceIDUniqueness(t *testing.T) {
	const n = 4000
	seen := make(map[TraceID]struct{}, n)

	for i := 0; i < n; i++ {
		id := CreateTraceID()
		_, dup := seen[id]
		require.False(t, dup, "duplicate trace id %d", id)
		seen[id] = struct{}{}
	}
}

func TestUtility_ParseTraceID(t *testing.T) {
	before := time.Now().Add(-time.Second)
	id := CreateTraceID()

	ts, worker, _ := ParseTraceID(id)
	assert.True(t, ts.After(before))
	assert.Equal(t, workerID, worker)
}

func BenchmarkUtility_CreateTraceID(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_ = CreateTraceID()
	}
}
