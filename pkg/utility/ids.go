package utility

import (
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// ExecutionID identifies one backtest run. Every trade and report emitted
// during the run carries the same value.
type ExecutionID = uuid.UUID

// TraceID is a roughly time ordered 64 bit identifier unique within a process.
type TraceID = uint64

const (
	workerBits   = 10
	sequenceBits = 13

	maxSequence = 1<<sequenceBits - 1
	maxWorker   = 1<<workerBits - 1

	timestampShift = workerBits + sequenceBits
	workerShift    = sequenceBits
)

var (
	executionID   ExecutionID
	executionOnce sync.Once
	executionMu   sync.RWMutex

	traceSequence atomic.Uint64
	workerID      = uint64(uuid.New().ID()) & maxWorker
	traceEpoch    = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC).UnixMilli()
)

func GetExecutionID() ExecutionID {
	executionOnce.Do(func() {
		executionMu.Lock()
		executionID = uuid.Must(uuid.NewV7())
		executionMu.Unlock()
	})

	executionMu.RLock()
	defer executionMu.RUnlock()
	return executionID
}

// ResetExecutionID starts a new run. Backtest drivers call it between
// independent simulations that share a process.
func ResetExecutionID() ExecutionID {
	GetExecutionID()

	executionMu.Lock()
	defer executionMu.Unlock()
	executionID = uuid.Must(uuid.NewV7())
	return executionID
}

func CreateTraceID() TraceID {
	seq := traceSequence.Add(1)
	timestamp := uint64(time.Now().UnixMilli() - traceEpoch)

	return (timestamp << timestampShift) | (workerID << workerShift) | (seq & maxSequence)
}

func ParseTraceID(id TraceID) (timestamp time.Time, worker uint64, seq uint64) {
	seq = id & maxSequence
	worker = (id >> workerShift) & maxWorker
	timestamp = time.UnixMilli(traceEpoch + int64(id>>timestampShift))
	return
}
