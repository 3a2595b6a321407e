// Package stats provides synchronized thread-safe counters for
// benchmark runs and the per-shape batches they are made of.
package stats

import (
	"sync/atomic"
	"time"
)

// RunSync accumulates totals over one benchmark run.
type RunSync struct {
	hashedKeys       atomic.Int64
	hashedBytes      atomic.Int64
	batches          atomic.Int64
	highestBatchTime atomic.Int64
	averageBatchTime atomic.Int64
}

func NewRunSync() *RunSync {
	return &RunSync{}
}

// Update records one finished batch of keys hashed per batchTime.
func (s *RunSync) Update(
	keys, bytes int,
	batchTime time.Duration,
) {
	batches := s.batches.Add(1)
	s.hashedKeys.Add(int64(keys))
	s.hashedBytes.Add(int64(bytes))

	// Average batch time
	curAvg := s.averageBatchTime.Load()
	s.averageBatchTime.Add((int64(batchTime) - curAvg) / batches)

	// Highest batch time
	if int64(batchTime) > s.highestBatchTime.Load() {
		s.highestBatchTime.Store(int64(batchTime))
	}
}

func (s *RunSync) GetHashedKeys() int64 {
	return s.hashedKeys.Load()
}

func (s *RunSync) GetHashedBytes() int64 {
	return s.hashedBytes.Load()
}

func (s *RunSync) GetBatches() int64 {
	return s.batches.Load()
}

func (s *RunSync) GetHighestBatchTime() int64 {
	return s.highestBatchTime.Load()
}

func (s *RunSync) GetAverageBatchTime() int64 {
	return s.averageBatchTime.Load()
}

// ShapeSync accumulates counters of a single key shape.
type ShapeSync struct {
	batches          atomic.Int64
	highestBatchTime atomic.Int64
	averageBatchTime atomic.Int64
}

func NewShapeSync() *ShapeSync {
	return &ShapeSync{}
}

func (s *ShapeSync) Update(batchTime time.Duration) {
	batches := s.batches.Add(1)

	// Highest batch time
	if int64(batchTime) > s.highestBatchTime.Load() {
		s.highestBatchTime.Store(int64(batchTime))
	}

	// Average batch time
	curAvg := s.averageBatchTime.Load()
	s.averageBatchTime.Add((int64(batchTime) - curAvg) / batches)
}

func (s *ShapeSync) GetBatches() int64 {
	return s.batches.Load()
}

func (s *ShapeSync) GetHighestBatchTime() int64 {
	return s.highestBatchTime.Load()
}

func (s *ShapeSync) GetAverageBatchTime() int64 {
	return s.averageBatchTime.Load()
}
