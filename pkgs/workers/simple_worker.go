package workers

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	log "github.com/sirupsen/logrus"
)

// SimpleWorker runs a fixed number of consumers over a list of items.
//
// Type parameters:
// - T: the work item
// - R: the outcome of one item
type SimpleWorker[T any, R any] struct {
	maxWorkers int

	produced atomic.Int64
	consumed atomic.Int64
}

func NewSimpleWorker[T any, R any](maxWorkers int) *SimpleWorker[T, R] {
	if maxWorkers <= 0 {
		maxWorkers = 1
	}
	return &SimpleWorker[T, R]{maxWorkers: maxWorkers}
}

// ConsumerFunc handles one item. It is called concurrently.
type ConsumerFunc[T any, R any] func(ctx context.Context, item T) R

type ProcessResult[R any] struct {
	// Results[i] is the outcome of items[i]; items never handed out because
	// ctx ended keep the zero value and are listed in Skipped.
	Results []R
	Skipped []int
	Error   error
	Stats   ProcessStats
}

type ProcessStats struct {
	Produced int64
	Consumed int64
	Duration time.Duration
}

type job[T any] struct {
	index int
	item  T
}

// Process feeds items to the consumers and waits for all of them
func (sw *SimpleWorker[T, R]) Process(ctx context.Context, items []T, consumer ConsumerFunc[T, R]) ProcessResult[R] {
	startTime := time.Now()
	results := make([]R, len(items))
	workChan := make(chan job[T])

	var skipped []int
	go func() {
		defer close(workChan)
		for i, item := range items {
			select {
			case <-ctx.Done():
				for j := i; j < len(items); j++ {
					skipped = append(skipped, j)
				}
				return
			case workChan <- job[T]{index: i, item: item}:
				sw.produced.Add(1)
			}
		}
	}()

	var wg sync.WaitGroup
	for i := 0; i < sw.maxWorkers; i++ {
		wg.Add(1)
		go func(workerID int) {
			defer wg.Done()

			logger := log.WithField("workerID", workerID)
			logger.Debug("consumer started")

			// each index is written by exactly one consumer
			for j := range workChan {
				results[j.index] = consumer(ctx, j.item)
				sw.consumed.Add(1)
			}

			logger.Debug("consumer finished")
		}(i)
	}
	wg.Wait()

	return ProcessResult[R]{
		Results: results,
		Skipped: skipped,
		Error:   ctx.Err(),
		Stats: ProcessStats{
			Produced: sw.produced.Load(),
			Consumed: sw.consumed.Load(),
			Duration: time.Since(startTime),
		},
	}
}

func (sw *SimpleWorker[T, R]) GetStats() ProcessStats {
	return ProcessStats{
		Produced: sw.produced.Load(),
		Consumed: sw.consumed.Load(),
	}
}
