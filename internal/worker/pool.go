// Package worker runs perft subtree counts on a fixed set of goroutines.
// Positions are immutable, so workers share them without locking.
package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// ErrStopped is returned by Run when Stop was called before every item was
// counted.
var ErrStopped = errors.New("worker pool stopped")

// WorkItem is one root move whose subtree should be counted.
type WorkItem struct {
	Move  engine.Move
	Depth int // Remaining depth below the move
	Index int // Position of the move in the root list
}

// ProcessResult is the node count of one subtree.
type ProcessResult struct {
	Move  engine.Move
	Index int
	Nodes uint64
}

// ProcessFunc counts the subtree of a work item.
type ProcessFunc func(item WorkItem) ProcessResult

// Pool spreads work items over a number of goroutines.
type Pool struct {
	workers int
	process ProcessFunc
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// NewPool creates a single-worker pool unless options say otherwise.
func NewPool(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{workers: 1, process: process}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run processes items and returns their results indexed like items. Once
// ctx is done the pool stops: items no worker has picked up are skipped and
// Run returns ctx.Err() with the results gathered so far.
func (p *Pool) Run(ctx context.Context, items []WorkItem) ([]ProcessResult, error) {
	queue := make(chan WorkItem, len(items))
	for _, item := range items {
		queue <- item
	}
	close(queue)

	if ctx.Err() != nil {
		p.Stop()
	}
	finished := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			p.Stop()
		case <-finished:
		}
	}()

	results := make([]ProcessResult, len(items))
	var wg sync.WaitGroup
	for i := 0; i < p.workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for item := range queue {
				if p.Stopped() {
					continue
				}
				results[item.Index] = p.process(item)
			}
		}()
	}
	wg.Wait()
	close(finished)

	if err := ctx.Err(); err != nil {
		return results, err
	}
	if p.Stopped() {
		return results, ErrStopped
	}
	return results, nil
}

// Stop makes the workers skip every item they have not started.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}
