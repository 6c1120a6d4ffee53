// Package perft counts the leaf nodes of the legal move tree, the standard
// way to check a move generator against published figures.
package perft

import (
	"context"
	"sort"
	"time"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/hashing"
	"github.com/lgbarn/chess-rules-go/internal/worker"
)

// MoveCount is the node count below one root move.
type MoveCount struct {
	Move  string `json:"move" yaml:"move"`
	Nodes uint64 `json:"nodes" yaml:"nodes"`
}

// Result is the outcome of a divide run.
type Result struct {
	Depth   int
	Nodes   uint64
	Moves   []MoveCount // Sorted by move text
	Elapsed time.Duration
}

// NodesPerSecond returns the counting speed of the run.
func (r Result) NodesPerSecond() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Nodes) / r.Elapsed.Seconds()
}

// Counter counts perft nodes, optionally splitting the root moves over a
// worker pool and caching subtree counts by Zobrist key.
type Counter struct {
	workers int
	table   *hashing.ThreadSafeTable
}

// Option configures a Counter.
type Option func(*Counter)

// WithWorkers sets the number of goroutines the root moves are split over.
func WithWorkers(n int) Option {
	return func(c *Counter) {
		if n >= 1 {
			c.workers = n
		}
	}
}

// WithCache enables the transposition table. maxEntries of 0 means
// unlimited capacity.
func WithCache(maxEntries int) Option {
	return func(c *Counter) {
		c.table = hashing.NewThreadSafeTable(maxEntries)
	}
}

// NewCounter creates a single-worker counter without a cache unless
// options say otherwise.
func NewCounter(opts ...Option) *Counter {
	c := &Counter{workers: 1}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Perft returns the number of leaf nodes depth plies below pos.
func Perft(pos *engine.Position, depth int) uint64 {
	return NewCounter().Count(pos, depth)
}

// CacheStats returns the table's hit and miss counts, or zeros without a
// cache.
func (c *Counter) CacheStats() (hits, misses int) {
	if c.table == nil {
		return 0, 0
	}
	return c.table.Stats()
}

// Count returns the number of leaf nodes depth plies below pos.
func (c *Counter) Count(pos *engine.Position, depth int) uint64 {
	return c.Divide(pos, depth).Nodes
}

// Divide counts the nodes below every legal root move.
func (c *Counter) Divide(pos *engine.Position, depth int) Result {
	res, _ := c.DivideContext(context.Background(), pos, depth)
	return res
}

// DivideContext is Divide that gives up between root moves once ctx is
// done. The partial result is returned along with ctx.Err().
func (c *Counter) DivideContext(ctx context.Context, pos *engine.Position, depth int) (Result, error) {
	start := time.Now()
	res := Result{Depth: depth}
	if depth <= 0 {
		res.Nodes = 1
		res.Elapsed = time.Since(start)
		return res, nil
	}

	moves := pos.CurrentPlayer().LegalMoves()
	counts := make([]MoveCount, len(moves))
	var err error
	if c.workers > 1 && len(moves) > 1 {
		err = c.divideParallel(ctx, moves, depth, counts)
	} else {
		for i, m := range moves {
			if err = ctx.Err(); err != nil {
				break
			}
			counts[i] = MoveCount{Move: m.String(), Nodes: c.subtree(m, depth-1)}
		}
	}

	done := counts[:0]
	for _, mc := range counts {
		if mc.Move != "" {
			res.Nodes += mc.Nodes
			done = append(done, mc)
		}
	}
	sort.Slice(done, func(i, j int) bool { return done[i].Move < done[j].Move })
	res.Moves = done
	res.Elapsed = time.Since(start)
	return res, err
}

// divideParallel fills counts using the worker pool, one item per root move.
func (c *Counter) divideParallel(ctx context.Context, moves []engine.Move, depth int, counts []MoveCount) error {
	items := make([]worker.WorkItem, len(moves))
	for i, m := range moves {
		items[i] = worker.WorkItem{Move: m, Depth: depth - 1, Index: i}
	}

	pool := worker.NewPool(func(item worker.WorkItem) worker.ProcessResult {
		return worker.ProcessResult{
			Move:  item.Move,
			Index: item.Index,
			Nodes: c.subtree(item.Move, item.Depth),
		}
	}, worker.WithWorkers(c.workers))

	results, err := pool.Run(ctx, items)
	for i, r := range results {
		if r.Move != engine.NullMove {
			counts[i] = MoveCount{Move: r.Move.String(), Nodes: r.Nodes}
		}
	}
	return err
}

// subtree counts the leaves depth plies below the position after m.
func (c *Counter) subtree(m engine.Move, depth int) uint64 {
	return c.count(m.Execute(), depth)
}

func (c *Counter) count(pos *engine.Position, depth int) uint64 {
	if depth == 0 {
		return 1
	}

	var key uint64
	if c.table != nil {
		key = hashing.Key(pos)
		if nodes, ok := c.table.Lookup(key, depth); ok {
			return nodes
		}
	}

	moves := pos.CurrentPlayer().LegalMoves()
	var nodes uint64
	if depth == 1 {
		nodes = uint64(len(moves))
	} else {
		for _, m := range moves {
			nodes += c.count(m.Execute(), depth-1)
		}
	}

	if c.table != nil {
		c.table.Store(key, depth, nodes)
	}
	return nodes
}
