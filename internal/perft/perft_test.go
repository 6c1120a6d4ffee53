package perft

import (
	"context"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestPerftStart(t *testing.T) {
	pos := engine.NewStandardPosition()
	tests := []struct {
		depth int
		want  uint64
	}{
		{0, 1},
		{1, 20},
		{2, 400},
		{3, 8902},
	}

	for _, tt := range tests {
		if got := Perft(pos, tt.depth); got != tt.want {
			t.Errorf("Perft(start, %d) = %d, want %d", tt.depth, got, tt.want)
		}
	}
}

func TestCounterVariantsAgree(t *testing.T) {
	pos := engine.NewStandardPosition()
	want := Perft(pos, 3)

	counters := map[string]*Counter{
		"parallel":       NewCounter(WithWorkers(4)),
		"cached":         NewCounter(WithCache(0)),
		"parallel+cache": NewCounter(WithWorkers(3), WithCache(0)),
		"small cache":    NewCounter(WithCache(16)),
	}

	for name, c := range counters {
		t.Run(name, func(t *testing.T) {
			if got := c.Count(pos, 3); got != want {
				t.Errorf("Count() = %d, want %d", got, want)
			}
		})
	}
}

func TestCacheHits(t *testing.T) {
	c := NewCounter(WithCache(0))
	c.Count(engine.NewStandardPosition(), 4)

	hits, misses := c.CacheStats()
	if hits == 0 {
		t.Error("depth 4 from the start should hit transpositions")
	}
	if misses == 0 {
		t.Error("a fresh cache should miss")
	}

	hits, misses = NewCounter().CacheStats()
	testutil.AssertEqual(t, hits+misses, 0)
}

func TestDivide(t *testing.T) {
	res := NewCounter(WithWorkers(2)).Divide(engine.NewStandardPosition(), 2)

	testutil.AssertEqual(t, res.Depth, 2)
	testutil.AssertEqual(t, res.Nodes, uint64(400))
	testutil.AssertEqual(t, len(res.Moves), 20)
	testutil.AssertEqual(t, res.Moves[0], MoveCount{Move: "a2a3", Nodes: 20})
	testutil.AssertEqual(t, res.Moves[19], MoveCount{Move: "h2h4", Nodes: 20})

	for i := 1; i < len(res.Moves); i++ {
		if res.Moves[i-1].Move >= res.Moves[i].Move {
			t.Fatalf("moves not sorted at %d: %s >= %s", i, res.Moves[i-1].Move, res.Moves[i].Move)
		}
	}
}

func TestSuiteFile(t *testing.T) {
	suite, err := Load("testdata/suite.yaml")
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, suite.Filename(), "testdata/suite.yaml")

	maxDepth := 0
	if testing.Short() {
		maxDepth = 2
	}

	outcomes := suite.Run(context.Background(), NewCounter(WithWorkers(2), WithCache(0)), maxDepth)
	if len(outcomes) == 0 {
		t.Fatal("suite produced no outcomes")
	}
	for _, o := range outcomes {
		if !o.Passed() {
			t.Errorf("%s depth %d: got %d, want %d (err %v)\n%s", o.Case, o.Depth, o.Got, o.Want, o.Err, o.Diff)
		}
	}
}

func TestDivideContextCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, workers := range []int{1, 4} {
		res, err := NewCounter(WithWorkers(workers)).DivideContext(ctx, engine.NewStandardPosition(), 3)
		testutil.AssertErrorIs(t, err, context.Canceled)
		testutil.AssertEqual(t, len(res.Moves), 0, "workers=%d", workers)
		testutil.AssertEqual(t, res.Nodes, uint64(0), "workers=%d", workers)
	}
}

func TestSuiteRunCancelled(t *testing.T) {
	suite, err := Parse([]byte("- name: start\n  depths: {1: 20, 2: 400}\n"))
	testutil.AssertNoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	outcomes := suite.Run(ctx, NewCounter(), 0)
	testutil.AssertEqual(t, len(outcomes), 1)
	testutil.AssertErrorIs(t, outcomes[0].Err, context.Canceled)
	testutil.AssertFalse(t, outcomes[0].Passed())
}

func TestSuiteDivideMismatch(t *testing.T) {
	suite, err := Parse([]byte(`
- name: wrong divide
  divide_depth: 1
  divide:
    e2e4: 1
    e2e5: 1
`))
	testutil.AssertNoError(t, err)

	outcomes := suite.Run(context.Background(), NewCounter(), 0)
	testutil.AssertEqual(t, len(outcomes), 1)
	o := outcomes[0]
	testutil.AssertEqual(t, o.Depth, 1)
	testutil.AssertEqual(t, o.Want, uint64(2))
	testutil.AssertEqual(t, o.Got, uint64(20))
	testutil.AssertTrue(t, o.Diff != "", "divide mismatch should produce a diff")
	testutil.AssertFalse(t, o.Passed())
}

func TestSuiteBadMoves(t *testing.T) {
	suite, err := Parse([]byte(`
- name: bad line
  moves: [e2e4, e2e4]
  depths: {1: 1}
`))
	testutil.AssertNoError(t, err)

	outcomes := suite.Run(context.Background(), NewCounter(), 0)
	testutil.AssertEqual(t, len(outcomes), 1)
	testutil.AssertErrorIs(t, outcomes[0].Err, errors.ErrIllegalMove)

	var me *errors.MoveError
	if !errors.As(outcomes[0].Err, &me) {
		t.Fatalf("error %v is not a MoveError", outcomes[0].Err)
	}
	testutil.AssertEqual(t, me.Ply, 2)
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"not yaml", "- name: [unclosed"},
		{"missing name", "- depths: {1: 20}"},
		{"no expectations", "- name: empty"},
		{"bad side", "- name: x\n  side: green\n  depths: {1: 1}"},
		{"divide without depth", "- name: x\n  divide: {e2e4: 1}"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			testutil.AssertErrorIs(t, err, errors.ErrParseFailure)
		})
	}
}

func TestCaseSideSpellings(t *testing.T) {
	board := []string{"....k...", "........", "........", "........", "........", "........", "........", "....K..."}
	for _, side := range []string{"B", "black", "b"} {
		c := Case{Name: side, Board: board, Side: side, Depths: map[int]uint64{1: 5}}
		pos, err := c.Position()
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, pos.SideToMove(), chess.Black, side)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load("testdata/does-not-exist.yaml")
	if err == nil {
		t.Fatal("Load() of a missing file returned no error")
	}
}

func BenchmarkCounter(b *testing.B) {
	pos := engine.NewStandardPosition()
	b.Run("serial", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			NewCounter().Count(pos, 3)
		}
	})
	b.Run("parallel", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			NewCounter(WithWorkers(4)).Count(pos, 3)
		}
	})
	b.Run("cached", func(b *testing.B) {
		for i := 0; i < b.N; i++ {
			NewCounter(WithCache(0)).Count(pos, 3)
		}
	})
}
