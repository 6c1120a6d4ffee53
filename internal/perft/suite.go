package perft

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Case is one suite entry: a position and its expected node counts. The
// position is the standard opening, or a board diagram when Board is set,
// followed by Moves in long algebraic notation.
type Case struct {
	Name      string   `yaml:"name"`
	Board     []string `yaml:"board,omitempty"`
	Side      string   `yaml:"side,omitempty"`
	EnPassant string   `yaml:"en_passant,omitempty"`
	Moves     []string `yaml:"moves,omitempty"`

	// Depths maps a depth to its expected node count.
	Depths map[int]uint64 `yaml:"depths"`

	// Divide optionally lists the expected per-move counts at DivideDepth.
	DivideDepth int               `yaml:"divide_depth,omitempty"`
	Divide      map[string]uint64 `yaml:"divide,omitempty"`
}

// Suite is a list of perft cases loaded from YAML.
type Suite struct {
	Cases    []Case
	filename string
}

// Load reads a suite file.
func Load(filename string) (*Suite, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, errors.Wrapf(err, "reading suite %q", filename)
	}
	suite, err := Parse(b)
	if err != nil {
		var pe *errors.ParseError
		if errors.As(err, &pe) {
			pe.File = filename
		}
		return nil, err
	}
	suite.filename = filename
	return suite, nil
}

// Parse decodes suite YAML and validates every case.
func Parse(data []byte) (*Suite, error) {
	var cases []Case
	if err := yaml.Unmarshal(data, &cases); err != nil {
		return nil, &errors.ParseError{Err: fmt.Errorf("%v: %w", err, errors.ErrParseFailure)}
	}
	for i, c := range cases {
		if c.Name == "" {
			return nil, &errors.ParseError{Err: errors.ErrParseFailure, Line: i + 1, Got: "case without a name"}
		}
		if len(c.Depths) == 0 && len(c.Divide) == 0 {
			return nil, &errors.ParseError{Err: errors.ErrParseFailure, Line: i + 1, Got: fmt.Sprintf("case %q without expectations", c.Name)}
		}
		if len(c.Divide) > 0 && c.DivideDepth < 1 {
			return nil, &errors.ParseError{Err: errors.ErrParseFailure, Line: i + 1, Got: fmt.Sprintf("case %q divide without divide_depth", c.Name)}
		}
		if _, err := game.ParseSide(c.Side); err != nil {
			return nil, &errors.ParseError{Err: err, Line: i + 1}
		}
	}
	return &Suite{Cases: cases}, nil
}

// Filename returns the file the suite was loaded from, if any.
func (s *Suite) Filename() string {
	return s.filename
}

// Position builds the case's position.
func (c Case) Position() (*engine.Position, error) {
	pos := engine.NewStandardPosition()
	if len(c.Board) > 0 {
		side, err := game.ParseSide(c.Side)
		if err != nil {
			return nil, err
		}
		if pos, err = engine.FromDiagram(c.Board, side, c.EnPassant); err != nil {
			return nil, errors.Wrapf(err, "case %q", c.Name)
		}
	}

	for ply, text := range c.Moves {
		m, err := pos.FindMove(text)
		if err != nil {
			return nil, &errors.MoveError{Err: err, GameID: c.Name, Ply: ply + 1, MoveText: text}
		}
		tr := pos.CurrentPlayer().MakeMove(m)
		if tr.Status != engine.Done {
			return nil, &errors.MoveError{Err: errors.ErrLeavesInCheck, GameID: c.Name, Ply: ply + 1, MoveText: text}
		}
		pos = tr.Position
	}
	return pos, nil
}

// Outcome is the result of checking one depth of one case.
type Outcome struct {
	Case  string
	Depth int
	Want  uint64
	Got   uint64
	Diff  string // Divide differences, when the case lists them
	Err   error
}

// Passed reports whether the counts matched.
func (o Outcome) Passed() bool {
	return o.Err == nil && o.Want == o.Got && o.Diff == ""
}

// Run checks every case up to maxDepth (0 = no limit) and returns one
// outcome per checked depth, in suite order and ascending depth. Once ctx
// is done the run ends with an outcome carrying ctx.Err().
func (s *Suite) Run(ctx context.Context, counter *Counter, maxDepth int) []Outcome {
	var outcomes []Outcome
	for _, c := range s.Cases {
		pos, err := c.Position()
		if err != nil {
			outcomes = append(outcomes, Outcome{Case: c.Name, Err: err})
			continue
		}

		want := c.expectations()
		depths := make([]int, 0, len(want))
		for d := range want {
			if maxDepth <= 0 || d <= maxDepth {
				depths = append(depths, d)
			}
		}
		sort.Ints(depths)

		for _, d := range depths {
			res, err := counter.DivideContext(ctx, pos, d)
			if err != nil {
				return append(outcomes, Outcome{Case: c.Name, Depth: d, Want: want[d], Err: err})
			}
			o := Outcome{Case: c.Name, Depth: d, Want: want[d], Got: res.Nodes}
			if d == c.DivideDepth && len(c.Divide) > 0 {
				o.Diff = divideDiff(c.Divide, res.Moves)
			}
			outcomes = append(outcomes, o)
		}
	}
	return outcomes
}

// expectations returns the expected count per depth. A divide listing
// implies the total at its depth when Depths does not give one.
func (c Case) expectations() map[int]uint64 {
	want := make(map[int]uint64, len(c.Depths)+1)
	for d, n := range c.Depths {
		want[d] = n
	}
	if len(c.Divide) > 0 {
		if _, ok := want[c.DivideDepth]; !ok {
			var total uint64
			for _, n := range c.Divide {
				total += n
			}
			want[c.DivideDepth] = total
		}
	}
	return want
}

// divideDiff compares expected per-move counts with a divide result.
func divideDiff(want map[string]uint64, got []MoveCount) string {
	gotMap := make(map[string]uint64, len(got))
	for _, mc := range got {
		gotMap[mc.Move] = mc.Nodes
	}
	return cmp.Diff(want, gotMap)
}
