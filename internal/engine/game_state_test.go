package engine

import (
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/testutil"
)

func TestCheckmate(t *testing.T) {
	pos := play(t, NewStandardPosition(), "f2f3", "e7e5", "g2g4", "d8h4")
	white := pos.Player(chess.White)

	testutil.AssertTrue(t, white.IsInCheck(), "IsInCheck()")
	testutil.AssertTrue(t, white.IsInCheckmate(), "IsInCheckmate()")
	testutil.AssertFalse(t, white.IsInStalemate(), "IsInStalemate()")
	testutil.AssertEqual(t, len(white.LegalMoves()), 0)
	testutil.AssertTrue(t, pos.IsGameOver(), "IsGameOver()")

	// Candidate moves remain, they just all leave the king attacked.
	if len(white.CandidateMoves()) == 0 {
		t.Error("checkmated side should still have candidate moves")
	}
	for _, m := range white.CandidateMoves() {
		if got := white.MakeMove(m).Status; got != LeavesInCheck {
			t.Errorf("MakeMove(%v) = %v, want LEAVES_IN_CHECK", m, got)
		}
	}
}

func TestBackRankMate(t *testing.T) {
	pos := diagram(t, chess.Black, "",
		"R.....k.",
		".....ppp",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....K...")
	black := pos.CurrentPlayer()

	testutil.AssertTrue(t, black.IsInCheckmate(), "IsInCheckmate()")
	testutil.AssertFalse(t, black.IsInStalemate(), "IsInStalemate()")
}

func TestStalemate(t *testing.T) {
	pos := diagram(t, chess.Black, "",
		"k.......",
		"........",
		".Q......",
		"........",
		"........",
		"........",
		"........",
		"....K...")
	black := pos.CurrentPlayer()

	testutil.AssertFalse(t, black.IsInCheck(), "IsInCheck()")
	testutil.AssertTrue(t, black.IsInStalemate(), "IsInStalemate()")
	testutil.AssertFalse(t, black.IsInCheckmate(), "IsInCheckmate()")
	testutil.AssertTrue(t, pos.IsGameOver(), "IsGameOver()")
}

func TestNotGameOver(t *testing.T) {
	pos := play(t, NewStandardPosition(), "e2e4", "f7f6", "d1h5")
	black := pos.CurrentPlayer()

	testutil.AssertTrue(t, black.IsInCheck(), "IsInCheck()")
	testutil.AssertFalse(t, black.IsInCheckmate(), "g7g6 blocks the check")
	testutil.AssertFalse(t, pos.IsGameOver(), "IsGameOver()")
	testutil.AssertSameElements(t, moveStrings(black.LegalMoves()), []string{"g7g6"})
}

func TestPinnedPieceLeavesInCheck(t *testing.T) {
	pos := diagram(t, chess.White, "",
		"k...r...",
		"........",
		"........",
		"........",
		"........",
		"........",
		"....B...",
		"....K...")
	white := pos.CurrentPlayer()

	m := mustFind(t, pos, "e2d3")
	testutil.AssertTrue(t, white.IsMoveLegal(m), "pinned bishop move is a candidate")

	tr := white.MakeMove(m)
	testutil.AssertEqual(t, tr.Status, LeavesInCheck)
	if tr.Position != pos {
		t.Error("LeavesInCheck should return the original position")
	}
	if got, _ := pos.PieceAt(52); got.Type != chess.Bishop {
		t.Error("rejected move changed the position")
	}

	for _, legal := range white.LegalMoves() {
		if legal.Mover.Type == chess.Bishop {
			t.Errorf("pinned bishop move %v reported legal", legal)
		}
	}
}

func TestMakeMoveIllegal(t *testing.T) {
	pos := NewStandardPosition()
	white := pos.Player(chess.White)

	tests := []struct {
		name string
		move Move
	}{
		{"black move", pos.LegalMoves(chess.Black)[0]},
		{"null move", NullMove},
		{"move from another position", mustFind(t, NewStandardPosition(), "e2e4")},
		{"made up move", newMajorMove(pos, chess.NewPiece(chess.Queen, 59, chess.White), 27)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tr := white.MakeMove(tt.move)
			testutil.AssertEqual(t, tr.Status, IllegalMove)
			if tr.Position != pos {
				t.Error("IllegalMove should return the original position")
			}
			testutil.AssertFalse(t, white.IsMoveLegal(tt.move))
		})
	}
}

func TestMoveStatusString(t *testing.T) {
	testutil.AssertEqual(t, Done.String(), "DONE")
	testutil.AssertEqual(t, IllegalMove.String(), "ILLEGAL_MOVE")
	testutil.AssertEqual(t, LeavesInCheck.String(), "LEAVES_IN_CHECK")
	testutil.AssertTrue(t, Done.IsDone())
	testutil.AssertFalse(t, LeavesInCheck.IsDone())
}

func TestExecuteNullMovePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("executing the null move did not panic")
		}
	}()
	NullMove.Execute()
}

func TestPlayerAccessors(t *testing.T) {
	pos := NewStandardPosition()
	white := pos.CurrentPlayer()

	testutil.AssertEqual(t, white.Side(), chess.White)
	testutil.AssertEqual(t, white.King(), chess.NewPiece(chess.King, 60, chess.White))
	testutil.AssertEqual(t, white.Opponent().Side(), chess.Black)
	if white.Board() != pos {
		t.Error("Board() should return the owning position")
	}
	testutil.AssertEqual(t, len(white.CandidateMoves()), 20)
}

func TestIsSquareAttacked(t *testing.T) {
	pos := NewStandardPosition()

	tests := []struct {
		square string
		by     chess.Side
		want   bool
	}{
		{"e3", chess.White, true},
		{"f3", chess.White, true},
		{"e4", chess.White, false},
		{"a6", chess.Black, true},
		{"d6", chess.Black, true},
		{"e5", chess.Black, false},
		{"e1", chess.Black, false},
		{"d2", chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.square, func(t *testing.T) {
			sq := squares(t, tt.square)[0]
			if got := pos.IsSquareAttacked(sq, tt.by); got != tt.want {
				t.Errorf("IsSquareAttacked(%s, %v) = %v, want %v", tt.square, tt.by, got, tt.want)
			}
		})
	}
}
