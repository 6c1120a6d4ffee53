package engine

import (
	"fmt"
	"sort"
	"strings"
	"testing"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// diagram builds a position with FromDiagram, failing the test on error.
func diagram(t testing.TB, side chess.Side, ep string, ranks ...string) *Position {
	t.Helper()
	pos, err := FromDiagram(ranks, side, ep)
	if err != nil {
		t.Fatalf("FromDiagram: %v", err)
	}
	return pos
}

// moveStrings returns the moves in long algebraic form, sorted.
func moveStrings(moves []Move) []string {
	out := make([]string, 0, len(moves))
	for _, m := range moves {
		out = append(out, m.String())
	}
	sort.Strings(out)
	return out
}

func mustFind(t testing.TB, pos *Position, text string) Move {
	t.Helper()
	m, err := pos.FindMove(text)
	if err != nil {
		t.Fatalf("FindMove(%q): %v", text, err)
	}
	return m
}

// play applies each move with MakeMove, failing on any rejection.
func play(t testing.TB, pos *Position, moves ...string) *Position {
	t.Helper()
	for _, text := range moves {
		tr := pos.CurrentPlayer().MakeMove(mustFind(t, pos, text))
		if tr.Status != Done {
			t.Fatalf("MakeMove(%s) = %v, want DONE", text, tr.Status)
		}
		pos = tr.Position
	}
	return pos
}

// toFEN writes pos in Forsyth-Edwards notation for the reference engines.
// Castling rights come from the first-move flags.
func toFEN(pos *Position) string {
	var sb strings.Builder
	for row := 0; row < chess.SquaresPerRank; row++ {
		empty := 0
		for col := 0; col < chess.SquaresPerRank; col++ {
			p, ok := pos.PieceAt(chess.SquareAt(col, row))
			if !ok {
				empty++
				continue
			}
			if empty > 0 {
				fmt.Fprintf(&sb, "%d", empty)
				empty = 0
			}
			sb.WriteByte(p.Letter())
		}
		if empty > 0 {
			fmt.Fprintf(&sb, "%d", empty)
		}
		if row < chess.SquaresPerRank-1 {
			sb.WriteByte('/')
		}
	}

	if pos.SideToMove() == chess.White {
		sb.WriteString(" w ")
	} else {
		sb.WriteString(" b ")
	}

	rights := ""
	for _, r := range castleRules {
		king, kok := pos.PieceAt(r.kingOrigin)
		rook, rok := pos.PieceAt(r.rookOrigin)
		if !kok || !rok || !king.Type.IsKing() || !rook.Type.IsRook() ||
			king.Side != r.side || rook.Side != r.side || !king.FirstMove || !rook.FirstMove {
			continue
		}
		letter := "K"
		if r.kind == QueenSideCastle {
			letter = "Q"
		}
		if r.side == chess.Black {
			letter = strings.ToLower(letter)
		}
		rights += letter
	}
	if rights == "" {
		rights = "-"
	}
	sb.WriteString(rights)

	if ep, ok := pos.EnPassantPawn(); ok {
		behind := chess.Square(int(ep.Square) - ep.Side.Direction()*8)
		sb.WriteString(" " + behind.String())
	} else {
		sb.WriteString(" -")
	}
	sb.WriteString(" 0 1")
	return sb.String()
}

// perftCount counts leaf nodes of the legal move tree.
func perftCount(pos *Position, depth int) int {
	moves := pos.CurrentPlayer().LegalMoves()
	if depth == 1 {
		return len(moves)
	}
	total := 0
	for _, m := range moves {
		total += perftCount(m.Execute(), depth-1)
	}
	return total
}
