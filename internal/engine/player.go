package engine

import (
	"fmt"
	"sync"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Player is one side's view of a Position: its king, its candidate moves
// (pseudo-legal moves plus castles) and whether it is in check. A Player
// is derived once per Position and never changes; the fully legal move
// list is computed on first use.
type Player struct {
	board      *Position
	side       chess.Side
	king       chess.Piece
	candidates []Move
	inCheck    bool

	legalOnce sync.Once
	legal     []Move
}

// newPlayer derives the player for side. own and opponent are the
// pseudo-legal moves of both sides in pos. It panics when side has no king.
func newPlayer(pos *Position, side chess.Side, own, opponent []Move) *Player {
	king := findKing(pos, side)
	pl := &Player{
		board:   pos,
		side:    side,
		king:    king,
		inCheck: attacksSquare(opponent, king.Square),
	}
	pl.candidates = append(own[:len(own):len(own)], castleMoves(pos, king, pl.inCheck)...)
	return pl
}

// findKing returns the king of side.
func findKing(pos *Position, side chess.Side) chess.Piece {
	for _, p := range pos.pieces(side) {
		if p.Type.IsKing() {
			return p
		}
	}
	panic(fmt.Sprintf("engine: no %s king on the board", side))
}

// Side returns the side this player moves.
func (pl *Player) Side() chess.Side {
	return pl.side
}

// King returns the player's king.
func (pl *Player) King() chess.Piece {
	return pl.king
}

// Board returns the position the player belongs to.
func (pl *Player) Board() *Position {
	return pl.board
}

// Opponent returns the other side's player in the same position.
func (pl *Player) Opponent() *Player {
	return pl.board.Player(pl.side.Opposite())
}

// CandidateMoves returns the pseudo-legal moves and castles of the player.
// Some of them may leave the king in check; MakeMove reports those.
func (pl *Player) CandidateMoves() []Move {
	return slices.Clone(pl.candidates)
}

// LegalMoves returns the candidate moves that MakeMove accepts.
func (pl *Player) LegalMoves() []Move {
	pl.legalOnce.Do(func() {
		pl.legal = make([]Move, 0, len(pl.candidates))
		for _, m := range pl.candidates {
			if pl.MakeMove(m).Status == Done {
				pl.legal = append(pl.legal, m)
			}
		}
	})
	return slices.Clone(pl.legal)
}

// HasLegalMoves reports whether at least one candidate move is accepted.
func (pl *Player) HasLegalMoves() bool {
	pl.LegalMoves()
	return len(pl.legal) > 0
}

// IsMoveLegal reports whether m is one of the player's candidate moves.
func (pl *Player) IsMoveLegal(m Move) bool {
	return slices.Contains(pl.candidates, m)
}

// MakeMove executes m. A move that is not a candidate yields IllegalMove
// and a move that leaves the player's king attacked yields LeavesInCheck;
// both return the unchanged position.
func (pl *Player) MakeMove(m Move) MoveTransition {
	if !pl.IsMoveLegal(m) {
		return MoveTransition{Position: pl.board, Move: m, Status: IllegalMove}
	}
	next := m.Execute()
	if next.Player(pl.side).IsInCheck() {
		return MoveTransition{Position: pl.board, Move: m, Status: LeavesInCheck}
	}
	return MoveTransition{Position: next, Move: m, Status: Done}
}
