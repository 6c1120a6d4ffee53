package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// generator produces the pseudo-legal moves of a single piece. Generators
// are pure functions of the piece and the position it stands in.
type generator func(p chess.Piece, pos *Position) []Move

// generators maps each piece type to its move rule.
var generators = [...]generator{
	chess.Pawn:   pawnMoves,
	chess.Knight: knightMoves,
	chess.Bishop: bishopMoves,
	chess.Rook:   rookMoves,
	chess.Queen:  queenMoves,
	chess.King:   kingMoves,
}

// pseudoLegalMoves returns the moves of every active piece of side, in
// square order. The result ignores castling and king safety.
func pseudoLegalMoves(pos *Position, side chess.Side) []Move {
	var moves []Move
	for _, p := range pos.pieces(side) {
		moves = append(moves, generators[p.Type](p, pos)...)
	}
	return moves
}

// targetMove builds the move of p onto dest. It reports false when a
// friendly piece stands on dest.
func targetMove(pos *Position, p chess.Piece, dest chess.Square) (Move, bool) {
	occupant, occupied := pos.TileAt(dest).Piece()
	if !occupied {
		return newMajorMove(pos, p, dest), true
	}
	if occupant.Side != p.Side {
		return newAttackMove(pos, p, dest, occupant), true
	}
	return Move{}, false
}
