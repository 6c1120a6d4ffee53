package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// kingMoves returns the one-step king moves. Castling depends on the
// opponent's attacks and is added by the Player.
func kingMoves(p chess.Piece, pos *Position) []Move {
	var moves []Move
	for _, dest := range kingTargets(p.Square) {
		if m, ok := targetMove(pos, p, dest); ok {
			moves = append(moves, m)
		}
	}
	return moves
}
