package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

func knightMoves(p chess.Piece, pos *Position) []Move {
	targets := knightTargets[p.Square]
	moves := make([]Move, 0, len(targets))
	for _, dest := range targets {
		if m, ok := targetMove(pos, p, dest); ok {
			moves = append(moves, m)
		}
	}
	return moves
}
