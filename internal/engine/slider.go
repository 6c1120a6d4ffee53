package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// bishopMoves walks the precomputed diagonal rays of the bishop's square.
// The mask only tells where a ray may go; blockers on the live position
// still end it.
func bishopMoves(p chess.Piece, pos *Position) []Move {
	var moves []Move
	rays := bishopRays[p.Square]
	for _, dir := range bishopDirections {
		for cur := int(p.Square) + dir; chess.IsValidSquare(cur) && rays&(1<<uint(cur)) != 0; cur += dir {
			var stop bool
			moves, stop = appendRayTarget(moves, pos, p, chess.Square(cur))
			if stop {
				break
			}
		}
	}
	return moves
}

func rookMoves(p chess.Piece, pos *Position) []Move {
	return slide(nil, pos, p, rookDirections[:])
}

func queenMoves(p chess.Piece, pos *Position) []Move {
	moves := bishopMoves(p, pos)
	return slide(moves, pos, p, rookDirections[:])
}

// slide casts a ray from p along each direction, one step at a time.
func slide(moves []Move, pos *Position, p chess.Piece, directions []int) []Move {
	for _, dir := range directions {
		for cur := int(p.Square); !isKingExcluded(cur, dir); {
			cur += dir
			if !chess.IsValidSquare(cur) {
				break
			}
			var stop bool
			moves, stop = appendRayTarget(moves, pos, p, chess.Square(cur))
			if stop {
				break
			}
		}
	}
	return moves
}

// appendRayTarget adds the move onto sq, if any, and reports whether sq
// blocks the ray.
func appendRayTarget(moves []Move, pos *Position, p chess.Piece, sq chess.Square) ([]Move, bool) {
	m, ok := targetMove(pos, p, sq)
	if ok {
		moves = append(moves, m)
	}
	return moves, m.Kind != Major
}
