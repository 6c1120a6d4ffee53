package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// attacksSquare reports whether any of moves lands on sq.
func attacksSquare(moves []Move, sq chess.Square) bool {
	for _, m := range moves {
		if m.Destination == sq {
			return true
		}
	}
	return false
}

// isSquareAttacked reports whether a piece of side by attacks sq. It looks
// outward from sq rather than generating by's moves, so it also covers
// empty squares that pawns could only capture on.
func isSquareAttacked(pos *Position, sq chess.Square, by chess.Side) bool {
	// Pawns: a pawn of by attacks sq from sq - dir*offset.
	dir := by.Direction()
	for _, offset := range [...]int{7, 9} {
		from := int(sq) - dir*offset
		if !chess.IsValidSquare(from) || isPawnCaptureExcluded(chess.Square(from), by, offset) {
			continue
		}
		if pieceIs(pos, chess.Square(from), by, chess.Pawn) {
			return true
		}
	}

	for _, from := range knightTargets[sq] {
		if pieceIs(pos, from, by, chess.Knight) {
			return true
		}
	}

	for _, from := range kingTargets(sq) {
		if pieceIs(pos, from, by, chess.King) {
			return true
		}
	}

	if rayAttacker(pos, sq, bishopDirections[:], by, chess.Bishop) {
		return true
	}
	return rayAttacker(pos, sq, rookDirections[:], by, chess.Rook)
}

// rayAttacker walks each direction from sq to the first occupied square and
// reports whether it holds a slider of by of type slider or a queen.
func rayAttacker(pos *Position, sq chess.Square, directions []int, by chess.Side, slider chess.PieceType) bool {
	for _, dir := range directions {
		for cur := int(sq); !isKingExcluded(cur, dir); {
			cur += dir
			if !chess.IsValidSquare(cur) {
				break
			}
			p, ok := pos.PieceAt(chess.Square(cur))
			if !ok {
				continue
			}
			if p.Side == by && (p.Type == slider || p.Type == chess.Queen) {
				return true
			}
			break
		}
	}
	return false
}

func pieceIs(pos *Position, sq chess.Square, side chess.Side, t chess.PieceType) bool {
	p, ok := pos.PieceAt(sq)
	return ok && p.Side == side && p.Type == t
}

// IsInCheck reports whether the player's king is attacked.
func (pl *Player) IsInCheck() bool {
	return pl.inCheck
}

// IsSquareAttacked reports whether a piece of side by attacks sq in pos.
func (pos *Position) IsSquareAttacked(sq chess.Square, by chess.Side) bool {
	return isSquareAttacked(pos, sq, by)
}
