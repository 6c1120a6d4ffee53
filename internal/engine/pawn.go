package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// pawnMoves generates advances, the double step, diagonal captures and the
// en passant capture. Moves reaching the last rank expand into one move per
// promotion piece.
func pawnMoves(p chess.Piece, pos *Position) []Move {
	var moves []Move
	dir := p.Side.Direction()
	for _, offset := range pawnOffsets {
		target := int(p.Square) + dir*offset
		if !chess.IsValidSquare(target) {
			continue
		}
		dest := chess.Square(target)

		switch offset {
		case 8:
			if !pos.TileAt(dest).IsOccupied() {
				moves = appendPawnMove(moves, newMajorMove(pos, p, dest))
			}
		case 16:
			between := chess.Square(int(p.Square) + dir*8)
			if p.FirstMove && startRank(p.Side)[p.Square] &&
				!pos.TileAt(between).IsOccupied() && !pos.TileAt(dest).IsOccupied() {
				moves = append(moves, newPawnJump(pos, p, dest))
			}
		case 7, 9:
			if isPawnCaptureExcluded(p.Square, p.Side, offset) {
				continue
			}
			if occupant, ok := pos.TileAt(dest).Piece(); ok {
				if occupant.Side != p.Side {
					moves = appendPawnMove(moves, newAttackMove(pos, p, dest, occupant))
				}
				continue
			}
			if victim, ok := pos.EnPassantPawn(); ok && victim.Side != p.Side &&
				int(victim.Square) == target-dir*8 {
				moves = append(moves, newEnPassantMove(pos, p, dest, victim))
			}
		}
	}
	return moves
}

// appendPawnMove appends m, or its four promotions when m lands on the
// mover's last rank.
func appendPawnMove(moves []Move, m Move) []Move {
	if !promotionRank(m.Mover.Side)[m.Destination] {
		return append(moves, m)
	}
	for _, t := range chess.PromotionTypes {
		moves = append(moves, m.withPromotion(t))
	}
	return moves
}
