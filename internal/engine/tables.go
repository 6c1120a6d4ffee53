package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Offsets on the linear 0-63 board. Negative offsets move towards rank 8.
var (
	knightOffsets    = [...]int{-17, -15, -10, -6, 6, 10, 15, 17}
	kingOffsets      = [...]int{-9, -8, -7, -1, 1, 7, 8, 9}
	bishopDirections = [...]int{-9, -7, 7, 9}
	rookDirections   = [...]int{-8, -1, 1, 8}
)

// pawnOffsets are scaled by Side.Direction(): single step, double step and
// the two diagonal captures.
var pawnOffsets = [...]int{8, 16, 7, 9}

// Occupancy-independent move tables, filled once at package init.
var (
	knightTargets [chess.NumSquares][]chess.Square
	bishopRays    [chess.NumSquares]uint64
)

func init() {
	for sq := 0; sq < chess.NumSquares; sq++ {
		knightTargets[sq] = computeKnightTargets(sq)
		bishopRays[sq] = computeBishopRays(sq)
	}
}

func computeKnightTargets(sq int) []chess.Square {
	targets := make([]chess.Square, 0, len(knightOffsets))
	for _, offset := range knightOffsets {
		candidate := sq + offset
		if !chess.IsValidSquare(candidate) || isKnightExcluded(sq, offset) {
			continue
		}
		targets = append(targets, chess.Square(candidate))
	}
	return targets
}

// isKnightExcluded reports whether offset would wrap around a board edge
// when applied from sq.
func isKnightExcluded(sq, offset int) bool {
	switch {
	case chess.FirstColumn[sq] && (offset == -17 || offset == -10 || offset == 6 || offset == 15):
		return true
	case chess.SecondColumn[sq] && (offset == -10 || offset == 6):
		return true
	case chess.SeventhColumn[sq] && (offset == -6 || offset == 10):
		return true
	case chess.EighthColumn[sq] && (offset == -15 || offset == -6 || offset == 10 || offset == 17):
		return true
	}
	return false
}

// isKingExcluded covers the one-step offsets used by the king and by
// sliding pieces.
func isKingExcluded(sq, offset int) bool {
	switch {
	case chess.FirstColumn[sq] && (offset == -9 || offset == -1 || offset == 7):
		return true
	case chess.EighthColumn[sq] && (offset == -7 || offset == 1 || offset == 9):
		return true
	}
	return false
}

func computeBishopRays(sq int) uint64 {
	var mask uint64
	for _, dir := range bishopDirections {
		for cur := sq; !isKingExcluded(cur, dir); {
			cur += dir
			if !chess.IsValidSquare(cur) {
				break
			}
			mask |= 1 << uint(cur)
		}
	}
	return mask
}

// kingTargets returns the on-board squares adjacent to sq.
func kingTargets(sq chess.Square) []chess.Square {
	targets := make([]chess.Square, 0, len(kingOffsets))
	for _, offset := range kingOffsets {
		candidate := int(sq) + offset
		if !chess.IsValidSquare(candidate) || isKingExcluded(int(sq), offset) {
			continue
		}
		targets = append(targets, chess.Square(candidate))
	}
	return targets
}

// isPawnCaptureExcluded reports whether a diagonal capture offset (7 or 9,
// before scaling) would wrap around the board edge for a pawn of side on sq.
func isPawnCaptureExcluded(sq chess.Square, side chess.Side, offset int) bool {
	switch {
	case chess.FirstColumn[sq]:
		return (side == chess.White && offset == 9) || (side == chess.Black && offset == 7)
	case chess.EighthColumn[sq]:
		return (side == chess.White && offset == 7) || (side == chess.Black && offset == 9)
	}
	return false
}

// startRank and promotionRank describe the pawn rows for each side.
func startRank(side chess.Side) *[chess.NumSquares]bool {
	if side == chess.White {
		return &chess.SecondRank
	}
	return &chess.SeventhRank
}

func promotionRank(side chess.Side) *[chess.NumSquares]bool {
	if side == chess.White {
		return &chess.EighthRank
	}
	return &chess.FirstRank
}
