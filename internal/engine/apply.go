package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// Execute derives the position that follows m. The mover's other pieces
// and the opponent's pieces are copied unchanged; the moved piece is placed
// last, so a captured piece on the destination is simply overwritten.
// Executing NullMove panics.
func (m Move) Execute() *Position {
	if m.Kind == Null || m.board == nil {
		panic("engine: cannot execute the null move")
	}

	side := m.Mover.Side
	b := newBuilder(side.Opposite())

	for _, p := range m.board.pieces(side) {
		if p == m.Mover || (m.IsCastle() && p == m.Rook) {
			continue
		}
		b.setPiece(p)
	}
	for _, p := range m.board.pieces(side.Opposite()) {
		if m.Kind == EnPassant && p == m.Captured {
			continue
		}
		b.setPiece(p)
	}

	moved := m.movedPiece()
	b.setPiece(moved)

	switch m.Kind {
	case KingSideCastle, QueenSideCastle:
		b.setPiece(m.Rook.Moved(m.RookDestination))
	case PawnJump:
		b.setEnPassantPawn(moved)
	}
	return b.build()
}

// movedPiece returns the mover as it stands after the move.
func (m Move) movedPiece() chess.Piece {
	if m.IsPromotion() {
		return m.Mover.Promoted(m.Promotion, m.Destination)
	}
	return m.Mover.Moved(m.Destination)
}
