package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// builder stages a piece placement before it is frozen into a Position.
// It is owned by the call that creates it and never escapes the package.
type builder struct {
	board        [chess.NumSquares]chess.Piece
	occupied     [chess.NumSquares]bool
	sideToMove   chess.Side
	enPassant    chess.Piece
	hasEnPassant bool
}

func newBuilder(sideToMove chess.Side) *builder {
	return &builder{sideToMove: sideToMove}
}

// setPiece places p on its square, replacing whatever stood there.
func (b *builder) setPiece(p chess.Piece) *builder {
	b.board[p.Square] = p
	b.occupied[p.Square] = true
	return b
}

func (b *builder) setEnPassantPawn(p chess.Piece) *builder {
	b.enPassant = p
	b.hasEnPassant = true
	return b
}

// build freezes the staged placement. The builder must not be used again.
func (b *builder) build() *Position {
	return newPosition(b)
}
