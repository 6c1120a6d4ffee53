package chess

// Piece is an immutable piece value. Two pieces are the same entity only
// when type, square, side and first-move flag all match, so Piece values
// compare with ==.
type Piece struct {
	Type      PieceType
	Square    Square
	Side      Side
	FirstMove bool
}

// NewPiece creates a piece that has not moved yet.
func NewPiece(t PieceType, sq Square, side Side) Piece {
	return Piece{Type: t, Square: sq, Side: side, FirstMove: true}
}

// Moved returns the piece relocated to sq with its first-move flag cleared.
func (p Piece) Moved(sq Square) Piece {
	return Piece{Type: p.Type, Square: sq, Side: p.Side}
}

// Promoted returns a piece of type t standing on sq for the same side.
func (p Piece) Promoted(t PieceType, sq Square) Piece {
	return Piece{Type: t, Square: sq, Side: p.Side}
}

// Letter returns the display letter: uppercase for White, lowercase for Black.
func (p Piece) Letter() byte {
	c := p.Type.Letter()
	if p.Side == Black && c >= 'A' && c <= 'Z' {
		c += 'a' - 'A'
	}
	return c
}

// String returns the display letter as a string.
func (p Piece) String() string {
	return string(p.Letter())
}
