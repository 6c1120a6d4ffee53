// Package chess provides core chess types and board geometry.
package chess

// Side represents the colour of a piece or player.
type Side int

const (
	White Side = iota
	Black
)

// String returns the string representation of a side.
func (s Side) String() string {
	if s == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite side.
func (s Side) Opposite() Side {
	if s == White {
		return Black
	}
	return White
}

// Direction returns the sign applied to pawn offsets: White advances
// towards square 0, Black towards square 63.
func (s Side) Direction() int {
	if s == White {
		return -1
	}
	return 1
}

// IsWhite reports whether s is White.
func (s Side) IsWhite() bool {
	return s == White
}

// PieceType represents a chess piece type.
type PieceType int

const (
	NoPieceType PieceType = iota
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
)

// PieceTypes lists every real piece type in generation order.
var PieceTypes = [...]PieceType{Pawn, Knight, Bishop, Rook, Queen, King}

// PromotionTypes lists the piece types a pawn may promote to.
var PromotionTypes = [...]PieceType{Queen, Rook, Bishop, Knight}

// String returns the string representation of a piece type.
func (t PieceType) String() string {
	names := []string{"None", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if int(t) >= 0 && int(t) < len(names) {
		return names[t]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (t PieceType) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if int(t) >= 0 && int(t) < len(letters) {
		return letters[t]
	}
	return '?'
}

// IsKing reports whether t is a king.
func (t PieceType) IsKing() bool {
	return t == King
}

// IsRook reports whether t is a rook.
func (t PieceType) IsRook() bool {
	return t == Rook
}

// PieceTypeFromLetter converts a piece letter (either case) to a piece type.
func PieceTypeFromLetter(c byte) PieceType {
	switch c {
	case 'P', 'p':
		return Pawn
	case 'N', 'n':
		return Knight
	case 'B', 'b':
		return Bishop
	case 'R', 'r':
		return Rook
	case 'Q', 'q':
		return Queen
	case 'K', 'k':
		return King
	}
	return NoPieceType
}
