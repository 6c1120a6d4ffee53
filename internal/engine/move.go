package engine

import (
	"strings"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// MoveKind categorizes the different kinds of ply.
type MoveKind int

const (
	Null MoveKind = iota
	Major
	Attack
	PawnJump
	EnPassant
	KingSideCastle
	QueenSideCastle
)

// String returns the string representation of a move kind.
func (k MoveKind) String() string {
	names := []string{"Null", "Major", "Attack", "PawnJump", "EnPassant", "KingSideCastle", "QueenSideCastle"}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "Unknown"
}

// Move describes a single ply. It is a comparable value: two moves are the
// same move when every field, including the originating position, matches.
type Move struct {
	Kind MoveKind

	// The position the move was generated from.
	board *Position

	// The moving piece as it stood before the move.
	Mover       chess.Piece
	Destination chess.Square

	// The captured piece, for Attack and EnPassant moves.
	Captured chess.Piece

	// The piece type a pawn becomes on the last rank (NoPieceType otherwise).
	Promotion chess.PieceType

	// The castling rook and its squares, for castle moves.
	Rook            chess.Piece
	RookOrigin      chess.Square
	RookDestination chess.Square
}

// NullMove is the non-executable sentinel move. It is the zero Move.
var NullMove = Move{}

func newMajorMove(pos *Position, mover chess.Piece, dest chess.Square) Move {
	return Move{Kind: Major, board: pos, Mover: mover, Destination: dest}
}

func newAttackMove(pos *Position, mover chess.Piece, dest chess.Square, captured chess.Piece) Move {
	return Move{Kind: Attack, board: pos, Mover: mover, Destination: dest, Captured: captured}
}

func newPawnJump(pos *Position, mover chess.Piece, dest chess.Square) Move {
	return Move{Kind: PawnJump, board: pos, Mover: mover, Destination: dest}
}

func newEnPassantMove(pos *Position, mover chess.Piece, dest chess.Square, captured chess.Piece) Move {
	return Move{Kind: EnPassant, board: pos, Mover: mover, Destination: dest, Captured: captured}
}

func newCastleMove(pos *Position, kind MoveKind, king chess.Piece, dest chess.Square, rook chess.Piece, rookDest chess.Square) Move {
	return Move{
		Kind:            kind,
		board:           pos,
		Mover:           king,
		Destination:     dest,
		Rook:            rook,
		RookOrigin:      rook.Square,
		RookDestination: rookDest,
	}
}

// Board returns the position the move was generated from.
func (m Move) Board() *Position {
	return m.board
}

// Origin returns the square the mover leaves.
func (m Move) Origin() chess.Square {
	if m.Kind == Null {
		return chess.NoSquare
	}
	return m.Mover.Square
}

// IsAttack reports whether the move captures a piece.
func (m Move) IsAttack() bool {
	return m.Kind == Attack || m.Kind == EnPassant
}

// IsCastle reports whether the move is either castle.
func (m Move) IsCastle() bool {
	return m.Kind == KingSideCastle || m.Kind == QueenSideCastle
}

// IsPromotion reports whether a pawn promotes with this move.
func (m Move) IsPromotion() bool {
	return m.Promotion != chess.NoPieceType
}

// CapturedPiece returns the captured piece and whether there is one.
func (m Move) CapturedPiece() (chess.Piece, bool) {
	if !m.IsAttack() {
		return chess.Piece{}, false
	}
	return m.Captured, true
}

// String returns the move in long algebraic form, e.g. "e2e4", "e7e8q".
// Castles are written as the king's move ("e1g1"); the null move is "--".
func (m Move) String() string {
	if m.Kind == Null {
		return "--"
	}
	var sb strings.Builder
	sb.WriteString(m.Mover.Square.String())
	sb.WriteString(m.Destination.String())
	if m.IsPromotion() {
		sb.WriteByte(m.Promotion.Letter() + ('a' - 'A'))
	}
	return sb.String()
}

// withPromotion returns a copy of m promoting to t.
func (m Move) withPromotion(t chess.PieceType) Move {
	m.Promotion = t
	return m
}
