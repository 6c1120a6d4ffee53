package chess

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Constants for board dimensions.
const (
	NumSquares     = 64
	SquaresPerRank = 8
)

// Square is a linear board index in [0, 64). Index 0 is a8 and 63 is h1,
// so rank 8 occupies the first row.
type Square int

// NoSquare marks an absent square.
const NoSquare Square = -1

// Column and rank membership tables, indexed by square.
// Columns count from the a-file; rows count from the top (rank 8).
var (
	FirstColumn   = ColumnMask(0)
	SecondColumn  = ColumnMask(1)
	SeventhColumn = ColumnMask(6)
	EighthColumn  = ColumnMask(7)

	EighthRank  = RankMask(0)
	SeventhRank = RankMask(1)
	SixthRank   = RankMask(2)
	FifthRank   = RankMask(3)
	FourthRank  = RankMask(4)
	ThirdRank   = RankMask(5)
	SecondRank  = RankMask(6)
	FirstRank   = RankMask(7)
)

// IsValidSquare returns true if sq lies on the board.
func IsValidSquare(sq int) bool {
	return sq >= 0 && sq < NumSquares
}

// ColumnMask returns a table marking every square of column n (0 = a-file).
func ColumnMask(n int) [NumSquares]bool {
	var mask [NumSquares]bool
	for sq := n; sq < NumSquares; sq += SquaresPerRank {
		mask[sq] = true
	}
	return mask
}

// RankMask returns a table marking every square of row n (0 = rank 8).
func RankMask(n int) [NumSquares]bool {
	var mask [NumSquares]bool
	start := n * SquaresPerRank
	for sq := start; sq < start+SquaresPerRank && sq < NumSquares; sq++ {
		if sq >= 0 {
			mask[sq] = true
		}
	}
	return mask
}

// Column returns the file index of sq (0 = a).
func (sq Square) Column() int {
	return int(sq) % SquaresPerRank
}

// Row returns the row index of sq (0 = rank 8).
func (sq Square) Row() int {
	return int(sq) / SquaresPerRank
}

// IsValid reports whether sq lies on the board.
func (sq Square) IsValid() bool {
	return IsValidSquare(int(sq))
}

// String returns the algebraic name of the square, e.g. "e4".
func (sq Square) String() string {
	if !sq.IsValid() {
		return "-"
	}
	return string([]byte{byte('a' + sq.Column()), byte('8' - sq.Row())})
}

// ParseSquare converts an algebraic square name such as "e4" to a Square.
func ParseSquare(name string) (Square, error) {
	if len(name) != 2 {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	col := int(name[0]) - 'a'
	rank := int(name[1]) - '1'
	if col < 0 || col >= SquaresPerRank || rank < 0 || rank >= SquaresPerRank {
		return NoSquare, fmt.Errorf("%q: %w", name, errors.ErrInvalidSquare)
	}
	return SquareAt(col, SquaresPerRank-1-rank), nil
}

// SquareAt builds a square from a column and a row (row 0 = rank 8).
func SquareAt(col, row int) Square {
	return Square(row*SquaresPerRank + col)
}
