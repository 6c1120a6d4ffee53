package engine

import (
	"fmt"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// backRank is the piece order from the a-file to the h-file.
var backRank = [chess.SquaresPerRank]chess.PieceType{
	chess.Rook, chess.Knight, chess.Bishop, chess.Queen,
	chess.King, chess.Bishop, chess.Knight, chess.Rook,
}

// StandardPieces returns the 32 pieces of the opening layout.
func StandardPieces() []chess.Piece {
	pieces := make([]chess.Piece, 0, 32)
	for col, t := range backRank {
		pieces = append(pieces, chess.NewPiece(t, chess.SquareAt(col, 0), chess.Black))
	}
	for col := 0; col < chess.SquaresPerRank; col++ {
		pieces = append(pieces, chess.NewPiece(chess.Pawn, chess.SquareAt(col, 1), chess.Black))
	}
	for col := 0; col < chess.SquaresPerRank; col++ {
		pieces = append(pieces, chess.NewPiece(chess.Pawn, chess.SquareAt(col, 6), chess.White))
	}
	for col, t := range backRank {
		pieces = append(pieces, chess.NewPiece(t, chess.SquareAt(col, 7), chess.White))
	}
	return pieces
}

// NewStandardPosition returns the opening position with White to move.
func NewStandardPosition() *Position {
	return NewPosition(StandardPieces(), chess.White, nil)
}

// FromDiagram builds a position from eight ranks, rank 8 first. Uppercase
// letters are White pieces, lowercase Black and '.' an empty square. Pawns
// on their start rank, kings on e1/e8 and rooks in the corners are taken
// as unmoved. enPassant names the square of a pawn that has just made a
// double step, or is empty.
func FromDiagram(ranks []string, sideToMove chess.Side, enPassant string) (*Position, error) {
	if len(ranks) != chess.SquaresPerRank {
		return nil, fmt.Errorf("diagram has %d ranks: %w", len(ranks), errors.ErrParseFailure)
	}

	var pieces []chess.Piece
	kings := [2]int{}
	for row, rank := range ranks {
		if len(rank) != chess.SquaresPerRank {
			return nil, &errors.ParseError{Err: errors.ErrParseFailure, Line: row + 1, Got: fmt.Sprintf("rank %q", rank)}
		}
		for col := 0; col < chess.SquaresPerRank; col++ {
			c := rank[col]
			if c == '.' {
				continue
			}
			pt := chess.PieceTypeFromLetter(c)
			if pt == chess.NoPieceType {
				return nil, &errors.ParseError{Err: errors.ErrParseFailure, Line: row + 1, Got: fmt.Sprintf("piece %q", c)}
			}
			side := chess.White
			if c >= 'a' && c <= 'z' {
				side = chess.Black
			}
			if pt.IsKing() {
				kings[side]++
			}
			sq := chess.SquareAt(col, row)
			pieces = append(pieces, chess.Piece{
				Type:      pt,
				Square:    sq,
				Side:      side,
				FirstMove: onOriginSquare(pt, sq, side),
			})
		}
	}
	if kings[chess.White] != 1 || kings[chess.Black] != 1 {
		return nil, fmt.Errorf("diagram needs one king per side: %w", errors.ErrParseFailure)
	}

	var ep *chess.Piece
	if enPassant != "" {
		sq, err := chess.ParseSquare(enPassant)
		if err != nil {
			return nil, errors.Wrap(err, "en passant pawn")
		}
		for i := range pieces {
			if pieces[i].Square == sq && pieces[i].Type == chess.Pawn && pieces[i].Side != sideToMove {
				ep = &pieces[i]
			}
		}
		if ep == nil {
			return nil, fmt.Errorf("no %s pawn on %s: %w", sideToMove.Opposite(), enPassant, errors.ErrParseFailure)
		}
		if !justDoubleStepped(*ep, pieces) {
			return nil, fmt.Errorf("pawn on %s cannot have just made a double step: %w", enPassant, errors.ErrParseFailure)
		}
	}
	return NewPosition(pieces, sideToMove, ep), nil
}

// justDoubleStepped reports whether pawn stands where a double step lands,
// with the two squares it came over empty.
func justDoubleStepped(pawn chess.Piece, pieces []chess.Piece) bool {
	if (pawn.Side == chess.White && !chess.FourthRank[pawn.Square]) ||
		(pawn.Side == chess.Black && !chess.FifthRank[pawn.Square]) {
		return false
	}
	step := chess.Square(pawn.Side.Direction() * 8)
	skipped := [2]chess.Square{pawn.Square - step, pawn.Square - 2*step}
	for _, p := range pieces {
		if p.Square == skipped[0] || p.Square == skipped[1] {
			return false
		}
	}
	return true
}

// onOriginSquare reports whether a piece of type pt standing on sq can
// still be unmoved.
func onOriginSquare(pt chess.PieceType, sq chess.Square, side chess.Side) bool {
	switch pt {
	case chess.Pawn:
		return startRank(side)[sq]
	case chess.King:
		return (side == chess.White && sq == 60) || (side == chess.Black && sq == 4)
	case chess.Rook:
		if side == chess.White {
			return sq == 56 || sq == 63
		}
		return sq == 0 || sq == 7
	}
	return false
}

// Diagram renders pos in the FromDiagram format, rank 8 first.
func (pos *Position) Diagram() []string {
	ranks := make([]string, chess.SquaresPerRank)
	for row := range ranks {
		rank := make([]byte, chess.SquaresPerRank)
		for col := range rank {
			rank[col] = '.'
			if p, ok := pos.PieceAt(chess.SquareAt(col, row)); ok {
				rank[col] = p.Letter()
			}
		}
		ranks[row] = string(rank)
	}
	return ranks
}
