package engine

import (
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// ParsedMove holds the squares and promotion named by a long algebraic
// move such as "e2e4" or "a7a8q".
type ParsedMove struct {
	From      chess.Square
	To        chess.Square
	Promotion chess.PieceType
}

// ParseMoveText parses long algebraic notation. Castles are written as the
// king's move.
func ParseMoveText(text string) (ParsedMove, error) {
	if len(text) != 4 && len(text) != 5 {
		return ParsedMove{}, fmt.Errorf("%q: %w", text, errors.ErrInvalidMoveText)
	}
	from, err := chess.ParseSquare(text[0:2])
	if err != nil {
		return ParsedMove{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q", text)
	}
	to, err := chess.ParseSquare(text[2:4])
	if err != nil {
		return ParsedMove{}, errors.Wrapf(errors.ErrInvalidMoveText, "%q", text)
	}

	parsed := ParsedMove{From: from, To: to}
	if len(text) == 5 {
		parsed.Promotion = chess.PieceTypeFromLetter(text[4])
		if !isPromotionType(parsed.Promotion) {
			return ParsedMove{}, fmt.Errorf("%q: bad promotion piece: %w", text, errors.ErrInvalidMoveText)
		}
	}
	return parsed, nil
}

func isPromotionType(t chess.PieceType) bool {
	return slices.Contains(chess.PromotionTypes[:], t)
}

// FindMove resolves text against the candidate moves of the side to move.
// A pawn reaching the last rank must name its promotion piece. The move
// found may still leave the king in check; MakeMove reports that.
func (pos *Position) FindMove(text string) (Move, error) {
	parsed, err := ParseMoveText(text)
	if err != nil {
		return NullMove, err
	}
	for _, m := range pos.CurrentPlayer().candidates {
		if m.Mover.Square == parsed.From && m.Destination == parsed.To && m.Promotion == parsed.Promotion {
			return m, nil
		}
	}
	return NullMove, fmt.Errorf("%s to move: %q: %w", pos.sideToMove, text, errors.ErrIllegalMove)
}
