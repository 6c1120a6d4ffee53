package engine

import "github.com/lgbarn/chess-rules-go/internal/chess"

// castleRule describes one castle for one side.
type castleRule struct {
	kind       MoveKind
	side       chess.Side
	kingOrigin chess.Square
	kingDest   chess.Square
	rookOrigin chess.Square
	rookDest   chess.Square
	// between lists the squares strictly between king and rook. They must
	// be empty and not attacked.
	between []chess.Square
}

var castleRules = [...]castleRule{
	{KingSideCastle, chess.White, 60, 62, 63, 61, []chess.Square{61, 62}},
	{QueenSideCastle, chess.White, 60, 58, 56, 59, []chess.Square{57, 58, 59}},
	{KingSideCastle, chess.Black, 4, 6, 7, 5, []chess.Square{5, 6}},
	{QueenSideCastle, chess.Black, 4, 2, 0, 3, []chess.Square{1, 2, 3}},
}

// castleMoves returns the castles available to king's side. A king that
// has moved or is in check cannot castle.
func castleMoves(pos *Position, king chess.Piece, inCheck bool) []Move {
	if !king.FirstMove || inCheck {
		return nil
	}
	var moves []Move
	for i := range castleRules {
		rule := &castleRules[i]
		if rule.side != king.Side || king.Square != rule.kingOrigin {
			continue
		}
		if m, ok := rule.move(pos, king); ok {
			moves = append(moves, m)
		}
	}
	return moves
}

func (r *castleRule) move(pos *Position, king chess.Piece) (Move, bool) {
	rook, ok := pos.PieceAt(r.rookOrigin)
	if !ok || !rook.Type.IsRook() || rook.Side != king.Side || !rook.FirstMove {
		return Move{}, false
	}
	for _, sq := range r.between {
		if pos.TileAt(sq).IsOccupied() || isSquareAttacked(pos, sq, king.Side.Opposite()) {
			return Move{}, false
		}
	}
	return newCastleMove(pos, r.kind, king, r.kingDest, rook, r.rookDest), true
}
