package engine

import (
	"strings"

	"golang.org/x/exp/slices"

	"github.com/lgbarn/chess-rules-go/internal/chess"
)

// Position is an immutable snapshot of the game: the 64 tiles, the active
// pieces of each side, the side to move and the pawn that may be captured
// en passant. Positions are safe for concurrent use.
type Position struct {
	tiles        [chess.NumSquares]chess.Tile
	whitePieces  []chess.Piece
	blackPieces  []chess.Piece
	sideToMove   chess.Side
	enPassant    chess.Piece
	hasEnPassant bool

	whitePlayer *Player
	blackPlayer *Player
}

// NewPosition assembles a position from a piece placement. A later piece on
// an already occupied square replaces the earlier one. ep, when not nil,
// names the pawn that just made a double step; it is ignored unless that
// exact pawn stands on the board. NewPosition panics if either side has no
// king.
func NewPosition(pieces []chess.Piece, sideToMove chess.Side, ep *chess.Piece) *Position {
	b := newBuilder(sideToMove)
	for _, p := range pieces {
		b.setPiece(p)
	}
	if ep != nil && ep.Type == chess.Pawn && b.occupied[ep.Square] && b.board[ep.Square] == *ep {
		b.setEnPassantPawn(*ep)
	}
	return b.build()
}

func newPosition(b *builder) *Position {
	pos := &Position{
		sideToMove:   b.sideToMove,
		enPassant:    b.enPassant,
		hasEnPassant: b.hasEnPassant,
	}
	for i := range pos.tiles {
		sq := chess.Square(i)
		if !b.occupied[sq] {
			pos.tiles[sq] = chess.EmptyTile(sq)
			continue
		}
		p := b.board[sq]
		pos.tiles[sq] = chess.NewTile(sq, &p)
		if p.Side == chess.White {
			pos.whitePieces = append(pos.whitePieces, p)
		} else {
			pos.blackPieces = append(pos.blackPieces, p)
		}
	}

	whiteMoves := pseudoLegalMoves(pos, chess.White)
	blackMoves := pseudoLegalMoves(pos, chess.Black)
	pos.whitePlayer = newPlayer(pos, chess.White, whiteMoves, blackMoves)
	pos.blackPlayer = newPlayer(pos, chess.Black, blackMoves, whiteMoves)
	return pos
}

// TileAt returns the occupancy of sq.
func (pos *Position) TileAt(sq chess.Square) chess.Tile {
	return pos.tiles[sq]
}

// PieceAt returns the piece on sq and whether there is one.
func (pos *Position) PieceAt(sq chess.Square) (chess.Piece, bool) {
	return pos.tiles[sq].Piece()
}

// pieces returns the active pieces of side without copying.
func (pos *Position) pieces(side chess.Side) []chess.Piece {
	if side == chess.White {
		return pos.whitePieces
	}
	return pos.blackPieces
}

// Pieces returns a copy of the active pieces of side in square order.
func (pos *Position) Pieces(side chess.Side) []chess.Piece {
	return slices.Clone(pos.pieces(side))
}

// SideToMove returns the side whose turn it is.
func (pos *Position) SideToMove() chess.Side {
	return pos.sideToMove
}

// EnPassantPawn returns the pawn that may be captured en passant this ply.
func (pos *Position) EnPassantPawn() (chess.Piece, bool) {
	return pos.enPassant, pos.hasEnPassant
}

// Player returns the player for side.
func (pos *Position) Player(side chess.Side) *Player {
	if side == chess.White {
		return pos.whitePlayer
	}
	return pos.blackPlayer
}

// CurrentPlayer returns the player of the side to move.
func (pos *Position) CurrentPlayer() *Player {
	return pos.Player(pos.sideToMove)
}

// LegalMoves returns the fully legal moves of side in generation order.
func (pos *Position) LegalMoves(side chess.Side) []Move {
	return pos.Player(side).LegalMoves()
}

// AllLegalMoves returns the legal moves of White followed by those of Black.
func (pos *Position) AllLegalMoves() []Move {
	return append(pos.LegalMoves(chess.White), pos.LegalMoves(chess.Black)...)
}

// String renders the board rank 8 first, one rank per line.
func (pos *Position) String() string {
	var sb strings.Builder
	for i, tile := range pos.tiles {
		sb.WriteString(padLeft(tile.String(), 3))
		if (i+1)%chess.SquaresPerRank == 0 {
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}
