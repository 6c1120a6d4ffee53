package chess

// Tile is the occupancy of one square: either empty or holding a piece.
type Tile struct {
	square   Square
	piece    Piece
	occupied bool
}

// emptyTiles holds one shared empty tile per square.
var emptyTiles = func() [NumSquares]Tile {
	var tiles [NumSquares]Tile
	for sq := range tiles {
		tiles[sq] = Tile{square: Square(sq)}
	}
	return tiles
}()

// EmptyTile returns the interned empty tile for sq.
func EmptyTile(sq Square) Tile {
	return emptyTiles[sq]
}

// NewTile returns an occupied tile for piece, or the empty tile for sq when
// piece is nil.
func NewTile(sq Square, piece *Piece) Tile {
	if piece == nil {
		return emptyTiles[sq]
	}
	return Tile{square: sq, piece: *piece, occupied: true}
}

// Square returns the square this tile describes.
func (t Tile) Square() Square {
	return t.square
}

// IsOccupied reports whether a piece stands on the tile.
func (t Tile) IsOccupied() bool {
	return t.occupied
}

// Piece returns the piece on the tile and whether there is one.
func (t Tile) Piece() (Piece, bool) {
	return t.piece, t.occupied
}

// String returns the piece letter, or "-" for an empty tile.
func (t Tile) String() string {
	if !t.occupied {
		return "-"
	}
	return t.piece.String()
}
