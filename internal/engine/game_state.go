package engine

// IsInCheckmate reports whether the player is in check and has no move
// that MakeMove accepts.
func (pl *Player) IsInCheckmate() bool {
	return pl.inCheck && !pl.HasLegalMoves()
}

// IsInStalemate reports whether the player is not in check and has no move
// that MakeMove accepts.
func (pl *Player) IsInStalemate() bool {
	return !pl.inCheck && !pl.HasLegalMoves()
}

// IsGameOver reports whether the side to move is checkmated or stalemated.
func (pos *Position) IsGameOver() bool {
	return !pos.CurrentPlayer().HasLegalMoves()
}
