// Package hashing provides Zobrist keys for positions and a transposition
// table of perft node counts.
package hashing

import (
	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
)

// Zobrist keys, generated once from a fixed seed so keys are stable across
// runs. Pieces that have not moved get their own keys because the
// first-move flag decides castling and double steps.
var (
	zobristPiece      [2][chess.King + 1][chess.NumSquares][2]uint64
	zobristEnPassant  [chess.SquaresPerRank]uint64
	zobristSideToMove uint64
)

func init() {
	rng := newPRNG(0x98F107A2BEEF1234)
	for side := range zobristPiece {
		for pt := chess.Pawn; pt <= chess.King; pt++ {
			for sq := 0; sq < chess.NumSquares; sq++ {
				zobristPiece[side][pt][sq][0] = rng.next()
				zobristPiece[side][pt][sq][1] = rng.next()
			}
		}
	}
	for col := range zobristEnPassant {
		zobristEnPassant[col] = rng.next()
	}
	zobristSideToMove = rng.next()
}

// prng is an xorshift64* generator.
type prng struct {
	state uint64
}

func newPRNG(seed uint64) *prng {
	return &prng{state: seed}
}

func (p *prng) next() uint64 {
	p.state ^= p.state >> 12
	p.state ^= p.state << 25
	p.state ^= p.state >> 27
	return p.state * 0x2545F4914F6CDD1D
}

// PieceKey returns the key of a single piece.
func PieceKey(p chess.Piece) uint64 {
	moved := 0
	if p.FirstMove {
		moved = 1
	}
	return zobristPiece[p.Side][p.Type][p.Square][moved]
}

// Key computes the Zobrist key of pos from scratch.
func Key(pos *engine.Position) uint64 {
	var key uint64
	for _, side := range [...]chess.Side{chess.White, chess.Black} {
		for _, p := range pos.Pieces(side) {
			key ^= PieceKey(p)
		}
	}
	if ep, ok := pos.EnPassantPawn(); ok {
		key ^= zobristEnPassant[ep.Square.Column()]
	}
	if pos.SideToMove() == chess.Black {
		key ^= zobristSideToMove
	}
	return key
}
