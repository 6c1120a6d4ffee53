// Package game tracks live games: a current position per session plus the
// number of plies played, with rejected moves reported as errors.
package game

import (
	"strings"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-rules-go/internal/chess"
	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Session is a single game. It is safe for concurrent use.
type Session struct {
	id string

	mu       sync.RWMutex
	pos      *engine.Position
	ply      int
	lastMove string
}

// NewSession starts a session at pos, or at the standard position when pos
// is nil.
func NewSession(id string, pos *engine.Position) *Session {
	if pos == nil {
		pos = engine.NewStandardPosition()
	}
	return &Session{id: id, pos: pos}
}

// ID returns the session identifier.
func (s *Session) ID() string {
	return s.id
}

// Position returns the current position.
func (s *Session) Position() *engine.Position {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.pos
}

// Ply returns the number of moves applied so far.
func (s *Session) Ply() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.ply
}

// Status returns the status of the current position.
func (s *Session) Status() GameStatus {
	return statusOf(s.Position())
}

// State returns a snapshot of the session.
func (s *Session) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	current := s.pos.CurrentPlayer()
	return State{
		ID:         s.id,
		Status:     statusOf(s.pos),
		SideToMove: SideName(current.Side()),
		Ply:        s.ply,
		Check:      current.IsInCheck(),
		LastMove:   s.lastMove,
		Board:      s.pos.Diagram(),
	}
}

// LegalMoves returns the legal moves of the side to move in long algebraic
// form.
func (s *Session) LegalMoves() []string {
	legal := s.Position().CurrentPlayer().LegalMoves()
	moves := make([]string, len(legal))
	for i, m := range legal {
		moves[i] = m.String()
	}
	return moves
}

// Move plays text, a long algebraic move such as "e2e4" or "e7e8q". A
// rejected move leaves the session unchanged and returns a *errors.MoveError
// wrapping ErrInvalidMoveText, ErrIllegalMove, ErrLeavesInCheck or
// ErrGameOver.
func (s *Session) Move(text string) (*MoveResult, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ply := s.ply + 1
	fail := func(err error) error {
		log.Debug().Str("game", s.id).Int("ply", ply).Str("move", text).Err(err).Msg("move rejected")
		return &errors.MoveError{Err: err, GameID: s.id, Ply: ply, MoveText: text}
	}

	if statusOf(s.pos).IsOver() {
		return nil, fail(errors.ErrGameOver)
	}

	m, err := s.pos.FindMove(strings.ToLower(strings.TrimSpace(text)))
	if err != nil {
		return nil, fail(err)
	}

	transition := s.pos.CurrentPlayer().MakeMove(m)
	switch transition.Status {
	case engine.IllegalMove:
		return nil, fail(errors.ErrIllegalMove)
	case engine.LeavesInCheck:
		return nil, fail(errors.ErrLeavesInCheck)
	}

	s.pos = transition.Position
	s.ply = ply
	s.lastMove = m.String()

	next := s.pos.CurrentPlayer()
	result := &MoveResult{
		From:      m.Origin().String(),
		To:        m.Destination.String(),
		UCI:       m.String(),
		Status:    statusOf(s.pos),
		Check:     next.IsInCheck(),
		Checkmate: next.IsInCheckmate(),
		Stalemate: next.IsInStalemate(),
		Board:     s.pos.Diagram(),
	}

	log.Debug().
		Str("game", s.id).
		Int("ply", ply).
		Str("move", result.UCI).
		Str("status", string(result.Status)).
		Msg("move applied")
	return result, nil
}

func statusOf(pos *engine.Position) GameStatus {
	current := pos.CurrentPlayer()
	switch {
	case current.IsInCheckmate():
		if current.Side() == chess.White {
			return StatusBlackWon
		}
		return StatusWhiteWon
	case current.IsInStalemate():
		return StatusStalemate
	}
	return StatusActive
}

// SideName returns "white" or "black".
func SideName(side chess.Side) string {
	if side == chess.White {
		return "white"
	}
	return "black"
}

// ParseSide accepts "white", "black", "w" or "b" in any case. The empty
// string means White.
func ParseSide(s string) (chess.Side, error) {
	switch strings.ToLower(s) {
	case "", "w", "white":
		return chess.White, nil
	case "b", "black":
		return chess.Black, nil
	}
	return chess.White, errors.Wrapf(errors.ErrParseFailure, "side %q", s)
}
