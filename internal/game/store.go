package game

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
)

// Store keeps sessions in memory.
type Store struct {
	games    map[string]*Session // map game ID to session
	maxGames int
	mu       sync.RWMutex
}

// NewStore creates a store holding at most maxGames sessions. A limit below
// one means unlimited.
func NewStore(maxGames int) *Store {
	return &Store{
		games:    make(map[string]*Session),
		maxGames: maxGames,
	}
}

// Create starts a new session at pos (the standard position when nil).
func (s *Store) Create(pos *engine.Position) (*Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.maxGames > 0 && len(s.games) >= s.maxGames {
		return nil, errors.ErrStoreFull
	}

	session := NewSession(uuid.NewString(), pos)
	s.games[session.ID()] = session

	log.Info().Str("game", session.ID()).Int("games", len(s.games)).Msg("game created")
	return session, nil
}

// Get returns the session with the given ID.
func (s *Store) Get(id string) (*Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	session, exists := s.games[id]
	if !exists {
		return nil, &errors.MoveError{Err: errors.ErrGameNotFound, GameID: id}
	}
	return session, nil
}

// Delete removes a session and reports whether it existed.
func (s *Store) Delete(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.games[id]; !exists {
		return false
	}
	delete(s.games, id)
	log.Info().Str("game", id).Msg("game deleted")
	return true
}

// Len returns the number of sessions.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.games)
}
