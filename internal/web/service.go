// Package web exposes game sessions over a small JSON HTTP API.
package web

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"

	"github.com/lgbarn/chess-rules-go/internal/engine"
	"github.com/lgbarn/chess-rules-go/internal/errors"
	"github.com/lgbarn/chess-rules-go/internal/game"
)

// Service serves game sessions held in a Store.
type Service struct {
	store *game.Store
}

// NewService returns a Service backed by store.
func NewService(store *game.Store) *Service {
	return &Service{store: store}
}

// HealthHandler reports that the service is up.
func (s *Service) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"games":  s.store.Len(),
	})
}

// CreateGameRequest optionally describes a starting position in diagram
// form: eight ranks from rank 8 down, '.' for an empty square.
type CreateGameRequest struct {
	Board     []string `json:"board,omitempty"`
	Side      string   `json:"side,omitempty"`
	EnPassant string   `json:"en_passant,omitempty"`
}

// CreateGameHandler starts a game from the standard position or a posted diagram.
func (s *Service) CreateGameHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateGameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	var pos *engine.Position
	if len(req.Board) > 0 {
		side, err := game.ParseSide(req.Side)
		if err != nil {
			http.Error(w, "Invalid side", http.StatusBadRequest)
			return
		}
		pos, err = engine.FromDiagram(req.Board, side, req.EnPassant)
		if err != nil {
			log.Error().Err(err).Strs("board", req.Board).Msg("Invalid board")
			http.Error(w, fmt.Sprintf("Invalid board: %s", err.Error()), http.StatusBadRequest)
			return
		}
	}

	session, err := s.store.Create(pos)
	if err != nil {
		log.Error().Err(err).Msg("Failed to create game")
		http.Error(w, "Failed to create game", http.StatusServiceUnavailable)
		return
	}

	writeJSON(w, http.StatusCreated, session.State())
}

// GetGameHandler returns the state of a game.
func (s *Service) GetGameHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, session.State())
}

// DeleteGameHandler removes a game.
func (s *Service) DeleteGameHandler(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]
	if !s.store.Delete(gameID) {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// LegalMovesResponse lists the moves available to the side to move.
type LegalMovesResponse struct {
	SideToMove string   `json:"side_to_move"`
	Moves      []string `json:"moves"`
}

// LegalMovesHandler lists the legal moves in a game.
func (s *Service) LegalMovesHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookup(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, LegalMovesResponse{
		SideToMove: session.State().SideToMove,
		Moves:      session.LegalMoves(),
	})
}

// MakeMoveRequest names a move either as long algebraic text in Move or by
// its squares and optional promotion letter.
type MakeMoveRequest struct {
	Move      string `json:"move,omitempty"`
	From      string `json:"from,omitempty"`
	To        string `json:"to,omitempty"`
	Promotion string `json:"promotion,omitempty"`
}

// Text returns the move in long algebraic form.
func (req MakeMoveRequest) Text() string {
	if req.Move != "" {
		return req.Move
	}
	return req.From + req.To + req.Promotion
}

// MakeMoveHandler plays a move and returns the resulting state.
func (s *Service) MakeMoveHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.lookup(w, r)
	if !ok {
		return
	}

	var req MakeMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	result, err := session.Move(req.Text())
	if err != nil {
		log.Info().Err(err).Str("gameID", session.ID()).Str("move", req.Text()).Msg("Move rejected")
		http.Error(w, fmt.Sprintf("Invalid move: %s", err.Error()), moveErrorStatus(err))
		return
	}

	log.Info().
		Str("gameID", session.ID()).
		Str("uci", result.UCI).
		Bool("check", result.Check).
		Bool("checkmate", result.Checkmate).
		Msg("Move executed successfully")

	writeJSON(w, http.StatusOK, result)
}

func (s *Service) lookup(w http.ResponseWriter, r *http.Request) (*game.Session, bool) {
	gameID := mux.Vars(r)["id"]
	session, err := s.store.Get(gameID)
	if err != nil {
		http.Error(w, "Game not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

// moveErrorStatus maps a rejected move to an HTTP status code.
func moveErrorStatus(err error) int {
	switch {
	case errors.Is(err, errors.ErrInvalidMoveText):
		return http.StatusBadRequest
	case errors.Is(err, errors.ErrGameOver):
		return http.StatusConflict
	case errors.Is(err, errors.ErrIllegalMove), errors.Is(err, errors.ErrLeavesInCheck):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
