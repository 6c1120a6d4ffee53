package game

// GameStatus describes how a game stands.
type GameStatus string

const (
	StatusActive    GameStatus = "active"
	StatusWhiteWon  GameStatus = "white_won"
	StatusBlackWon  GameStatus = "black_won"
	StatusStalemate GameStatus = "stalemate"
)

// IsOver reports whether no further moves are accepted.
func (s GameStatus) IsOver() bool {
	return s != StatusActive
}

// MoveResult is returned after a move has been applied.
type MoveResult struct {
	From      string     `json:"from"`
	To        string     `json:"to"`
	UCI       string     `json:"uci"`
	Status    GameStatus `json:"status"`
	Check     bool       `json:"check"`
	Checkmate bool       `json:"checkmate"`
	Stalemate bool       `json:"stalemate"`
	Board     []string   `json:"board"`
}

// State is a snapshot of a session.
type State struct {
	ID         string     `json:"id"`
	Status     GameStatus `json:"status"`
	SideToMove string     `json:"side_to_move"`
	Ply        int        `json:"ply"`
	Check      bool       `json:"check"`
	LastMove   string     `json:"last_move,omitempty"`
	Board      []string   `json:"board"`
}
