package engine

// MoveStatus reports the outcome of Player.MakeMove.
type MoveStatus int

const (
	Done MoveStatus = iota
	IllegalMove
	LeavesInCheck
)

// String returns the string representation of a status.
func (s MoveStatus) String() string {
	switch s {
	case Done:
		return "DONE"
	case IllegalMove:
		return "ILLEGAL_MOVE"
	case LeavesInCheck:
		return "LEAVES_IN_CHECK"
	}
	return "UNKNOWN"
}

// IsDone reports whether the move was carried out.
func (s MoveStatus) IsDone() bool {
	return s == Done
}

// MoveTransition is the result of attempting a move. Position is the new
// position when Status is Done and the original position otherwise.
type MoveTransition struct {
	Position *Position
	Move     Move
	Status   MoveStatus
}
