package main

import "fmt"

// Move addresses one board cell. Depth rides along on engine moves so
// the frontend can show how far the search looked.
type Move struct {
	X     int `json:"x"`
	Y     int `json:"y"`
	Depth int `json:"depth,omitempty"`
}

// InvalidMove marks "no move found" results from the selectors.
var InvalidMove = Move{X: -1, Y: -1}

func (m Move) IsValid(boardSize int) bool {
	return uint(m.X) < uint(boardSize) && uint(m.Y) < uint(boardSize)
}

// Equals compares coordinates only; Depth is advisory.
func (m Move) Equals(other Move) bool {
	return m.X == other.X && m.Y == other.Y
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.X, m.Y)
}
