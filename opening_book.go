package main

// Opening book for the first plies, where search adds nothing.

// openingMove answers for the very first stone of the game: take the
// center.
func openingMove(board Board) Move {
	center := board.Size() / 2
	return Move{X: center, Y: center}
}

// bookReplyToFirstStone picks the reply when exactly one opponent stone
// is on the board. If the opponent took the center, step out along the
// diagonal; otherwise shift their stone one step toward the center on
// each axis, landing next to it on the center side.
func bookReplyToFirstStone(board Board, opponent Move) Move {
	center := board.Size() / 2
	if opponent.X == center && opponent.Y == center {
		return Move{X: center - 1, Y: center - 1}
	}
	x := stepToward(opponent.X, center)
	y := stepToward(opponent.Y, center)
	reply := Move{X: x, Y: y}
	if reply.Equals(opponent) || !board.IsEmpty(reply.X, reply.Y) {
		reply = Move{X: center, Y: center}
	}
	return reply
}

func stepToward(v, target int) int {
	switch {
	case v < target:
		return v + 1
	case v > target:
		return v - 1
	default:
		return v
	}
}

// findSingleStone returns the lone stone when the board holds exactly
// one.
func findSingleStone(board Board) (Move, bool) {
	if board.StoneCount() != 1 {
		return InvalidMove, false
	}
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if board.At(x, y) != CellEmpty {
				return Move{X: x, Y: y}, true
			}
		}
	}
	return InvalidMove, false
}
