package main

// ThreatPoint is an empty cell annotated with what placing there would
// create for a given player.
type ThreatPoint struct {
	Move  Move
	Score float64
	Level PatternKind
}

// EvaluatePoint scores placing player at the empty cell (x, y): the sum
// of all four directional pattern scores plus compound bonuses when the
// placement creates threats on several lines at once. Returns the
// strongest single-direction pattern alongside the score.
func EvaluatePoint(board Board, x, y int, player PlayerColor, h HeuristicConfig) (float64, PatternKind) {
	if !board.IsEmpty(x, y) {
		return 0, PatternNone
	}
	var kinds [4]PatternKind
	score := 0.0
	best := PatternNone
	for i, dir := range lineDirections {
		kind := classifyDirection(board, x, y, dir[0], dir[1], player)
		kinds[i] = kind
		score += patternScore(kind, h)
		if kind > best {
			best = kind
		}
	}
	score += compoundBonus(kinds, h)
	return score, best
}

// compoundBonus rewards placements that fork the opponent: two fours, a
// four plus an open three, or two open threes across distinct lines.
func compoundBonus(kinds [4]PatternKind, h HeuristicConfig) float64 {
	fours := 0
	threes := 0
	for _, kind := range kinds {
		switch {
		case kind == PatternSimpleFour || kind == PatternOpenFour:
			fours++
		case kind == PatternOpenThree || kind == PatternBrokenThree:
			threes++
		}
	}
	switch {
	case fours >= 2:
		return h.DoubleFourBonus
	case fours >= 1 && threes >= 1:
		return h.FourThreeBonus
	case threes >= 2:
		return h.DoubleThreeBonus
	default:
		return 0
	}
}

// FindCriticalThreats collects every empty cell near the action whose
// placement reaches at least minLevel for player, strongest first with
// row-major order breaking ties.
func FindCriticalThreats(board Board, player PlayerColor, minLevel PatternKind, h HeuristicConfig) []ThreatPoint {
	threats := []ThreatPoint{}
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !board.IsEmpty(x, y) || !board.HasNeighborWithin(x, y, 2) {
				continue
			}
			score, level := EvaluatePoint(board, x, y, player, h)
			if level < minLevel {
				continue
			}
			threats = append(threats, ThreatPoint{Move: Move{X: x, Y: y}, Score: score, Level: level})
		}
	}
	sortThreatsDesc(threats)
	return threats
}

func sortThreatsDesc(threats []ThreatPoint) {
	// Insertion sort by level, then score; a four always outranks a
	// bonus-heavy three. Row-major scan order survives for exact ties.
	for i := 1; i < len(threats); i++ {
		item := threats[i]
		j := i - 1
		for j >= 0 && threatBelow(threats[j], item) {
			threats[j+1] = threats[j]
			j--
		}
		threats[j+1] = item
	}
}

func threatBelow(a, b ThreatPoint) bool {
	if a.Level != b.Level {
		return a.Level < b.Level
	}
	return a.Score < b.Score
}

// findImmediateWinMoves lists every empty cell that completes a run of
// five or more for player, in row-major order.
func findImmediateWinMoves(board Board, player PlayerColor) []Move {
	wins := []Move{}
	cell := CellFromPlayer(player)
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !board.IsEmpty(x, y) || !board.HasNeighborWithin(x, y, 1) {
				continue
			}
			if completesFive(board, x, y, cell) {
				wins = append(wins, Move{X: x, Y: y})
			}
		}
	}
	return wins
}

func completesFive(board Board, x, y int, cell Cell) bool {
	for _, dir := range lineDirections {
		count := 1
		count += countContiguous(board, x, y, dir[0], dir[1], cell)
		count += countContiguous(board, x, y, -dir[0], -dir[1], cell)
		if count >= 5 {
			return true
		}
	}
	return false
}

func countContiguous(board Board, x, y, dx, dy int, cell Cell) int {
	count := 0
	cx, cy := x+dx, y+dy
	for board.InBounds(cx, cy) && board.At(cx, cy) == cell {
		count++
		cx += dx
		cy += dy
	}
	return count
}

// findOpenFourMove returns the first cell, row-major, where placing for
// player creates an open four on some line.
func findOpenFourMove(board Board, player PlayerColor) (Move, bool) {
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !board.IsEmpty(x, y) || !board.HasNeighborWithin(x, y, 1) {
				continue
			}
			for _, dir := range lineDirections {
				if classifyDirection(board, x, y, dir[0], dir[1], player) == PatternOpenFour {
					return Move{X: x, Y: y}, true
				}
			}
		}
	}
	return InvalidMove, false
}

// directionalCounts tallies, per empty cell, how many distinct lines
// reach a four and how many reach an open or broken three.
func directionalCounts(board Board, x, y int, player PlayerColor) (fours, threes int) {
	for _, dir := range lineDirections {
		kind := classifyDirection(board, x, y, dir[0], dir[1], player)
		switch {
		case kind == PatternSimpleFour || kind == PatternOpenFour:
			fours++
		case kind == PatternOpenThree || kind == PatternBrokenThree:
			threes++
		}
	}
	return fours, threes
}

// FindDoubleSimpleFour returns the first cell that creates fours on two
// distinct lines at once. The opponent can only block one.
func FindDoubleSimpleFour(board Board, player PlayerColor) (Move, bool) {
	return findCompound(board, player, func(fours, threes int) bool {
		return fours >= 2
	})
}

// FindFourThreeCombo returns the first cell creating a four on one line
// and an open three on another.
func FindFourThreeCombo(board Board, player PlayerColor) (Move, bool) {
	return findCompound(board, player, func(fours, threes int) bool {
		return fours >= 1 && threes >= 1
	})
}

// FindDoubleOpenThree returns the first cell creating open threes on two
// distinct lines.
func FindDoubleOpenThree(board Board, player PlayerColor) (Move, bool) {
	return findCompound(board, player, func(fours, threes int) bool {
		return threes >= 2
	})
}

func findCompound(board Board, player PlayerColor, match func(fours, threes int) bool) (Move, bool) {
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !board.IsEmpty(x, y) || !board.HasNeighborWithin(x, y, 2) {
				continue
			}
			fours, threes := directionalCounts(board, x, y, player)
			if match(fours, threes) {
				return Move{X: x, Y: y}, true
			}
		}
	}
	return InvalidMove, false
}
