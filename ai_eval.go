package main

import "sync"

const evalInf = 1_000_000_000.0

type ThreatTotals struct {
	Five    int
	Open4   int
	Simple4 int
	Broken3 int
	Open3   int
	Simple3 int
	Open2   int
	Simple2 int
}

type evalPattern struct {
	pattern string
	apply   func(*ThreatTotals)
}

// Line tokens carry an 'O' sentinel on both ends so the edge reads as a
// blocker. Ordered strongest first; accumulatePatterns takes the first
// match at each offset.
var evalPatterns = [...]evalPattern{
	{pattern: "MMMMM", apply: func(t *ThreatTotals) { t.Five++ }},
	{pattern: ".MMMM.", apply: func(t *ThreatTotals) { t.Open4++ }},
	{pattern: "OMMMM.", apply: func(t *ThreatTotals) { t.Simple4++ }},
	{pattern: ".MMMMO", apply: func(t *ThreatTotals) { t.Simple4++ }},
	{pattern: "MMM.M", apply: func(t *ThreatTotals) { t.Simple4++ }},
	{pattern: "M.MMM", apply: func(t *ThreatTotals) { t.Simple4++ }},
	{pattern: "MM.MM", apply: func(t *ThreatTotals) { t.Simple4++ }},
	{pattern: ".MM.M.", apply: func(t *ThreatTotals) { t.Broken3++ }},
	{pattern: ".M.MM.", apply: func(t *ThreatTotals) { t.Broken3++ }},
	{pattern: ".MMM.", apply: func(t *ThreatTotals) { t.Open3++ }},
	{pattern: "OMMM.", apply: func(t *ThreatTotals) { t.Simple3++ }},
	{pattern: ".MMMO", apply: func(t *ThreatTotals) { t.Simple3++ }},
	{pattern: ".MM.", apply: func(t *ThreatTotals) { t.Open2++ }},
	{pattern: ".M.M.", apply: func(t *ThreatTotals) { t.Open2++ }},
	{pattern: "OMM.", apply: func(t *ThreatTotals) { t.Simple2++ }},
	{pattern: ".MMO", apply: func(t *ThreatTotals) { t.Simple2++ }},
}

type lineCache struct {
	mu    sync.Mutex
	lines map[int][][]int
}

var cachedLines = &lineCache{lines: make(map[int][][]int)}

func getLinesForSize(size int) [][]int {
	cachedLines.mu.Lock()
	defer cachedLines.mu.Unlock()
	if lines, ok := cachedLines.lines[size]; ok {
		return lines
	}
	lines := buildLines(size)
	cachedLines.lines[size] = lines
	return lines
}

func buildLines(size int) [][]int {
	lines := [][]int{}
	if size <= 0 {
		return lines
	}
	for y := 0; y < size; y++ {
		line := make([]int, 0, size)
		for x := 0; x < size; x++ {
			line = append(line, y*size+x)
		}
		lines = append(lines, line)
	}
	for x := 0; x < size; x++ {
		line := make([]int, 0, size)
		for y := 0; y < size; y++ {
			line = append(line, y*size+x)
		}
		lines = append(lines, line)
	}
	// Diagonals (\)
	for x := 0; x < size; x++ {
		line := collectDiag(size, x, 0, 1, 1)
		if len(line) >= 5 {
			lines = append(lines, line)
		}
	}
	for y := 1; y < size; y++ {
		line := collectDiag(size, 0, y, 1, 1)
		if len(line) >= 5 {
			lines = append(lines, line)
		}
	}
	// Anti-diagonals (/)
	for x := 0; x < size; x++ {
		line := collectDiag(size, x, 0, -1, 1)
		if len(line) >= 5 {
			lines = append(lines, line)
		}
	}
	for y := 1; y < size; y++ {
		line := collectDiag(size, size-1, y, -1, 1)
		if len(line) >= 5 {
			lines = append(lines, line)
		}
	}
	return lines
}

func collectDiag(size, startX, startY, dx, dy int) []int {
	line := []int{}
	x := startX
	y := startY
	for x >= 0 && y >= 0 && x < size && y < size {
		line = append(line, y*size+x)
		x += dx
		y += dy
	}
	return line
}

// EvaluateBoard scores the whole position from sideToMove's perspective:
// positive favors sideToMove. Completed fives short-circuit to +-evalInf;
// an unanswered open four is scored just below that. Otherwise the score
// mixes contiguous-run strength, centrality, line-pattern totals with
// opponent threats weighted slightly heavier than our own, and a damped
// placement differential over the empty cells next to the action.
func EvaluateBoard(board Board, sideToMove PlayerColor, config Config) float64 {
	h := config.Heuristics
	if h == (HeuristicConfig{}) {
		h = DefaultConfig().Heuristics
	}
	lines := getLinesForSize(board.Size())
	me := sideToMove
	opp := otherPlayer(sideToMove)
	var tokensBufStack [64]byte
	tokensBuf := tokensBufStack[:board.Size()+2]

	var totalsMe ThreatTotals
	var totalsOpp ThreatTotals

	for _, line := range lines {
		tokensMe := buildTokensInto(board, line, me, tokensBuf)
		accumulatePatterns(tokensMe, &totalsMe)
		tokensOpp := buildTokensInto(board, line, opp, tokensBuf)
		accumulatePatterns(tokensOpp, &totalsOpp)
	}

	if totalsMe.Five > 0 {
		return evalInf
	}
	if totalsOpp.Five > 0 {
		return -evalInf
	}
	if totalsOpp.Open4 > 0 {
		return -900000.0
	}
	if totalsMe.Open4 > 0 {
		return 900000.0
	}

	score := weightedSum(totalsMe, h) - h.OppThreatFactor*weightedSum(totalsOpp, h)
	score += runScore(board, me) - runScore(board, opp)
	score += centralityScore(board, me, h) - centralityScore(board, opp, h)
	score += residualScore(board, me, opp, h)
	return score
}

// residualScore sums, over every empty cell touching a stone, what a
// placement there would build for us minus what it would build for the
// opponent. Damped so it tilts quiet positions without drowning the
// line totals.
func residualScore(board Board, me, opp PlayerColor, h HeuristicConfig) float64 {
	size := board.Size()
	total := 0.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !board.IsEmpty(x, y) || !board.HasNeighborWithin(x, y, 1) {
				continue
			}
			attack, _ := EvaluatePoint(board, x, y, me, h)
			defense, _ := EvaluatePoint(board, x, y, opp, h)
			total += attack - defense
		}
	}
	return total * h.ResidualWeight
}

// runScore sums count*count*(2-blockedEnds) over every maximal
// contiguous run for player. A run dead on both ends scores nothing
// unless it already reached five.
func runScore(board Board, player PlayerColor) float64 {
	cell := CellFromPlayer(player)
	size := board.Size()
	total := 0.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if board.At(x, y) != cell {
				continue
			}
			for _, dir := range lineDirections {
				dx, dy := dir[0], dir[1]
				// Count each run once, at its first stone.
				px, py := x-dx, y-dy
				if board.InBounds(px, py) && board.At(px, py) == cell {
					continue
				}
				count := 1 + countContiguous(board, x, y, dx, dy, cell)
				blocked := 0
				if !board.IsEmpty(px, py) {
					blocked++
				}
				ex, ey := x+count*dx, y+count*dy
				if !board.IsEmpty(ex, ey) {
					blocked++
				}
				if blocked == 2 && count < 5 {
					continue
				}
				total += float64(count*count) * float64(2-blocked)
			}
		}
	}
	return total
}

func centralityScore(board Board, player PlayerColor, h HeuristicConfig) float64 {
	cell := CellFromPlayer(player)
	size := board.Size()
	center := size / 2
	total := 0.0
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if board.At(x, y) != cell {
				continue
			}
			total += centerBonus(x, y, center, size, h)
		}
	}
	return total
}

func buildTokensInto(board Board, line []int, player PlayerColor, buf []byte) []byte {
	needed := len(line) + 2
	if cap(buf) < needed {
		buf = make([]byte, needed)
	} else {
		buf = buf[:needed]
	}
	buf[0] = 'O'
	for i, idx := range line {
		cell := board.grid[idx]
		switch cell {
		case CellEmpty:
			buf[i+1] = '.'
		case CellBlack:
			if player == PlayerBlack {
				buf[i+1] = 'M'
			} else {
				buf[i+1] = 'O'
			}
		case CellWhite:
			if player == PlayerWhite {
				buf[i+1] = 'M'
			} else {
				buf[i+1] = 'O'
			}
		}
	}
	buf[needed-1] = 'O'
	return buf
}

func accumulatePatterns(tokens []byte, totals *ThreatTotals) {
	for i := 0; i < len(tokens); i++ {
		for _, entry := range evalPatterns {
			if matchAt(tokens, entry.pattern, i) {
				entry.apply(totals)
				i += len(entry.pattern) - 1
				break
			}
		}
	}
}

func matchAt(tokens []byte, pattern string, start int) bool {
	if start+len(pattern) > len(tokens) {
		return false
	}
	for i := 0; i < len(pattern); i++ {
		if tokens[start+i] != pattern[i] {
			return false
		}
	}
	return true
}

func weightedSum(t ThreatTotals, h HeuristicConfig) float64 {
	return float64(t.Open4)*h.Open4 +
		float64(t.Simple4)*h.Simple4 +
		float64(t.Broken3)*h.Broken3 +
		float64(t.Open3)*h.Open3 +
		float64(t.Simple3)*h.Simple3 +
		float64(t.Open2)*h.Open2 +
		float64(t.Simple2)*h.Simple2
}
