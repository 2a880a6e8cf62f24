package main

// PatternKind ranks line shapes from nothing up to a completed five.
// Ordering matters: selectors compare kinds directly.
type PatternKind int

const (
	PatternNone PatternKind = iota
	PatternOpenOne
	PatternSimpleTwo
	PatternOpenTwo
	PatternSimpleThree
	PatternOpenThree
	PatternBrokenThree
	PatternSimpleFour
	PatternOpenFour
	PatternFive
)

func (k PatternKind) String() string {
	switch k {
	case PatternFive:
		return "five"
	case PatternOpenFour:
		return "open_four"
	case PatternSimpleFour:
		return "simple_four"
	case PatternBrokenThree:
		return "broken_three"
	case PatternOpenThree:
		return "open_three"
	case PatternSimpleThree:
		return "simple_three"
	case PatternOpenTwo:
		return "open_two"
	case PatternSimpleTwo:
		return "simple_two"
	case PatternOpenOne:
		return "open_one"
	default:
		return "none"
	}
}

const (
	windowRadius = 4
	windowSize   = windowRadius*2 + 1
	windowCenter = windowRadius
)

// Window tags: 'M' own stone (including the probed placement),
// 'O' opponent stone or board edge, '.' empty. The edge shares a tag with
// the opponent on purpose: both kill a line the same way.
type patternEntry struct {
	kind   PatternKind
	shapes []string
}

// Ordered strongest first; classification returns the first shape that
// matches a span containing the window center. Every shape's reversal is
// also in the table so classification is stable under 180 degree flips.
var patternTable = []patternEntry{
	{PatternFive, []string{"MMMMM"}},
	{PatternOpenFour, []string{".MMMM."}},
	{PatternSimpleFour, []string{"OMMMM.", ".MMMMO", "MMM.M", "M.MMM", "MM.MM"}},
	{PatternBrokenThree, []string{".MM.M.", ".M.MM."}},
	{PatternOpenThree, []string{".MMM."}},
	{PatternSimpleThree, []string{"OMMM..", "..MMMO", "OMM.M.", ".M.MMO", "OM.MM.", ".MM.MO"}},
	{PatternOpenTwo, []string{".MM.", ".M.M."}},
	{PatternSimpleTwo, []string{"OMM..", "..MMO", "OM.M.", ".M.MO"}},
	{PatternOpenOne, []string{".M."}},
}

// buildWindow fills a 9-cell line window centered on (x, y) along
// (dx, dy), tagging the center as the probing player's own stone.
func buildWindow(board Board, x, y, dx, dy int, playerCell Cell, window *[windowSize]byte) {
	for i := -windowRadius; i <= windowRadius; i++ {
		cx := x + i*dx
		cy := y + i*dy
		tag := byte('O')
		if board.InBounds(cx, cy) {
			switch board.At(cx, cy) {
			case CellEmpty:
				tag = '.'
			case playerCell:
				tag = 'M'
			}
		}
		window[i+windowRadius] = tag
	}
	window[windowCenter] = 'M'
}

// classifyWindow returns the strongest pattern whose span covers the
// center cell.
func classifyWindow(window *[windowSize]byte) PatternKind {
	for _, entry := range patternTable {
		for _, shape := range entry.shapes {
			if matchShapeAtCenter(window, shape) {
				return entry.kind
			}
		}
	}
	return PatternNone
}

func matchShapeAtCenter(window *[windowSize]byte, shape string) bool {
	n := len(shape)
	for start := 0; start+n <= windowSize; start++ {
		if windowCenter < start || windowCenter >= start+n {
			continue
		}
		matched := true
		for i := 0; i < n; i++ {
			if window[start+i] != shape[i] {
				matched = false
				break
			}
		}
		if matched {
			return true
		}
	}
	return false
}

// classifyDirection probes (x, y) for player along one direction without
// mutating the board.
func classifyDirection(board Board, x, y, dx, dy int, player PlayerColor) PatternKind {
	var window [windowSize]byte
	buildWindow(board, x, y, dx, dy, CellFromPlayer(player), &window)
	return classifyWindow(&window)
}

func patternScore(kind PatternKind, h HeuristicConfig) float64 {
	switch kind {
	case PatternFive:
		return h.Five
	case PatternOpenFour:
		return h.Open4
	case PatternSimpleFour:
		return h.Simple4
	case PatternBrokenThree:
		return h.Broken3
	case PatternOpenThree:
		return h.Open3
	case PatternSimpleThree:
		return h.Simple3
	case PatternOpenTwo:
		return h.Open2
	case PatternSimpleTwo:
		return h.Simple2
	case PatternOpenOne:
		return h.Open1
	default:
		return 0
	}
}

var lineDirections = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
