package main

import "testing"

func windowFromString(s string) [windowSize]byte {
	var w [windowSize]byte
	copy(w[:], s)
	return w
}

func TestClassifyWindowShapes(t *testing.T) {
	cases := []struct {
		window string
		want   PatternKind
	}{
		{"..MMMMM..", PatternFive},
		{"...MMMM..", PatternOpenFour},
		{"O..MMMM..", PatternOpenFour},
		{"..OMMMM..", PatternSimpleFour},
		{"..MMM.M..", PatternSimpleFour},
		{"..MM.MM..", PatternSimpleFour},
		{"...MM.M..", PatternBrokenThree},
		{"...MMM...", PatternOpenThree},
		{"..OMMM...", PatternSimpleThree},
		{"....MM...", PatternOpenTwo},
		{"...M.M...", PatternOpenTwo},
		{"...OMM...", PatternSimpleTwo},
		{"....M....", PatternOpenOne},
		{"...OMO...", PatternNone},
	}
	for _, tc := range cases {
		w := windowFromString(tc.window)
		if got := classifyWindow(&w); got != tc.want {
			t.Fatalf("window %q: got %v, want %v", tc.window, got, tc.want)
		}
	}
}

// Classification must not depend on scan direction: reading the window
// backwards describes the same line.
func TestClassifyWindowSymmetric(t *testing.T) {
	tags := []byte{'M', 'O', '.'}
	var w, rev [windowSize]byte
	w[windowCenter] = 'M'
	total := 1
	for i := 0; i < windowSize-1; i++ {
		total *= len(tags)
	}
	for n := 0; n < total; n++ {
		v := n
		for i := 0; i < windowSize; i++ {
			if i == windowCenter {
				continue
			}
			w[i] = tags[v%len(tags)]
			v /= len(tags)
		}
		for i := 0; i < windowSize; i++ {
			rev[i] = w[windowSize-1-i]
		}
		got := classifyWindow(&w)
		gotRev := classifyWindow(&rev)
		if got != gotRev {
			t.Fatalf("window %q classified %v but reversed %q classified %v",
				w[:], got, rev[:], gotRev)
		}
	}
}

func TestBuildWindowTagsEdgeAsBlocker(t *testing.T) {
	board := NewBoard(15)
	var w [windowSize]byte
	buildWindow(board, 1, 0, 1, 0, CellBlack, &w)
	// Offsets -4..-2 fall off the left edge.
	for i := 0; i < 3; i++ {
		if w[i] != 'O' {
			t.Fatalf("expected edge cell %d tagged as blocker, got %c", i, w[i])
		}
	}
	if w[windowCenter] != 'M' {
		t.Fatalf("center must be tagged as own stone")
	}
}

func TestEdgeBackedFourIsSimpleNotOpen(t *testing.T) {
	board := NewBoard(15)
	board.Set(0, 0, CellBlack)
	board.Set(1, 0, CellBlack)
	board.Set(2, 0, CellBlack)
	kind := classifyDirection(board, 3, 0, 1, 0, PlayerBlack)
	if kind != PatternSimpleFour {
		t.Fatalf("four backed by the board edge must classify simple, got %v", kind)
	}
}

func TestClassifyDirectionOpenFour(t *testing.T) {
	board := NewBoard(15)
	board.Set(4, 7, CellBlack)
	board.Set(5, 7, CellBlack)
	board.Set(6, 7, CellBlack)
	if kind := classifyDirection(board, 7, 7, 1, 0, PlayerBlack); kind != PatternOpenFour {
		t.Fatalf("expected open four, got %v", kind)
	}
}

func TestClassifyDirectionBlockedByOpponent(t *testing.T) {
	board := NewBoard(15)
	board.Set(3, 7, CellWhite)
	board.Set(4, 7, CellBlack)
	board.Set(5, 7, CellBlack)
	board.Set(6, 7, CellBlack)
	if kind := classifyDirection(board, 7, 7, 1, 0, PlayerBlack); kind != PatternSimpleFour {
		t.Fatalf("expected simple four when one end is blocked, got %v", kind)
	}
}

func TestPatternScoreOrdering(t *testing.T) {
	h := DefaultConfig().Heuristics
	order := []PatternKind{
		PatternFive, PatternOpenFour, PatternSimpleFour, PatternBrokenThree,
		PatternOpenThree, PatternSimpleThree, PatternOpenTwo, PatternSimpleTwo,
		PatternOpenOne,
	}
	for i := 1; i < len(order); i++ {
		if patternScore(order[i-1], h) <= patternScore(order[i], h) {
			t.Fatalf("score for %v must exceed %v", order[i-1], order[i])
		}
	}
}
