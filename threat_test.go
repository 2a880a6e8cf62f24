package main

import "testing"

func TestFindImmediateWinMovesBothEnds(t *testing.T) {
	board := NewBoard(15)
	for x := 5; x <= 8; x++ {
		board.Set(x, 5, CellBlack)
	}
	wins := findImmediateWinMoves(board, PlayerBlack)
	if len(wins) != 2 {
		t.Fatalf("open four has two completion points, got %d: %v", len(wins), wins)
	}
	if !wins[0].Equals(Move{X: 4, Y: 5}) || !wins[1].Equals(Move{X: 9, Y: 5}) {
		t.Fatalf("expected row-major completions (4,5) and (9,5), got %v", wins)
	}
}

func TestFindImmediateWinMovesGapFour(t *testing.T) {
	board := NewBoard(15)
	board.Set(4, 7, CellWhite)
	board.Set(5, 7, CellWhite)
	board.Set(7, 7, CellWhite)
	board.Set(8, 7, CellWhite)
	wins := findImmediateWinMoves(board, PlayerWhite)
	if len(wins) != 1 || !wins[0].Equals(Move{X: 6, Y: 7}) {
		t.Fatalf("expected only the gap (6,7), got %v", wins)
	}
}

func TestEvaluatePointOpenFourBeatsOpenThree(t *testing.T) {
	h := DefaultConfig().Heuristics
	board := NewBoard(15)
	board.Set(4, 7, CellBlack)
	board.Set(5, 7, CellBlack)
	board.Set(6, 7, CellBlack)
	fourScore, fourKind := EvaluatePoint(board, 7, 7, PlayerBlack, h)
	if fourKind != PatternOpenFour {
		t.Fatalf("expected open four placement, got %v", fourKind)
	}

	three := NewBoard(15)
	three.Set(4, 7, CellBlack)
	three.Set(5, 7, CellBlack)
	threeScore, threeKind := EvaluatePoint(three, 6, 7, PlayerBlack, h)
	if threeKind != PatternOpenThree {
		t.Fatalf("expected open three placement, got %v", threeKind)
	}
	if fourScore <= threeScore {
		t.Fatalf("open four (%f) must outscore open three (%f)", fourScore, threeScore)
	}
}

func TestEvaluatePointOccupiedIsNone(t *testing.T) {
	h := DefaultConfig().Heuristics
	board := NewBoard(15)
	board.Set(7, 7, CellBlack)
	score, kind := EvaluatePoint(board, 7, 7, PlayerBlack, h)
	if score != 0 || kind != PatternNone {
		t.Fatalf("occupied cell must evaluate to nothing, got %f %v", score, kind)
	}
}

func TestFindDoubleSimpleFour(t *testing.T) {
	board := NewBoard(15)
	// Horizontal and vertical threes both crossing (7,7).
	for x := 4; x <= 6; x++ {
		board.Set(x, 7, CellBlack)
	}
	for y := 4; y <= 6; y++ {
		board.Set(7, y, CellBlack)
	}
	m, ok := FindDoubleSimpleFour(board, PlayerBlack)
	if !ok || !m.Equals(Move{X: 7, Y: 7}) {
		t.Fatalf("expected double four at (7,7), got %v ok=%v", m, ok)
	}
}

func TestDoubleFourOutscoresSingleFour(t *testing.T) {
	h := DefaultConfig().Heuristics
	board := NewBoard(15)
	for x := 4; x <= 6; x++ {
		board.Set(x, 7, CellBlack)
	}
	for y := 4; y <= 6; y++ {
		board.Set(7, y, CellBlack)
	}
	double, _ := EvaluatePoint(board, 7, 7, PlayerBlack, h)

	single := NewBoard(15)
	for x := 4; x <= 6; x++ {
		single.Set(x, 7, CellBlack)
	}
	one, _ := EvaluatePoint(single, 7, 7, PlayerBlack, h)
	if double <= one {
		t.Fatalf("double-four point (%f) must outscore single four (%f)", double, one)
	}
}

func TestFindFourThreeCombo(t *testing.T) {
	board := NewBoard(15)
	for x := 4; x <= 6; x++ {
		board.Set(x, 7, CellBlack)
	}
	board.Set(7, 5, CellBlack)
	board.Set(7, 6, CellBlack)
	m, ok := FindFourThreeCombo(board, PlayerBlack)
	if !ok || !m.Equals(Move{X: 7, Y: 7}) {
		t.Fatalf("expected four-three at (7,7), got %v ok=%v", m, ok)
	}
}

func TestFindDoubleOpenThree(t *testing.T) {
	board := NewBoard(15)
	board.Set(5, 7, CellBlack)
	board.Set(6, 7, CellBlack)
	board.Set(7, 5, CellBlack)
	board.Set(7, 6, CellBlack)
	m, ok := FindDoubleOpenThree(board, PlayerBlack)
	if !ok || !m.Equals(Move{X: 7, Y: 7}) {
		t.Fatalf("expected double open three at (7,7), got %v ok=%v", m, ok)
	}
}

func TestFindOpenFourMove(t *testing.T) {
	board := NewBoard(15)
	board.Set(5, 7, CellWhite)
	board.Set(6, 7, CellWhite)
	board.Set(7, 7, CellWhite)
	m, ok := findOpenFourMove(board, PlayerWhite)
	if !ok || !m.Equals(Move{X: 4, Y: 7}) {
		t.Fatalf("expected first open-four point (4,7), got %v ok=%v", m, ok)
	}
}

func TestFindCriticalThreatsSortedDesc(t *testing.T) {
	h := DefaultConfig().Heuristics
	board := NewBoard(15)
	// Strong horizontal three plus a weaker detached pair.
	board.Set(4, 7, CellBlack)
	board.Set(5, 7, CellBlack)
	board.Set(6, 7, CellBlack)
	board.Set(10, 11, CellBlack)
	board.Set(11, 11, CellBlack)
	threats := FindCriticalThreats(board, PlayerBlack, PatternOpenThree, h)
	if len(threats) == 0 {
		t.Fatalf("expected threats")
	}
	for i := 1; i < len(threats); i++ {
		prev, cur := threats[i-1], threats[i]
		if cur.Level > prev.Level || (cur.Level == prev.Level && cur.Score > prev.Score) {
			t.Fatalf("threats not sorted by level then score at %d", i)
		}
	}
	if threats[0].Level < PatternOpenFour {
		t.Fatalf("strongest threat should reach the four, got %v", threats[0].Level)
	}
}

func TestFindCriticalThreatsLevelOutranksScore(t *testing.T) {
	h := DefaultConfig().Heuristics
	board := NewBoard(15)
	// A fork point whose compound bonus outscores any plain four.
	board.Set(5, 7, CellBlack)
	board.Set(6, 7, CellBlack)
	board.Set(7, 5, CellBlack)
	board.Set(7, 6, CellBlack)
	// A capped three elsewhere: its extension makes a simple four.
	board.Set(4, 12, CellBlack)
	board.Set(5, 12, CellBlack)
	board.Set(6, 12, CellBlack)
	board.Set(7, 12, CellWhite)

	threats := FindCriticalThreats(board, PlayerBlack, PatternOpenThree, h)
	if len(threats) < 2 {
		t.Fatalf("expected both the four point and the fork point, got %v", threats)
	}
	if threats[0].Level != PatternSimpleFour {
		t.Fatalf("the four-making point must sort first, got %v at %v", threats[0].Level, threats[0].Move)
	}
	var fork ThreatPoint
	for _, th := range threats {
		if th.Move.Equals(Move{X: 7, Y: 7}) {
			fork = th
		}
	}
	if fork.Level != PatternOpenThree {
		t.Fatalf("fork point missing from threats: %v", threats)
	}
	if fork.Score <= threats[0].Score {
		t.Fatalf("the fork should carry the larger raw score (%.0f vs %.0f)", fork.Score, threats[0].Score)
	}
}
