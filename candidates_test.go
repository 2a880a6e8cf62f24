package main

import "testing"

func TestCandidateMovesEmptyBoardIsCenter(t *testing.T) {
	h := DefaultConfig().Heuristics
	board := NewBoard(15)
	cands := candidateMoves(board, PlayerBlack, 10, h)
	if len(cands) != 1 || !cands[0].move.Equals(Move{X: 7, Y: 7}) {
		t.Fatalf("empty board should yield center only, got %v", cands)
	}
}

func TestCandidateMovesStayNearStones(t *testing.T) {
	h := DefaultConfig().Heuristics
	board := NewBoard(15)
	board.Set(7, 7, CellBlack)
	cands := candidateMoves(board, PlayerWhite, 0, h)
	if len(cands) == 0 {
		t.Fatalf("expected candidates around the stone")
	}
	for _, c := range cands {
		dx := c.move.X - 7
		dy := c.move.Y - 7
		if dx < -2 || dx > 2 || dy < -2 || dy > 2 {
			t.Fatalf("candidate %v outside radius 2", c.move)
		}
		if !board.IsEmpty(c.move.X, c.move.Y) {
			t.Fatalf("candidate %v is occupied", c.move)
		}
	}
}

func TestCandidateMovesRespectsLimit(t *testing.T) {
	h := DefaultConfig().Heuristics
	board := NewBoard(15)
	board.Set(7, 7, CellBlack)
	board.Set(8, 8, CellWhite)
	cands := candidateMoves(board, PlayerBlack, 5, h)
	if len(cands) > 5 {
		t.Fatalf("limit 5 exceeded: %d candidates", len(cands))
	}
}

func TestCandidateMovesKeepsForcedDefense(t *testing.T) {
	h := DefaultConfig().Heuristics
	board := NewBoard(15)
	// Opponent open four far from any noise: the block must survive a tiny limit.
	for x := 5; x <= 8; x++ {
		board.Set(x, 5, CellWhite)
	}
	cands := candidateMoves(board, PlayerBlack, 1, h)
	foundBlock := false
	for _, c := range cands {
		if c.move.Equals(Move{X: 4, Y: 5}) || c.move.Equals(Move{X: 9, Y: 5}) {
			foundBlock = true
		}
	}
	if !foundBlock {
		t.Fatalf("forced block missing from pruned candidates: %v", cands)
	}
}

func TestCandidateMovesPreferBlockingEqualThreat(t *testing.T) {
	h := DefaultConfig().Heuristics
	board := NewBoard(15)
	// Mirrored open threes, equidistant from the center.
	for x := 4; x <= 6; x++ {
		board.Set(x, 5, CellBlack)
		board.Set(x, 9, CellWhite)
	}
	cands := candidateMoves(board, PlayerBlack, 0, h)
	var extend, block float64
	for _, c := range cands {
		switch {
		case c.move.Equals(Move{X: 7, Y: 5}):
			extend = c.score
		case c.move.Equals(Move{X: 7, Y: 9}):
			block = c.score
		}
	}
	if extend == 0 || block == 0 {
		t.Fatalf("expected both line ends among candidates: %v", cands)
	}
	if block <= extend {
		t.Fatalf("blocking the opposing three (%.0f) must outrank extending our own (%.0f)", block, extend)
	}
}

func TestCandidateMovesCenterPull(t *testing.T) {
	h := DefaultConfig().Heuristics
	board := NewBoard(15)
	board.Set(3, 7, CellBlack)
	cands := candidateMoves(board, PlayerWhite, 0, h)
	var inner, outer float64
	for _, c := range cands {
		switch {
		case c.move.Equals(Move{X: 5, Y: 7}):
			inner = c.score
		case c.move.Equals(Move{X: 1, Y: 7}):
			outer = c.score
		}
	}
	if inner == 0 || outer == 0 {
		t.Fatalf("expected both flanking cells among candidates: %v", cands)
	}
	if inner <= outer {
		t.Fatalf("with equal threats the cell nearer the center must rank higher: (5,7)=%.1f (1,7)=%.1f", inner, outer)
	}
}

func TestCandidateMovesKeepsOwnThreeUnderPressure(t *testing.T) {
	h := DefaultConfig().Heuristics
	board := NewBoard(15)
	// A white double-three cluster floods the top of the ranking.
	for x := 4; x <= 6; x++ {
		board.Set(x, 7, CellWhite)
	}
	for y := 4; y <= 6; y++ {
		board.Set(7, y, CellWhite)
	}
	// A detached black pair whose extension makes an open three.
	board.Set(11, 3, CellBlack)
	board.Set(12, 3, CellBlack)
	cands := candidateMoves(board, PlayerBlack, 3, h)
	found := false
	for _, c := range cands {
		if c.move.Equals(Move{X: 10, Y: 3}) || c.move.Equals(Move{X: 13, Y: 3}) {
			found = true
		}
	}
	if !found {
		t.Fatalf("own open-three extension must survive the candidate limit")
	}
}

func TestCandidateMovesSortedDesc(t *testing.T) {
	h := DefaultConfig().Heuristics
	board := NewBoard(15)
	board.Set(7, 7, CellBlack)
	board.Set(8, 7, CellBlack)
	cands := candidateMoves(board, PlayerBlack, 0, h)
	for i := 1; i < len(cands); i++ {
		if cands[i].score > cands[i-1].score {
			t.Fatalf("candidates not sorted descending at %d", i)
		}
	}
}
