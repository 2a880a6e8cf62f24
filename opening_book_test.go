package main

import "testing"

func TestOpeningMoveIsCenter(t *testing.T) {
	board := NewBoard(15)
	if m := openingMove(board); !m.Equals(Move{X: 7, Y: 7}) {
		t.Fatalf("expected (7,7), got %v", m)
	}
	small := NewBoard(9)
	if m := openingMove(small); !m.Equals(Move{X: 4, Y: 4}) {
		t.Fatalf("expected (4,4), got %v", m)
	}
}

func TestBookReplyStepsTowardCenter(t *testing.T) {
	board := NewBoard(15)
	board.Set(3, 3, CellWhite)
	if m := bookReplyToFirstStone(board, Move{X: 3, Y: 3}); !m.Equals(Move{X: 4, Y: 4}) {
		t.Fatalf("expected (4,4), got %v", m)
	}

	edge := NewBoard(15)
	edge.Set(14, 7, CellWhite)
	if m := bookReplyToFirstStone(edge, Move{X: 14, Y: 7}); !m.Equals(Move{X: 13, Y: 7}) {
		t.Fatalf("expected (13,7), got %v", m)
	}
}

func TestBookReplyToCenterStone(t *testing.T) {
	board := NewBoard(15)
	board.Set(7, 7, CellBlack)
	m := bookReplyToFirstStone(board, Move{X: 7, Y: 7})
	if !m.Equals(Move{X: 6, Y: 6}) {
		t.Fatalf("expected diagonal contact (6,6), got %v", m)
	}
}

func TestFindSingleStone(t *testing.T) {
	board := NewBoard(15)
	if _, ok := findSingleStone(board); ok {
		t.Fatalf("empty board has no single stone")
	}
	board.Set(5, 9, CellBlack)
	stone, ok := findSingleStone(board)
	if !ok || !stone.Equals(Move{X: 5, Y: 9}) {
		t.Fatalf("expected (5,9), got %v ok=%v", stone, ok)
	}
	board.Set(6, 9, CellWhite)
	if _, ok := findSingleStone(board); ok {
		t.Fatalf("two stones should not count as single")
	}
}
