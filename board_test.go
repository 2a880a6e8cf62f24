package main

import (
	"errors"
	"reflect"
	"testing"
)

func TestPlaceRejectsOutOfBounds(t *testing.T) {
	board := NewBoard(15)
	if err := board.Place(-1, 0, CellBlack); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
	if err := board.Place(0, 15, CellBlack); !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestPlaceRejectsOccupied(t *testing.T) {
	board := NewBoard(15)
	if err := board.Place(7, 7, CellBlack); err != nil {
		t.Fatalf("expected place to succeed, got %v", err)
	}
	if err := board.Place(7, 7, CellWhite); !errors.Is(err, ErrCellOccupied) {
		t.Fatalf("expected ErrCellOccupied, got %v", err)
	}
	if board.At(7, 7) != CellBlack {
		t.Fatalf("failed place must not overwrite the cell")
	}
}

func TestPlaceRetractRestoresBoard(t *testing.T) {
	board := NewBoard(15)
	board.Set(7, 7, CellBlack)
	board.Set(8, 8, CellWhite)
	before := board.Clone()

	if err := board.Place(9, 9, CellBlack); err != nil {
		t.Fatalf("place failed: %v", err)
	}
	board.Retract(9, 9)

	if !reflect.DeepEqual(before, board) {
		t.Fatalf("board not bit-identical after place/retract")
	}
}

func TestHasNeighborWithin(t *testing.T) {
	board := NewBoard(15)
	board.Set(7, 7, CellBlack)

	if !board.HasNeighborWithin(5, 7, 2) {
		t.Fatalf("expected neighbor within radius 2")
	}
	if board.HasNeighborWithin(4, 7, 2) {
		t.Fatalf("did not expect neighbor at distance 3")
	}
	if board.HasNeighborWithin(7, 7, 2) {
		t.Fatalf("a stone is not its own neighbor")
	}
	if !board.HasNeighborWithin(9, 9, 2) {
		t.Fatalf("expected diagonal neighbor at chebyshev distance 2")
	}
}

func TestStoneCount(t *testing.T) {
	board := NewBoard(9)
	if board.StoneCount() != 0 {
		t.Fatalf("fresh board should hold no stones")
	}
	board.Set(0, 0, CellBlack)
	board.Set(8, 8, CellWhite)
	if got := board.StoneCount(); got != 2 {
		t.Fatalf("expected 2 stones, got %d", got)
	}
}
