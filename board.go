package main

import (
	"errors"
	"fmt"
)

type Cell uint8

const (
	CellEmpty Cell = iota
	CellBlack
	CellWhite
)

var (
	ErrOutOfBounds  = errors.New("move out of bounds")
	ErrCellOccupied = errors.New("cell already occupied")
)

// Board is a square grid stored row-major. A stone counter is kept in
// step with every write so emptiness checks never rescan the grid.
type Board struct {
	size   int
	grid   []Cell
	stones int
}

func NewBoard(boardSize int) Board {
	b := Board{}
	b.Reset(boardSize)
	return b
}

func (b *Board) Reset(boardSize int) {
	cells := boardSize * boardSize
	if cap(b.grid) >= cells && b.size == boardSize {
		for i := range b.grid {
			b.grid[i] = CellEmpty
		}
	} else {
		b.grid = make([]Cell, cells)
	}
	b.size = boardSize
	b.stones = 0
}

func (b Board) At(x, y int) Cell {
	return b.grid[y*b.size+x]
}

func (b *Board) Set(x, y int, value Cell) {
	i := y*b.size + x
	if b.grid[i] == CellEmpty && value != CellEmpty {
		b.stones++
	}
	b.grid[i] = value
}

func (b *Board) Remove(x, y int) {
	i := y*b.size + x
	if b.grid[i] != CellEmpty {
		b.stones--
	}
	b.grid[i] = CellEmpty
}

// Place validates the coordinate before writing. The search hot path uses
// Set/Remove directly; Place is the checked entry point for session moves.
func (b *Board) Place(x, y int, value Cell) error {
	if !b.InBounds(x, y) {
		return ErrOutOfBounds
	}
	if b.At(x, y) != CellEmpty {
		return ErrCellOccupied
	}
	b.Set(x, y, value)
	return nil
}

// Retract undoes a Place. The caller is expected to pair every Place with
// exactly one Retract on the same coordinate.
func (b *Board) Retract(x, y int) {
	b.Remove(x, y)
}

func (b Board) InBounds(x, y int) bool {
	return uint(x) < uint(b.size) && uint(y) < uint(b.size)
}

func (b Board) IsEmpty(x, y int) bool {
	return b.InBounds(x, y) && b.At(x, y) == CellEmpty
}

func (b Board) CountEmpty() int {
	return b.size*b.size - b.stones
}

func (b Board) StoneCount() int {
	return b.stones
}

// HasNeighborWithin reports whether any stone sits within Chebyshev
// distance radius of (x, y). Candidate generation uses this to skip
// cells far from the action.
func (b Board) HasNeighborWithin(x, y, radius int) bool {
	x0, x1 := x-radius, x+radius
	y0, y1 := y-radius, y+radius
	if x0 < 0 {
		x0 = 0
	}
	if y0 < 0 {
		y0 = 0
	}
	if x1 >= b.size {
		x1 = b.size - 1
	}
	if y1 >= b.size {
		y1 = b.size - 1
	}
	for cy := y0; cy <= y1; cy++ {
		row := cy * b.size
		for cx := x0; cx <= x1; cx++ {
			if cx == x && cy == y {
				continue
			}
			if b.grid[row+cx] != CellEmpty {
				return true
			}
		}
	}
	return false
}

func (b Board) Size() int {
	return b.size
}

func (b Board) Clone() Board {
	return Board{
		size:   b.size,
		grid:   append([]Cell(nil), b.grid...),
		stones: b.stones,
	}
}

func (c Cell) String() string {
	switch c {
	case CellBlack:
		return "black"
	case CellWhite:
		return "white"
	default:
		return "empty"
	}
}

func CellFromPlayer(player PlayerColor) Cell {
	if player == PlayerBlack {
		return CellBlack
	}
	return CellWhite
}

func PlayerFromCell(cell Cell) (PlayerColor, error) {
	switch cell {
	case CellBlack:
		return PlayerBlack, nil
	case CellWhite:
		return PlayerWhite, nil
	default:
		return PlayerBlack, fmt.Errorf("empty cell has no player")
	}
}
