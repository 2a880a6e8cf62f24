package main

import "testing"

func TestComputeHashDistinguishesPositions(t *testing.T) {
	state := DefaultGameState(DefaultGameSettings())
	empty := ComputeHash(state)

	state.Board.Set(7, 7, CellBlack)
	withBlack := ComputeHash(state)
	if withBlack == empty {
		t.Fatalf("placing a stone should change the hash")
	}

	state.Board.Remove(7, 7)
	state.Board.Set(7, 7, CellWhite)
	withWhite := ComputeHash(state)
	if withWhite == withBlack {
		t.Fatalf("stone color should change the hash")
	}
}

func TestComputeHashIncludesSideToMove(t *testing.T) {
	state := DefaultGameState(DefaultGameSettings())
	state.Board.Set(7, 7, CellBlack)
	state.ToMove = PlayerBlack
	blackToMove := ComputeHash(state)
	state.ToMove = PlayerWhite
	whiteToMove := ComputeHash(state)
	if blackToMove == whiteToMove {
		t.Fatalf("side to move should change the hash")
	}
}

func TestUpdateHashAfterMoveMatchesRecompute(t *testing.T) {
	state := DefaultGameState(DefaultGameSettings())
	state.Board.Set(7, 7, CellBlack)
	state.ToMove = PlayerWhite
	state.recomputeHash()

	move := Move{X: 8, Y: 8}
	state.Board.Set(move.X, move.Y, CellWhite)
	prev := state.ToMove
	state.ToMove = PlayerBlack
	UpdateHashAfterMove(&state, move, PlayerWhite, prev)

	if state.Hash != ComputeHash(state) {
		t.Fatalf("incremental hash %x != recomputed %x", state.Hash, ComputeHash(state))
	}
}

func TestZobristTableIsStablePerSize(t *testing.T) {
	a := GetZobrist(15)
	b := GetZobrist(15)
	if a != b {
		t.Fatalf("same size should return the same table")
	}
	c := GetZobrist(19)
	if c == a {
		t.Fatalf("different sizes should not share a table")
	}
	if a.stone(0, 0, PlayerBlack) == a.stone(0, 0, PlayerWhite) {
		t.Fatalf("colors should have distinct keys")
	}
}
