package main

import "sync"

// ZobristTable holds one random key per cell and color, a key that
// toggles with the side to move, and a salt separating white-rooted
// search keys from black-rooted ones. Tables are memoized per board
// size so hashes stay comparable across searches.
type ZobristTable struct {
	size  int
	black []uint64
	white []uint64
	side  uint64
	root  uint64
}

var zobristCache = struct {
	sync.Mutex
	bySize map[int]*ZobristTable
}{bySize: make(map[int]*ZobristTable)}

func GetZobrist(size int) *ZobristTable {
	zobristCache.Lock()
	defer zobristCache.Unlock()
	if t, ok := zobristCache.bySize[size]; ok {
		return t
	}
	seed := uint64(size)*0x2545f4914f6cdd1d + 0x9e3779b97f4a7c15
	t := &ZobristTable{
		size:  size,
		black: make([]uint64, size*size),
		white: make([]uint64, size*size),
	}
	for i := range t.black {
		t.black[i] = splitmix(&seed)
	}
	for i := range t.white {
		t.white[i] = splitmix(&seed)
	}
	t.side = splitmix(&seed)
	t.root = splitmix(&seed)
	zobristCache.bySize[size] = t
	return t
}

func (z *ZobristTable) stone(x, y int, player PlayerColor) uint64 {
	i := y*z.size + x
	if player == PlayerWhite {
		return z.white[i]
	}
	return z.black[i]
}

func ComputeHash(state GameState) uint64 {
	z := GetZobrist(state.Board.Size())
	var hash uint64
	for i, cell := range state.Board.grid {
		switch cell {
		case CellBlack:
			hash ^= z.black[i]
		case CellWhite:
			hash ^= z.white[i]
		}
	}
	if state.ToMove == PlayerWhite {
		hash ^= z.side
	}
	return hash
}

// UpdateHashAfterMove folds a single placed stone plus the side-to-move
// swap into the running hash. prevToMove is the side that just played.
func UpdateHashAfterMove(state *GameState, move Move, player PlayerColor, prevToMove PlayerColor) {
	z := GetZobrist(state.Board.Size())
	hash := state.Hash
	if prevToMove == PlayerWhite {
		hash ^= z.side
	}
	hash ^= z.stone(move.X, move.Y, player)
	if state.ToMove == PlayerWhite {
		hash ^= z.side
	}
	state.Hash = hash
}

// hashAfterPlace toggles one stone and the side bit. The search uses this
// symmetric update for both place and retract.
func hashAfterPlace(z *ZobristTable, hash uint64, move Move, player PlayerColor) uint64 {
	return hash ^ z.stone(move.X, move.Y, player) ^ z.side
}

// splitmix advances a splitmix64 state in place and returns the next
// value.
func splitmix(state *uint64) uint64 {
	*state += 0x9e3779b97f4a7c15
	v := *state
	v = (v ^ (v >> 30)) * 0xbf58476d1ce4e5b9
	v = (v ^ (v >> 27)) * 0x94d049bb133111eb
	return v ^ (v >> 31)
}
