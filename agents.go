package main

import "sync"

// Agent is one seat at the board: a human feeding moves through the API
// or an engine worker.
type Agent interface {
	IsHuman() bool
	ChooseMove(state GameState, rules Rules) Move
}

// HumanAgent buffers the last move a human submitted until the game
// loop collects it. Submitting again before the loop runs replaces the
// buffered move.
type HumanAgent struct {
	mu     sync.Mutex
	queued *Move
}

func (h *HumanAgent) IsHuman() bool {
	return true
}

// ChooseMove is never consulted for humans; the game loop drains the
// queue instead.
func (h *HumanAgent) ChooseMove(GameState, Rules) Move {
	return InvalidMove
}

func (h *HumanAgent) QueueMove(move Move) {
	h.mu.Lock()
	m := move
	h.queued = &m
	h.mu.Unlock()
}

func (h *HumanAgent) DequeueMove() (Move, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.queued == nil {
		return InvalidMove, false
	}
	move := *h.queued
	h.queued = nil
	return move, true
}
