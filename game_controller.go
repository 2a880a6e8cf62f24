package main

import (
	"sync"

	"github.com/google/uuid"
)

// GameController is the mutex facade between the HTTP/WS layer and the
// game. Every session gets a fresh uuid so clients can tell restarts
// apart.
type GameController struct {
	mu     sync.Mutex
	game   Game
	gameID string
}

func NewGameController(settings GameSettings) *GameController {
	return &GameController{
		game:   NewGame(settings),
		gameID: uuid.NewString(),
	}
}

// Snapshot is one consistent view of the session, taken under a single
// lock so status responses never mix two game states.
type Snapshot struct {
	GameID          string
	State           GameState
	Settings        GameSettings
	History         []HistoryEntry
	TurnStartedAtMs int64
}

func (gc *GameController) Snapshot() Snapshot {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return Snapshot{
		GameID:          gc.gameID,
		State:           gc.game.State(),
		Settings:        gc.game.settings,
		History:         gc.game.History().All(),
		TurnStartedAtMs: gc.game.TurnStartedAtMs(),
	}
}

func (gc *GameController) OnCellClicked(x, y int) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	_ = gc.game.SubmitHumanMove(Move{X: x, Y: y})
}

func (gc *GameController) ApplyHumanMove(move Move) (bool, string) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if !gc.game.CurrentPlayerIsHuman() {
		return false, "not human turn"
	}
	return gc.game.TryApplyMove(move)
}

func (gc *GameController) Tick() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.Tick()
}

func (gc *GameController) Settings() GameSettings {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.settings
}

func (gc *GameController) LatestHistoryEntry() (HistoryEntry, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.History().Last()
}

func (gc *GameController) AiThinking() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.AiThinking()
}

func (gc *GameController) AiStats() (SearchStats, bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.AiStats()
}

func (gc *GameController) UndoLastMove() bool {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	return gc.game.UndoLastMove()
}

func (gc *GameController) Reset(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
	gc.gameID = uuid.NewString()
}

func (gc *GameController) StartGame(settings GameSettings) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.Reset(settings)
	gc.game.Start()
	gc.gameID = uuid.NewString()
}

func (gc *GameController) UpdateSettings(update GameSettings, reset bool) {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	if reset {
		gc.game.Reset(update)
		gc.gameID = uuid.NewString()
		return
	}
	gc.game.settings = update
	gc.game.createPlayers()
}

func (gc *GameController) ResetForConfigChange() {
	gc.mu.Lock()
	defer gc.mu.Unlock()
	gc.game.ResetForConfigChange()
}
