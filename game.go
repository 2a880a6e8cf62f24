package main

import (
	"log"
	"time"
)

type Game struct {
	settings    GameSettings
	rules       Rules
	state       GameState
	history     MoveHistory
	blackPlayer Agent
	whitePlayer Agent
	turnStart   time.Time
}

func NewGame(settings GameSettings) Game {
	g := Game{}
	g.Reset(settings)
	return g
}

func (g *Game) Reset(settings GameSettings) {
	g.settings = settings
	g.rules = NewRules(settings)
	g.state.Reset(settings)
	g.history.Clear()
	g.createPlayers()
	g.turnStart = time.Now()
	g.logMatchup()
}

func (g *Game) Start() {
	if g.state.Status == StatusNotStarted {
		g.state.Status = StatusRunning
		g.turnStart = time.Now()
	}
}

func (g *Game) State() GameState {
	return g.state.Clone()
}

func (g *Game) Settings() GameSettings {
	return g.settings
}

func (g *Game) History() MoveHistory {
	return g.history
}

func (g *Game) TurnStartedAtMs() int64 {
	if g.turnStart.IsZero() {
		return 0
	}
	return g.turnStart.UnixMilli()
}

func (g *Game) TryApplyMove(move Move) (bool, string) {
	if g.state.Status != StatusRunning {
		return false, "game not running"
	}
	player := g.currentPlayer()
	isAiMove := player != nil && !player.IsHuman()
	ok, reason := g.rules.IsLegalDefault(g.state, move)
	if !ok {
		g.state.LastMessage = "Illegal move: " + reason
		return false, g.state.LastMessage
	}
	g.state.LastMessage = ""
	elapsedMs := float64(time.Since(g.turnStart).Milliseconds())
	prevToMove := g.state.ToMove
	cell := CellFromPlayer(prevToMove)
	g.state.Board.Set(move.X, move.Y, cell)
	g.state.LastMove = move
	g.state.HasLastMove = true
	g.state.WinningLine = nil

	g.history.Push(HistoryEntry{Move: move, Player: prevToMove, ElapsedMs: elapsedMs, IsAi: isAiMove, Depth: move.Depth})
	g.logMovePlayed(move, elapsedMs, isAiMove)

	if g.rules.IsWin(g.state.Board, move) {
		if line, found := g.rules.FindWinningLine(g.state.Board, move); found {
			g.state.WinningLine = line
		}
		if prevToMove == PlayerBlack {
			g.state.Status = StatusBlackWon
		} else {
			g.state.Status = StatusWhiteWon
		}
		g.logWin(prevToMove)
		UpdateHashAfterMove(&g.state, move, prevToMove, prevToMove)
		return true, ""
	}
	if g.rules.IsDraw(g.state.Board) {
		g.state.Status = StatusDraw
		UpdateHashAfterMove(&g.state, move, prevToMove, prevToMove)
		return true, ""
	}

	g.state.ToMove = otherPlayer(prevToMove)
	UpdateHashAfterMove(&g.state, move, prevToMove, prevToMove)
	g.turnStart = time.Now()
	return true, ""
}

// UndoLastMove takes back the most recent move and hands the turn back
// to the player who made it. A finished game returns to running.
func (g *Game) UndoLastMove() bool {
	entry, ok := g.history.Pop()
	if !ok {
		return false
	}
	g.state.Board.Retract(entry.Move.X, entry.Move.Y)
	g.state.ToMove = entry.Player
	g.state.Status = StatusRunning
	g.state.WinningLine = nil
	g.state.LastMessage = ""
	if last, ok := g.history.Last(); ok {
		g.state.LastMove = last.Move
		g.state.HasLastMove = true
	} else {
		g.state.LastMove = InvalidMove
		g.state.HasLastMove = false
	}
	g.state.recomputeHash()
	g.turnStart = time.Now()
	return true
}

// Tick advances the game one step: applies a pending human move, or
// drives the AI worker. Returns true when a move was applied.
func (g *Game) Tick() bool {
	if g.state.Status != StatusRunning {
		return false
	}
	player := g.currentPlayer()
	if player == nil {
		return false
	}
	if player.IsHuman() {
		if human, ok := player.(*HumanAgent); ok {
			if move, pending := human.DequeueMove(); pending {
				applied, _ := g.TryApplyMove(move)
				return applied
			}
		}
		return false
	}
	ai, ok := player.(*AIPlayer)
	if ok {
		if ai.HasMoveReady() {
			move := ai.TakeMove()
			applied, _ := g.TryApplyMove(move)
			return applied
		}
		if !ai.IsThinking() {
			ai.StartThinking(g.state.Clone(), g.rules)
		}
		return false
	}
	move := player.ChooseMove(g.state.Clone(), g.rules)
	applied, _ := g.TryApplyMove(move)
	return applied
}

func (g *Game) SubmitHumanMove(move Move) bool {
	player := g.currentPlayer()
	if player == nil || !player.IsHuman() {
		return false
	}
	human, ok := player.(*HumanAgent)
	if !ok {
		return false
	}
	human.QueueMove(move)
	return true
}

func (g *Game) CurrentPlayerIsHuman() bool {
	player := g.currentPlayer()
	return player != nil && player.IsHuman()
}

func (g *Game) AiThinking() bool {
	ai, ok := g.currentPlayer().(*AIPlayer)
	return ok && ai.IsThinking()
}

func (g *Game) AiStats() (SearchStats, bool) {
	for _, p := range []Agent{g.blackPlayer, g.whitePlayer} {
		if ai, ok := p.(*AIPlayer); ok {
			return ai.LastStats(), true
		}
	}
	return SearchStats{}, false
}

func (g *Game) currentPlayer() Agent {
	return g.playerForColor(g.state.ToMove)
}

func (g *Game) playerForColor(color PlayerColor) Agent {
	if color == PlayerBlack {
		return g.blackPlayer
	}
	return g.whitePlayer
}

func (g *Game) createPlayers() {
	if g.settings.BlackType == PlayerHuman {
		g.blackPlayer = &HumanAgent{}
	} else {
		g.blackPlayer = NewAIPlayer(g.settings.Difficulty)
	}
	if g.settings.WhiteType == PlayerHuman {
		g.whitePlayer = &HumanAgent{}
	} else {
		g.whitePlayer = NewAIPlayer(g.settings.Difficulty)
	}
}

func (g *Game) ResetForConfigChange() {
	if aiBlack, ok := g.blackPlayer.(*AIPlayer); ok {
		aiBlack.ResetForConfigChange()
	}
	if aiWhite, ok := g.whitePlayer.(*AIPlayer); ok {
		aiWhite.ResetForConfigChange()
	}
}

func (g *Game) logMatchup() {
	label := func(t PlayerType) string {
		if t == PlayerAI {
			return "AI"
		}
		return "Human"
	}
	log.Printf("[backend] new game: black=%s white=%s difficulty=%s size=%d",
		label(g.settings.BlackType), label(g.settings.WhiteType),
		g.settings.Difficulty, g.settings.BoardSize)
}

func (g *Game) logMovePlayed(move Move, elapsedMs float64, isAiMove bool) {
	who := "human"
	if isAiMove {
		who = "ai"
	}
	log.Printf("[backend] %s played (%d,%d) in %.0fms", who, move.X, move.Y, elapsedMs)
}

func (g *Game) logWin(player PlayerColor) {
	log.Printf("[backend] %v wins by alignment", CellFromPlayer(player))
}
