package main

import (
	"math/rand"
	"sync"
	"sync/atomic"
	"time"
)

// AIPlayer picks moves through a difficulty-gated cascade of selectors.
// StartThinking runs the cascade on a worker goroutine so the game loop
// never blocks; Tick polls HasMoveReady and collects via TakeMove.
type AIPlayer struct {
	difficulty Difficulty
	rng        *rand.Rand
	moveMutex  sync.Mutex
	workerDone chan struct{}
	thinking   atomic.Bool
	moveReady  atomic.Bool
	stopSignal atomic.Bool
	readyMove  Move
	lastStats  SearchStats
}

func NewAIPlayer(difficulty Difficulty) *AIPlayer {
	return &AIPlayer{
		difficulty: difficulty,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

func (a *AIPlayer) IsHuman() bool {
	return false
}

func (a *AIPlayer) Difficulty() Difficulty {
	return a.difficulty
}

func (a *AIPlayer) SetDifficulty(d Difficulty) {
	a.difficulty = d
}

// ChooseMove runs the full selector cascade synchronously. The caller
// passes a cloned state; the cascade's probe placements are all paired
// with retracts, so the clone comes back unchanged.
func (a *AIPlayer) ChooseMove(state GameState, rules Rules) Move {
	config := GetConfig()
	tier := tierParams(a.difficulty, config)
	me := state.ToMove
	opp := otherPlayer(me)
	board := &state.Board
	h := config.Heuristics

	// Opening book: first stone takes the center; on Hell the reply to
	// the opponent's first stone is also booked.
	if board.StoneCount() == 0 {
		return openingMove(*board)
	}
	if a.difficulty == DifficultyHell {
		if stone, ok := findSingleStone(*board); ok && board.At(stone.X, stone.Y) == CellFromPlayer(opp) {
			return bookReplyToFirstStone(*board, stone)
		}
	}

	// Win now, or stop the opponent winning now. Every tier does this.
	if wins := findImmediateWinMoves(*board, me); len(wins) > 0 {
		return wins[0]
	}
	if oppWins := findImmediateWinMoves(*board, opp); len(oppWins) > 0 {
		return oppWins[0]
	}

	if a.difficulty >= DifficultyMedium {
		if m, ok := findOpenFourMove(*board, me); ok {
			return m
		}
		if m, ok := findOpenFourMove(*board, opp); ok {
			return m
		}
	}

	if a.difficulty >= DifficultyHard {
		if m, ok := findCompoundShape(*board, me); ok {
			return m
		}
		if m, ok := findCompoundShape(*board, opp); ok {
			return m
		}
	}

	if a.difficulty == DifficultyHell {
		if m, ok := FindVCF(board, rules, me, tier.VcfDepth, tier.ForcingBranch, h); ok {
			return m
		}
		if m, ok := FindVCT(board, rules, me, tier.VctDepth, tier.ForcingBranch, h); ok {
			return m
		}
	}

	if a.difficulty == DifficultyEasy {
		return a.greedyMove(*board, me, tier, h)
	}

	stats := &SearchStats{}
	req := SearchRequest{
		Player:         me,
		Depth:          tier.SearchDepth,
		CandidateLimit: tier.CandidateLimit,
		TimeBudgetMs:   config.AiTimeBudgetMs,
		Stats:          stats,
		ShouldStop:     func() bool { return a.stopSignal.Load() },
	}
	best, _, ok := SearchBestMove(board, rules, config, req)
	a.moveMutex.Lock()
	a.lastStats = *stats
	a.moveMutex.Unlock()
	if ok {
		return best
	}
	return a.greedyMove(*board, me, tier, h)
}

// findCompoundShape returns the first cell that creates a double four, a
// four-three, or a double open three for player, strongest class first.
func findCompoundShape(board Board, player PlayerColor) (Move, bool) {
	if m, ok := FindDoubleSimpleFour(board, player); ok {
		return m, true
	}
	if m, ok := FindFourThreeCombo(board, player); ok {
		return m, true
	}
	return FindDoubleOpenThree(board, player)
}

// greedyMove takes the best-scored candidate, with a dash of randomness
// on Easy so the low tier stays beatable and varied.
func (a *AIPlayer) greedyMove(board Board, player PlayerColor, tier TierParams, h HeuristicConfig) Move {
	cands := candidateMoves(board, player, tier.CandidateLimit, h)
	if len(cands) == 0 {
		return openingMove(board)
	}
	if tier.RandomChance > 0 && len(cands) > 1 && a.rng.Float64() < tier.RandomChance {
		topK := tier.RandomTopK
		if topK > len(cands) {
			topK = len(cands)
		}
		return cands[a.rng.Intn(topK)].move
	}
	return cands[0].move
}

func (a *AIPlayer) StartThinking(state GameState, rules Rules) {
	if a.thinking.Load() {
		return
	}
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.thinking.Store(true)
	a.moveReady.Store(false)
	a.stopSignal.Store(false)

	stateCopy := state.Clone()
	rulesCopy := rules
	done := make(chan struct{})
	a.workerDone = done
	go func() {
		defer close(done)
		move := a.ChooseMove(stateCopy, rulesCopy)
		if a.stopSignal.Load() {
			a.moveReady.Store(false)
			a.thinking.Store(false)
			return
		}
		a.moveMutex.Lock()
		a.readyMove = move
		a.moveMutex.Unlock()
		a.moveReady.Store(true)
		a.thinking.Store(false)
	}()
}

func (a *AIPlayer) IsThinking() bool {
	return a.thinking.Load()
}

func (a *AIPlayer) HasMoveReady() bool {
	return a.moveReady.Load()
}

func (a *AIPlayer) TakeMove() Move {
	a.moveMutex.Lock()
	defer a.moveMutex.Unlock()
	a.moveReady.Store(false)
	return a.readyMove
}

func (a *AIPlayer) LastStats() SearchStats {
	a.moveMutex.Lock()
	defer a.moveMutex.Unlock()
	return a.lastStats
}

func (a *AIPlayer) StopThinking() {
	a.stopSignal.Store(true)
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.stopSignal.Store(false)
}

func (a *AIPlayer) CacheSize() int {
	sharedSearchCache.mu.Lock()
	defer sharedSearchCache.mu.Unlock()
	if sharedSearchCache.tt == nil {
		return 0
	}
	return sharedSearchCache.tt.Count()
}

func (a *AIPlayer) ResetForConfigChange() {
	a.stopSignal.Store(true)
	if a.workerDone != nil {
		<-a.workerDone
	}
	a.stopSignal.Store(false)
	FlushGlobalCaches()
}
