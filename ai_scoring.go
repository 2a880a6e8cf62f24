package main

import (
	"log"
	"math"
	"sync"
	"time"
)

const winScore = 2_000_000_000.0

// SearchStats accumulates counters for one search invocation. Callers
// that do not care pass nil.
type SearchStats struct {
	Nodes        int64
	Evaluations  int64
	TTHits       int64
	TTStores     int64
	Cutoffs      int64
	DepthReached int
	ElapsedMs    int64
}

// AISearchCache owns the transposition table shared across searches for
// the lifetime of the process. Resizing the config flushes it.
type AISearchCache struct {
	mu        sync.Mutex
	tt        *TranspositionTable
	ttSize    int
	ttBuckets int
}

var sharedSearchCache = &AISearchCache{}

func (c *AISearchCache) ensureTT(cfg Config) *TranspositionTable {
	size := cfg.AiTtSize
	if size <= 0 {
		size = 1 << 16
	}
	buckets := cfg.AiTtBuckets
	if buckets <= 0 {
		buckets = 2
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.tt == nil || c.ttSize != size || c.ttBuckets != buckets {
		c.tt = NewTranspositionTable(uint64(size), buckets)
		c.ttSize = size
		c.ttBuckets = buckets
	}
	return c.tt
}

func FlushGlobalCaches() {
	sharedSearchCache.mu.Lock()
	defer sharedSearchCache.mu.Unlock()
	if sharedSearchCache.tt != nil {
		sharedSearchCache.tt.Clear()
	}
}

// SearchRequest configures one SearchBestMove call.
type SearchRequest struct {
	Player         PlayerColor
	Depth          int
	CandidateLimit int
	TimeBudgetMs   int
	Stats          *SearchStats
	ShouldStop     func() bool
}

type searchContext struct {
	board       *Board
	rules       Rules
	cfg         Config
	player      PlayerColor
	z           *ZobristTable
	tt          *TranspositionTable
	stats       *SearchStats
	shouldStop  func() bool
	deadline    time.Time
	hasDeadline bool
	limit       int
	aborted     bool
}

func (ctx *searchContext) checkAbort() bool {
	if ctx.aborted {
		return true
	}
	if ctx.shouldStop != nil && ctx.shouldStop() {
		ctx.aborted = true
		return true
	}
	if ctx.hasDeadline && time.Now().After(ctx.deadline) {
		ctx.aborted = true
		return true
	}
	return false
}

// SearchBestMove runs iterative-deepening minimax with alpha-beta for
// req.Player, who is to move. The board is mutated with paired set and
// remove calls and left exactly as it was found. An iteration that runs
// out of budget is discarded; the incumbent from the last completed
// depth wins.
func SearchBestMove(board *Board, rules Rules, cfg Config, req SearchRequest) (Move, float64, bool) {
	start := time.Now()
	maxDepth := req.Depth
	if maxDepth < 1 {
		maxDepth = 1
	}

	cands := candidateMoves(*board, req.Player, req.CandidateLimit, cfg.Heuristics)
	if len(cands) == 0 {
		return InvalidMove, 0, false
	}
	if len(cands) == 1 {
		return cands[0].move, cands[0].score, true
	}

	ctx := &searchContext{
		board:      board,
		rules:      rules,
		cfg:        cfg,
		player:     req.Player,
		z:          GetZobrist(board.Size()),
		tt:         sharedSearchCache.ensureTT(cfg),
		stats:      req.Stats,
		shouldStop: req.ShouldStop,
		limit:      req.CandidateLimit,
	}
	if req.TimeBudgetMs > 0 {
		ctx.deadline = start.Add(time.Duration(req.TimeBudgetMs) * time.Millisecond)
		ctx.hasDeadline = true
	}
	ctx.tt.NextGeneration()

	rootHash := searchRootHash(ctx.z, *board, req.Player)
	cell := CellFromPlayer(req.Player)

	best := cands[0].move
	bestScore := math.Inf(-1)
	completedAny := false

	for depth := 1; depth <= maxDepth; depth++ {
		iterBest := InvalidMove
		iterScore := math.Inf(-1)
		alpha := math.Inf(-1)
		beta := math.Inf(1)
		completed := true

		for _, c := range cands {
			if ctx.checkAbort() {
				completed = false
				break
			}
			m := c.move
			board.Set(m.X, m.Y, cell)
			childHash := hashAfterPlace(ctx.z, rootHash, m, req.Player)
			var val float64
			switch {
			case rules.IsWin(*board, m):
				val = winScore + float64(depth)
			case rules.IsDraw(*board):
				val = 0
			default:
				val = ctx.minimax(depth-1, otherPlayer(req.Player), alpha, beta, childHash)
			}
			board.Remove(m.X, m.Y)
			if ctx.aborted {
				completed = false
				break
			}
			if val > iterScore {
				iterScore = val
				iterBest = m
			}
			if iterScore > alpha {
				alpha = iterScore
			}
		}

		if !completed || !iterBest.IsValid(board.Size()) {
			break
		}
		best = iterBest
		bestScore = iterScore
		completedAny = true
		if ctx.stats != nil {
			ctx.stats.DepthReached = depth
		}
		if cfg.LogDepthScores {
			log.Printf("[ai] depth=%d best=(%d,%d) score=%.0f", depth, best.X, best.Y, bestScore)
		}
		if cfg.AiQuickWinExit && bestScore >= winScore {
			break
		}
	}

	if ctx.stats != nil {
		ctx.stats.ElapsedMs = time.Since(start).Milliseconds()
		best.Depth = ctx.stats.DepthReached
	}
	if cfg.AiLogSearchStats && ctx.stats != nil {
		log.Printf("[ai] nodes=%d evals=%d tt_hits=%d cutoffs=%d depth=%d elapsed=%dms",
			ctx.stats.Nodes, ctx.stats.Evaluations, ctx.stats.TTHits, ctx.stats.Cutoffs,
			ctx.stats.DepthReached, ctx.stats.ElapsedMs)
	}
	return best, bestScore, completedAny
}

func (ctx *searchContext) minimax(depth int, current PlayerColor, alpha, beta float64, hash uint64) float64 {
	if ctx.stats != nil {
		ctx.stats.Nodes++
	}
	if ctx.checkAbort() {
		return 0
	}
	if depth == 0 {
		if ctx.stats != nil {
			ctx.stats.Evaluations++
		}
		return EvaluateBoard(*ctx.board, ctx.player, ctx.cfg)
	}

	origAlpha := alpha
	origBeta := beta
	if entry, ok := ctx.tt.Probe(hash); ok && entry.Depth >= depth {
		if ctx.stats != nil {
			ctx.stats.TTHits++
		}
		switch entry.Flag {
		case TTExact:
			return entry.ScoreFloat()
		case TTLower:
			if entry.ScoreFloat() > alpha {
				alpha = entry.ScoreFloat()
			}
		case TTUpper:
			if entry.ScoreFloat() < beta {
				beta = entry.ScoreFloat()
			}
		}
		if alpha >= beta {
			return entry.ScoreFloat()
		}
	}

	maximizing := current == ctx.player
	cands := candidateMoves(*ctx.board, current, ctx.limit, ctx.cfg.Heuristics)
	if len(cands) == 0 {
		return 0
	}

	bestVal := math.Inf(1)
	if maximizing {
		bestVal = math.Inf(-1)
	}
	bestMove := InvalidMove
	cell := CellFromPlayer(current)

	for _, c := range cands {
		m := c.move
		ctx.board.Set(m.X, m.Y, cell)
		childHash := hashAfterPlace(ctx.z, hash, m, current)
		var val float64
		switch {
		case ctx.rules.IsWin(*ctx.board, m):
			val = winScore + float64(depth)
			if !maximizing {
				val = -val
			}
		case ctx.rules.IsDraw(*ctx.board):
			val = 0
		default:
			val = ctx.minimax(depth-1, otherPlayer(current), alpha, beta, childHash)
		}
		ctx.board.Remove(m.X, m.Y)
		if ctx.aborted {
			return bestVal
		}
		if maximizing {
			if val > bestVal {
				bestVal = val
				bestMove = m
			}
			if bestVal > alpha {
				alpha = bestVal
			}
		} else {
			if val < bestVal {
				bestVal = val
				bestMove = m
			}
			if bestVal < beta {
				beta = bestVal
			}
		}
		if alpha >= beta {
			if ctx.stats != nil {
				ctx.stats.Cutoffs++
			}
			break
		}
	}

	flag := TTExact
	if bestVal <= origAlpha {
		flag = TTUpper
	} else if bestVal >= origBeta {
		flag = TTLower
	}
	ctx.tt.Store(hash, depth, bestVal, flag, bestMove)
	if ctx.stats != nil {
		ctx.stats.TTStores++
	}
	return bestVal
}

func computeBoardHash(z *ZobristTable, board Board, toMove PlayerColor) uint64 {
	var hash uint64
	size := board.Size()
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			cell := board.At(x, y)
			if cell == CellEmpty {
				continue
			}
			player := PlayerBlack
			if cell == CellWhite {
				player = PlayerWhite
			}
			hash ^= z.stone(x, y, player)
		}
	}
	if toMove == PlayerWhite {
		hash ^= z.side
	}
	return hash
}

// searchRootHash keys the shared transposition table. Stored scores are
// from the rooting player's perspective, so a black-rooted and a
// white-rooted search reaching the same position must never read each
// other's entries. The salt is XORed in at the root and carried through
// every incremental update below it.
func searchRootHash(z *ZobristTable, board Board, player PlayerColor) uint64 {
	hash := computeBoardHash(z, board, player)
	if player == PlayerWhite {
		hash ^= z.root
	}
	return hash
}
