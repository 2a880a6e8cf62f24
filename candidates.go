package main

// scoredCandidate pairs a legal move with a quick attack/defense
// estimate used to order and prune the search tree.
type scoredCandidate struct {
	move         Move
	score        float64
	attackLevel  PatternKind
	defenseLevel PatternKind
}

const candidateRadius = 2

// candidateMoves enumerates every empty cell within Chebyshev distance 2
// of an existing stone, scores each as attack plus weighted defense plus
// a small pull toward the center, and returns at most limit of them,
// best first. An empty board yields only the center. Cells whose attack
// or defense reaches a three or better are kept even when the limit
// would cut them.
func candidateMoves(board Board, player PlayerColor, limit int, h HeuristicConfig) []scoredCandidate {
	size := board.Size()
	center := size / 2
	if board.StoneCount() == 0 {
		return []scoredCandidate{{move: Move{X: center, Y: center}}}
	}

	opp := otherPlayer(player)
	out := []scoredCandidate{}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if !board.IsEmpty(x, y) || !board.HasNeighborWithin(x, y, candidateRadius) {
				continue
			}
			attack, attackLevel := EvaluatePoint(board, x, y, player, h)
			defense, defenseLevel := EvaluatePoint(board, x, y, opp, h)
			out = append(out, scoredCandidate{
				move:         Move{X: x, Y: y},
				score:        attack + h.DefenseWeight*defense + centerBonus(x, y, center, size, h),
				attackLevel:  attackLevel,
				defenseLevel: defenseLevel,
			})
		}
	}
	sortCandidatesDesc(out)

	if limit <= 0 || len(out) <= limit {
		return out
	}
	kept := out[:limit]
	// Forced moves must survive pruning.
	for _, c := range out[limit:] {
		if c.attackLevel >= PatternOpenThree || c.defenseLevel >= PatternOpenThree {
			kept = append(kept, c)
		}
	}
	return kept
}

func centerBonus(x, y, center, size int, h HeuristicConfig) float64 {
	dx := x - center
	if dx < 0 {
		dx = -dx
	}
	dy := y - center
	if dy < 0 {
		dy = -dy
	}
	return float64(size-(dx+dy)) * h.CenterWeight
}

func sortCandidatesDesc(cands []scoredCandidate) {
	for i := 1; i < len(cands); i++ {
		item := cands[i]
		j := i - 1
		for j >= 0 && cands[j].score < item.score {
			cands[j+1] = cands[j]
			j--
		}
		cands[j+1] = item
	}
}
