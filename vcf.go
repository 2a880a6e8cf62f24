package main

// Forcing-sequence search. VCF chains fours: every attacker move makes a
// four, the defender's reply is forced onto the five point, and the
// chain ends in an unstoppable position. VCT relaxes the attacker's
// moves to any three-or-better threat.

// FindVCF returns a move starting a victory-by-continuous-fours
// sequence within depth plies, or false. The board is left untouched:
// every probe placement is retracted.
func FindVCF(board *Board, rules Rules, attacker PlayerColor, depth, branch int, h HeuristicConfig) (Move, bool) {
	if depth <= 0 {
		return InvalidMove, false
	}
	if wins := findImmediateWinMoves(*board, attacker); len(wins) > 0 {
		return wins[0], true
	}
	if branch <= 0 {
		branch = 8
	}

	fourMoves := FindCriticalThreats(*board, attacker, PatternSimpleFour, h)
	if len(fourMoves) > branch {
		fourMoves = fourMoves[:branch]
	}
	attackCell := CellFromPlayer(attacker)
	defender := otherPlayer(attacker)
	defendCell := CellFromPlayer(defender)

	for _, t := range fourMoves {
		m := t.Move
		board.Set(m.X, m.Y, attackCell)
		fivePoints := findImmediateWinMoves(*board, attacker)
		switch {
		case len(fivePoints) >= 2:
			// Two completion points: the defender can block only one.
			board.Remove(m.X, m.Y)
			return m, true
		case len(fivePoints) == 1:
			block := fivePoints[0]
			// The defender must take the five point or lose next move.
			board.Set(block.X, block.Y, defendCell)
			won := false
			if !rules.IsWin(*board, block) {
				_, won = FindVCF(board, rules, attacker, depth-2, branch, h)
			}
			board.Remove(block.X, block.Y)
			board.Remove(m.X, m.Y)
			if won {
				return m, true
			}
		default:
			board.Remove(m.X, m.Y)
		}
	}
	return InvalidMove, false
}

// FindVCT looks for a victory-by-continuous-threats sequence: the
// attacker keeps making threats at open-three strength or better until
// an unstoppable shape appears. The defender is assumed to answer each
// threat at its strongest point.
func FindVCT(board *Board, rules Rules, attacker PlayerColor, depth, branch int, h HeuristicConfig) (Move, bool) {
	if depth <= 0 {
		return InvalidMove, false
	}
	if wins := findImmediateWinMoves(*board, attacker); len(wins) > 0 {
		return wins[0], true
	}
	if branch <= 0 {
		branch = 8
	}

	threatMoves := FindCriticalThreats(*board, attacker, PatternOpenThree, h)
	if len(threatMoves) > branch {
		threatMoves = threatMoves[:branch]
	}
	attackCell := CellFromPlayer(attacker)
	defender := otherPlayer(attacker)
	defendCell := CellFromPlayer(defender)

	for _, t := range threatMoves {
		m := t.Move
		board.Set(m.X, m.Y, attackCell)
		if unstoppable(*board, attacker, m) {
			board.Remove(m.X, m.Y)
			return m, true
		}
		won := false
		if depth > 2 {
			if block, ok := strongestReply(*board, attacker, defender, h); ok {
				board.Set(block.X, block.Y, defendCell)
				if !rules.IsWin(*board, block) {
					_, won = FindVCT(board, rules, attacker, depth-2, branch, h)
				}
				board.Remove(block.X, block.Y)
			}
		}
		board.Remove(m.X, m.Y)
		if won {
			return m, true
		}
	}
	return InvalidMove, false
}

// unstoppable reports whether the stone just placed at last settles the
// game: two or more distinct five-completion cells, or a fork through
// the stone (double four, four-three, double open three). A single
// block cannot answer any of those.
func unstoppable(board Board, attacker PlayerColor, last Move) bool {
	if len(findImmediateWinMoves(board, attacker)) >= 2 {
		return true
	}
	fours, threes := directionalCounts(board, last.X, last.Y, attacker)
	return fours >= 2 || (fours >= 1 && threes >= 1) || threes >= 2
}

// strongestReply picks the defender's block: the cell that is worth the
// most to the attacker, which is where the threat lives.
func strongestReply(board Board, attacker, defender PlayerColor, h HeuristicConfig) (Move, bool) {
	if wins := findImmediateWinMoves(board, attacker); len(wins) > 0 {
		return wins[0], true
	}
	threats := FindCriticalThreats(board, attacker, PatternOpenThree, h)
	if len(threats) == 0 {
		return InvalidMove, false
	}
	return threats[0].Move, true
}
