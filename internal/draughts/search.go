package draughts

import (
	"sort"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
)

// SearchDepth is the fixed search depth, in plies, for the AI opponent.
// Forced captures keep the tree narrow, so it runs one ply deeper than the
// chess engine.
const SearchDepth = 4

const (
	winScore      = 100000
	infiniteScore = 1_000_000_000
)

const (
	manValue  = 100
	kingValue = 300
)

// BestMove runs a depth-limited minimax with alpha-beta pruning for the side
// to move. ok is false when no legal move exists. Calls with identical
// arguments return identical moves: ties resolve to the first candidate in
// ordering, which preserves generation order among equals.
func BestMove(s GameState, depth int) (Move, bool) {
	_, best := search(s, depth, -infiniteScore, infiniteScore, s.Turn)
	if best == nil {
		return Move{}, false
	}
	return *best, true
}

func search(s GameState, depth, alpha, beta int, maximizer board.Side) (int, *Move) {
	if depth == 0 {
		return evaluate(s, maximizer), nil
	}
	legal := ordered(s, LegalMoves(s))
	if len(legal) == 0 {
		// the stuck side has lost; sooner counts for more
		if s.Turn == maximizer {
			return -(winScore + depth), nil
		}
		return winScore + depth, nil
	}

	var chosen *Move
	if s.Turn == maximizer {
		best := -infiniteScore
		for i := range legal {
			score, _ := search(Apply(s, legal[i]), depth-1, alpha, beta, maximizer)
			if score > best {
				best = score
				chosen = &legal[i]
			}
			if best > alpha {
				alpha = best
			}
			if beta <= alpha {
				break
			}
		}
		return best, chosen
	}

	best := infiniteScore
	for i := range legal {
		score, _ := search(Apply(s, legal[i]), depth-1, alpha, beta, maximizer)
		if score < best {
			best = score
			chosen = &legal[i]
		}
		if best < beta {
			beta = best
		}
		if beta <= alpha {
			break
		}
	}
	return best, chosen
}

// ordered puts the richest chains first. Stable, so equal moves keep their
// generation order; this only helps pruning, never correctness.
func ordered(s GameState, moves []Move) []Move {
	sort.SliceStable(moves, func(i, j int) bool {
		return capturedValue(s, moves[i]) > capturedValue(s, moves[j])
	})
	return moves
}

func capturedValue(s GameState, m Move) int {
	total := 0
	for _, c := range m.Captures {
		total += pieceValue(s.At(c))
	}
	return total
}

func pieceValue(pc Piece) int {
	if pc.King {
		return kingValue
	}
	return manValue
}

// evaluate is material plus a small advancement nudge for men. Mobility and
// king safety carry no weight; the heuristic stays explainable.
func evaluate(s GameState, maximizer board.Side) int {
	score := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pc := s.Board[row][col]
			if pc.Empty() {
				continue
			}
			v := pieceValue(pc)
			if !pc.King {
				v += 4 * manAdvance(pc.Side, row)
			}
			if pc.Side == maximizer {
				score += v
			} else {
				score -= v
			}
		}
	}
	return score
}

// manAdvance counts rows traveled from the side's back rank.
func manAdvance(side board.Side, row int) int {
	if side == board.White {
		return Size - 1 - row
	}
	return row
}
