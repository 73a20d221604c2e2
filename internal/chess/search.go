package chess

import (
	"sort"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
)

// SearchDepth is the fixed search depth, in plies, for the AI opponent.
const SearchDepth = 3

const (
	mateScore     = 100000
	infiniteScore = 1_000_000_000
)

var pieceValues = map[PieceKind]int{
	Pawn:   100,
	Knight: 320,
	Bishop: 330,
	Rook:   500,
	Queen:  900,
	King:   20000,
}

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
		// mate counts for more the sooner it lands; stalemate is dead even
		if InCheck(s, s.Turn) {
			if s.Turn == maximizer {
				return -(mateScore + depth), nil
			}
			return mateScore + depth, nil
		}
		return 0, nil
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

// ordered puts captures first, biggest victim first. Stable, so equal moves
// keep their generation order; this only helps pruning, never correctness.
func ordered(s GameState, moves []Move) []Move {
	sort.SliceStable(moves, func(i, j int) bool {
		return victimValue(s, moves[i]) > victimValue(s, moves[j])
	})
	return moves
}

func victimValue(s GameState, m Move) int {
	if len(m.Captures) == 0 {
		return 0
	}
	return pieceValues[s.At(m.Captures[0]).Kind]
}

// evaluate is material plus a small advancement nudge for pawns. King safety
// carries no separate weight; the heuristic stays explainable.
func evaluate(s GameState, maximizer board.Side) int {
	score := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			pc := s.Board[row][col]
			if pc.Empty() {
				continue
			}
			v := pieceValues[pc.Kind]
			if pc.Kind == Pawn {
				v += 4 * pawnAdvance(pc.Side, row)
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

// pawnAdvance counts rows traveled from the pawn's starting rank.
func pawnAdvance(side board.Side, row int) int {
	if side == board.White {
		return 6 - row
	}
	return row - 1
}
