package chess

import "github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"

// LegalMoves enumerates every legal move for the side to move, in a fixed
// order: row-major scan of the board, direction-table order per piece.
func LegalMoves(s GameState) []Move {
	var legal []Move
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			legal = append(legal, LegalMovesFrom(s, board.Position{Row: row, Col: col})...)
		}
	}
	return legal
}

// LegalMovesFrom filters the pseudo-moves of the piece at from, keeping only
// those that do not leave the mover's king attacked. Each candidate is
// applied to a scratch copy; simple and correct beats fast at 3 ply.
func LegalMovesFrom(s GameState, from board.Position) []Move {
	pc := s.At(from)
	if pc.Empty() || pc.Side != s.Turn {
		return nil
	}
	var legal []Move
	for _, m := range PseudoMoves(s, from) {
		if next := Apply(s, m); !InCheck(next, pc.Side) {
			legal = append(legal, m)
		}
	}
	return legal
}

// InCheck reports whether side's king is attacked.
func InCheck(s GameState, side board.Side) bool {
	return Attacked(s, side.Opponent(), s.kingPosition(side))
}
