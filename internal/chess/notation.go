package chess

import (
	"fmt"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
)

// SquareName renders a position in algebraic form ("e4").
func SquareName(p board.Position) string {
	return fmt.Sprintf("%c%d", 'a'+p.Col, Size-p.Row)
}

// Notation renders a move in compact algebraic form against the position it
// is about to be played in. Disambiguation beyond the pawn's file is not
// attempted; the history panel does not need more.
func Notation(s GameState, m Move) string {
	if m.Castle != nil {
		if m.To.Col == 2 {
			return "O-O-O"
		}
		return "O-O"
	}
	pc := s.At(m.From)
	prefix := pc.Kind.letter()
	capture := ""
	if len(m.Captures) > 0 {
		capture = "x"
		if pc.Kind == Pawn {
			prefix = fmt.Sprintf("%c", 'a'+m.From.Col)
		}
	}
	suffix := ""
	if m.Promotion != "" {
		suffix = "=" + m.Promotion.letter()
	}
	return prefix + capture + SquareName(m.To) + suffix
}
