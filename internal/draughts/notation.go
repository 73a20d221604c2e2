package draughts

import (
	"fmt"
	"strings"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
)

// SquareNumber renders a dark square in the standard 1-50 numbering, counted
// row-major from the top-left.
func SquareNumber(p board.Position) int {
	return (p.Row*Size+p.Col)/2 + 1
}

// Notation renders a move in numeric form: "32-28" for a step, every landing
// square joined with "x" for a capture chain, so equal endpoints of distinct
// chains stay distinguishable.
func Notation(m Move) string {
	if len(m.Captures) == 0 {
		return fmt.Sprintf("%d-%d", SquareNumber(m.From), SquareNumber(m.To))
	}
	parts := []string{fmt.Sprint(SquareNumber(m.From))}
	for _, p := range m.Path {
		parts = append(parts, fmt.Sprint(SquareNumber(p)))
	}
	return strings.Join(parts, "x")
}
