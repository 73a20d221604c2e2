package draughts

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
)

func TestApplyLeavesInputUntouched(t *testing.T) {
	s := GameState{Turn: board.White}
	s.place(at(4, 3), Piece{Side: board.White})
	s.place(at(3, 4), Piece{Side: board.Black})
	before := s
	m := findMove(t, LegalMoves(s), at(4, 3), at(2, 5))

	first := Apply(s, m)
	second := Apply(s, m)

	if diff := cmp.Diff(before, s); diff != "" {
		t.Fatalf("input state changed (-before +after):\n%s", diff)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same move on same state produced different results:\n%s", diff)
	}
	if !first.At(at(3, 4)).Empty() {
		t.Fatalf("victim still on the board after the jump")
	}
	if first.Turn != board.Black {
		t.Fatalf("turn did not pass to black, got %q", first.Turn)
	}
}

func TestApplyPanicsOnEmptyOrigin(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatalf("expected a panic for a move from an empty square")
		}
	}()
	Apply(NewGame(), Move{From: at(4, 3), To: at(3, 2)})
}

func TestReplayReproducesThePosition(t *testing.T) {
	script := [][2]board.Position{
		{at(6, 3), at(5, 4)},
		{at(3, 6), at(4, 5)},
		{at(5, 4), at(3, 6)}, // forced jump
		{at(2, 7), at(4, 5)}, // forced recapture
	}

	play := func() GameState {
		s := NewGame()
		for _, mv := range script {
			s = Apply(s, findMove(t, LegalMoves(s), mv[0], mv[1]))
		}
		return s
	}

	if diff := cmp.Diff(play(), play()); diff != "" {
		t.Fatalf("replaying the same moves diverged:\n%s", diff)
	}
}
