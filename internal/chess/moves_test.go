package chess

import (
	"testing"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
)

func at(row, col int) board.Position {
	return board.Position{Row: row, Col: col}
}

// emptyState returns a board with only the two kings placed, far apart.
func emptyState(turn board.Side) GameState {
	s := GameState{Turn: turn}
	s.place(at(7, 4), Piece{Kind: King, Side: board.White})
	s.place(at(0, 4), Piece{Kind: King, Side: board.Black})
	return s
}

func findMove(t *testing.T, moves []Move, from, to board.Position) Move {
	t.Helper()
	for _, m := range moves {
		if m.Matches(from, to) {
			return m
		}
	}
	t.Fatalf("expected a move %v -> %v, have %d moves", from, to, len(moves))
	return Move{}
}

func hasMove(moves []Move, from, to board.Position) bool {
	for _, m := range moves {
		if m.Matches(from, to) {
			return true
		}
	}
	return false
}

func TestOpeningMoveCount(t *testing.T) {
	s := NewGame()
	if got := len(LegalMoves(s)); got != 20 {
		t.Fatalf("expected 20 legal opening moves, got %d", got)
	}
}

func TestStepAndSlideShapes(t *testing.T) {
	tests := []struct {
		name  string
		piece Piece
		from  board.Position
		want  int
	}{
		{"knight in the middle", Piece{Kind: Knight, Side: board.White}, at(4, 3), 8},
		{"knight in the corner", Piece{Kind: Knight, Side: board.White}, at(7, 0), 2},
		{"rook in the middle", Piece{Kind: Rook, Side: board.White}, at(4, 3), 14},
		{"bishop in the corner", Piece{Kind: Bishop, Side: board.White}, at(7, 7), 7},
		{"queen in the middle", Piece{Kind: Queen, Side: board.White}, at(4, 3), 27},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := emptyState(board.White)
			s.place(tt.from, tt.piece)
			if got := len(PseudoMoves(s, tt.from)); got != tt.want {
				t.Fatalf("expected %d moves, got %d", tt.want, got)
			}
		})
	}
}

func TestSlideStopsAtPieces(t *testing.T) {
	s := emptyState(board.White)
	s.place(at(4, 3), Piece{Kind: Rook, Side: board.White})
	s.place(at(4, 5), Piece{Kind: Pawn, Side: board.White})
	s.place(at(2, 3), Piece{Kind: Pawn, Side: board.Black})
	moves := PseudoMoves(s, at(4, 3))

	if hasMove(moves, at(4, 3), at(4, 5)) || hasMove(moves, at(4, 3), at(4, 6)) {
		t.Fatalf("rook slid onto or past a friendly pawn")
	}
	capture := findMove(t, moves, at(4, 3), at(2, 3))
	if len(capture.Captures) != 1 || capture.Captures[0] != at(2, 3) {
		t.Fatalf("expected capture of the blocking pawn, got %+v", capture)
	}
	if hasMove(moves, at(4, 3), at(1, 3)) {
		t.Fatalf("rook slid past an enemy pawn")
	}
}

func TestPawnMoves(t *testing.T) {
	t.Run("double step only from the start", func(t *testing.T) {
		s := NewGame()
		moves := LegalMovesFrom(s, at(6, 4))
		if !hasMove(moves, at(6, 4), at(5, 4)) || !hasMove(moves, at(6, 4), at(4, 4)) {
			t.Fatalf("expected single and double pawn step, got %v", moves)
		}

		s = emptyState(board.White)
		s.place(at(5, 4), Piece{Kind: Pawn, Side: board.White, Moved: true})
		moves = LegalMovesFrom(s, at(5, 4))
		if hasMove(moves, at(5, 4), at(3, 4)) {
			t.Fatalf("moved pawn still offered a double step")
		}
	})

	t.Run("double step blocked by any piece on the path", func(t *testing.T) {
		s := emptyState(board.White)
		s.place(at(6, 2), Piece{Kind: Pawn, Side: board.White})
		s.place(at(5, 2), Piece{Kind: Knight, Side: board.Black})
		if got := len(LegalMovesFrom(s, at(6, 2))); got != 0 {
			t.Fatalf("blocked pawn should have no forward moves, got %d", got)
		}

		s = emptyState(board.White)
		s.place(at(6, 2), Piece{Kind: Pawn, Side: board.White})
		s.place(at(4, 2), Piece{Kind: Knight, Side: board.Black})
		moves := LegalMovesFrom(s, at(6, 2))
		if hasMove(moves, at(6, 2), at(4, 2)) {
			t.Fatalf("double step landed on an occupied square")
		}
		if !hasMove(moves, at(6, 2), at(5, 2)) {
			t.Fatalf("single step should stay available")
		}
	})

	t.Run("captures only diagonally onto enemies", func(t *testing.T) {
		s := emptyState(board.White)
		s.place(at(4, 4), Piece{Kind: Pawn, Side: board.White, Moved: true})
		s.place(at(3, 3), Piece{Kind: Pawn, Side: board.Black, Moved: true})
		s.place(at(3, 5), Piece{Kind: Knight, Side: board.White})
		moves := LegalMovesFrom(s, at(4, 4))
		if !hasMove(moves, at(4, 4), at(3, 3)) {
			t.Fatalf("expected diagonal capture")
		}
		if hasMove(moves, at(4, 4), at(3, 5)) {
			t.Fatalf("pawn captured a friendly piece")
		}
	})

	t.Run("promotion flag on the last rank", func(t *testing.T) {
		s := emptyState(board.White)
		s.place(at(1, 0), Piece{Kind: Pawn, Side: board.White, Moved: true})
		m := findMove(t, LegalMovesFrom(s, at(1, 0)), at(1, 0), at(0, 0))
		if m.Promotion != Queen {
			t.Fatalf("expected default queen promotion, got %q", m.Promotion)
		}
	})
}

func TestEnPassantWindow(t *testing.T) {
	s := emptyState(board.Black)
	s.place(at(3, 4), Piece{Kind: Pawn, Side: board.White, Moved: true})
	s.place(at(1, 3), Piece{Kind: Pawn, Side: board.Black})

	// black double-steps past the white pawn
	s = Apply(s, findMove(t, LegalMoves(s), at(1, 3), at(3, 3)))
	if s.EnPassant == nil || *s.EnPassant != at(2, 3) {
		t.Fatalf("expected en-passant target on the vacated square, got %v", s.EnPassant)
	}

	m := findMove(t, LegalMoves(s), at(3, 4), at(2, 3))
	if !m.EnPassant {
		t.Fatalf("expected the capture to be flagged en passant")
	}
	if len(m.Captures) != 1 || m.Captures[0] != at(3, 3) {
		t.Fatalf("expected the bypassed pawn as the capture square, got %v", m.Captures)
	}

	next := Apply(s, m)
	if !next.At(at(3, 3)).Empty() {
		t.Fatalf("bypassed pawn still on the board after en passant")
	}
	if next.At(at(2, 3)).Kind != Pawn {
		t.Fatalf("capturing pawn did not land on the target square")
	}
}

func TestEnPassantExpiresAfterOneMove(t *testing.T) {
	s := emptyState(board.Black)
	s.place(at(3, 4), Piece{Kind: Pawn, Side: board.White, Moved: true})
	s.place(at(1, 3), Piece{Kind: Pawn, Side: board.Black})

	s = Apply(s, findMove(t, LegalMoves(s), at(1, 3), at(3, 3)))
	// white declines the capture
	s = Apply(s, findMove(t, LegalMoves(s), at(7, 4), at(7, 5)))
	if s.EnPassant != nil {
		t.Fatalf("en-passant window survived an intervening move")
	}
	// black shuffles; the capture must not come back for white
	s = Apply(s, findMove(t, LegalMoves(s), at(0, 4), at(0, 5)))
	if hasMove(LegalMoves(s), at(3, 4), at(2, 3)) {
		t.Fatalf("en-passant capture still offered after the window closed")
	}
}

func TestCastling(t *testing.T) {
	freshCorners := func() GameState {
		s := emptyState(board.White)
		s.place(at(7, 0), Piece{Kind: Rook, Side: board.White})
		s.place(at(7, 7), Piece{Kind: Rook, Side: board.White})
		return s
	}

	t.Run("both sides available from clean corners", func(t *testing.T) {
		s := freshCorners()
		moves := LegalMovesFrom(s, at(7, 4))
		short := findMove(t, moves, at(7, 4), at(7, 6))
		if short.Castle == nil || short.Castle.From != at(7, 7) || short.Castle.To != at(7, 5) {
			t.Fatalf("kingside castle should relocate the h-rook, got %+v", short.Castle)
		}
		long := findMove(t, moves, at(7, 4), at(7, 2))
		if long.Castle == nil || long.Castle.To != at(7, 3) {
			t.Fatalf("queenside castle should bring the a-rook to d1, got %+v", long.Castle)
		}
	})

	t.Run("gone after the rook has moved", func(t *testing.T) {
		s := freshCorners()
		s.place(at(7, 7), Piece{Kind: Rook, Side: board.White, Moved: true})
		moves := LegalMovesFrom(s, at(7, 4))
		if hasMove(moves, at(7, 4), at(7, 6)) {
			t.Fatalf("kingside castle offered with a moved rook")
		}
		if !hasMove(moves, at(7, 4), at(7, 2)) {
			t.Fatalf("queenside castle should be unaffected")
		}
	})

	t.Run("blocked by a piece between", func(t *testing.T) {
		s := freshCorners()
		s.place(at(7, 1), Piece{Kind: Knight, Side: board.White})
		if hasMove(LegalMovesFrom(s, at(7, 4)), at(7, 4), at(7, 2)) {
			t.Fatalf("queenside castle offered across an occupied square")
		}
	})

	t.Run("king may not cross an attacked square", func(t *testing.T) {
		s := freshCorners()
		// black rook on the f-file covers the kingside transit square
		s.place(at(4, 5), Piece{Kind: Rook, Side: board.Black})
		moves := LegalMovesFrom(s, at(7, 4))
		if hasMove(moves, at(7, 4), at(7, 6)) {
			t.Fatalf("castled through an attacked square")
		}
		if !hasMove(moves, at(7, 4), at(7, 2)) {
			t.Fatalf("queenside castle should still be legal")
		}
	})

	t.Run("not while in check", func(t *testing.T) {
		s := freshCorners()
		s.place(at(4, 4), Piece{Kind: Rook, Side: board.Black})
		moves := LegalMovesFrom(s, at(7, 4))
		if hasMove(moves, at(7, 4), at(7, 6)) || hasMove(moves, at(7, 4), at(7, 2)) {
			t.Fatalf("castle offered while the king is in check")
		}
	})
}

func TestPinnedPieceCannotExposeKing(t *testing.T) {
	s := emptyState(board.White)
	s.place(at(4, 4), Piece{Kind: Rook, Side: board.White})
	s.clear(at(0, 4)) // move the black king off the file
	s.place(at(0, 0), Piece{Kind: King, Side: board.Black})
	s.place(at(2, 4), Piece{Kind: Rook, Side: board.Black})

	moves := LegalMovesFrom(s, at(4, 4))
	for _, m := range moves {
		if m.To.Col != 4 {
			t.Fatalf("pinned rook offered a move off the file: %+v", m)
		}
	}
	if !hasMove(moves, at(4, 4), at(2, 4)) {
		t.Fatalf("pinned rook should still capture its attacker")
	}
	for _, m := range moves {
		if InCheck(Apply(s, m), board.White) {
			t.Fatalf("legal move %+v left the king attacked", m)
		}
	}
}

func TestNotation(t *testing.T) {
	s := NewGame()
	m := findMove(t, LegalMoves(s), at(6, 4), at(4, 4))
	if got := Notation(s, m); got != "e4" {
		t.Fatalf("expected e4, got %q", got)
	}

	s = emptyState(board.White)
	s.place(at(7, 7), Piece{Kind: Rook, Side: board.White})
	castle := findMove(t, LegalMovesFrom(s, at(7, 4)), at(7, 4), at(7, 6))
	if got := Notation(s, castle); got != "O-O" {
		t.Fatalf("expected O-O, got %q", got)
	}

	s = emptyState(board.White)
	s.place(at(4, 4), Piece{Kind: Pawn, Side: board.White, Moved: true})
	s.place(at(3, 3), Piece{Kind: Pawn, Side: board.Black, Moved: true})
	take := findMove(t, LegalMovesFrom(s, at(4, 4)), at(4, 4), at(3, 3))
	if got := Notation(s, take); got != "exd5" {
		t.Fatalf("expected exd5, got %q", got)
	}
}
