// Package draughts implements the 10×10 forced-capture draughts engine:
// board model, capture-chain derivation under the maximal-capture rule,
// move application, terminal status, and the alpha-beta searcher behind the
// AI opponent. Everything operates on GameState values; no function mutates
// its input.
package draughts

import "github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"

const Size = 10

// Piece occupies a dark square. The zero value is an empty square; King
// flips when a man reaches the far rank.
type Piece struct {
	Side board.Side `json:"side"`
	King bool       `json:"king"`
}

func (p Piece) Empty() bool {
	return p.Side == ""
}

// GameState is the full context move generation depends on. It is replaced
// wholesale on every applied move, never mutated in place, so search can
// explore speculative lines without touching the live game.
type GameState struct {
	Board [Size][Size]Piece
	Turn  board.Side
}

func (s GameState) At(p board.Position) Piece {
	return s.Board[p.Row][p.Col]
}

func (s *GameState) place(p board.Position, pc Piece) {
	s.Board[p.Row][p.Col] = pc
}

func (s *GameState) clear(p board.Position) {
	s.Board[p.Row][p.Col] = Piece{}
}

// NewGame sets up the standard initial position: twenty men per side on the
// dark squares, black on rows 0-3, white on rows 6-9, white to move.
func NewGame() GameState {
	s := GameState{Turn: board.White}
	for row := 0; row < 4; row++ {
		for col := 0; col < Size; col++ {
			if dark(row, col) {
				s.place(board.Position{Row: row, Col: col}, Piece{Side: board.Black})
			}
		}
	}
	for row := Size - 4; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if dark(row, col) {
				s.place(board.Position{Row: row, Col: col}, Piece{Side: board.White})
			}
		}
	}
	return s
}

func dark(row, col int) bool {
	return (row+col)%2 == 1
}

// forward is the row delta a side's men advance by.
func forward(side board.Side) int {
	if side == board.White {
		return -1
	}
	return 1
}

// lastRank is the promotion rank for a side.
func lastRank(side board.Side) int {
	if side == board.White {
		return 0
	}
	return Size - 1
}
