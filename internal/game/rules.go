package game

import (
	"fmt"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/chess"
	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/draughts"
)

type Variant string

const (
	VariantChess    Variant = "chess"
	VariantDraughts Variant = "draughts"
)

// HistoryEntry is one applied move as the history panel consumes it. Taken
// names the pieces the move removed, in capture order.
type HistoryEntry struct {
	Side     board.Side     `json:"side"`
	From     board.Position `json:"from"`
	To       board.Position `json:"to"`
	Notation string         `json:"notation"`
	Captures int            `json:"captures,omitempty"`
	Taken    []string       `json:"taken,omitempty"`
}

// rules adapts one engine behind the variant-neutral surface the session
// drives. Implementations are not safe for concurrent use; the session's
// lock serializes every call.
type rules interface {
	Reset()
	Turn() board.Side
	InCheck() bool
	Status() board.Status
	LegalTargets(from board.Position) []board.Position
	Play(from, to board.Position, promotion string) (HistoryEntry, error)
	PlayBest() (HistoryEntry, bool)
	Cells() any
	EnPassantTarget() *board.Position
}

func rulesFor(v Variant) (rules, error) {
	switch v {
	case VariantChess:
		return &chessRules{state: chess.NewGame()}, nil
	case VariantDraughts:
		return &draughtsRules{state: draughts.NewGame()}, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, v)
}

type chessRules struct {
	state chess.GameState
}

func (r *chessRules) Reset() {
	r.state = chess.NewGame()
}

func (r *chessRules) Turn() board.Side {
	return r.state.Turn
}

func (r *chessRules) InCheck() bool {
	return chess.InCheck(r.state, r.state.Turn)
}

func (r *chessRules) Status() board.Status {
	return chess.Status(r.state)
}

func (r *chessRules) LegalTargets(from board.Position) []board.Position {
	if !from.In(chess.Size) {
		return nil
	}
	var targets []board.Position
	for _, m := range chess.LegalMovesFrom(r.state, from) {
		targets = append(targets, m.To)
	}
	return targets
}

// Play looks the request up in the legal-move set; anything not found there
// is rejected. A promoting move defaults to a queen unless the request names
// another piece.
func (r *chessRules) Play(from, to board.Position, promotion string) (HistoryEntry, error) {
	if !from.In(chess.Size) || !to.In(chess.Size) {
		return HistoryEntry{}, fmt.Errorf("%w: out of bounds", ErrIllegalMove)
	}
	for _, m := range chess.LegalMovesFrom(r.state, from) {
		if !m.Matches(from, to) {
			continue
		}
		if m.Promotion != "" && promotion != "" {
			kind, ok := promotionKind(promotion)
			if !ok {
				return HistoryEntry{}, fmt.Errorf("%w: cannot promote to %q", ErrIllegalMove, promotion)
			}
			m.Promotion = kind
		}
		return r.apply(m), nil
	}
	return HistoryEntry{}, fmt.Errorf("%w: %v -> %v", ErrIllegalMove, from, to)
}

func (r *chessRules) PlayBest() (HistoryEntry, bool) {
	m, ok := chess.BestMove(r.state, chess.SearchDepth)
	if !ok {
		return HistoryEntry{}, false
	}
	return r.apply(m), true
}

func (r *chessRules) apply(m chess.Move) HistoryEntry {
	entry := HistoryEntry{
		Side:     r.state.Turn,
		From:     m.From,
		To:       m.To,
		Notation: chess.Notation(r.state, m),
		Captures: len(m.Captures),
	}
	for _, victim := range m.Captures {
		entry.Taken = append(entry.Taken, string(r.state.At(victim).Kind))
	}
	r.state = chess.Apply(r.state, m)
	return entry
}

func (r *chessRules) Cells() any {
	cells := make([][]*chess.Piece, chess.Size)
	for row := range cells {
		cells[row] = make([]*chess.Piece, chess.Size)
		for col := range cells[row] {
			if pc := r.state.Board[row][col]; !pc.Empty() {
				p := pc
				cells[row][col] = &p
			}
		}
	}
	return cells
}

func (r *chessRules) EnPassantTarget() *board.Position {
	return r.state.EnPassant
}

func promotionKind(name string) (chess.PieceKind, bool) {
	switch k := chess.PieceKind(name); k {
	case chess.Queen, chess.Rook, chess.Bishop, chess.Knight:
		return k, true
	}
	return "", false
}

type draughtsRules struct {
	state draughts.GameState
}

func (r *draughtsRules) Reset() {
	r.state = draughts.NewGame()
}

func (r *draughtsRules) Turn() board.Side {
	return r.state.Turn
}

func (r *draughtsRules) InCheck() bool {
	return false
}

func (r *draughtsRules) Status() board.Status {
	return draughts.Status(r.state)
}

func (r *draughtsRules) LegalTargets(from board.Position) []board.Position {
	if !from.In(draughts.Size) {
		return nil
	}
	var targets []board.Position
	for _, m := range draughts.LegalMovesFrom(r.state, from) {
		targets = append(targets, m.To)
	}
	return targets
}

// Play picks the first legal chain matching the request; distinct chains
// sharing endpoints resolve by generation order. Promotion is never a
// choice in draughts, so the request's promotion field is ignored.
func (r *draughtsRules) Play(from, to board.Position, _ string) (HistoryEntry, error) {
	if !from.In(draughts.Size) || !to.In(draughts.Size) {
		return HistoryEntry{}, fmt.Errorf("%w: out of bounds", ErrIllegalMove)
	}
	for _, m := range draughts.LegalMovesFrom(r.state, from) {
		if m.Matches(from, to) {
			return r.apply(m), nil
		}
	}
	return HistoryEntry{}, fmt.Errorf("%w: %v -> %v", ErrIllegalMove, from, to)
}

func (r *draughtsRules) PlayBest() (HistoryEntry, bool) {
	m, ok := draughts.BestMove(r.state, draughts.SearchDepth)
	if !ok {
		return HistoryEntry{}, false
	}
	return r.apply(m), true
}

func (r *draughtsRules) apply(m draughts.Move) HistoryEntry {
	entry := HistoryEntry{
		Side:     r.state.Turn,
		From:     m.From,
		To:       m.To,
		Notation: draughts.Notation(m),
		Captures: len(m.Captures),
	}
	for _, victim := range m.Captures {
		if r.state.At(victim).King {
			entry.Taken = append(entry.Taken, "king")
		} else {
			entry.Taken = append(entry.Taken, "man")
		}
	}
	r.state = draughts.Apply(r.state, m)
	return entry
}

func (r *draughtsRules) Cells() any {
	cells := make([][]*draughts.Piece, draughts.Size)
	for row := range cells {
		cells[row] = make([]*draughts.Piece, draughts.Size)
		for col := range cells[row] {
			if pc := r.state.Board[row][col]; !pc.Empty() {
				p := pc
				cells[row][col] = &p
			}
		}
	}
	return cells
}

func (r *draughtsRules) EnPassantTarget() *board.Position {
	return nil
}
