// Package board holds the vocabulary shared by the chess and draughts
// engines: sides, square coordinates, and terminal game status.
package board

import "fmt"

type Side string

const (
	White Side = "white"
	Black Side = "black"
)

func (s Side) Opponent() Side {
	if s == White {
		return Black
	}
	return White
}

// Position addresses a square as (row, col). Row 0 is the top rank of the
// grid as the UI draws it; each engine fixes which side moves "up".
type Position struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

// In reports whether the position lies on an n×n board.
func (p Position) In(n int) bool {
	return p.Row >= 0 && p.Row < n && p.Col >= 0 && p.Col < n
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

type GameResult string

const (
	ResultOngoing GameResult = "ongoing"
	ResultWin     GameResult = "win"
	ResultDraw    GameResult = "draw"
)

// Status is the terminal report both engines produce: the game is ongoing,
// drawn, or won by Winner.
type Status struct {
	Result GameResult `json:"result"`
	Winner Side       `json:"winner,omitempty"`
}

func Ongoing() Status {
	return Status{Result: ResultOngoing}
}

func WonBy(s Side) Status {
	return Status{Result: ResultWin, Winner: s}
}

func Drawn() Status {
	return Status{Result: ResultDraw}
}

func (st Status) Over() bool {
	return st.Result != ResultOngoing
}
