// Package settlement collects finished-game results for the stake/payout
// collaborator. Sessions report each finished run exactly once; draining
// hands the pending batch over and clears it.
package settlement

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/OptionsTradingUni/Eksu-digital-marketplace-sub006/internal/board"
)

// ErrDuplicateResult flags a second report for the same run of a game.
var ErrDuplicateResult = errors.New("settlement: result already recorded")

// Result is one finished game as the settlement layer consumes it. Round
// climbs with every reset, so a rematch on the same board settles on its
// own.
type Result struct {
	GameID     string        `json:"gameId"`
	Round      int           `json:"round"`
	Variant    string        `json:"variant"`
	Status     board.Status  `json:"status"`
	Moves      int           `json:"moves"`
	WhiteThink time.Duration `json:"whiteThink"`
	BlackThink time.Duration `json:"blackThink"`
	FinishedAt time.Time     `json:"finishedAt"`
}

func (r Result) key() string {
	return fmt.Sprintf("%s/%d", r.GameID, r.Round)
}

// Recorder is a mutex-guarded ledger of finished games.
type Recorder struct {
	mu      sync.Mutex
	results []Result
	seen    map[string]bool
}

func NewRecorder() *Recorder {
	return &Recorder{
		results: []Result{},
		seen:    make(map[string]bool),
	}
}

// Record appends a result. Reporting the same run twice is a caller bug
// surfaced as ErrDuplicateResult; the first report stands.
func (r *Recorder) Record(res Result) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.seen[res.key()] {
		return fmt.Errorf("%w: %s", ErrDuplicateResult, res.key())
	}
	r.seen[res.key()] = true
	r.results = append(r.results, res)
	return nil
}

// Pending returns a snapshot of the undrained results, oldest first.
func (r *Recorder) Pending() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Result, len(r.results))
	copy(out, r.results)
	return out
}

// Drain hands the pending batch to the settlement layer and clears it.
// Runs already settled stay remembered, so a late duplicate report is
// still rejected.
func (r *Recorder) Drain() []Result {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := r.results
	r.results = []Result{}
	return out
}

func (r *Recorder) Size() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}
