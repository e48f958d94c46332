package solve

import (
	"sync/atomic"

	"github.com/banastack/bananagrams/pkg/board"
	"github.com/banastack/bananagrams/pkg/dictionary"
	"github.com/banastack/bananagrams/pkg/hand"
)

// Replayer holds the settings an incremental replay needs: the
// dictionary and filter to query with, and the iteration cap each
// internal search attempt is held to.
type Replayer struct {
	Dict  *dictionary.Index
	Extra int
	Cap   int64
}

// Replay is the incremental replayer (C8). It is invoked when the
// caller supplies a previous board plus a new hand that is an
// elementwise superset of the previous hand. A one-letter delta tries
// single-letter extension only; a larger delta tries direct placement
// of the delta, then word-removal-and-retry. If those fail it runs a
// cold solve.
func (rp *Replayer) Replay(prevBoard *board.Board, prevHand, newHand hand.Hand) (*board.Board, bool) {
	if !newHand.Fits(prevHand) {
		// Not actually a superset; replay's precondition doesn't hold.
		result, _, ok := ColdSolve(rp.Dict, rp.Extra, rp.Cap, newHand)
		return result, ok
	}

	delta := newHand.Minus(prevHand)

	if delta.Total() == 1 {
		letter := soleLetter(delta)
		clone := prevBoard.Clone()
		if result, ok := rp.tryExtendSingleLetter(clone, newHand, letter); ok {
			return result, true
		}
	} else if delta.Total() > 1 {
		if result, ok := rp.tryDirectExtension(prevBoard, delta); ok {
			return result, true
		}
		if result, ok := rp.tryRemoveAndRetry(prevBoard, delta); ok {
			return result, true
		}
	}

	result, _, ok := ColdSolve(rp.Dict, rp.Extra, rp.Cap, newHand)
	return result, ok
}

// tryExtendSingleLetter tries the single new letter at every empty
// cell adjacent to an occupied one, row-major, validating that it
// extends an adjacent run into a dictionary word on whichever axis
// the run lies along (board.Validate separately checks the other,
// perpendicular axis for the same cell).
func (rp *Replayer) tryExtendSingleLetter(b *board.Board, remaining hand.Hand, letter int) (*board.Board, bool) {
	rowLo, rowHi := clamp(b.MinRow-1, 0, board.Size-1), clamp(b.MaxRow+1, 0, board.Size-1)
	colLo, colHi := clamp(b.MinCol-1, 0, board.Size-1), clamp(b.MaxCol+1, 0, board.Size-1)

	for row := rowLo; row <= rowHi; row++ {
		for col := colLo; col <= colHi; col++ {
			if !b.IsEmptyAt(row, col) {
				continue
			}
			for _, orientation := range [2]board.Orientation{board.Horizontal, board.Vertical} {
				word, startRow, startCol := b.ProbeRun(row, col, orientation, int8(letter))
				if len(word) < 2 || !rp.Dict.Exists(word) {
					continue
				}
				placement := board.Placement{Word: word, Row: startRow, Col: startCol, Orientation: orientation}
				if _, err := board.Validate(b, remaining, rp.Dict, placement); err == nil {
					return b, true
				}
			}
		}
	}
	return nil, false
}

// tryDirectExtension runs the recursive search seeded with the
// previous board instead of an empty one, requiring only the delta
// letters (plus the configured extra-letters budget) to reach
// remaining.Total() == 0.
func (rp *Replayer) tryDirectExtension(prevBoard *board.Board, delta hand.Hand) (*board.Board, bool) {
	clone := prevBoard.Clone()
	state := &searchState{
		dict:       rp.Dict,
		extra:      rp.Extra,
		cap:        rp.Cap,
		iterations: &atomic.Int64{},
		found:      &atomic.Bool{},
	}
	return state.search(clone, delta, board.Horizontal, 1, nil)
}

// tryRemoveAndRetry removes one run at a time, row-major by the
// removed run's starting cell (the adopted tie-break for an
// unspecified removal order), freeing its uniquely-owned letters back
// into the available pool, then retries the direct-extension search
// with delta plus those freed letters.
func (rp *Replayer) tryRemoveAndRetry(prevBoard *board.Board, delta hand.Hand) (*board.Board, bool) {
	for _, run := range prevBoard.Runs() {
		candidate := prevBoard.Clone()
		freed := candidate.RemoveRun(run)
		candidate.RecomputeBox()

		available := delta.Plus(freed)
		state := &searchState{
			dict:       rp.Dict,
			extra:      rp.Extra,
			cap:        rp.Cap,
			iterations: &atomic.Int64{},
			found:      &atomic.Bool{},
		}
		if result, ok := state.search(candidate, available, board.Horizontal, 1, nil); ok {
			return result, true
		}
	}
	return nil, false
}

// soleLetter returns the single letter index whose count is nonzero
// in a delta known to total exactly 1.
func soleLetter(delta hand.Hand) int {
	for i := 0; i < hand.Size; i++ {
		if delta[i] > 0 {
			return i
		}
	}
	return -1
}
