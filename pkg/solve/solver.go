package solve

import (
	"sync/atomic"

	"github.com/banastack/bananagrams/pkg/board"
	"github.com/banastack/bananagrams/pkg/dictionary"
	"github.com/banastack/bananagrams/pkg/hand"
)

// searchState is the shared, read-mostly context one solve call
// passes down every recursion frame and across every worker: the
// dictionary, the extra-letters-allowed filter, and the three shared
// mutable objects the design calls for (iteration counter, found
// flag — winning_board itself lives with the dispatcher, not here).
type searchState struct {
	dict       *dictionary.Index
	extra      int
	cap        int64
	iterations *atomic.Int64
	found      *atomic.Bool
}

// pollAbort reports whether this worker should stop: the cap was hit
// or a sibling already found a solution. Checked at every frame entry
// and before every placement attempt, per the cooperative-cancellation
// design.
func (s *searchState) pollAbort() bool {
	return s.found.Load() || s.iterations.Load() >= s.cap
}

// search is the recursive backtracking core (C6). board is mutated in
// place and restored exactly on any failing branch; remaining is a
// local value (copied on every call, per hand.Hand being a value
// type). rootCandidates, when non-nil, restricts the very first frame
// to a dispatcher-assigned shard of the root word list instead of the
// full playable set — everything below depth 0 always searches the
// full candidate list.
func (s *searchState) search(b *board.Board, remaining hand.Hand, preferOrientation board.Orientation, depth int, rootCandidates []dictionary.Word) (*board.Board, bool) {
	if remaining.Total() == 0 {
		return b, true
	}
	if s.pollAbort() {
		return nil, false
	}

	var candidates []dictionary.Word
	if depth == 0 && rootCandidates != nil {
		candidates = rootCandidates
	} else {
		candidates = s.dict.Playable(remaining, s.extra)
	}

	orientations := [2]board.Orientation{preferOrientation, preferOrientation.Other()}

	for _, word := range candidates {
		for _, orientation := range orientations {
			for _, placement := range candidatePlacements(b, word.Text, orientation) {
				if s.pollAbort() {
					return nil, false
				}
				s.iterations.Add(1)

				occupied, minRow, minCol, maxRow, maxCol := b.SaveBox()
				accepted, err := board.Validate(b, remaining, s.dict, placement)
				if err != nil {
					continue
				}

				nextRemaining := remaining.Minus(accepted.Debited)
				if result, ok := s.search(b, nextRemaining, preferOrientation.Other(), depth+1, nil); ok {
					return result, true
				}

				b.Rollback(accepted)
				b.RestoreBox(occupied, minRow, minCol, maxRow, maxCol)
			}
		}
	}

	return nil, false
}

// candidatePlacements enumerates every placement of word along
// orientation worth trying against the current board, in row-major
// order. An empty board only ever tries the single center placement
// per orientation (the root case called out in the design); a
// non-empty board ranges rows/cols over the bounding box expanded by
// the word's own length in each direction, clamped to the grid.
func candidatePlacements(b *board.Board, word string, o board.Orientation) []board.Placement {
	if !b.Occupied {
		row, col := board.Center()
		return []board.Placement{{Word: word, Row: row, Col: col, Orientation: o}}
	}

	length := len(word)
	rowLo := clamp(b.MinRow-length, 0, board.Size-1)
	rowHi := clamp(b.MaxRow+length, 0, board.Size-1)
	colLo := clamp(b.MinCol-length, 0, board.Size-1)
	colHi := clamp(b.MaxCol+length, 0, board.Size-1)

	placements := make([]board.Placement, 0, (rowHi-rowLo+1)*(colHi-colLo+1))
	for row := rowLo; row <= rowHi; row++ {
		for col := colLo; col <= colHi; col++ {
			placements = append(placements, board.Placement{Word: word, Row: row, Col: col, Orientation: o})
		}
	}
	return placements
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
