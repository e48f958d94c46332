package board

import (
	"sort"

	"github.com/banastack/bananagrams/pkg/hand"
)

// Run describes one maximal occupied run of length >= 2 along a
// single axis — the unit the incremental replayer removes and
// restores when retrying a word-removal strategy.
type Run struct {
	StartRow, StartCol int
	Orientation         Orientation
	Length              int
}

// Runs enumerates every maximal run of length >= 2 on the board, in
// row-major order of each run's starting cell (horizontal runs before
// vertical runs when both start at the same cell). This ordering is
// the adopted tie-break for which run the replayer tries removing
// first.
func (b *Board) Runs() []Run {
	var runs []Run
	if !b.Occupied {
		return runs
	}

	for r := b.MinRow; r <= b.MaxRow; r++ {
		c := b.MinCol
		for c <= b.MaxCol {
			if b.IsEmptyAt(r, c) {
				c++
				continue
			}
			start := c
			for c <= b.MaxCol && !b.IsEmptyAt(r, c) {
				c++
			}
			if length := c - start; length >= 2 {
				runs = append(runs, Run{StartRow: r, StartCol: start, Orientation: Horizontal, Length: length})
			}
		}
	}
	for c := b.MinCol; c <= b.MaxCol; c++ {
		r := b.MinRow
		for r <= b.MaxRow {
			if b.IsEmptyAt(r, c) {
				r++
				continue
			}
			start := r
			for r <= b.MaxRow && !b.IsEmptyAt(r, c) {
				r++
			}
			if length := r - start; length >= 2 {
				runs = append(runs, Run{StartRow: start, StartCol: c, Orientation: Vertical, Length: length})
			}
		}
	}

	sort.Slice(runs, func(i, j int) bool {
		if runs[i].StartRow != runs[j].StartRow {
			return runs[i].StartRow < runs[j].StartRow
		}
		if runs[i].StartCol != runs[j].StartCol {
			return runs[i].StartCol < runs[j].StartCol
		}
		return runs[i].Orientation < runs[j].Orientation
	})
	return runs
}

// RemoveRun clears a run's cells back to empty, except for any cell
// that also belongs to a crossing run on the perpendicular axis —
// those stay, matching the teacher's crossing-aware rollback
// (pkg/fill's removeWord only clears a cell when no perpendicular
// entry still claims it). Returns the letters freed by the cells that
// were actually cleared.
func (b *Board) RemoveRun(run Run) hand.Hand {
	var freed hand.Hand
	dr, dc := 0, 1
	if run.Orientation == Vertical {
		dr, dc = 1, 0
	}
	perp := run.Orientation.Other()

	row, col := run.StartRow, run.StartCol
	for i := 0; i < run.Length; i++ {
		if !hasPerpendicularRun(b, row, col, perp) {
			freed.Add(int(b.At(row, col)))
			b.set(row, col, hand.Empty)
		}
		row, col = row+dr, col+dc
	}
	return freed
}

func hasPerpendicularRun(b *Board, row, col int, perp Orientation) bool {
	dr, dc := 0, 1
	if perp == Vertical {
		dr, dc = 1, 0
	}
	before := InBounds(row-dr, col-dc) && !b.IsEmptyAt(row-dr, col-dc)
	after := InBounds(row+dr, col+dc) && !b.IsEmptyAt(row+dr, col+dc)
	return before || after
}

// RecomputeBox rescans the whole grid to restore a tight bounding box
// after a RemoveRun may have shrunk the occupied region. It is O(Size
// squared), acceptable for the occasional replay retry it serves.
func (b *Board) RecomputeBox() {
	b.Occupied = false
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if !b.IsEmptyAt(r, c) {
				b.widen(r, c)
			}
		}
	}
}

// ProbeRun reports the word that would result from filling the empty
// cell (row, col) with letter and extending through whatever is
// already occupied on either side along orientation, along with the
// coordinates the resulting run would start at. It does not mutate
// the board — the incremental replayer uses it to test a single-letter
// extension before committing to a real Validate call.
func (b *Board) ProbeRun(row, col int, o Orientation, letter int8) (word string, startRow, startCol int) {
	dr, dc := 0, 1
	if o == Vertical {
		dr, dc = 1, 0
	}
	sr, sc := row, col
	for InBounds(sr-dr, sc-dc) && !b.IsEmptyAt(sr-dr, sc-dc) {
		sr, sc = sr-dr, sc-dc
	}
	er, ec := row, col
	for InBounds(er+dr, ec+dc) && !b.IsEmptyAt(er+dr, ec+dc) {
		er, ec = er+dr, ec+dc
	}

	length := runLength([2]int{sr, sc}, [2]int{er, ec}, o)
	out := make([]byte, length)
	r, c := sr, sc
	for i := 0; i < length; i++ {
		if r == row && c == col {
			out[i] = hand.LetterForCode(int(letter))
		} else {
			out[i] = hand.LetterForCode(int(b.At(r, c)))
		}
		r, c = r+dr, c+dc
	}
	return string(out), sr, sc
}
