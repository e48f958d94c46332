package board

import (
	"errors"
	"fmt"

	"github.com/banastack/bananagrams/pkg/dictionary"
	"github.com/banastack/bananagrams/pkg/hand"
)

// Placement is the tuple (word, row, col, orientation). Horizontal
// places word[k] at (row, col+k); vertical at (row+k, col).
type Placement struct {
	Word        string
	Row         int
	Col         int
	Orientation Orientation
}

// WrittenCell is one cell the validator actually wrote (not reused
// from an existing letter), recorded so a rejected recursion branch
// can roll it back exactly.
type WrittenCell struct {
	Row, Col int
	Prev     int8 // always hand.Empty; kept explicit for round-trip clarity
}

// Accepted is returned by Validate on success: the cells it wrote
// (for rollback) and the letters it drew from the hand (for
// re-crediting on backtrack).
type Accepted struct {
	Written []WrittenCell
	Debited hand.Hand
}

// Rejection reasons, checked in the order the design specifies so the
// first violated invariant explains the rejection.
var (
	ErrOutOfBounds       = errors.New("board: placement out of bounds")
	ErrOverlapMismatch   = errors.New("board: placement overlaps a different letter")
	ErrHandInsufficient  = errors.New("board: hand lacks letters for placement")
	ErrFlanking          = errors.New("board: placement is flanked by an occupied cell")
	ErrPerpendicularRun  = errors.New("board: a perpendicular run is not a dictionary word")
	ErrParallelMismatch  = errors.New("board: parallel run does not equal the intended word")
	ErrDisconnected      = errors.New("board: placement does not touch the existing board")
)

// Validate runs the seven-step check from the design and, on success,
// writes the word's letters into b (stopping at the first failing
// check, so no cells are written on rejection).
func Validate(b *Board, remaining hand.Hand, dict *dictionary.Index, p Placement) (*Accepted, error) {
	n := len(p.Word)
	if n == 0 {
		return nil, fmt.Errorf("board: empty word placement: %w", ErrOutOfBounds)
	}

	// 1. Bounds.
	endRow, endCol := p.Row, p.Col
	if p.Orientation == Horizontal {
		endCol = p.Col + n - 1
	} else {
		endRow = p.Row + n - 1
	}
	if !InBounds(p.Row, p.Col) || !InBounds(endRow, endCol) {
		return nil, ErrOutOfBounds
	}

	// 2. Overlap coherence + 3. hand sufficiency (accumulated, checked after the scan).
	var debit hand.Hand
	written := make([]WrittenCell, 0, n)
	for k := 0; k < n; k++ {
		row, col := cellAt(p, k)
		code, _ := hand.CodeForLetter(p.Word[k])
		existing := b.At(row, col)
		if existing == hand.Empty {
			debit.Add(code)
			written = append(written, WrittenCell{Row: row, Col: col, Prev: hand.Empty})
			continue
		}
		if existing != int8(code) {
			return nil, ErrOverlapMismatch
		}
	}
	if !remaining.Fits(debit) {
		return nil, ErrHandInsufficient
	}

	// 4. Flanking: the cells immediately before/after the word, if on
	// the board, must be empty.
	beforeRow, beforeCol := stepBack(p)
	if InBounds(beforeRow, beforeCol) && !b.IsEmptyAt(beforeRow, beforeCol) {
		return nil, ErrFlanking
	}
	afterRow, afterCol := stepForward(p, n)
	if InBounds(afterRow, afterCol) && !b.IsEmptyAt(afterRow, afterCol) {
		return nil, ErrFlanking
	}

	// Record whether the placement touches a pre-existing letter before
	// its own letters are written, so step 7 cannot be satisfied by the
	// placement's own cells.
	wasEmpty := !b.Occupied
	touches := false
	for _, wc := range written {
		if hasOccupiedNeighbor(b, wc.Row, wc.Col) {
			touches = true
			break
		}
	}

	// Write the new letters now so perpendicular/parallel scans see
	// the placement in place; a failure below restores them before
	// returning.
	for k := 0; k < n; k++ {
		row, col := cellAt(p, k)
		if b.At(row, col) == hand.Empty {
			code, _ := hand.CodeForLetter(p.Word[k])
			b.set(row, col, int8(code))
		}
	}

	rollback := func() {
		for _, wc := range written {
			b.set(wc.Row, wc.Col, hand.Empty)
		}
	}

	// 5. Perpendicular runs: for every newly written cell, the
	// maximal perpendicular run through it (if longer than 1) must be
	// a dictionary word.
	perp := p.Orientation.Other()
	for _, wc := range written {
		start, end := runExtent(b, wc.Row, wc.Col, perp)
		length := runLength(start, end, perp)
		if length <= 1 {
			continue
		}
		word := runWord(b, start, end, perp)
		if !dict.Exists(word) {
			rollback()
			return nil, fmt.Errorf("%w: %q", ErrPerpendicularRun, word)
		}
	}

	// 6. Parallel run: the maximal run along the placement axis must
	// equal the intended word. Flanking (4) already guarantees the
	// run can't extend past the placement's own ends; overlap
	// coherence (2) guarantees every interior cell matches, so this
	// is a cheap confirmation rather than new information.
	start, end := runExtent(b, p.Row, p.Col, p.Orientation)
	parallelWord := runWord(b, start, end, p.Orientation)
	if parallelWord != p.Word {
		rollback()
		return nil, ErrParallelMismatch
	}

	// 7. Connectivity: must touch a pre-existing occupied cell unless
	// this is the very first placement on an empty board.
	if !wasEmpty && !touches {
		rollback()
		return nil, ErrDisconnected
	}

	for _, wc := range written {
		b.widen(wc.Row, wc.Col)
	}

	return &Accepted{Written: written, Debited: debit}, nil
}

// Rollback restores exactly the cells a successful Validate wrote. It
// does not touch the bounding box: callers snapshot it with SaveBox
// before the placement and put it back with RestoreBox.
func (b *Board) Rollback(a *Accepted) {
	for _, wc := range a.Written {
		b.set(wc.Row, wc.Col, hand.Empty)
	}
}

// SaveBox snapshots the bounding box so a caller can restore it after
// a rolled-back placement.
func (b *Board) SaveBox() (occupied bool, minRow, minCol, maxRow, maxCol int) {
	return b.Occupied, b.MinRow, b.MinCol, b.MaxRow, b.MaxCol
}

// RestoreBox restores a bounding box previously captured by SaveBox.
func (b *Board) RestoreBox(occupied bool, minRow, minCol, maxRow, maxCol int) {
	b.Occupied, b.MinRow, b.MinCol, b.MaxRow, b.MaxCol = occupied, minRow, minCol, maxRow, maxCol
}

func cellAt(p Placement, k int) (int, int) {
	if p.Orientation == Horizontal {
		return p.Row, p.Col + k
	}
	return p.Row + k, p.Col
}

func stepBack(p Placement) (int, int) {
	if p.Orientation == Horizontal {
		return p.Row, p.Col - 1
	}
	return p.Row - 1, p.Col
}

func stepForward(p Placement, n int) (int, int) {
	if p.Orientation == Horizontal {
		return p.Row, p.Col + n
	}
	return p.Row + n, p.Col
}

// runExtent finds the maximal contiguous run of occupied cells
// through (row, col) along orientation, returning its start and end
// coordinates inclusive.
func runExtent(b *Board, row, col int, o Orientation) (start, end [2]int) {
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
	return [2]int{sr, sc}, [2]int{er, ec}
}

func runLength(start, end [2]int, o Orientation) int {
	if o == Horizontal {
		return end[1] - start[1] + 1
	}
	return end[0] - start[0] + 1
}

func runWord(b *Board, start, end [2]int, o Orientation) string {
	length := runLength(start, end, o)
	out := make([]byte, length)
	dr, dc := 0, 1
	if o == Vertical {
		dr, dc = 1, 0
	}
	r, c := start[0], start[1]
	for i := 0; i < length; i++ {
		out[i] = hand.LetterForCode(int(b.At(r, c)))
		r, c = r+dr, c+dc
	}
	return string(out)
}

func hasOccupiedNeighbor(b *Board, row, col int) bool {
	neighbors := [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	for _, n := range neighbors {
		nr, nc := row+n[0], col+n[1]
		if InBounds(nr, nc) && !b.IsEmptyAt(nr, nc) {
			return true
		}
	}
	return false
}
