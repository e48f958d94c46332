// Package board implements the fixed-size grid the solver places
// words onto (C3) and the placement validator that decides whether a
// proposed word fits the board legally (C4). It is grounded in the
// teacher's pkg/grid, generalized from a crossword's black/white cell
// model to Bananagrams' empty/letter cell model, and from a
// pointer-of-structs grid to a flat byte array per the cache-locality
// design note.
package board

import (
	"github.com/banastack/bananagrams/pkg/hand"
)

// Size is the board's side length. 144 covers the standard 144-tile
// bag: any connected crossword of n tiles fits in an n x n region.
const Size = 144

// Orientation is the axis a word is placed along.
type Orientation int

const (
	Horizontal Orientation = iota
	Vertical
)

func (o Orientation) other() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Other returns the opposite orientation.
func (o Orientation) Other() Orientation { return o.other() }

// Board is a flat Size*Size array of cells, each holding a letter
// code 0..25 or hand.Empty. A flat array gives cache-friendly
// perpendicular scans and lets rollback restore a cell in O(1).
type Board struct {
	cells [Size * Size]int8

	// MinRow..MaxCol are the tight bounding rectangle of occupied
	// cells. Occupied is false for an empty board, in which case those
	// fields are meaningless.
	Occupied bool
	MinRow   int
	MinCol   int
	MaxRow   int
	MaxCol   int
}

// New returns an empty board.
func New() *Board {
	b := &Board{}
	for i := range b.cells {
		b.cells[i] = hand.Empty
	}
	return b
}

func idx(row, col int) int { return row*Size + col }

// InBounds reports whether (row, col) is on the board.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// At returns the cell value at (row, col). Callers must ensure bounds.
func (b *Board) At(row, col int) int8 {
	return b.cells[idx(row, col)]
}

// IsEmptyAt reports whether (row, col) holds hand.Empty.
func (b *Board) IsEmptyAt(row, col int) bool {
	return b.At(row, col) == hand.Empty
}

// set writes a letter code to a cell without touching the bounding box.
func (b *Board) set(row, col int, v int8) {
	b.cells[idx(row, col)] = v
}

// widen grows the bounding box to include (row, col).
func (b *Board) widen(row, col int) {
	if !b.Occupied {
		b.Occupied = true
		b.MinRow, b.MaxRow = row, row
		b.MinCol, b.MaxCol = col, col
		return
	}
	if row < b.MinRow {
		b.MinRow = row
	}
	if row > b.MaxRow {
		b.MaxRow = row
	}
	if col < b.MinCol {
		b.MinCol = col
	}
	if col > b.MaxCol {
		b.MaxCol = col
	}
}

// Clone returns a deep copy, suitable for handing one to each parallel
// worker or for the single-threaded Replayer to mutate freely.
func (b *Board) Clone() *Board {
	clone := *b
	return &clone
}

// Matrix renders the board trimmed to its bounding box: a dense
// rectangular matrix of bytes, spaces for empty cells and uppercase
// letters for occupied ones — exactly the external-interface shape
// play_bananagrams returns.
func (b *Board) Matrix() [][]byte {
	if !b.Occupied {
		return nil
	}
	rows := b.MaxRow - b.MinRow + 1
	cols := b.MaxCol - b.MinCol + 1
	out := make([][]byte, rows)
	for r := 0; r < rows; r++ {
		row := make([]byte, cols)
		for c := 0; c < cols; c++ {
			v := b.At(b.MinRow+r, b.MinCol+c)
			if v == hand.Empty {
				row[c] = ' '
			} else {
				row[c] = hand.LetterForCode(int(v))
			}
		}
		out[r] = row
	}
	return out
}

// LetterCount tallies the multiset of letters currently on the board
// — used by tests to verify invariant 2 (board letters == input hand).
func (b *Board) LetterCount() hand.Hand {
	var h hand.Hand
	for _, v := range b.cells {
		if v != hand.Empty {
			h.Add(int(v))
		}
	}
	return h
}

// Center is the board's middle cell, where the first placement on an
// empty board is anchored.
func Center() (int, int) {
	return Size / 2, Size / 2
}
