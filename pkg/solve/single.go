package solve

import (
	"github.com/banastack/bananagrams/pkg/board"
	"github.com/banastack/bananagrams/pkg/dictionary"
	"github.com/banastack/bananagrams/pkg/hand"
)

// SingleWord is the special case (C5): if some dictionary word's
// letter multiset equals h exactly, the hand is solved trivially by
// placing that one word horizontally at the board center. Used as the
// first thing a solve attempts, before falling back to the full
// recursive search.
func SingleWord(dict *dictionary.Index, h hand.Hand) (*board.Board, bool) {
	matches := dict.ExactMatches(h)
	if len(matches) == 0 {
		return nil, false
	}

	row, col := board.Center()
	for _, w := range matches {
		b := board.New()
		placement := board.Placement{Word: w.Text, Row: row, Col: col, Orientation: board.Horizontal}
		if _, err := board.Validate(b, h, dict, placement); err == nil {
			return b, true
		}
	}
	return nil, false
}
