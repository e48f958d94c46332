// Package tileset holds the standard 144-tile Bananagrams bag limits,
// used to validate that a caller-supplied hand doesn't claim more of
// a letter than physically exists. Adapted from the teacher's
// tile/score table pattern (GoSkrafl's bag.go keeps one counts map
// per supported language) to the single fixed English bag this design
// specifies.
package tileset

import "github.com/banastack/bananagrams/pkg/hand"

// Limits holds the physical count of each letter in the standard
// 144-tile bag.
var Limits = hand.Hand{
	'A' - 'A': 13, 'B' - 'A': 3, 'C' - 'A': 3, 'D' - 'A': 6, 'E' - 'A': 18,
	'F' - 'A': 3, 'G' - 'A': 4, 'H' - 'A': 3, 'I' - 'A': 12, 'J' - 'A': 2,
	'K' - 'A': 2, 'L' - 'A': 5, 'M' - 'A': 3, 'N' - 'A': 8, 'O' - 'A': 11,
	'P' - 'A': 3, 'Q' - 'A': 2, 'R' - 'A': 9, 'S' - 'A': 6, 'T' - 'A': 9,
	'U' - 'A': 6, 'V' - 'A': 3, 'W' - 'A': 3, 'X' - 'A': 2, 'Y' - 'A': 3,
	'Z' - 'A': 2,
}

// Total is the size of the standard bag.
const Total = 144

// ExceedsBag reports the first letter (as an uppercase ASCII byte)
// whose count in h exceeds the physical bag, and true; if h is within
// bag limits for every letter it returns (0, false).
func ExceedsBag(h hand.Hand) (byte, bool) {
	for i := 0; i < hand.Size; i++ {
		if h[i] > Limits[i] {
			return hand.LetterForCode(i), true
		}
	}
	return 0, false
}
