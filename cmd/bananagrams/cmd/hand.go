package cmd

import "github.com/banastack/bananagrams/pkg/hand"

// parseHandFlag turns a plain letter string ("BAANT") into the
// letter->count map the service's external interface takes, matching
// how available_letters is described in terms of per-letter counts
// rather than a literal rack string.
func parseHandFlag(letters string) (map[byte]int, error) {
	h, err := hand.FromLetters(letters)
	if err != nil {
		return nil, err
	}
	counts := make(map[byte]int)
	for i := 0; i < hand.Size; i++ {
		if h[i] > 0 {
			counts[hand.LetterForCode(i)] = int(h[i])
		}
	}
	return counts, nil
}
