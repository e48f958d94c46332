// Package dictionary loads and serves the word sets the solver draws
// candidate placements from. It is grounded in the teacher's
// pkg/wordlist, generalized from a single Broda-format scored list to
// the two immutable short/full sets the solver core needs, grouped by
// length descending and filtered by hand coverage rather than pattern.
package dictionary

import (
	"bufio"
	"embed"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	lru "github.com/hashicorp/golang-lru"

	"github.com/banastack/bananagrams/pkg/hand"
)

//go:embed dicts/short.txt dicts/full.txt
var embeddedDicts embed.FS

// Word is a dictionary entry: its text plus a precomputed letter
// count vector, so hand-coverage filtering never re-scans the string.
type Word struct {
	Text    string
	Letters hand.Hand
	Length  int
}

// Index is an immutable, process-lifetime word index. One Index
// serves one dictionary choice (short or full); switching dictionary
// choice means building a new Index, never mutating one in place.
type Index struct {
	byLengthDesc []Word          // all words, length descending, lexicographic ties ascending
	byLength     map[int][]Word  // length -> words in lexicographic order
	set          map[string]bool // O(1) existence check

	cache *lru.Cache // playable(hand-signature, extra) -> []Word
}

const playableCacheSize = 4096

// Load parses a newline-delimited, one-word-per-line reader into an
// Index. Words are uppercased on read; entries shorter than 2 letters
// or containing a non-letter character are rejected outright (not
// silently skipped — a malformed dictionary file is a configuration
// bug the caller should see).
func Load(r io.Reader) (*Index, error) {
	scanner := bufio.NewScanner(r)
	seen := make(map[string]bool)
	var words []Word

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.ToUpper(strings.TrimSpace(scanner.Text()))
		if line == "" {
			continue
		}
		if len(line) < 2 {
			return nil, fmt.Errorf("dictionary: line %d: word %q shorter than 2 letters", lineNum, line)
		}
		letters, err := hand.FromLetters(line)
		if err != nil {
			return nil, fmt.Errorf("dictionary: line %d: %w", lineNum, err)
		}
		if seen[line] {
			continue
		}
		seen[line] = true
		words = append(words, Word{Text: line, Letters: letters, Length: len(line)})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read error: %w", err)
	}

	sort.Slice(words, func(i, j int) bool {
		if words[i].Length != words[j].Length {
			return words[i].Length > words[j].Length
		}
		return words[i].Text < words[j].Text
	})

	byLength := make(map[int][]Word)
	set := make(map[string]bool, len(words))
	for _, w := range words {
		byLength[w.Length] = append(byLength[w.Length], w)
		set[w.Text] = true
	}
	for length := range byLength {
		sort.Slice(byLength[length], func(i, j int) bool {
			return byLength[length][i].Text < byLength[length][j].Text
		})
	}

	cache, err := lru.New(playableCacheSize)
	if err != nil {
		return nil, fmt.Errorf("dictionary: cache init: %w", err)
	}

	return &Index{
		byLengthDesc: words,
		byLength:     byLength,
		set:          set,
		cache:        cache,
	}, nil
}

// LoadFile is a convenience wrapper around Load for on-disk dictionaries.
func LoadFile(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: open %s: %w", path, err)
	}
	defer f.Close()
	return Load(f)
}

// Built-in dictionary names usable with LoadEmbedded.
const (
	Short = "short"
	Full  = "full"
)

// LoadEmbedded loads one of the dictionaries packaged into the binary
// (short ~1.7k words, full ~2.9k words — stand-ins for the real
// ~30k/~179k word Broda-format lists a production deployment would
// point DICT_SHORT_PATH/DICT_FULL_PATH at instead).
func LoadEmbedded(name string) (*Index, error) {
	path := "dicts/" + name + ".txt"
	f, err := embeddedDicts.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dictionary: unknown embedded dictionary %q: %w", name, err)
	}
	defer f.Close()
	return Load(f)
}

// Exists is the fast word-existence predicate.
func (idx *Index) Exists(word string) bool {
	return idx.set[strings.ToUpper(word)]
}

// WordsOfLength returns every word of the given length, lexicographic order.
func (idx *Index) WordsOfLength(length int) []Word {
	return idx.byLength[length]
}

// All returns every word, grouped by length descending with
// lexicographic ties, exactly the order the recursive solver wants
// candidates tried in.
func (idx *Index) All() []Word {
	return idx.byLengthDesc
}

type playableKey struct {
	hand  hand.Hand
	extra int
}

// Playable returns every word whose letter multiset is covered by h
// plus at most extra additional letters of arbitrary identity,
// sorted length descending with lexicographic ties — the same global
// order All() uses, just filtered. extra=0 yields words spellable
// from h alone.
func (idx *Index) Playable(h hand.Hand, extra int) []Word {
	key := playableKey{hand: h, extra: extra}
	if cached, ok := idx.cache.Get(key); ok {
		return cached.([]Word)
	}

	var out []Word
	for _, w := range idx.byLengthDesc {
		if h.Deficit(w.Letters) <= extra {
			out = append(out, w)
		}
	}
	idx.cache.Add(key, out)
	return out
}

// ExactMatches returns every word whose letter multiset equals h
// exactly (deficit 0 and no leftover tiles) — the query C5 needs.
func (idx *Index) ExactMatches(h hand.Hand) []Word {
	var out []Word
	for _, w := range idx.byLengthDesc {
		if w.Letters == h {
			out = append(out, w)
		}
	}
	return out
}
