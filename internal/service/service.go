// Package service exposes the external operations a caller (CLI or
// any future transport) drives a game through: settings management,
// solving a hand, listing playable words, and resetting state.
// Grounded in the teacher's internal/api.Handlers shape (one struct
// holding dependencies, one method per operation) but with the
// HTTP/gin plumbing stripped since this design has no web transport.
package service

import (
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/banastack/bananagrams/internal/tileset"
	"github.com/banastack/bananagrams/pkg/board"
	"github.com/banastack/bananagrams/pkg/dictionary"
	"github.com/banastack/bananagrams/pkg/hand"
	"github.com/banastack/bananagrams/pkg/solve"
)

// Dictionaries bundles the two embedded word lists a Service can
// switch between via Settings.UseFullDictionary.
type Dictionaries struct {
	Short *dictionary.Index
	Full  *dictionary.Index
}

// Service holds the mutable game state: the active settings, the
// current hand and board (if any solve has run), and a reference to
// both loaded dictionaries so toggling UseFullDictionary needs no
// reload.
type Service struct {
	mu   sync.Mutex
	dict Dictionaries

	settings solve.Settings

	currentHand  hand.Hand
	currentBoard *board.Board
	hasBoard     bool
}

// New builds a Service with default settings and no board.
func New(dict Dictionaries) *Service {
	return &Service{
		dict:     dict,
		settings: solve.DefaultSettings(),
	}
}

func (s *Service) activeDict() *dictionary.Index {
	if s.settings.UseFullDictionary {
		return s.dict.Full
	}
	return s.dict.Short
}

// SetSettings validates and installs new settings. On success the
// board is cleared, since a dictionary or iteration-cap change
// invalidates any solution already on the table.
func (s *Service) SetSettings(next solve.Settings) error {
	if err := next.Validate(); err != nil {
		return fmt.Errorf("set settings: %w", err)
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = next
	s.hasBoard = false
	s.currentBoard = nil
	log.Printf("settings updated: extra=%d maxIterations=%d fullDict=%t",
		next.ExtraLettersAllowed, next.MaxIterations, next.UseFullDictionary)
	return nil
}

// GetSettings returns the currently active settings.
func (s *Service) GetSettings() solve.Settings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.settings
}

// Reset discards the current board and hand, leaving settings intact.
func (s *Service) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.currentHand = hand.Hand{}
	s.currentBoard = nil
	s.hasBoard = false
}

// PlayBananagrams solves availableLetters into a connected board. If a
// board already exists from a prior call, it attempts an incremental
// replay against the new hand before falling back to a cold solve.
// Returns the board as rows of ASCII bytes (spaces for empty cells, within
// the tight bounding box), the elapsed wall time, and an error
// carrying a *solve.Error kind on failure.
func (s *Service) PlayBananagrams(availableLetters map[byte]int) ([][]byte, time.Duration, error) {
	correlationID := uuid.New().String()
	start := time.Now()

	h, err := hand.FromCounts(availableLetters)
	if err != nil {
		return nil, 0, fmt.Errorf("play bananagrams[%s]: %w", correlationID, err)
	}
	if total := h.Total(); total < 2 {
		return nil, 0, fmt.Errorf("play bananagrams[%s]: %w", correlationID, solve.NewTooFewLettersError(total))
	}
	if letter, exceeds := tileset.ExceedsBag(h); exceeds {
		code, _ := hand.CodeForLetter(letter)
		err := solve.NewLetterCountExceedsAvailableError(letter, int(h[code]), int(tileset.Limits[code]))
		return nil, 0, fmt.Errorf("play bananagrams[%s]: %w", correlationID, err)
	}

	s.mu.Lock()
	dict := s.activeDict()
	extra := s.settings.ExtraLettersAllowed
	maxIterations := s.settings.MaxIterations
	prevHand, prevBoard, hasBoard := s.currentHand, s.currentBoard, s.hasBoard
	s.mu.Unlock()

	var result *board.Board
	var ok bool
	if hasBoard {
		rp := &solve.Replayer{Dict: dict, Extra: extra, Cap: int64(maxIterations)}
		result, ok = rp.Replay(prevBoard, prevHand, h)
	} else {
		result, _, ok = solve.ColdSolve(dict, extra, int64(maxIterations), h)
	}

	elapsed := time.Since(start)
	if !ok {
		log.Printf("play bananagrams[%s]: no solution after %s", correlationID, elapsed)
		return nil, elapsed, fmt.Errorf("play bananagrams[%s]: %w", correlationID, solve.NewNoSolutionError())
	}

	s.mu.Lock()
	s.currentHand = h
	s.currentBoard = result
	s.hasBoard = true
	s.mu.Unlock()

	log.Printf("play bananagrams[%s]: solved in %s", correlationID, elapsed)
	return result.Matrix(), elapsed, nil
}

// GetPlayableWords partitions the dictionary into words spellable from
// the given letters alone (extra_letters_allowed = 0, per the
// single-word-enumeration query), from the short and the full word
// lists, regardless of which dictionary is currently active for
// solving.
func (s *Service) GetPlayableWords(availableLetters map[byte]int) (short, full []string, err error) {
	h, err := hand.FromCounts(availableLetters)
	if err != nil {
		return nil, nil, fmt.Errorf("get playable words: %w", err)
	}

	s.mu.Lock()
	shortDict, fullDict := s.dict.Short, s.dict.Full
	s.mu.Unlock()

	const exact = 0
	short = wordStrings(shortDict.Playable(h, exact))
	full = wordStrings(fullDict.Playable(h, exact))
	return short, full, nil
}

func wordStrings(words []dictionary.Word) []string {
	out := make([]string, len(words))
	for i, w := range words {
		out[i] = w.Text
	}
	return out
}
