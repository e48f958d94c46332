package board

import (
	"strings"
	"testing"

	"github.com/banastack/bananagrams/pkg/dictionary"
	"github.com/banastack/bananagrams/pkg/hand"
)

func testDict(t *testing.T) *dictionary.Index {
	t.Helper()
	idx, err := dictionary.Load(strings.NewReader("BAT\nCAT\nCATS\nACTS\nAT\nARTS\nTAB\nSAT\n"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return idx
}

func TestNewBoardEmpty(t *testing.T) {
	b := New()
	if b.Occupied {
		t.Fatal("expected new board to report no bounding box")
	}
	row, col := Center()
	if !b.IsEmptyAt(row, col) {
		t.Fatal("expected center cell empty on a fresh board")
	}
}

func TestFirstPlacementNoConnectivityRequired(t *testing.T) {
	b := New()
	dict := testDict(t)
	remaining, _ := hand.FromLetters("BAT")
	row, col := Center()
	accepted, err := Validate(b, remaining, dict, Placement{Word: "BAT", Row: row, Col: col, Orientation: Horizontal})
	if err != nil {
		t.Fatalf("unexpected rejection of first placement: %v", err)
	}
	if len(accepted.Written) != 3 {
		t.Fatalf("expected 3 written cells, got %d", len(accepted.Written))
	}
	if !b.Connected() {
		t.Fatal("expected single word to be connected")
	}
}

func TestValidateRejectsUnconnectedSecondPlacement(t *testing.T) {
	b := New()
	dict := testDict(t)
	remaining, _ := hand.FromLetters("BATSAT")
	row, col := Center()
	if _, err := Validate(b, remaining, dict, Placement{Word: "BAT", Row: row, Col: col, Orientation: Horizontal}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	_, err := Validate(b, remaining, dict, Placement{Word: "SAT", Row: row + 10, Col: col, Orientation: Horizontal})
	if err != ErrDisconnected {
		t.Fatalf("expected ErrDisconnected, got %v", err)
	}
}

func TestRollbackRestoresBoardAndBox(t *testing.T) {
	b := New()
	dict := testDict(t)
	remaining, _ := hand.FromLetters("BAT")
	row, col := Center()
	occBefore, minR, minC, maxR, maxC := b.SaveBox()

	accepted, err := Validate(b, remaining, dict, Placement{Word: "BAT", Row: row, Col: col, Orientation: Horizontal})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	b.Rollback(accepted)
	b.RestoreBox(occBefore, minR, minC, maxR, maxC)

	if b.Occupied {
		t.Fatal("expected board to be unoccupied after rollback")
	}
	if !b.IsEmptyAt(row, col) {
		t.Fatal("expected cell to be empty after rollback")
	}
}

func TestValidatePerpendicularCrossword(t *testing.T) {
	b := New()
	dict := testDict(t)
	remaining, _ := hand.FromLetters("BATARTS")
	row, col := Center()
	if _, err := Validate(b, remaining, dict, Placement{Word: "BAT", Row: row, Col: col, Orientation: Horizontal}); err != nil {
		t.Fatalf("unexpected error placing BAT: %v", err)
	}
	// ARTS crosses BAT's A at (row, col+1): vertical, starting on BAT's row.
	_, err := Validate(b, remaining, dict, Placement{Word: "ARTS", Row: row, Col: col + 1, Orientation: Vertical})
	if err != nil {
		t.Fatalf("unexpected rejection of crossing word: %v", err)
	}
	if !b.Connected() {
		t.Fatal("expected crossword to remain a single connected component")
	}
}

func TestValidateRejectsInvalidPerpendicularRun(t *testing.T) {
	b := New()
	dict := testDict(t)
	remaining, _ := hand.FromLetters("BATXYZ")
	row, col := Center()
	if _, err := Validate(b, remaining, dict, Placement{Word: "BAT", Row: row, Col: col, Orientation: Horizontal}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	before := b.Matrix()
	// XYZ directly under BAT forms the vertical runs BX, AY and TZ.
	_, err := Validate(b, remaining, dict, Placement{Word: "XYZ", Row: row + 1, Col: col, Orientation: Horizontal})
	if err == nil {
		t.Fatal("expected rejection: perpendicular run BX is not a dictionary word")
	}
	after := b.Matrix()
	if len(before) != len(after) {
		t.Fatal("expected board unchanged after a rejected placement")
	}
}

func TestLetterCountMatchesPlacedWords(t *testing.T) {
	b := New()
	dict := testDict(t)
	remaining, _ := hand.FromLetters("BAT")
	row, col := Center()
	if _, err := Validate(b, remaining, dict, Placement{Word: "BAT", Row: row, Col: col, Orientation: Horizontal}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected, _ := hand.FromLetters("BAT")
	if b.LetterCount() != expected {
		t.Fatalf("expected board letters to equal BAT, got %v", b.LetterCount())
	}
}
