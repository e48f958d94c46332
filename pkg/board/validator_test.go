package board

import (
	"testing"

	"github.com/banastack/bananagrams/pkg/hand"
)

func TestValidateRejectsFlankingExtension(t *testing.T) {
	b := New()
	dict := testDict(t)
	remaining, _ := hand.FromLetters("BATS")
	row, col := Center()
	if _, err := Validate(b, remaining, dict, Placement{Word: "BAT", Row: row, Col: col, Orientation: Horizontal}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	// "ATS" reuses BAT's A and T and writes S after the T, which would
	// turn the run into BATS. It must be rejected: the cell before the
	// placement's start holds BAT's B, so the placement is flanked.
	_, err := Validate(b, remaining, dict, Placement{Word: "ATS", Row: row, Col: col + 1, Orientation: Horizontal})
	if err != ErrOverlapMismatch && err != ErrFlanking {
		t.Fatalf("expected overlap or flanking rejection, got %v", err)
	}
}

func TestValidateRejectsHandInsufficient(t *testing.T) {
	b := New()
	dict := testDict(t)
	remaining, _ := hand.FromLetters("BA") // missing the T
	row, col := Center()
	_, err := Validate(b, remaining, dict, Placement{Word: "BAT", Row: row, Col: col, Orientation: Horizontal})
	if err != ErrHandInsufficient {
		t.Fatalf("expected ErrHandInsufficient, got %v", err)
	}
}

func TestValidateRejectsOutOfBounds(t *testing.T) {
	b := New()
	dict := testDict(t)
	remaining, _ := hand.FromLetters("BAT")
	_, err := Validate(b, remaining, dict, Placement{Word: "BAT", Row: 0, Col: Size - 1, Orientation: Horizontal})
	if err != ErrOutOfBounds {
		t.Fatalf("expected ErrOutOfBounds, got %v", err)
	}
}

func TestValidateRoundTripIsByteForByte(t *testing.T) {
	b := New()
	dict := testDict(t)
	remaining, _ := hand.FromLetters("BAT")
	row, col := Center()
	before := *b

	accepted, err := Validate(b, remaining, dict, Placement{Word: "BAT", Row: row, Col: col, Orientation: Horizontal})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	occ, minR, minC, maxR, maxC := before.SaveBox()
	b.Rollback(accepted)
	b.RestoreBox(occ, minR, minC, maxR, maxC)

	if *b != before {
		t.Fatal("expected board to be identical bit-for-bit after placement+rollback")
	}
}
