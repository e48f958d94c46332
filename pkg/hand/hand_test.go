package hand

import "testing"

func TestFromLetters(t *testing.T) {
	h, err := FromLetters("BAT")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Total() != 3 {
		t.Fatalf("expected total 3, got %d", h.Total())
	}
	bCode, _ := CodeForLetter('B')
	if h[bCode] != 1 {
		t.Fatalf("expected one B, got %d", h[bCode])
	}
}

func TestFromLettersRejectsNonLetters(t *testing.T) {
	if _, err := FromLetters("B4T"); err == nil {
		t.Fatal("expected error for non-letter input")
	}
}

func TestAddSub(t *testing.T) {
	var h Hand
	h.Add(0)
	h.Add(0)
	if h[0] != 2 {
		t.Fatalf("expected count 2, got %d", h[0])
	}
	if err := h.Sub(0); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h[0] != 1 {
		t.Fatalf("expected count 1 after sub, got %d", h[0])
	}
}

func TestSubRejectsNegative(t *testing.T) {
	var h Hand
	if err := h.Sub(0); err != ErrNegativeCount {
		t.Fatalf("expected ErrNegativeCount, got %v", err)
	}
}

func TestFits(t *testing.T) {
	h, _ := FromLetters("AABBT")
	sub, _ := FromLetters("ABT")
	if !h.Fits(sub) {
		t.Fatal("expected sub to fit in h")
	}
	tooMany, _ := FromLetters("AAAB")
	if h.Fits(tooMany) {
		t.Fatal("expected tooMany not to fit")
	}
}

func TestDeficitAndPlusIdentity(t *testing.T) {
	h, _ := FromLetters("CAT")
	word, _ := FromLetters("CATS")
	d := h.Deficit(word)
	if d != 1 {
		t.Fatalf("expected deficit 1 for missing S, got %d", d)
	}
	if !h.Plus(Hand{}).Equal(h) {
		t.Fatal("Plus with zero hand should be identity")
	}
}

func TestMinusPlusRoundTrip(t *testing.T) {
	h, _ := FromLetters("CATS")
	word, _ := FromLetters("CAT")
	remaining := h.Minus(word)
	restored := remaining.Plus(word)
	if !restored.Equal(h) {
		t.Fatal("expected Minus then Plus to round-trip")
	}
}

func TestFromCountsValidation(t *testing.T) {
	if _, err := FromCounts(map[byte]int{'A': -1}); err == nil {
		t.Fatal("expected error for negative count")
	}
	if _, err := FromCounts(map[byte]int{'1': 2}); err == nil {
		t.Fatal("expected error for non-letter key")
	}
	h, err := FromCounts(map[byte]int{'B': 1, 'A': 1, 'T': 1})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if h.Total() != 3 {
		t.Fatalf("expected total 3, got %d", h.Total())
	}
}
