package solve

import "testing"

func TestErrorStringIncludesDetail(t *testing.T) {
	err := newError(NoSolution, "exhausted within cap")
	want := "NoSolution: exhausted within cap"
	if err.Error() != want {
		t.Fatalf("expected %q, got %q", want, err.Error())
	}
}

func TestErrorStringWithoutDetail(t *testing.T) {
	err := newError(TooFewLetters, "")
	if err.Error() != "TooFewLetters" {
		t.Fatalf("expected bare kind string, got %q", err.Error())
	}
}

func TestWrapErrorUnwraps(t *testing.T) {
	cause := newError(InvalidConfiguration, "inner")
	wrapped := wrapError(InvalidConfiguration, "outer", cause)
	if wrapped.Unwrap() != cause {
		t.Fatal("expected Unwrap to return the wrapped cause")
	}
}
