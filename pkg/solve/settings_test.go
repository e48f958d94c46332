package solve

import "testing"

func TestDefaultSettingsValid(t *testing.T) {
	if err := DefaultSettings().Validate(); err != nil {
		t.Fatalf("expected default settings to validate, got %v", err)
	}
}

func TestSettingsRejectsNegativeValues(t *testing.T) {
	s := Settings{ExtraLettersAllowed: -1, MaxIterations: 1000}
	if err := s.Validate(); err == nil {
		t.Fatal("expected negative ExtraLettersAllowed to fail validation")
	}
}
