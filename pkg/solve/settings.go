package solve

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Settings is the process-wide solve configuration, exposed to the
// host via set_settings/get_settings (§6 of the design). Validation
// tags are enforced with the same validator library the teacher pulls
// in for request binding, here validating a plain config struct
// instead of an HTTP payload.
type Settings struct {
	ExtraLettersAllowed int  `validate:"gte=0,lte=4294967295"`
	MaxIterations       int  `validate:"gte=0,lte=4294967295"`
	UseFullDictionary   bool `validate:"-"`
}

// DefaultSettings matches the defaults implied by the design: two
// extra letters may be drawn from the board per dictionary query, a
// generous iteration cap, and the short dictionary.
func DefaultSettings() Settings {
	return Settings{
		ExtraLettersAllowed: 2,
		MaxIterations:       2_000_000,
		UseFullDictionary:   false,
	}
}

var settingsValidator = validator.New()

// Validate reports InvalidConfiguration for out-of-range fields
// (negative values, values that would overflow a uint32 counter).
func (s Settings) Validate() error {
	if err := settingsValidator.Struct(s); err != nil {
		return wrapError(InvalidConfiguration, fmt.Sprintf("settings out of range: %v", err), err)
	}
	return nil
}
