package domain

import (
	"strings"

	dErrors "fiscale/pkg/domain-errors"
)

// Gender is a domain value identifying the sex recorded on a Codice Fiscale.
// Invariant: the value is exactly "M" or "F".
//
// Usage: construct via ParseGender at trust boundaries to enforce the
// allowlist; direct casting bypasses validation.
type Gender string

// Supported genders. The tax code encodes gender in the birth-day field:
// female days are offset by 40.
const (
	GenderMale   Gender = "M"
	GenderFemale Gender = "F"
)

// validGenders is the single source of truth for valid gender values.
var validGenders = map[Gender]bool{
	GenderMale:   true,
	GenderFemale: true,
}

// ParseGender constructs a Gender from external input. Input is trimmed and
// uppercased before checking, so "m" and " f " are accepted.
//
// Errors: returns CodeGenInvalidGender when the value is empty or not M/F.
func ParseGender(s string) (Gender, error) {
	g := Gender(strings.ToUpper(strings.TrimSpace(s)))
	if !g.IsValid() {
		return "", dErrors.Newf(dErrors.CodeGenInvalidGender, "gender must be M or F, got %q", s)
	}
	return g, nil
}

// IsValid checks if the gender is one of the supported enum values.
func (g Gender) IsValid() bool {
	return validGenders[g]
}

// IsFemale reports whether the gender is female.
func (g Gender) IsFemale() bool {
	return g == GenderFemale
}

// String returns the string representation of the gender.
func (g Gender) String() string {
	return string(g)
}
