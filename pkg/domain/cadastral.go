package domain

import (
	"regexp"
	"strings"

	dErrors "fiscale/pkg/domain-errors"
)

// CadastralCode is the 4-character Belfiore code identifying an Italian
// municipality or, with a leading Z, a foreign country.
// Invariant: one uppercase letter followed by three digits.
//
// A parsed code is shape-valid only; it need not exist in the municipality
// registry (codes may predate the compiled-in table).
type CadastralCode string

// cadastralPattern matches the Belfiore code shape.
var cadastralPattern = regexp.MustCompile(`^[A-Z][0-9]{3}$`)

// ParseCadastralCode constructs a CadastralCode from external input. Input
// is trimmed and uppercased before checking.
//
// Errors: returns CodeGenInvalidBirthPlaceCode when the shape is wrong.
func ParseCadastralCode(s string) (CadastralCode, error) {
	c := CadastralCode(strings.ToUpper(strings.TrimSpace(s)))
	if !c.IsValid() {
		return "", dErrors.Newf(dErrors.CodeGenInvalidBirthPlaceCode, "cadastral code must be a letter followed by three digits, got %q", s)
	}
	return c, nil
}

// IsValid checks the Belfiore code shape.
func (c CadastralCode) IsValid() bool {
	return cadastralPattern.MatchString(string(c))
}

// IsForeign reports whether the code designates a foreign country (Z-codes).
func (c CadastralCode) IsForeign() bool {
	return len(c) > 0 && c[0] == 'Z'
}

// String returns the string representation of the code.
func (c CadastralCode) String() string {
	return string(c)
}
