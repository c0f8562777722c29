package codicefiscale

import (
	"time"

	"fiscale/pkg/domain"
	dErrors "fiscale/pkg/domain-errors"
)

// ValidationResult is the immutable outcome of validating a Codice Fiscale.
// Exactly one of the two holds: IsValid is true and ErrorCode is empty, or
// IsValid is false and ErrorCode carries one enumerated code. Enrichment
// fields are populated as far as decoding got; an underage result still
// carries birthdate, age, and birth place.
type ValidationResult struct {
	IsValid        bool
	ErrorCode      dErrors.Code
	FormattedValue string

	Birthdate *time.Time
	Age       *int
	Gender    domain.Gender

	BirthPlaceCode     string
	BirthPlaceName     string
	BirthPlaceProvince string
	IsForeignBorn      bool
}

// GenerationResult is the immutable outcome of generating a Codice Fiscale.
type GenerationResult struct {
	IsValid       bool
	ErrorCode     dErrors.Code
	CodiceFiscale string
}

// fields is the decoded (or pre-encode) intermediate form of a code.
//
// Invariants: surname and name are 3 letters each; dayRaw is 1-31 for males
// and 41-71 for females; month is 1-12; place is letter + 3 digits.
type fields struct {
	surname string
	name    string
	year2   int
	month   int
	dayRaw  int
	place   string
}
