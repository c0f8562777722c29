// Package partitaiva validates the 11-digit Italian Partita IVA VAT number:
// a Luhn-variant weighted checksum plus structural field extraction. There
// is no generation counterpart; numbers are assigned by the issuing
// authority, not derivable from identity data.
package partitaiva

import (
	"strings"

	dErrors "fiscale/pkg/domain-errors"
)

// Result is the immutable outcome of validating a Partita IVA.
type Result struct {
	IsValid        bool
	ErrorCode      dErrors.Code
	FormattedValue string

	// ProvinceCode is the three-digit tax office code (digits 8-10).
	ProvinceCode string
	// IsTemporary flags numbers issued from the 99 block.
	IsTemporary bool
}

// Validator checks Partita IVA numbers. Stateless and safe for concurrent use.
type Validator struct{}

// NewValidator builds a Validator.
func NewValidator() *Validator {
	return &Validator{}
}

// separatorStripper drops the separators commonly found in printed VAT
// numbers. Anything else non-numeric survives normalization and fails the
// 11-digit requirement instead of being silently compacted.
var separatorStripper = strings.NewReplacer(" ", "", "\t", "", ".", "", "-", "")

// Validate normalizes the input (separators and an optional leading IT
// prefix removed), then verifies length and check digit and extracts the
// office code and temporary-number flag.
func (v *Validator) Validate(value string) Result {
	clean := separatorStripper.Replace(strings.TrimSpace(value))
	if len(clean) >= 2 && strings.EqualFold(clean[:2], "IT") {
		clean = clean[2:]
	}
	result := Result{FormattedValue: clean}

	if len(clean) != 11 || !allDigits(clean) {
		result.ErrorCode = dErrors.CodePIvaInvalidLength
		return result
	}

	if expectedCheckDigit(clean) != int(clean[10]-'0') {
		result.ErrorCode = dErrors.CodePIvaInvalidCheckDigit
		return result
	}

	result.IsValid = true
	result.ProvinceCode = clean[7:10]
	result.IsTemporary = strings.HasPrefix(clean, "99")
	return result
}

// expectedCheckDigit runs the Luhn variant over the first ten digits: odd
// positions (1-indexed) count as-is, even positions are doubled with a
// sum-of-digits fold; the check digit completes the sum to a multiple of 10.
func expectedCheckDigit(number string) int {
	sum := 0
	for i := 0; i < 10; i++ {
		d := int(number[i] - '0')
		if i%2 == 1 {
			d *= 2
			if d >= 10 {
				d -= 9
			}
		}
		sum += d
	}
	return (10 - sum%10) % 10
}

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
