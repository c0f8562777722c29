package codicefiscale

import (
	dErrors "fiscale/pkg/domain-errors"
)

// decodeNumericField restores the canonical digits of one numeric slot of a
// Codice Fiscale (the 2-char year, the 2-char day, or the 3-digit tail of
// the place code). Digits pass through; the ten reserved substitution
// letters map back to digits and flag the field as an omocodia variant.
// Anything else is a format error.
//
// The month letter is not a numeric slot and never participates. Encoding
// has no counterpart here: generation always emits canonical digits.
func decodeNumericField(field string) (string, bool, error) {
	out := []byte(field)
	touched := false
	for i := 0; i < len(out); i++ {
		c := out[i]
		if c >= '0' && c <= '9' {
			continue
		}
		d, ok := omocodiaDigit[c]
		if !ok {
			return "", false, dErrors.Newf(dErrors.CodeCFInvalidFormat, "character %q is neither a digit nor an omocodia letter", c)
		}
		out[i] = d
		touched = true
	}
	return string(out), touched, nil
}
