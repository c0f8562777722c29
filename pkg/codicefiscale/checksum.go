package codicefiscale

// checkChar computes the 16th character of a Codice Fiscale from its first
// 15. Odd positions (1-indexed) contribute through the official odd table,
// even positions through the ordinal table; the sum mod 26 selects a letter
// A..Z.
//
// The body must already be uppercased, omocodia-decoded, and alphanumeric;
// the structural pattern check upstream guarantees that.
func checkChar(body string) byte {
	sum := 0
	for i := 0; i < len(body); i++ {
		if i%2 == 0 {
			sum += oddValues[body[i]]
		} else {
			sum += evenValues[body[i]]
		}
	}
	return byte('A' + sum%26)
}
