package codicefiscale

import (
	"strings"
	"unicode"

	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Surname and given-name encoding: each contributes three letters built
// from its consonants and vowels. The only asymmetry between the two is
// the skip-2nd-consonant rule for given names with four or more consonants.

// normalizeName reduces an arbitrary input name to the uppercase A-Z
// letters the encoding works on: NFD-decompose, drop combining marks
// (é → e), uppercase, drop everything that is not a plain letter.
func normalizeName(s string) string {
	t := transform.Chain(norm.NFD, transform.RemoveFunc(isMn))
	decomposed, _, _ := transform.String(t, s)

	var b strings.Builder
	for _, r := range strings.ToUpper(decomposed) {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// isMn reports whether r is a Unicode non-spacing mark (e.g. accents).
func isMn(r rune) bool {
	return unicode.Is(unicode.Mn, r)
}

// splitLetters partitions a normalized name into consonants and vowels,
// each in original order.
func splitLetters(name string) (consonants, vowels []byte) {
	for i := 0; i < len(name); i++ {
		if isVowel(name[i]) {
			vowels = append(vowels, name[i])
		} else {
			consonants = append(consonants, name[i])
		}
	}
	return consonants, vowels
}

func isVowel(c byte) bool {
	switch c {
	case 'A', 'E', 'I', 'O', 'U':
		return true
	}
	return false
}

// surnameCode builds the three-letter surname field: consonants in order,
// then vowels, padded with X when the surname has fewer than three letters.
func surnameCode(name string) string {
	consonants, vowels := splitLetters(name)
	return padThree(append(consonants, vowels...))
}

// nameCode builds the three-letter given-name field. With four or more
// consonants the second is skipped (first, third, fourth); otherwise the
// rule matches surnameCode.
func nameCode(name string) string {
	consonants, vowels := splitLetters(name)
	if len(consonants) >= 4 {
		return string([]byte{consonants[0], consonants[2], consonants[3]})
	}
	return padThree(append(consonants, vowels...))
}

func padThree(letters []byte) string {
	for len(letters) < 3 {
		letters = append(letters, 'X')
	}
	return string(letters[:3])
}
