package codicefiscale

// Fixed encoding tables for the Codice Fiscale, kept as data rather than
// branches so they can be audited against the official tables
// (D.M. 23/12/1976). None of these maps is ever written after init.

// oddValues maps a character to its contribution when it sits at an odd
// position (1-indexed) of the 15-character body. The values are the
// official non-monotonic assignment, reproduced verbatim.
var oddValues = map[byte]int{
	'0': 1, '1': 0, '2': 5, '3': 7, '4': 9, '5': 13, '6': 15, '7': 17, '8': 19, '9': 21,
	'A': 1, 'B': 0, 'C': 5, 'D': 7, 'E': 9, 'F': 13, 'G': 15, 'H': 17, 'I': 19, 'J': 21,
	'K': 2, 'L': 4, 'M': 18, 'N': 20, 'O': 11, 'P': 3, 'Q': 6, 'R': 8, 'S': 12, 'T': 14,
	'U': 16, 'V': 10, 'W': 22, 'X': 25, 'Y': 24, 'Z': 23,
}

// evenValues maps a character to its contribution at even positions:
// digits count as their numeric value, letters as their ordinal (A=0..Z=25).
var evenValues = map[byte]int{
	'0': 0, '1': 1, '2': 2, '3': 3, '4': 4, '5': 5, '6': 6, '7': 7, '8': 8, '9': 9,
	'A': 0, 'B': 1, 'C': 2, 'D': 3, 'E': 4, 'F': 5, 'G': 6, 'H': 7, 'I': 8, 'J': 9,
	'K': 10, 'L': 11, 'M': 12, 'N': 13, 'O': 14, 'P': 15, 'Q': 16, 'R': 17, 'S': 18, 'T': 19,
	'U': 20, 'V': 21, 'W': 22, 'X': 23, 'Y': 24, 'Z': 25,
}

// monthOfLetter maps the twelve reserved month letters to month numbers.
// F, G, I, J, K, N, O, Q, U, W, X, Y are never used for months.
var monthOfLetter = map[byte]int{
	'A': 1, 'B': 2, 'C': 3, 'D': 4, 'E': 5, 'H': 6,
	'L': 7, 'M': 8, 'P': 9, 'R': 10, 'S': 11, 'T': 12,
}

// letterOfMonth is the inverse of monthOfLetter, indexed by month number.
var letterOfMonth = [13]byte{0, 'A', 'B', 'C', 'D', 'E', 'H', 'L', 'M', 'P', 'R', 'S', 'T'}

// omocodiaDigit maps the ten reserved substitution letters back to the
// digits they stand for. The two directions are exact inverses; the letter
// set is disjoint from everything else used at numeric positions.
var omocodiaDigit = map[byte]byte{
	'L': '0', 'M': '1', 'N': '2', 'P': '3', 'Q': '4',
	'R': '5', 'S': '6', 'T': '7', 'U': '8', 'V': '9',
}
