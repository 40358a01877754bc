package usecase

import "strconv"

// concentrationPrefixLen limits concentration parsing to the leading "NN%"
// portion of the string so percentages buried later in free text (e.g.
// "Niacinamide serum, reduces pores by 40%") are never picked up.
const concentrationPrefixLen = 3

// ExtractNumber pulls the numeric magnitude out of a loosely formatted
// string by keeping only ASCII digits in their original order and parsing
// the result as a base-10 integer. "₹1,499.00" yields 149900 and a string
// with no digits yields 0. Malformed input is never an error.
func ExtractNumber(s string) int {
	n, _ := ParseNumber(s)
	return n
}

// ParseNumber is the strict variant of ExtractNumber: the boolean reports
// whether the string contained at least one digit, so callers that need to
// distinguish "zero" from "nothing to parse" can opt in.
func ParseNumber(s string) (int, bool) {
	digits := make([]byte, 0, len(s))
	for i := 0; i < len(s); i++ {
		if s[i] >= '0' && s[i] <= '9' {
			digits = append(digits, s[i])
		}
	}
	if len(digits) == 0 {
		return 0, false
	}
	n, err := strconv.Atoi(string(digits))
	if err != nil {
		// Only possible on overflow of absurdly long digit runs.
		return 0, false
	}
	return n, true
}

// ParseConcentration parses the numeric strength from a concentration
// string such as "10% Niacinamide". Only the first 3 bytes are considered
// before digit filtering, which handles one- and two-digit percentages.
func ParseConcentration(s string) (int, bool) {
	if len(s) > concentrationPrefixLen {
		s = s[:concentrationPrefixLen]
	}
	return ParseNumber(s)
}
