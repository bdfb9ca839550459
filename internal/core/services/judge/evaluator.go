package judge

import "strings"

// OutputsMatch compares a program's output against the expected output.
// Leading and trailing whitespace is ignored on both sides; everything
// else, including internal whitespace and case, must match exactly.
func OutputsMatch(expected, actual string) bool {
	return strings.TrimSpace(actual) == strings.TrimSpace(expected)
}
