package testutil

import (
	"strings"

	"github.com/vertti/dbpreflight/pkg/check"
)

// ContainsLine checks if any line text contains the given substring.
func ContainsLine(lines []check.Line, substr string) bool {
	for _, l := range lines {
		if strings.Contains(l.Text, substr) {
			return true
		}
	}
	return false
}

// HasLine checks if a line with the given mark contains the substring.
func HasLine(lines []check.Line, mark check.Mark, substr string) bool {
	for _, l := range lines {
		if l.Mark == mark && strings.Contains(l.Text, substr) {
			return true
		}
	}
	return false
}

// CountMark counts the lines carrying the given mark.
func CountMark(lines []check.Line, mark check.Mark) int {
	n := 0
	for _, l := range lines {
		if l.Mark == mark {
			n++
		}
	}
	return n
}
