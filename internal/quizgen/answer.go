package quizgen

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Tolerance is the absolute difference under which two answers are equal.
const Tolerance = 0.001

// IsCorrect reports whether userAnswer matches correctAnswer within Tolerance.
func IsCorrect(userAnswer, correctAnswer float64) bool {
	return math.Abs(userAnswer-correctAnswer) < Tolerance
}

// ParseAnswer parses a typed answer. Whitespace is trimmed; the value must
// be a finite decimal number.
func ParseAnswer(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, fmt.Errorf("empty answer")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid answer %q: %w", s, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("invalid answer %q: not finite", s)
	}
	return f, nil
}

// FormatAnswer renders an answer without trailing zeros, e.g. "12" or "2.5".
func FormatAnswer(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
