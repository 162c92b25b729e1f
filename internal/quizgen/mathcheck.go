package quizgen

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// MathCheckValidator independently recomputes the answer from the question
// text and rejects questions whose stored answer disagrees.
type MathCheckValidator struct{}

func (v *MathCheckValidator) Name() string { return "math-check" }

func (v *MathCheckValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	computed, err := Evaluate(q.Text)
	if err != nil {
		return &ValidationError{Validator: v.Name(), Message: err.Error()}
	}
	if !IsCorrect(computed, q.Answer) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("computed %v but question claims %v", computed, q.Answer),
		}
	}
	return nil
}

// Patterns for the rendered question forms.
var (
	infixRe = regexp.MustCompile(`^(-?\d+)\s*([+\-*/])\s*(-?\d+)$`)
	powerRe = regexp.MustCompile(`^(-?\d+)\s*\^\s*(\d+)$`)
	sqrtRe  = regexp.MustCompile(`^sqrt\(\s*(\d+)\s*\)$`)
)

// Evaluate computes the value of a rendered question: "a + b", "a - b",
// "a * b", "a / b", "a^b" or "sqrt(n)". Square roots must be of perfect
// squares.
func Evaluate(text string) (float64, error) {
	text = strings.TrimSpace(text)

	if m := infixRe.FindStringSubmatch(text); m != nil {
		a, _ := strconv.ParseFloat(m[1], 64)
		b, _ := strconv.ParseFloat(m[3], 64)
		switch Operator(m[2]) {
		case OpAdd:
			return a + b, nil
		case OpSub:
			return a - b, nil
		case OpMul:
			return a * b, nil
		case OpDiv:
			if b == 0 {
				return 0, fmt.Errorf("division by zero in %q", text)
			}
			return a / b, nil
		}
	}

	if strings.Contains(text, "^") {
		base, exp, err := parsePower(text)
		if err != nil {
			return 0, err
		}
		return math.Pow(base, exp), nil
	}

	if strings.HasPrefix(text, "sqrt") {
		n, err := Radicand(text)
		if err != nil {
			return 0, err
		}
		root := math.Sqrt(n)
		if root != math.Trunc(root) {
			return 0, fmt.Errorf("%v is not a perfect square", n)
		}
		return root, nil
	}

	return 0, fmt.Errorf("unrecognized expression %q", text)
}

// Radicand extracts n from "sqrt(n)".
func Radicand(text string) (float64, error) {
	m := sqrtRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, fmt.Errorf("not a square root expression: %q", text)
	}
	return strconv.ParseFloat(m[1], 64)
}

// parsePower extracts base and exponent from "a^b".
func parsePower(text string) (base, exp float64, err error) {
	m := powerRe.FindStringSubmatch(strings.TrimSpace(text))
	if m == nil {
		return 0, 0, fmt.Errorf("not a power expression: %q", text)
	}
	base, _ = strconv.ParseFloat(m[1], 64)
	exp, _ = strconv.ParseFloat(m[2], 64)
	return base, exp, nil
}

// ParsePower extracts base and exponent from "a^b".
func ParsePower(text string) (base, exp int, err error) {
	b, e, err := parsePower(text)
	if err != nil {
		return 0, 0, err
	}
	return int(b), int(e), nil
}
