package quizgen

import (
	"fmt"
	"math"
)

// StructuralValidator checks that the question has text and a finite answer.
type StructuralValidator struct{}

func (v *StructuralValidator) Name() string { return "structural" }

func (v *StructuralValidator) Validate(q *Question, _ GenerateInput) *ValidationError {
	if q.Text == "" {
		return &ValidationError{Validator: v.Name(), Message: "question text is empty"}
	}
	if math.IsNaN(q.Answer) || math.IsInf(q.Answer, 0) {
		return &ValidationError{
			Validator: v.Name(),
			Message:   fmt.Sprintf("answer %v is not finite", q.Answer),
		}
	}
	return nil
}

// IntegralityValidator enforces the per-operator invariants: division and
// root answers are whole numbers, and exponents stay within the tier cap.
type IntegralityValidator struct{}

func (v *IntegralityValidator) Name() string { return "integrality" }

func (v *IntegralityValidator) Validate(q *Question, input GenerateInput) *ValidationError {
	switch q.Operator {
	case OpDiv, OpSqrt:
		if !isWhole(q.Answer) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("%s answer %v is not a whole number", q.Kind, q.Answer),
			}
		}
	case OpPow:
		_, exp, err := parsePower(q.Text)
		if err != nil {
			return &ValidationError{Validator: v.Name(), Message: err.Error()}
		}
		if limit := MaxExponent(input.Difficulty); exp > float64(limit) {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("exponent %v exceeds cap %d", exp, limit),
			}
		}
		if q.Answer > MaxPowerResult {
			return &ValidationError{
				Validator: v.Name(),
				Message:   fmt.Sprintf("power result %v exceeds %d", q.Answer, MaxPowerResult),
			}
		}
	}
	return nil
}

// isWhole reports whether f has no fractional part.
func isWhole(f float64) bool {
	return f == math.Trunc(f)
}
