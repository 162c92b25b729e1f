package quizgen

import (
	"math"
	"testing"
)

func TestStructural_ValidQuestion(t *testing.T) {
	v := &StructuralValidator{}
	if err := v.Validate(&Question{Text: "1 + 2", Answer: 3}, GenerateInput{}); err != nil {
		t.Fatalf("expected nil, got %v", err)
	}
}

func TestStructural_EmptyText(t *testing.T) {
	v := &StructuralValidator{}
	err := v.Validate(&Question{Answer: 3}, GenerateInput{})
	if err == nil {
		t.Fatal("expected error for empty text")
	}
	if err.Validator != "structural" {
		t.Errorf("expected validator %q, got %q", "structural", err.Validator)
	}
}

func TestStructural_NonFinite(t *testing.T) {
	v := &StructuralValidator{}
	for _, f := range []float64{math.NaN(), math.Inf(1), math.Inf(-1)} {
		if err := v.Validate(&Question{Text: "x", Answer: f}, GenerateInput{}); err == nil {
			t.Errorf("expected error for answer %v", f)
		}
	}
}

func TestIntegrality_Division(t *testing.T) {
	v := &IntegralityValidator{}
	if err := v.Validate(&Question{Text: "7 / 2", Answer: 3.5, Operator: OpDiv}, GenerateInput{Difficulty: 5}); err == nil {
		t.Error("expected error for fractional quotient")
	}
	if err := v.Validate(&Question{Text: "8 / 2", Answer: 4, Operator: OpDiv}, GenerateInput{Difficulty: 5}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestIntegrality_PowerCap(t *testing.T) {
	v := &IntegralityValidator{}
	in := GenerateInput{Difficulty: 2}
	if err := v.Validate(&Question{Text: "2^4", Answer: 16, Operator: OpPow}, in); err == nil {
		t.Error("expected error for exponent above the low tier cap")
	}
	if err := v.Validate(&Question{Text: "2^3", Answer: 8, Operator: OpPow}, in); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
	if err := v.Validate(&Question{Text: "15^5", Answer: 759375, Operator: OpPow}, GenerateInput{Difficulty: 10}); err == nil {
		t.Error("expected error for result above the power bound")
	}
}

func TestIntegrality_IgnoresAdditive(t *testing.T) {
	v := &IntegralityValidator{}
	if err := v.Validate(&Question{Text: "1 + 2", Answer: 3, Operator: OpAdd}, GenerateInput{Difficulty: 1}); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}
