package quizgen

// Operator is one of the arithmetic operations a question can use.
type Operator string

const (
	OpAdd  Operator = "+"
	OpSub  Operator = "-"
	OpMul  Operator = "*"
	OpDiv  Operator = "/"
	OpPow  Operator = "^"
	OpSqrt Operator = "sqrt"
)

// Kind labels a question by the operation that produced it.
type Kind string

const (
	KindAddition       Kind = "addition"
	KindSubtraction    Kind = "subtraction"
	KindMultiplication Kind = "multiplication"
	KindDivision       Kind = "division"
	KindExponent       Kind = "exponent"
	KindSquareRoot     Kind = "squareRoot"
	KindFallback       Kind = "fallback"
)

// Category gates which operators may appear in a question.
type Category string

const (
	CategoryAdditive       Category = "additive"
	CategoryMultiplicative Category = "multiplicative"
	CategoryPower          Category = "power"
	CategoryRoot           Category = "root"
)

// Categories is the set of operation categories the caller enabled.
// Additive operators are always available, so Additive is informational.
type Categories struct {
	Additive       bool
	Multiplicative bool
	Power          bool
	Root           bool
}

// AllCategories enables every category.
func AllCategories() Categories {
	return Categories{Additive: true, Multiplicative: true, Power: true, Root: true}
}

// Has reports whether c is explicitly enabled.
func (cs Categories) Has(c Category) bool {
	switch c {
	case CategoryAdditive:
		return true
	case CategoryMultiplicative:
		return cs.Multiplicative
	case CategoryPower:
		return cs.Power
	case CategoryRoot:
		return cs.Root
	}
	return false
}

// Question is a generated arithmetic question. It is a plain value; callers
// may copy it freely.
type Question struct {
	// Text is the human-readable expression, e.g. "12 + 7", "5^3", "sqrt(49)".
	Text string

	// Answer is the exact numeric result of Text.
	Answer float64

	// Operator is the operation used to build the question.
	Operator Operator

	// Kind labels the question for display and filtering.
	Kind Kind
}

// GenerateInput holds the parameters of a single generation call after
// clamping.
type GenerateInput struct {
	Difficulty int
	Categories Categories
}
