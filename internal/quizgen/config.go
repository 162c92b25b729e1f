package quizgen

import "go.uber.org/zap"

// Config controls the behavior of the Generator.
type Config struct {
	// Validators is the ordered list of validators to run on every
	// generated question. They execute in order; the first failure
	// replaces the question with the fallback.
	Validators []Validator

	// AllowNegatives permits subtraction questions with a negative answer.
	// When false the larger operand is placed first.
	AllowNegatives bool

	// Logger receives a warning whenever the fallback question is used.
	// Nil means no logging.
	Logger *zap.Logger
}

// DefaultConfig returns a Config with the standard validator chain.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&StructuralValidator{},
			&IntegralityValidator{},
			&MathCheckValidator{},
		},
	}
}
