package quizgen

import (
	"fmt"
	"math"
	"math/rand/v2"
	"strconv"

	"go.uber.org/zap"
)

// Source is the random source a Generator draws from.
type Source interface {
	// IntN returns a uniform int in [0, n). n must be positive.
	IntN(n int) int
}

// globalSource uses the goroutine-safe top-level math/rand/v2 functions.
type globalSource struct{}

func (globalSource) IntN(n int) int { return rand.IntN(n) }

// Generator produces arithmetic questions. A Generator built with New is safe
// for concurrent use. One built with NewSeeded is not, and should be owned
// by a single request.
type Generator struct {
	src    Source
	config Config
}

// New creates a Generator backed by the shared random source.
func New(cfg Config) *Generator {
	return &Generator{src: globalSource{}, config: cfg}
}

// NewSeeded creates a deterministic Generator. The same seed and the same
// sequence of calls always produce the same questions.
func NewSeeded(seed uint64, cfg Config) *Generator {
	return &Generator{src: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), config: cfg}
}

// NewWithSource creates a Generator that draws from src.
func NewWithSource(src Source, cfg Config) *Generator {
	return &Generator{src: src, config: cfg}
}

// Generate produces one question for the given difficulty and categories.
// It never fails: any internal error yields the fallback question.
func (g *Generator) Generate(difficulty int, cats Categories) Question {
	in := GenerateInput{Difficulty: ClampDifficulty(difficulty), Categories: cats}

	q, err := g.build(in)
	if err != nil {
		g.logger().Warn("question generation failed, using fallback",
			zap.Int("difficulty", in.Difficulty),
			zap.Error(err),
		)
		return g.fallback()
	}
	return q
}

// build constructs and validates a question. Panics from the source or the
// arithmetic are converted into errors.
func (g *Generator) build(in GenerateInput) (q Question, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("panic during generation: %v", r)
		}
	}()

	op := g.pickOperator(candidates(in))
	q, err = g.construct(op, in.Difficulty)
	if err != nil {
		return Question{}, err
	}

	for _, v := range g.config.Validators {
		if verr := v.Validate(&q, in); verr != nil {
			return Question{}, verr
		}
	}
	return q, nil
}

// pickOperator makes a weighted random choice over ops.
func (g *Generator) pickOperator(ops []weightedOp) Operator {
	total := 0
	for _, o := range ops {
		total += o.weight
	}
	r := g.src.IntN(total)
	for _, o := range ops {
		if r < o.weight {
			return o.op
		}
		r -= o.weight
	}
	return ops[len(ops)-1].op
}

// construct builds the operands for op and computes the answer explicitly.
func (g *Generator) construct(op Operator, d int) (Question, error) {
	t := TierFor(d)

	switch op {
	case OpAdd:
		a, b := g.operand(d), g.operand(d)
		return infix(a, OpAdd, b, float64(a+b), KindAddition), nil

	case OpSub:
		a, b := g.operand(d), g.operand(d)
		if !g.config.AllowNegatives && a < b {
			a, b = b, a
		}
		return infix(a, OpSub, b, float64(a-b), KindSubtraction), nil

	case OpMul:
		a, b := g.operand(d), g.operand(d)
		return infix(a, OpMul, b, float64(a*b), KindMultiplication), nil

	case OpDiv:
		divisor := g.intIn(t.Divisor)
		mult := g.intIn(t.Multiplier)
		for t.RejectUnitMultiplier && mult == 1 {
			mult = g.intIn(t.Multiplier)
		}
		return infix(divisor*mult, OpDiv, divisor, float64(mult), KindDivision), nil

	case OpPow:
		base, exp := g.intIn(t.Base), g.intIn(t.Exponent)
		for base > 2 && ipow(base, exp) > MaxPowerResult {
			base--
		}
		result := ipow(base, exp)
		if result > MaxPowerResult {
			return Question{}, fmt.Errorf("power %d^%d exceeds %d", base, exp, MaxPowerResult)
		}
		return Question{
			Text:     strconv.Itoa(base) + "^" + strconv.Itoa(exp),
			Answer:   float64(result),
			Operator: OpPow,
			Kind:     KindExponent,
		}, nil

	case OpSqrt:
		root := g.intIn(t.Root)
		return Question{
			Text:     "sqrt(" + strconv.Itoa(root*root) + ")",
			Answer:   float64(root),
			Operator: OpSqrt,
			Kind:     KindSquareRoot,
		}, nil
	}
	return Question{}, fmt.Errorf("unsupported operator %q", op)
}

// fallback returns "a + b" with single-digit operands.
func (g *Generator) fallback() Question {
	a, b := 1+g.src.IntN(9), 1+g.src.IntN(9)
	return infix(a, OpAdd, b, float64(a+b), KindFallback)
}

// operand returns a random operand in [1, OperandCeiling(d)].
func (g *Generator) operand(d int) int {
	return 1 + g.src.IntN(OperandCeiling(d))
}

// intIn returns a random int in the inclusive span s.
func (g *Generator) intIn(s span) int {
	return s.Min + g.src.IntN(s.Max-s.Min+1)
}

func (g *Generator) logger() *zap.Logger {
	if g.config.Logger == nil {
		return zap.NewNop()
	}
	return g.config.Logger
}

// infix renders a two-operand question.
func infix(a int, op Operator, b int, answer float64, kind Kind) Question {
	return Question{
		Text:     fmt.Sprintf("%d %s %d", a, op, b),
		Answer:   answer,
		Operator: op,
		Kind:     kind,
	}
}

// ipow computes base^exp with integer arithmetic, saturating at math.MaxInt.
func ipow(base, exp int) int {
	result := 1
	for range exp {
		if result > math.MaxInt/max(base, 1) {
			return math.MaxInt
		}
		result *= base
	}
	return result
}
