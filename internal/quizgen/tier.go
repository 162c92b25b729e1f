package quizgen

const (
	MinDifficulty = 1
	MaxDifficulty = 10

	// MultiplicativeThreshold is the difficulty at which * and / are enabled
	// regardless of the caller's categories.
	MultiplicativeThreshold = 4

	// PowerRootThreshold is the difficulty at which ^ and sqrt are enabled
	// regardless of the caller's categories.
	PowerRootThreshold = 6

	// MaxPowerResult bounds base^exponent.
	MaxPowerResult = 500000
)

// span is an inclusive integer range.
type span struct {
	Min, Max int
}

// Tier holds the operand constants for a difficulty sub-range.
type Tier struct {
	Name string

	// ceilingFactor multiplied by the difficulty gives the operand ceiling
	// for + - *.
	ceilingFactor int

	Divisor    span
	Multiplier span
	// RejectUnitMultiplier resamples a multiplier of 1 so the quotient is
	// never the divisor divided by itself.
	RejectUnitMultiplier bool

	Base     span
	Exponent span
	Root     span
}

var tiers = []Tier{
	{
		Name:          "low",
		ceilingFactor: 15,
		Divisor:       span{2, 8},
		Multiplier:    span{1, 10},
		Base:          span{2, 8},
		Exponent:      span{2, 3},
		Root:          span{2, 12},
	},
	{
		Name:          "mid",
		ceilingFactor: 40,
		Divisor:       span{3, 15},
		Multiplier:    span{2, 20},
		Base:          span{3, 12},
		Exponent:      span{2, 4},
		Root:          span{4, 25},
	},
	{
		Name:                 "high",
		ceilingFactor:        80,
		Divisor:              span{7, 30},
		Multiplier:           span{1, 50},
		RejectUnitMultiplier: true,
		Base:                 span{4, 15},
		Exponent:             span{2, 5},
		Root:                 span{8, 50},
	},
}

// ClampDifficulty forces d into [MinDifficulty, MaxDifficulty].
func ClampDifficulty(d int) int {
	if d < MinDifficulty {
		return MinDifficulty
	}
	if d > MaxDifficulty {
		return MaxDifficulty
	}
	return d
}

// TierFor returns the tier of a difficulty. d is clamped first.
func TierFor(d int) Tier {
	d = ClampDifficulty(d)
	switch {
	case d <= 3:
		return tiers[0]
	case d <= 6:
		return tiers[1]
	default:
		return tiers[2]
	}
}

// OperandCeiling is the largest operand used for + - * at difficulty d.
func OperandCeiling(d int) int {
	d = ClampDifficulty(d)
	return d * TierFor(d).ceilingFactor
}

// MaxExponent is the exponent cap at difficulty d.
func MaxExponent(d int) int {
	return TierFor(d).Exponent.Max
}

// weightedOp is a candidate operator and its selection weight.
type weightedOp struct {
	op     Operator
	weight int
}

// candidates builds the weighted operator list for a clamped input.
// Additive weight falls as difficulty rises, multiplicative weight rises,
// and power/root weight rises once difficulty passes 3.
func candidates(in GenerateInput) []weightedOp {
	d := in.Difficulty
	add := max(1, 8-d)
	ops := []weightedOp{{OpAdd, add}, {OpSub, add}}

	if in.Categories.Multiplicative || d >= MultiplicativeThreshold {
		mul := min(8, d)
		ops = append(ops, weightedOp{OpMul, mul}, weightedOp{OpDiv, mul})
	}
	if in.Categories.Power || in.Categories.Root || d >= PowerRootThreshold {
		pr := max(1, d-3)
		ops = append(ops, weightedOp{OpPow, pr}, weightedOp{OpSqrt, pr})
	}
	return ops
}
