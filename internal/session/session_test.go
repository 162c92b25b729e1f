package session

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/abhisek/mathquiz/internal/quizgen"
)

func testQuestions() []quizgen.Question {
	return []quizgen.Question{
		{Text: "12 + 7", Answer: 19, Operator: quizgen.OpAdd, Kind: quizgen.KindAddition},
		{Text: "84 / 7", Answer: 12, Operator: quizgen.OpDiv, Kind: quizgen.KindDivision},
		{Text: "sqrt(49)", Answer: 7, Operator: quizgen.OpSqrt, Kind: quizgen.KindSquareRoot},
		{Text: "3 + 4", Answer: 7, Operator: quizgen.OpAdd, Kind: quizgen.KindAddition},
	}
}

// stepClock advances one second per call.
func stepClock() func() time.Time {
	t := time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC)
	return func() time.Time {
		t = t.Add(time.Second)
		return t
	}
}

func TestSession_SubmitAdvances(t *testing.T) {
	s := newWithClock(testQuestions(), stepClock())
	require.NotEmpty(t, s.ID)

	q, ok := s.Current()
	require.True(t, ok)
	assert.Equal(t, "12 + 7", q.Text)

	r, err := s.Submit(19)
	require.NoError(t, err)
	assert.True(t, r.Correct)
	assert.Equal(t, 1, s.Index())

	r, err = s.Submit(11)
	require.NoError(t, err)
	assert.False(t, r.Correct)
	assert.Equal(t, 12.0, r.CorrectAnswer)
}

func TestSession_ToleranceApplies(t *testing.T) {
	s := New(testQuestions())
	r, err := s.Submit(19.0001)
	require.NoError(t, err)
	assert.True(t, r.Correct)
}

func TestSession_Score(t *testing.T) {
	s := newWithClock(testQuestions(), stepClock())
	for _, a := range []float64{19, 12, 8, 7} {
		_, err := s.Submit(a)
		require.NoError(t, err)
	}
	assert.True(t, s.Done())
	assert.Equal(t, 3, s.Correct())
	assert.Equal(t, 75.0, s.Score())
	assert.Equal(t, 4*time.Second, s.Elapsed)

	_, err := s.Submit(1)
	assert.ErrorIs(t, err, ErrFinished)
	_, ok := s.Current()
	assert.False(t, ok)
}

func TestSession_PartialScoreCountsUnanswered(t *testing.T) {
	s := New(testQuestions())
	_, _ = s.Submit(19)
	assert.Equal(t, 25.0, s.Score())
}

func TestSession_Empty(t *testing.T) {
	s := New(nil)
	assert.True(t, s.Done())
	assert.Equal(t, 0.0, s.Score())
}

func TestBuildSummary(t *testing.T) {
	s := newWithClock(testQuestions(), stepClock())
	for _, a := range []float64{19, 12, 8, 1} {
		_, _ = s.Submit(a)
	}
	sum := BuildSummary(s)

	assert.Equal(t, 4, sum.TotalQuestions)
	assert.Equal(t, 2, sum.TotalCorrect)
	assert.Equal(t, 50.0, sum.Score)
	assert.Equal(t, []KindResult{
		{Kind: quizgen.KindAddition, Attempted: 2, Correct: 1},
		{Kind: quizgen.KindDivision, Attempted: 1, Correct: 1},
		{Kind: quizgen.KindSquareRoot, Attempted: 1, Correct: 0},
	}, sum.KindResults)
}
