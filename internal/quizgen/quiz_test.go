package quizgen

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateQuiz_Count(t *testing.T) {
	g := New(DefaultConfig())
	assert.Len(t, g.GenerateQuiz(3, 5, Categories{}), 5)
	assert.Len(t, g.GenerateQuiz(3, 50, AllCategories()), 50)
	assert.Empty(t, g.GenerateQuiz(3, 0, Categories{}))
}

func TestGenerateQuiz_EasyBatchIsAdditive(t *testing.T) {
	g := New(DefaultConfig())
	qs := g.GenerateQuiz(1, 5, Categories{})
	require.Len(t, qs, 5)
	for _, q := range qs {
		assert.Contains(t, []Operator{OpAdd, OpSub}, q.Operator, q.Text)
	}
}

func TestDailyQuiz_StablePerDate(t *testing.T) {
	day := time.Date(2026, 10, 19, 0, 0, 0, 0, time.UTC)
	later := day.Add(15 * time.Hour)

	first := DailyQuiz(day, DefaultConfig())
	require.Len(t, first, DailyQuestions)
	assert.Equal(t, first, DailyQuiz(later, DefaultConfig()))
	assert.NotEqual(t, first, DailyQuiz(day.AddDate(0, 0, 1), DefaultConfig()))
}

func TestDailySeed(t *testing.T) {
	a := DailySeed(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	b := DailySeed(time.Date(2026, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, DailySeed(time.Date(2026, 1, 1, 23, 59, 0, 0, time.UTC)))
}

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2026-10-19")
	require.NoError(t, err)
	assert.Equal(t, time.October, d.Month())

	_, err = ParseDate("19/10/2026")
	assert.Error(t, err)
}
