package quizgen

import (
	"crypto/sha256"
	"encoding/binary"
	"time"
)

const (
	// DailyDifficulty is the difficulty of the daily quiz.
	DailyDifficulty = 5

	// DailyQuestions is the number of questions in the daily quiz.
	DailyQuestions = 10

	dateLayout = "2006-01-02"
)

// GenerateQuiz produces n questions. n below 1 yields an empty quiz.
func (g *Generator) GenerateQuiz(difficulty, n int, cats Categories) []Question {
	if n < 1 {
		return nil
	}
	questions := make([]Question, 0, n)
	for range n {
		questions = append(questions, g.Generate(difficulty, cats))
	}
	return questions
}

// DailySeed maps a calendar date to a stable seed.
func DailySeed(date time.Time) uint64 {
	h := sha256.Sum256([]byte(date.Format(dateLayout)))
	return binary.LittleEndian.Uint64(h[:8])
}

// DailyQuiz returns the quiz for the given date. Every category is enabled,
// and the same date always yields the same questions.
func DailyQuiz(date time.Time, cfg Config) []Question {
	g := NewSeeded(DailySeed(date), cfg)
	return g.GenerateQuiz(DailyDifficulty, DailyQuestions, AllCategories())
}

// ParseDate parses a YYYY-MM-DD date in UTC.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}
