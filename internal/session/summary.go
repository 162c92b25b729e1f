package session

import (
	"time"

	"github.com/abhisek/mathquiz/internal/quizgen"
)

// SessionSummary holds the data displayed on the summary screen.
type SessionSummary struct {
	Duration       time.Duration
	TotalQuestions int
	TotalCorrect   int
	Score          float64
	KindResults    []KindResult
}

// KindResult aggregates answers for one kind of question.
type KindResult struct {
	Kind      quizgen.Kind
	Attempted int
	Correct   int
}

// BuildSummary creates a SessionSummary from the current session state.
// Kinds appear in the order they were first asked.
func BuildSummary(state *SessionState) *SessionSummary {
	var results []KindResult
	index := make(map[quizgen.Kind]int)
	for _, r := range state.Results {
		i, ok := index[r.Question.Kind]
		if !ok {
			i = len(results)
			index[r.Question.Kind] = i
			results = append(results, KindResult{Kind: r.Question.Kind})
		}
		results[i].Attempted++
		if r.Correct {
			results[i].Correct++
		}
	}

	return &SessionSummary{
		Duration:       state.Elapsed,
		TotalQuestions: len(state.Questions),
		TotalCorrect:   state.Correct(),
		Score:          state.Score(),
		KindResults:    results,
	}
}
