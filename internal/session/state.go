package session

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/mathquiz/internal/quizgen"
)

// ErrFinished is returned when an answer is submitted after the last question.
var ErrFinished = errors.New("session finished")

// Result records the outcome of one answered question.
type Result struct {
	Question      quizgen.Question
	UserAnswer    float64
	Correct       bool
	CorrectAnswer float64
}

// SessionState tracks a fixed batch of questions answered one at a time.
type SessionState struct {
	// ID identifies the session in logs.
	ID string

	// Questions is the batch, generated up front.
	Questions []quizgen.Question

	// Results holds one entry per answered question, in order.
	Results []Result

	// StartTime is when the session was created.
	StartTime time.Time

	// Elapsed is the time from start to the last answer.
	Elapsed time.Duration

	now func() time.Time
}

// New creates a session over questions.
func New(questions []quizgen.Question) *SessionState {
	return newWithClock(questions, time.Now)
}

func newWithClock(questions []quizgen.Question, now func() time.Time) *SessionState {
	return &SessionState{
		ID:        uuid.New().String(),
		Questions: questions,
		Results:   make([]Result, 0, len(questions)),
		StartTime: now(),
		now:       now,
	}
}

// Index is the zero-based position of the current question.
func (s *SessionState) Index() int {
	return len(s.Results)
}

// Current returns the question awaiting an answer.
func (s *SessionState) Current() (quizgen.Question, bool) {
	if s.Done() {
		return quizgen.Question{}, false
	}
	return s.Questions[s.Index()], true
}

// Submit checks answer against the current question and advances.
func (s *SessionState) Submit(answer float64) (Result, error) {
	q, ok := s.Current()
	if !ok {
		return Result{}, ErrFinished
	}
	r := Result{
		Question:      q,
		UserAnswer:    answer,
		Correct:       quizgen.IsCorrect(answer, q.Answer),
		CorrectAnswer: q.Answer,
	}
	s.Results = append(s.Results, r)
	s.Elapsed = s.now().Sub(s.StartTime)
	return r, nil
}

// Done reports whether every question has been answered.
func (s *SessionState) Done() bool {
	return len(s.Results) >= len(s.Questions)
}

// Correct is the number of correct answers so far.
func (s *SessionState) Correct() int {
	n := 0
	for _, r := range s.Results {
		if r.Correct {
			n++
		}
	}
	return n
}

// Score is the percentage of the batch answered correctly, 0 to 100.
// Unanswered questions count as wrong.
func (s *SessionState) Score() float64 {
	if len(s.Questions) == 0 {
		return 0
	}
	return float64(s.Correct()) * 100 / float64(len(s.Questions))
}
