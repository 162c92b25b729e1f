package api

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/abhisek/mathquiz/internal/quizgen"
)

type generateQuizRequest struct {
	Difficulty     int  `json:"difficulty"`
	NumQuestions   int  `json:"numQuestions"`
	IncludeMultDiv bool `json:"includeMultDiv"`
	IncludeSqrtExp bool `json:"includeSqrtExp"`
}

type questionDTO struct {
	Question string  `json:"question"`
	Answer   float64 `json:"answer"`
	Type     string  `json:"type"`
}

type quizResponse struct {
	Date      string        `json:"date,omitempty"`
	Questions []questionDTO `json:"questions"`
}

type submitAnswerRequest struct {
	UserAnswer    float64 `json:"userAnswer"`
	CorrectAnswer float64 `json:"correctAnswer"`
}

type submitAnswerResponse struct {
	Correct       bool    `json:"correct"`
	CorrectAnswer float64 `json:"correctAnswer"`
}

type healthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// POST /generate-quiz
func (s *Server) generateQuiz(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		s.writeError(c, &RequestError{Message: "could not read body", Err: err})
		return
	}
	var req generateQuizRequest
	if err := decodeBody(GenerateQuizSchema, raw, &req); err != nil {
		s.writeError(c, err)
		return
	}
	if req.NumQuestions > s.maxQs {
		s.writeError(c, &RequestError{Message: fmt.Sprintf("numQuestions must be at most %d", s.maxQs)})
		return
	}

	cats := quizgen.Categories{
		Additive:       true,
		Multiplicative: req.IncludeMultDiv,
		Power:          req.IncludeSqrtExp,
		Root:           req.IncludeSqrtExp,
	}
	questions := s.gen.GenerateQuiz(req.Difficulty, req.NumQuestions, cats)
	c.JSON(http.StatusOK, quizResponse{Questions: toDTOs(questions)})
}

// POST /submit-answer
func (s *Server) submitAnswer(c *gin.Context) {
	raw, err := c.GetRawData()
	if err != nil {
		s.writeError(c, &RequestError{Message: "could not read body", Err: err})
		return
	}
	var req submitAnswerRequest
	if err := decodeBody(SubmitAnswerSchema, raw, &req); err != nil {
		s.writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, submitAnswerResponse{
		Correct:       quizgen.IsCorrect(req.UserAnswer, req.CorrectAnswer),
		CorrectAnswer: req.CorrectAnswer,
	})
}

// GET /daily-quiz?date=YYYY-MM-DD
func (s *Server) dailyQuiz(c *gin.Context) {
	date := s.now().UTC()
	if q := c.Query("date"); q != "" {
		d, err := quizgen.ParseDate(q)
		if err != nil {
			s.writeError(c, &RequestError{Message: "date must be YYYY-MM-DD", Err: err})
			return
		}
		date = d
	}

	questions := quizgen.DailyQuiz(date, s.genConfig)
	c.JSON(http.StatusOK, quizResponse{
		Date:      date.Format(time.DateOnly),
		Questions: toDTOs(questions),
	})
}

// GET /health
func (s *Server) health(c *gin.Context) {
	c.JSON(http.StatusOK, healthResponse{
		Status:  "healthy",
		Message: "Math Quiz Generator API is running",
	})
}

func toDTOs(questions []quizgen.Question) []questionDTO {
	out := make([]questionDTO, 0, len(questions))
	for _, q := range questions {
		out = append(out, questionDTO{
			Question: q.Text,
			Answer:   q.Answer,
			Type:     string(q.Kind),
		})
	}
	return out
}
