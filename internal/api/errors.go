package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// RequestError is a client error detected at the HTTP boundary. It is
// reported as 400 with its message.
type RequestError struct {
	Message string
	Err     error
}

func (e *RequestError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *RequestError) Unwrap() error {
	return e.Err
}

// errorResponse is the body of every non-2xx response.
type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps err to a status code and writes the error envelope.
// Only RequestError details reach the client.
func (s *Server) writeError(c *gin.Context, err error) {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		s.log.Debug("rejected request", requestFields(c, "error", err)...)
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse{Error: reqErr.Message})
		return
	}
	s.log.Error("request failed", requestFields(c, "error", err)...)
	c.AbortWithStatusJSON(http.StatusInternalServerError, errorResponse{Error: "internal server error"})
}
