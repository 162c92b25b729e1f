package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abhisek/mathquiz/internal/config"
	"github.com/abhisek/mathquiz/internal/quizgen"
)

// Server wraps a Gin router plus the question generator.
type Server struct {
	Router *gin.Engine
	HTTP   *http.Server

	gen       *quizgen.Generator
	genConfig quizgen.Config
	cfg       config.Server
	maxQs     int
	log       *zap.Logger
	now       func() time.Time
}

// NewServer wires middleware and routes and returns an instance.
// Call gin.SetMode before NewServer to choose the Gin mode.
func NewServer(cfg *config.Config, genConfig quizgen.Config, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	s := &Server{
		Router:    gin.New(),
		gen:       quizgen.New(genConfig),
		genConfig: genConfig,
		cfg:       cfg.Server,
		maxQs:     cfg.Quiz.MaxQuestions,
		log:       log,
		now:       time.Now,
	}

	s.Router.Use(
		requestID(),
		s.accessLog(),
		s.recoverer(),
		corsMiddleware(cfg.Server.AllowedOrigins),
	)
	s.setupRoutes()
	return s
}

// ----------------------------------------------------------------------
// Routes
// ----------------------------------------------------------------------

func (s *Server) setupRoutes() {
	// Root paths plus the /api prefix used by the web frontend.
	for _, g := range []*gin.RouterGroup{&s.Router.RouterGroup, s.Router.Group("/api")} {
		g.POST("/generate-quiz", s.generateQuiz)
		g.POST("/submit-answer", s.submitAnswer)
		g.GET("/daily-quiz", s.dailyQuiz)
		g.GET("/health", s.health)
	}

	s.Router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, errorResponse{Error: "not found"})
	})
}

// Run serves HTTP until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	s.HTTP = &http.Server{
		Addr:              s.cfg.Addr,
		Handler:           s.Router,
		ReadHeaderTimeout: s.cfg.ReadTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("http server listening", zap.String("addr", s.cfg.Addr))
		if err := s.HTTP.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.log.Info("shutting down http server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	if err := s.HTTP.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
