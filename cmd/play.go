package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/mathquiz/internal/app"
	"github.com/abhisek/mathquiz/internal/quizgen"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz in the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
}

// runPlay builds the generator from config and launches the TUI.
func runPlay(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	genConfig := quizgen.DefaultConfig()
	genConfig.AllowNegatives = cfg.Quiz.AllowNegatives

	return app.Run(app.Options{
		Generator:    quizgen.New(genConfig),
		Difficulty:   cfg.Quiz.Difficulty,
		NumQuestions: cfg.Quiz.NumQuestions,
	})
}
