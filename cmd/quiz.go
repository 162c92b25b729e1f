package cmd

import (
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquiz/internal/quizgen"
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Print a batch of questions",
	Args:  cobra.NoArgs,
	Example: `  mathquiz quiz -d 6 -n 10 --mult-div
  mathquiz quiz --daily=2024-05-01 --answers`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		genConfig := quizgen.DefaultConfig()
		genConfig.AllowNegatives = cfg.Quiz.AllowNegatives

		showAnswers, _ := cmd.Flags().GetBool("answers")
		out := cmd.OutOrStdout()

		if cmd.Flags().Changed("daily") {
			daily, _ := cmd.Flags().GetString("daily")
			date := time.Now().UTC()
			if daily != "" && daily != "today" {
				date, err = quizgen.ParseDate(daily)
				if err != nil {
					return fmt.Errorf("invalid --daily date %q: want YYYY-MM-DD", daily)
				}
			}
			fmt.Fprintf(out, "Daily quiz for %s\n", date.Format("2006-01-02"))
			printQuestions(out, quizgen.DailyQuiz(date, genConfig), showAnswers)
			return nil
		}

		difficulty := cfg.Quiz.Difficulty
		if cmd.Flags().Changed("difficulty") {
			difficulty, _ = cmd.Flags().GetInt("difficulty")
		}
		n := cfg.Quiz.NumQuestions
		if cmd.Flags().Changed("num") {
			n, _ = cmd.Flags().GetInt("num")
		}
		if n < 1 || n > cfg.Quiz.MaxQuestions {
			return fmt.Errorf("--num must be within 1..%d, got %d", cfg.Quiz.MaxQuestions, n)
		}

		multDiv, _ := cmd.Flags().GetBool("mult-div")
		sqrtExp, _ := cmd.Flags().GetBool("sqrt-exp")
		cats := quizgen.Categories{
			Additive:       true,
			Multiplicative: multDiv,
			Power:          sqrtExp,
			Root:           sqrtExp,
		}

		gen := quizgen.New(genConfig)
		printQuestions(out, gen.GenerateQuiz(difficulty, n, cats), showAnswers)
		return nil
	},
}

func init() {
	quizCmd.Flags().IntP("difficulty", "d", 0, "Difficulty 1-10 (default from config)")
	quizCmd.Flags().IntP("num", "n", 0, "Number of questions (default from config)")
	quizCmd.Flags().Bool("mult-div", false, "Include multiplication and division")
	quizCmd.Flags().Bool("sqrt-exp", false, "Include square roots and exponents")
	quizCmd.Flags().String("daily", "", "Print the daily quiz for a date (YYYY-MM-DD, or today)")
	quizCmd.Flags().Lookup("daily").NoOptDefVal = "today"
	quizCmd.Flags().Bool("answers", false, "Print answers next to the questions")
}

func printQuestions(w io.Writer, questions []quizgen.Question, showAnswers bool) {
	for i, q := range questions {
		if showAnswers {
			fmt.Fprintf(w, "%2d. %s = %s\n", i+1, q.Text, quizgen.FormatAnswer(q.Answer))
			continue
		}
		fmt.Fprintf(w, "%2d. %s = ?\n", i+1, q.Text)
	}
}
