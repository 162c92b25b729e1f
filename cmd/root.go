package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/mathquiz/internal/config"
)

var rootCmd = &cobra.Command{
	Use:   "mathquiz",
	Short: "Arithmetic practice questions",
	Long:  "Mathquiz generates arithmetic practice questions and checks answers, from the terminal or over HTTP.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runPlay(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to a config file (default ./config/config.yaml or ./config.yaml)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(quizCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig reads configuration from the --config flag path, falling back
// to the default search locations.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}
