package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/mathquiz/internal/api"
	"github.com/abhisek/mathquiz/internal/logger"
	"github.com/abhisek/mathquiz/internal/quizgen"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if addr, _ := cmd.Flags().GetString("addr"); addr != "" {
			cfg.Server.Addr = addr
		}

		log, err := logger.New(cfg)
		if err != nil {
			return fmt.Errorf("init logger: %w", err)
		}
		defer func() { _ = log.Sync() }()

		if cfg.IsProduction() {
			gin.SetMode(gin.ReleaseMode)
		}

		genConfig := quizgen.DefaultConfig()
		genConfig.AllowNegatives = cfg.Quiz.AllowNegatives
		genConfig.Logger = log.Named("quizgen")

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		srv := api.NewServer(cfg, genConfig, log.Named("api"))
		if err := srv.Run(ctx); err != nil {
			log.Error("server stopped", zap.Error(err))
			return err
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().String("addr", "", "Listen address (overrides server.addr and PORT)")
}
