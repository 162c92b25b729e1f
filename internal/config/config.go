package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// EnvProduction selects the production logger and Gin release mode.
const EnvProduction = "production"

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env    string `mapstructure:"env"`    // current application environment (local, dev, production)
	Server Server `mapstructure:"server"` // HTTP API section
	Quiz   Quiz   `mapstructure:"quiz"`   // generator defaults
}

// Server contains HTTP API parameters.
type Server struct {
	Addr            string        `mapstructure:"addr"`             // listen address, e.g. ":5000"
	AllowedOrigins  []string      `mapstructure:"allowed_origins"`  // CORS origins; "*" allows all
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"` // graceful shutdown budget
	ReadTimeout     time.Duration `mapstructure:"read_timeout"`     // per-request read timeout
}

// Quiz contains defaults for question generation.
type Quiz struct {
	Difficulty     int  `mapstructure:"difficulty"`      // default difficulty for CLI callers
	NumQuestions   int  `mapstructure:"num_questions"`   // default batch size for CLI callers
	MaxQuestions   int  `mapstructure:"max_questions"`   // upper bound accepted by the API
	AllowNegatives bool `mapstructure:"allow_negatives"` // permit negative subtraction answers
}

// IsProduction reports whether the production environment is selected.
func (c *Config) IsProduction() bool {
	return c.Env == EnvProduction
}

// Load reads configuration from an optional config file, a .env file and
// environment variables. path may be empty to search ./config and the
// working directory for config.yaml.
func Load(path string) (*Config, error) {
	// A missing .env is normal outside development.
	_ = godotenv.Load()

	v := viper.New()
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	v.SetDefault("env", "local")
	v.SetDefault("server.addr", ":5000")
	v.SetDefault("server.allowed_origins", []string{"*"})
	v.SetDefault("server.shutdown_timeout", "5s")
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("quiz.difficulty", 1)
	v.SetDefault("quiz.num_questions", 5)
	v.SetDefault("quiz.max_questions", 50)
	v.SetDefault("quiz.allow_negatives", false)

	// MATHQUIZ_SERVER_ADDR, MATHQUIZ_QUIZ_DIFFICULTY, ...
	v.SetEnvPrefix("mathquiz")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	_ = v.BindEnv("env", "MATHQUIZ_ENV", "APP_ENV")
	_ = v.BindEnv("port", "PORT")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("error loading config file: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshalling config: %w", err)
	}

	// PORT wins over server.addr, matching common hosting conventions.
	if port := v.GetString("port"); port != "" {
		cfg.Server.Addr = ":" + port
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Server.Addr == "" {
		return errors.New("server.addr must not be empty")
	}
	if c.Quiz.MaxQuestions < 1 {
		return fmt.Errorf("quiz.max_questions must be positive, got %d", c.Quiz.MaxQuestions)
	}
	if c.Quiz.NumQuestions < 1 || c.Quiz.NumQuestions > c.Quiz.MaxQuestions {
		return fmt.Errorf("quiz.num_questions must be within 1..%d, got %d", c.Quiz.MaxQuestions, c.Quiz.NumQuestions)
	}
	return nil
}
