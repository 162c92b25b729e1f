package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// inTempDir runs the test from an empty directory so no stray config.yaml
// or .env is picked up.
func inTempDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	return dir
}

func TestLoad_Defaults(t *testing.T) {
	inTempDir(t)

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, ":5000", cfg.Server.Addr)
	assert.Equal(t, []string{"*"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 5*time.Second, cfg.Server.ShutdownTimeout)
	assert.Equal(t, 1, cfg.Quiz.Difficulty)
	assert.Equal(t, 5, cfg.Quiz.NumQuestions)
	assert.Equal(t, 50, cfg.Quiz.MaxQuestions)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_File(t *testing.T) {
	dir := inTempDir(t)
	path := filepath.Join(dir, "quiz.yaml")
	content := `
env: production
server:
  addr: ":8080"
  allowed_origins: ["http://localhost:3000"]
quiz:
  difficulty: 7
  num_questions: 10
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.Server.AllowedOrigins)
	assert.Equal(t, 7, cfg.Quiz.Difficulty)
	assert.Equal(t, 10, cfg.Quiz.NumQuestions)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	dir := inTempDir(t)
	_, err := Load(filepath.Join(dir, "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	inTempDir(t)
	t.Setenv("MATHQUIZ_QUIZ_DIFFICULTY", "4")
	t.Setenv("APP_ENV", "production")
	t.Setenv("PORT", "9000")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 4, cfg.Quiz.Difficulty)
	assert.Equal(t, "production", cfg.Env)
	assert.Equal(t, ":9000", cfg.Server.Addr)
}

func TestLoad_DotEnv(t *testing.T) {
	dir := inTempDir(t)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("MATHQUIZ_QUIZ_NUM_QUESTIONS=12\n"), 0o644))
	t.Cleanup(func() { os.Unsetenv("MATHQUIZ_QUIZ_NUM_QUESTIONS") })

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, 12, cfg.Quiz.NumQuestions)
}

func TestLoad_InvalidBatchSize(t *testing.T) {
	inTempDir(t)
	t.Setenv("MATHQUIZ_QUIZ_NUM_QUESTIONS", "0")

	_, err := Load("")
	assert.Error(t, err)
}
