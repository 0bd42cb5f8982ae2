package utils

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FileThenEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("APP_PORT: \"8080\"\nJWT_SECRET: from-file\nDB_HOST: db\n"), 0o600))

	t.Setenv("JWT_SECRET", "from-env")
	t.Setenv("JWT_TTL_HOURS", "12")

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "from-env", cfg.JWTSecret)
	assert.Equal(t, 12, cfg.JWTTTLHours)
	assert.Equal(t, "db", cfg.DBHost)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, 10, cfg.RateLimit)
	assert.Equal(t, "gemini-2.5-flash", cfg.GeminiModel)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, 168, cfg.JWTTTLHours)
}

func TestValidate(t *testing.T) {
	cfg := Config{DBHost: "h", DBUser: "u", DBName: "n", DBPort: "5432"}
	assert.Error(t, cfg.Validate())

	cfg.JWTSecret = "s"
	assert.NoError(t, cfg.Validate())

	cfg.DBPort = ""
	assert.ErrorContains(t, cfg.Validate(), "DB_PORT")
}

func TestOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, Config{}.Origins())
	assert.Equal(t, []string{"a", "b"}, Config{CORSOrigins: "a,b"}.Origins())
}
