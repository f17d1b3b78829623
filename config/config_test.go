package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfigYAML = `
env:
  serviceName: sitd-test
  log:
    level: debug
http:
  port: 8080
jwt:
  secret: from_file
  algorithm: HS256
  expireMinutes: 15
auth:
  hashScheme: pbkdf2_sha256
`

func writeTestConfig(t *testing.T) {
	t.Helper()

	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(testConfigYAML), 0o600))
	t.Chdir(dir)
}

func TestLoadWithEnv_ReadsYAML(t *testing.T) {
	writeTestConfig(t)

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "sitd-test", cfg.Env.ServiceName)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, "from_file", cfg.JWT.Secret)
	assert.Equal(t, 15*time.Minute, cfg.JWT.ExpireDuration())
}

func TestLoadWithEnv_EnvOverridesFile(t *testing.T) {
	writeTestConfig(t)
	t.Setenv("JWT_SECRET", "from_env")
	t.Setenv("JWT_EXP_MIN", "5")
	t.Setenv("JWT_ALG", "HS512")

	cfg, err := LoadWithEnv[Config]("config")
	require.NoError(t, err)

	assert.Equal(t, "from_env", cfg.JWT.Secret)
	assert.Equal(t, 5, cfg.JWT.ExpireMinutes)
	assert.Equal(t, "HS512", cfg.JWT.Algorithm)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("config")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config file config.yaml not found")
}

func TestApplyDefaults(t *testing.T) {
	cfg := &Config{}
	require.NoError(t, cfg.applyDefaults())

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, "HS256", cfg.JWT.Algorithm)
	assert.Equal(t, 60, cfg.JWT.ExpireMinutes)
	assert.Equal(t, "pbkdf2_sha256", cfg.Auth.HashScheme)
	assert.Equal(t, 29000, cfg.Auth.PBKDF2Rounds)
	assert.Equal(t, MaxPasswordBytes, cfg.Auth.MaxPasswordBytes)
}

func TestApplyDefaults_RejectsOtherPasswordLimit(t *testing.T) {
	cfg := &Config{Auth: &AuthConfig{MaxPasswordBytes: 128}}

	err := cfg.applyDefaults()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.maxPasswordBytes must be 72")
}
