package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func resetViper(t *testing.T) {
	t.Helper()
	viper.Reset()
	t.Cleanup(viper.Reset)
}

func TestLoad_DefaultsWithSecretFromEnv(t *testing.T) {
	resetViper(t)
	t.Setenv("CHECKMATE_AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load("")

	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Auth.JWT.Secret)
	assert.Equal(t, 168, cfg.Auth.JWT.ExpiresHours)
	assert.Equal(t, 12, cfg.Auth.Password.BcryptCost)
	assert.Equal(t, 24, cfg.Auth.Session.TTLHours)
	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 15, cfg.RateLimit.WindowMinutes)
	assert.Equal(t, 300, cfg.RateLimit.GlobalLimit)
	assert.Equal(t, 50, cfg.RateLimit.AuthLimit)
	assert.Same(t, cfg, Get())
}

func TestLoad_FailsWithoutJWTSecret(t *testing.T) {
	resetViper(t)

	_, err := Load("")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "auth.jwt.secret")
}

func TestLoad_EnvOverridesMode(t *testing.T) {
	resetViper(t)
	t.Setenv("CHECKMATE_AUTH_JWT_SECRET", "test-secret")

	cfg, err := Load("release")

	require.NoError(t, err)
	assert.Equal(t, "release", cfg.Server.Mode)
}

// exampleConfig mirrors the documented config file layout. Keeping the
// example file parseable and structurally complete is part of the contract.
type exampleConfig struct {
	Server struct {
		Host           string   `yaml:"host"`
		Port           int      `yaml:"port"`
		FrontendURL    string   `yaml:"frontend_url"`
		AllowedOrigins []string `yaml:"allowed_origins"`
	} `yaml:"server"`
	Database struct {
		Driver string `yaml:"driver"`
		Path   string `yaml:"path"`
	} `yaml:"database"`
	Auth struct {
		Password struct {
			BcryptCost int `yaml:"bcrypt_cost"`
		} `yaml:"password"`
		JWT struct {
			Secret       string `yaml:"secret"`
			ExpiresHours int    `yaml:"expires_hours"`
		} `yaml:"jwt"`
		Session struct {
			TTLHours int `yaml:"ttl_hours"`
		} `yaml:"session"`
	} `yaml:"auth"`
	OAuth struct {
		Google struct {
			RedirectURL string `yaml:"redirect_url"`
		} `yaml:"google"`
		GitHub struct {
			RedirectURL string `yaml:"redirect_url"`
		} `yaml:"github"`
	} `yaml:"oauth"`
	Redis struct {
		Host string `yaml:"host"`
		Port int    `yaml:"port"`
	} `yaml:"redis"`
	RateLimit struct {
		WindowMinutes int `yaml:"window_minutes"`
		GlobalLimit   int `yaml:"global_limit"`
		AuthLimit     int `yaml:"auth_limit"`
	} `yaml:"rate_limit"`
}

func TestExampleConfigFile(t *testing.T) {
	data, err := os.ReadFile(filepath.Join("..", "..", "..", "configs", "config.example.yaml"))
	require.NoError(t, err)

	var cfg exampleConfig
	require.NoError(t, yaml.Unmarshal(data, &cfg))

	assert.Equal(t, 5000, cfg.Server.Port)
	assert.Equal(t, "mysql", cfg.Database.Driver)
	assert.Equal(t, 12, cfg.Auth.Password.BcryptCost)
	// The example never ships a real secret.
	assert.Empty(t, cfg.Auth.JWT.Secret)
	assert.Equal(t, 168, cfg.Auth.JWT.ExpiresHours)
	assert.Equal(t, 24, cfg.Auth.Session.TTLHours)
	assert.Contains(t, cfg.OAuth.Google.RedirectURL, "/api/oauth/google/callback")
	assert.Contains(t, cfg.OAuth.GitHub.RedirectURL, "/api/oauth/github/callback")
	assert.Equal(t, 50, cfg.RateLimit.AuthLimit)
	assert.NotEmpty(t, cfg.Server.AllowedOrigins)
}
