package config_test

import (
	"testing"

	"katalog/internal/config"

	"github.com/stretchr/testify/assert"
)

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")
	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "test_jwt_secret", cfg.JWTSecret)
	assert.Equal(t, ":8080", cfg.AppPort)
	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, "./uploads", cfg.UploadDir)
	assert.NotEmpty(t, cfg.DatabaseDSN)
	assert.NotEmpty(t, cfg.RabbitMQURL)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "test_jwt_secret")
	t.Setenv("APP_ENV", "production")
	t.Setenv("APP_PORT", ":9090")
	cfg, err := config.Load()
	assert.NoError(t, err)
	assert.Equal(t, "production", cfg.AppEnv)
	assert.Equal(t, ":9090", cfg.AppPort)
}
