package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Port:             8080,
		Environment:      DefaultEnvironment,
		DBPassword:       "a-real-password",
		DBMaxConns:       DefaultDBMaxConns,
		JWTSecret:        "0123456789abcdef0123456789abcdef",
		PublishWorkers:   DefaultPublishWorkers,
		PublishQueueSize: DefaultPublishQueueSize,
		RedisChannel:     DefaultRedisChannel,
	}
}

func TestValidate_Valid(t *testing.T) {
	assert.NoError(t, validConfig().Validate())
}

func TestValidate_ReportsEveryProblem(t *testing.T) {
	cfg := validConfig()
	cfg.JWTSecret = ""
	cfg.Port = 70000
	cfg.PublishQueueSize = 0

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
	assert.Contains(t, err.Error(), "invalid PORT")
	assert.Contains(t, err.Error(), "PUBLISH_QUEUE_SIZE")
	assert.NotContains(t, err.Error(), "PUBLISH_WORKERS")
}

func TestValidate_RedisChannelRequired(t *testing.T) {
	cfg := validConfig()
	cfg.RedisAddr = "localhost:6379"
	cfg.RedisChannel = ""

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_CHANNEL")
}

func TestWarnings_InsecureProduction(t *testing.T) {
	cfg := validConfig()
	cfg.Environment = EnvironmentProduction
	cfg.DBPassword = DefaultDBPassword
	cfg.JWTSecret = "short"

	warnings := cfg.Warnings()
	require.Len(t, warnings, 3)
	assert.Contains(t, warnings[0], "DB_PASSWORD")
	assert.Contains(t, warnings[1], "JWT_SECRET")
	assert.Contains(t, warnings[2], "ALLOWED_ORIGINS")
}

func TestWarnings_DevDefaultsAreQuiet(t *testing.T) {
	cfg := validConfig()
	cfg.DBPassword = DefaultDBPassword

	assert.Empty(t, cfg.Warnings())
}
