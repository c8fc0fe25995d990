package config

import (
	"errors"
	"fmt"
)

// MinJWTSecretLength is the shortest secret accepted without a warning
const MinJWTSecretLength = 32

const (
	minPort = 1
	maxPort = 65535
)

// Validate reports every setting that would keep the service from starting
func (c *Config) Validate() error {
	var errs []error

	if c.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET environment variable must be set for security"))
	}
	if c.Port < minPort || c.Port > maxPort {
		errs = append(errs, fmt.Errorf("invalid PORT value: %d", c.Port))
	}
	if c.PublishWorkers < 1 {
		errs = append(errs, fmt.Errorf("invalid PUBLISH_WORKERS value: %d", c.PublishWorkers))
	}
	if c.PublishQueueSize < 1 {
		errs = append(errs, fmt.Errorf("invalid PUBLISH_QUEUE_SIZE value: %d", c.PublishQueueSize))
	}
	if c.DBMaxConns < 1 {
		errs = append(errs, fmt.Errorf("invalid DB_MAX_CONNS value: %d", c.DBMaxConns))
	}
	if c.RedisAddr != "" && c.RedisChannel == "" {
		errs = append(errs, errors.New("REDIS_CHANNEL must not be empty when REDIS_ADDR is set"))
	}

	return errors.Join(errs...)
}

// Warnings lists settings that work but should not reach production
func (c *Config) Warnings() []string {
	var warnings []string
	production := c.Environment == EnvironmentProduction

	if production && c.DBPassword == DefaultDBPassword {
		warnings = append(warnings, "DB_PASSWORD is using the default value - please use a secure password")
	}
	if len(c.JWTSecret) < MinJWTSecretLength {
		warnings = append(warnings, fmt.Sprintf("JWT_SECRET is shorter than %d bytes - generate one with: openssl rand -hex 32", MinJWTSecretLength))
	}
	if production && len(c.AllowedOrigins) == 0 {
		warnings = append(warnings, "ALLOWED_ORIGINS is empty - WebSocket upgrades are accepted from any origin")
	}

	return warnings
}
