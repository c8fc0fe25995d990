package config

import "time"

// Defaults applied when the environment does not provide a value
const (
	DefaultLogLevel    = "info"
	DefaultLogFormat   = "text"
	DefaultServiceName = "urbanpark"
	DefaultVersion     = "dev"
	DefaultEnvironment = "dev"

	DefaultDBPassword = "postgres"

	DefaultDBMaxConns    = 20
	DefaultDBMaxConnIdle = 5 * time.Minute
	DefaultDBMaxConnLife = time.Hour
	DefaultStoreTimeout  = 5 * time.Second

	DefaultPublishWorkers   = 2
	DefaultPublishQueueSize = 256

	DefaultRedisChannel = "urbanpark:spots"
)

// EnvironmentProduction enables the stricter startup warnings
const EnvironmentProduction = "prod"
