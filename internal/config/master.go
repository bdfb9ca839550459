package config

import "os"

type AppConfig struct {
	DebugMode      bool
	PostgresConfig *PostgresConfig
	RedisConfig    *RedisConfig
	JwtConfig      *JwtConfig
	SandboxConfig  *SandboxConfig
	GeminiConfig   *GeminiConfig
	GGAuthConfig   *GGAuthConfig
}

func NewSystemConfig() *AppConfig {
	return &AppConfig{
		DebugMode:      os.Getenv("DEBUG_MODE") == "true",
		PostgresConfig: NewPostgresConfig(),
		RedisConfig:    NewRedisConfig(),
		JwtConfig:      NewJwtConfig(),
		SandboxConfig:  NewSandboxConfig(),
		GeminiConfig:   NewGeminiConfig(),
		GGAuthConfig:   NewGGAuthConfig(),
	}
}

// getEnv gets an environment variable with a fallback
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}
