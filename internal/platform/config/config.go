package config

import (
	"os"
	"strconv"
	"time"
)

// Server captures process-level configuration for the complyd server.
type Server struct {
	Addr string

	// MaxContentBytes bounds the content accepted by the scan endpoints.
	// Regex-heavy detectors run in time linear to content length, so the
	// boundary enforces the cap before the engine sees the input.
	MaxContentBytes int

	// PostgresDSN enables the Postgres audit store when set; empty means
	// the in-memory store is used.
	PostgresDSN string

	// JWTSigningKey enables bearer-token auth on /v1 routes when set.
	JWTSigningKey string

	// TrustConfigPath points at an optional YAML file overriding the
	// built-in trusted issuer prefixes and PII allowlist additions.
	TrustConfigPath string

	// AuditBuffer is the capacity of the audit event channel.
	AuditBuffer int

	Redis RedisConfig
}

// RedisConfig holds connection settings for the optional result cache.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// CheckCacheTTL bounds how long compliance-check results are reused.
	CheckCacheTTL time.Duration
}

// FromEnv builds a Server config from environment variables so main stays lean.
func FromEnv() Server {
	return Server{
		Addr:            envString("COMPLYD_ADDR", ":8080"),
		MaxContentBytes: envInt("COMPLYD_MAX_CONTENT_BYTES", 1<<20),
		PostgresDSN:     os.Getenv("COMPLYD_POSTGRES_DSN"),
		JWTSigningKey:   os.Getenv("COMPLYD_JWT_SIGNING_KEY"),
		TrustConfigPath: os.Getenv("COMPLYD_TRUST_CONFIG"),
		AuditBuffer:     envInt("COMPLYD_AUDIT_BUFFER", 1024),
		Redis: RedisConfig{
			URL:           os.Getenv("COMPLYD_REDIS_URL"),
			PoolSize:      envInt("COMPLYD_REDIS_POOL_SIZE", 10),
			MinIdleConns:  envInt("COMPLYD_REDIS_MIN_IDLE", 2),
			DialTimeout:   5 * time.Second,
			ReadTimeout:   3 * time.Second,
			WriteTimeout:  3 * time.Second,
			CheckCacheTTL: 5 * time.Minute,
		},
	}
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}
