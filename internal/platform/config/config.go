// Package config builds runtime configuration from environment variables so
// main stays lean. Every knob has a development default; production overrides
// come from the deployment environment.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Server captures the full service configuration.
type Server struct {
	Addr string

	// PostgresDSN enables the durable score store. Empty means in-memory,
	// which is only acceptable for local development.
	PostgresDSN string

	Redis RedisConfig
	Kafka KafkaConfig

	JWTSigningKey string
	JWTIssuer     string
	JWTAudience   string

	// APIKeyHashes maps back-office key names to bcrypt hashes, parsed from
	// KREDI_API_KEYS ("name:hash,name:hash").
	APIKeyHashes map[string]string

	// ScoreCacheTTL bounds how long a cached latest score may serve reads.
	ScoreCacheTTL time.Duration
}

// RedisConfig holds connection settings for the cache and trust signal store.
type RedisConfig struct {
	URL          string
	PoolSize     int
	MinIdleConns int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

// KafkaConfig holds audit publishing settings. Empty brokers disable Kafka and
// fall back to the in-process audit store.
type KafkaConfig struct {
	Brokers    []string
	AuditTopic string
}

// FromEnv builds a Server config from environment variables.
func FromEnv() Server {
	cfg := Server{
		Addr:          envOr("KREDI_ADDR", ":8080"),
		PostgresDSN:   os.Getenv("KREDI_POSTGRES_DSN"),
		JWTSigningKey: envOr("KREDI_JWT_SIGNING_KEY", "dev-secret-key-change-in-production"),
		JWTIssuer:     envOr("KREDI_JWT_ISSUER", "kredi"),
		JWTAudience:   envOr("KREDI_JWT_AUDIENCE", "kredi-scoring"),
		APIKeyHashes:  parseAPIKeys(os.Getenv("KREDI_API_KEYS")),
		ScoreCacheTTL: envDuration("KREDI_SCORE_CACHE_TTL", 15*time.Minute),
		Redis: RedisConfig{
			URL:          os.Getenv("KREDI_REDIS_URL"),
			PoolSize:     envInt("KREDI_REDIS_POOL_SIZE", 10),
			MinIdleConns: envInt("KREDI_REDIS_MIN_IDLE_CONNS", 2),
			DialTimeout:  envDuration("KREDI_REDIS_DIAL_TIMEOUT", 5*time.Second),
			ReadTimeout:  envDuration("KREDI_REDIS_READ_TIMEOUT", 3*time.Second),
			WriteTimeout: envDuration("KREDI_REDIS_WRITE_TIMEOUT", 3*time.Second),
		},
		Kafka: KafkaConfig{
			Brokers:    splitNonEmpty(os.Getenv("KREDI_KAFKA_BROKERS")),
			AuditTopic: envOr("KREDI_KAFKA_AUDIT_TOPIC", "kredi.audit.events"),
		},
	}
	return cfg
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitNonEmpty(csv string) []string {
	if csv == "" {
		return nil
	}
	parts := strings.Split(csv, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func parseAPIKeys(raw string) map[string]string {
	keys := make(map[string]string)
	for _, pair := range splitNonEmpty(raw) {
		name, hash, ok := strings.Cut(pair, ":")
		if !ok || name == "" || hash == "" {
			continue
		}
		keys[name] = hash
	}
	return keys
}
