package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	ServiceName string
	ServerPort  int
	LogLevel    string

	// DataDir overrides the embedded dataset when set.
	DataDir string

	DatabaseURL string

	JWTSecret []byte
	TokenTTL  time.Duration

	KafkaBrokers []string

	ESURL      string
	ESUser     string
	ESPassword string
	ESIndex    string

	RateLimitRPS int
}

func Load() Config {
	return Config{
		ServiceName: EnvDefault("SERVICE_NAME", "dummyjson"),
		ServerPort:  EnvIntAtLeast("SERVER_PORT", 8080, 1),
		LogLevel:    EnvDefault("LOG_LEVEL", "info"),

		DataDir: os.Getenv("DATA_DIR"),

		DatabaseURL: EnvDefault("DATABASE_URL", "file::memory:?cache=shared"),

		JWTSecret: []byte(os.Getenv("JWT_SECRET")),
		TokenTTL:  time.Duration(EnvIntAtLeast("TOKEN_TTL_MINUTES", 60, 1)) * time.Minute,

		KafkaBrokers: EnvList("KAFKA_BROKERS"),

		ESURL:      os.Getenv("ES_URL"),
		ESUser:     os.Getenv("ES_USER"),
		ESPassword: os.Getenv("ES_PASSWORD"),
		ESIndex:    EnvDefault("ES_INDEX", "products"),

		RateLimitRPS: EnvIntAtLeast("RATE_LIMIT_RPS", 100, 0),
	}
}

// EnvList reads a comma separated variable, dropping blank items.
func EnvList(key string) []string {
	items := strings.FieldsFunc(os.Getenv(key), func(r rune) bool { return r == ',' })
	var out []string
	for _, it := range items {
		if it = strings.TrimSpace(it); it != "" {
			out = append(out, it)
		}
	}
	return out
}

func EnvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// EnvIntAtLeast returns def when key is unset, not an integer, or below floor.
func EnvIntAtLeast(key string, def, floor int) int {
	n, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil || n < floor {
		return def
	}
	return n
}
