// ABOUTME: Environment-driven configuration, resolved once at startup.
// ABOUTME: Loads a .env file when present, then reads MAESTRO_* variables.

package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the resolved runtime configuration. It is read-only after Load.
type Config struct {
	// APIURL is the base URL of the CRUD API the console consumes.
	APIURL string
	// APITimeout bounds each API request.
	APITimeout time.Duration
	// Port is the listen port of the admin console (and the mock backend
	// when mocking is enabled).
	Port int
	// DBPath is the SQLite database path of the mock backend.
	DBPath string
	// Production suppresses payload logging.
	Production bool
	// LogLevel is "debug", "info", "warn" or "error".
	LogLevel string
	// EnableMocking self-hosts the backend API inside this process.
	EnableMocking bool
	// Features holds the named feature flags.
	Features map[string]bool
}

// Load resolves the configuration from the environment. A .env file in the
// working directory is loaded first when present; real environment variables
// win over file values.
func Load() Config {
	// godotenv.Load does not override variables already set.
	godotenv.Load()

	cfg := Config{
		APIURL:        getEnv("MAESTRO_API_URL", "http://localhost:3000/api"),
		APITimeout:    getDuration("MAESTRO_API_TIMEOUT", 30*time.Second),
		Port:          getInt("MAESTRO_PORT", 3000),
		DBPath:        os.Getenv("MAESTRO_DB_PATH"),
		Production:    getBool("MAESTRO_PRODUCTION", false),
		LogLevel:      getEnv("MAESTRO_LOG_LEVEL", "info"),
		EnableMocking: getBool("MAESTRO_ENABLE_MOCKING", true),
		Features:      parseFeatures(os.Getenv("MAESTRO_FEATURES")),
	}
	return cfg
}

// FeatureEnabled reports whether a named feature flag is on.
func (c Config) FeatureEnabled(name string) bool {
	return c.Features[strings.ToLower(strings.TrimSpace(name))]
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return n
}

func getBool(key string, fallback bool) bool {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	b, err := strconv.ParseBool(val)
	if err != nil {
		return fallback
	}
	return b
}

func getDuration(key string, fallback time.Duration) time.Duration {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	// Accept plain milliseconds as well as Go duration strings.
	if ms, err := strconv.Atoi(val); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	d, err := time.ParseDuration(val)
	if err != nil {
		return fallback
	}
	return d
}

func parseFeatures(raw string) map[string]bool {
	features := make(map[string]bool)
	for _, name := range strings.Split(raw, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if name != "" {
			features[name] = true
		}
	}
	return features
}
