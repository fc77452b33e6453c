// Package config provides configuration management for the slitting service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the complete application configuration.
type Config struct {
	Server     ServerConfig
	Calculator CalculatorConfig
	Auth       AuthConfig
	Database   DatabaseConfig
}

// ServerConfig holds HTTP server configuration.
type ServerConfig struct {
	Port        string
	RateLimit   int
	RateWindow  time.Duration
	CORSOrigins []string
	SwaggerUser string
	SwaggerPass string
}

// CalculatorConfig holds pattern calculator configuration. Materials listed
// here seed the in-memory catalog when MongoDB is disabled or unreachable.
type CalculatorConfig struct {
	MaxPatterns int
	CacheSize   int
	CacheTTL    time.Duration
	Materials   []MaterialConfig
}

// MaterialConfig is one configured catalog material, parsed from the
// MATERIALS environment variable.
type MaterialConfig struct {
	MaterialID        string
	MaterialName      string
	MasterWidthMM     float64
	GSM               float64
	PricePerTonneAUD  float64
	TotalLinearMeters float64
}

// AuthConfig holds authentication configuration. Tokens are issued by the
// upstream platform; this service only validates them with the shared secret.
type AuthConfig struct {
	Enabled      bool
	APIKeys      map[string]bool
	JWTSecretKey string
}

// DatabaseConfig holds MongoDB configuration.
type DatabaseConfig struct {
	URI          string
	DatabaseName string
	LogsTTL      time.Duration
	Enabled      bool
	// CircuitBreaker configuration
	CircuitBreakerFailureThreshold int
	CircuitBreakerSuccessThreshold int
	CircuitBreakerTimeout          time.Duration
}

// Load creates a Config from environment variables.
func Load() Config {
	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Calculator: CalculatorConfig{
			MaxPatterns: getEnvInt("MAX_PATTERNS", 10000),
			CacheSize:   getEnvInt("CACHE_SIZE", 1000),
			CacheTTL:    getEnvDuration("CACHE_TTL", 5*time.Minute),
			Materials:   parseMaterials(os.Getenv("MATERIALS")),
		},
		Auth: AuthConfig{
			Enabled:      getEnvBool("AUTH_ENABLED", false),
			APIKeys:      parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey: getEnv("JWT_SECRET_KEY", ""),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "slitting_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultValue
}

// parseMaterials parses the MATERIALS environment variable. Materials are
// separated by semicolons; fields within a material by colons:
//
//	id:name:master_width_mm:gsm:price_per_tonne_aud:total_linear_meters
//
// Example: "BOPP-30:BOPP Clear 30um:1300:27.4:3200:8000;PET-12:PET 12um:1600:16.8:4100:12000"
// Entries with a missing id or a non-positive width are skipped.
func parseMaterials(s string) []MaterialConfig {
	if s == "" {
		return nil
	}
	entries := strings.Split(s, ";")
	result := make([]MaterialConfig, 0, len(entries))
	for _, entry := range entries {
		fields := strings.Split(strings.TrimSpace(entry), ":")
		if len(fields) < 3 {
			continue
		}
		m := MaterialConfig{
			MaterialID:    strings.TrimSpace(fields[0]),
			MaterialName:  strings.TrimSpace(fields[1]),
			MasterWidthMM: parseFloat(fields[2]),
		}
		if len(fields) > 3 {
			m.GSM = parseFloat(fields[3])
		}
		if len(fields) > 4 {
			m.PricePerTonneAUD = parseFloat(fields[4])
		}
		if len(fields) > 5 {
			m.TotalLinearMeters = parseFloat(fields[5])
		}
		if m.MaterialID == "" || m.MasterWidthMM <= 0 {
			continue
		}
		result = append(result, m)
	}
	return result
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0
	}
	return v
}

func parseAPIKeys(s string) map[string]bool {
	if s == "" {
		return nil
	}
	keys := strings.Split(s, ",")
	result := make(map[string]bool, len(keys))
	for _, k := range keys {
		if k = strings.TrimSpace(k); k != "" {
			result[k] = true
		}
	}
	return result
}

func parseCORSOrigins(s string) []string {
	// Default origins for local development
	defaults := []string{
		"http://localhost:3000",
		"http://127.0.0.1:3000",
	}
	if s == "" {
		return defaults
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts)+len(defaults))
	result = append(result, defaults...)
	for _, p := range parts {
		if origin := strings.TrimSpace(p); origin != "" {
			result = append(result, origin)
		}
	}
	return result
}
