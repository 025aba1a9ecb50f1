// Package config provides configuration management for the freight service.
package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds the complete application configuration.
type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Cache    CacheConfig
	Auth     AuthConfig
	Database DatabaseConfig
	Freight  FreightConfig
	Rates    RatesConfig
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

// LogConfig holds logger configuration.
type LogConfig struct {
	Level  string
	Pretty bool
	// File enables a rolling log file next to stdout when set.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// CacheConfig holds cache configuration for computed quotes.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// AuthConfig holds authentication configuration.
type AuthConfig struct {
	Enabled          bool
	APIKeys          map[string]bool
	JWTSecretKey     string
	JWTRefreshSecret string
	AccessTokenTTL   time.Duration
	RefreshTokenTTL  time.Duration
	// AdminEmail and AdminPassword seed the first admin account when both are set.
	AdminEmail    string
	AdminPassword string
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

// FreightConfig holds the default tariff and catalog settings.
type FreightConfig struct {
	PricePerKg          float64
	SurchargePerKg      float64
	FixedFee            float64
	FeeEnabled          bool
	SourceCurrency      string
	DestinationCurrency string
	CatalogFile         string
}

// RatesConfig holds exchange rate provider configuration.
type RatesConfig struct {
	// Provider is one of "static", "http" or "html".
	Provider        string
	URL             string
	RowSelector     string
	CurrencyColumn  int
	RateColumn      int
	Timeout         time.Duration
	CacheTTL        time.Duration
	RefreshSchedule string
	UnitScales      map[string]float64
}

// Load creates a Config from environment variables, reading a .env file first when present.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found, relying on environment variables")
	}

	return Config{
		Server: ServerConfig{
			Port:        getEnv("PORT", "8080"),
			RateLimit:   getEnvInt("RATE_LIMIT", 100),
			RateWindow:  getEnvDuration("RATE_WINDOW", time.Minute),
			CORSOrigins: parseCORSOrigins(os.Getenv("CORS_ORIGINS")),
			SwaggerUser: getEnv("SWAGGER_USER", ""),
			SwaggerPass: getEnv("SWAGGER_PASS", ""),
		},
		Log: LogConfig{
			Level:      getEnv("LOG_LEVEL", "info"),
			Pretty:     getEnvBool("LOG_PRETTY", false),
			File:       getEnv("LOG_FILE", ""),
			MaxSizeMB:  getEnvInt("LOG_FILE_MAX_SIZE_MB", 100),
			MaxBackups: getEnvInt("LOG_FILE_MAX_BACKUPS", 7),
			MaxAgeDays: getEnvInt("LOG_FILE_MAX_AGE_DAYS", 30),
		},
		Cache: CacheConfig{
			Size: getEnvInt("CACHE_SIZE", 1000),
			TTL:  getEnvDuration("CACHE_TTL", 5*time.Minute),
		},
		Auth: AuthConfig{
			Enabled:          getEnvBool("AUTH_ENABLED", false),
			APIKeys:          parseAPIKeys(os.Getenv("API_KEYS")),
			JWTSecretKey:     getEnv("JWT_SECRET_KEY", "your-secret-key-change-in-production"),
			JWTRefreshSecret: getEnv("JWT_REFRESH_SECRET_KEY", "your-refresh-secret-key-change-in-production"),
			AccessTokenTTL:   getEnvDuration("JWT_ACCESS_TOKEN_TTL", 15*time.Minute),
			RefreshTokenTTL:  getEnvDuration("JWT_REFRESH_TOKEN_TTL", 7*24*time.Hour),
			AdminEmail:       strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))),
			AdminPassword:    os.Getenv("ADMIN_PASSWORD"),
		},
		Database: DatabaseConfig{
			URI:                            getEnv("MONGODB_URI", "mongodb://localhost:27017"),
			DatabaseName:                   getEnv("MONGODB_DATABASE", "freight_service"),
			LogsTTL:                        getEnvDuration("MONGODB_LOGS_TTL", 30*24*time.Hour),
			Enabled:                        getEnvBool("MONGODB_ENABLED", false),
			CircuitBreakerFailureThreshold: getEnvInt("CIRCUIT_BREAKER_FAILURE_THRESHOLD", 5),
			CircuitBreakerSuccessThreshold: getEnvInt("CIRCUIT_BREAKER_SUCCESS_THRESHOLD", 2),
			CircuitBreakerTimeout:          getEnvDuration("CIRCUIT_BREAKER_TIMEOUT", 30*time.Second),
		},
		Freight: FreightConfig{
			PricePerKg:          getEnvFloat("FREIGHT_PRICE_PER_KG", 5.0),
			SurchargePerKg:      getEnvFloat("FREIGHT_SURCHARGE_PER_KG", 0),
			FixedFee:            getEnvFloat("FREIGHT_FIXED_FEE", 25.0),
			FeeEnabled:          getEnvBool("FREIGHT_FEE_ENABLED", false),
			SourceCurrency:      strings.ToUpper(getEnv("FREIGHT_SOURCE_CURRENCY", "USD")),
			DestinationCurrency: strings.ToUpper(getEnv("FREIGHT_DESTINATION_CURRENCY", "KRW")),
			CatalogFile:         getEnv("CATALOG_FILE", ""),
		},
		Rates: RatesConfig{
			Provider:        strings.ToLower(getEnv("RATES_PROVIDER", "static")),
			URL:             getEnv("RATES_URL", ""),
			RowSelector:     getEnv("RATES_ROW_SELECTOR", "table tbody tr"),
			CurrencyColumn:  getEnvInt("RATES_CURRENCY_COLUMN", 0),
			RateColumn:      getEnvInt("RATES_RATE_COLUMN", 1),
			Timeout:         getEnvDuration("RATES_TIMEOUT", 5*time.Second),
			CacheTTL:        getEnvDuration("RATES_CACHE_TTL", 10*time.Minute),
			RefreshSchedule: getEnv("RATES_REFRESH_SCHEDULE", ""),
			UnitScales:      parseUnitScales(os.Getenv("RATES_UNIT_SCALES")),
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

func getEnvFloat(key string, defaultValue float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
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

// parseUnitScales parses "JPY:100,IDR:100" into a currency to divisor map.
func parseUnitScales(s string) map[string]float64 {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	result := make(map[string]float64, len(parts))
	for _, p := range parts {
		code, raw, ok := strings.Cut(strings.TrimSpace(p), ":")
		if !ok {
			continue
		}
		code = strings.ToUpper(strings.TrimSpace(code))
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if code == "" || err != nil || v <= 0 {
			continue
		}
		result[code] = v
	}
	if len(result) == 0 {
		return nil
	}
	return result
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
