package config

import (
	"crypto/rand"
	"errors"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/franciscosanchezn/gin-pizza-menu/internal/logging"
)

var log = logging.For("config")

// MinJWTSecretBytes is the smallest HS512 key accepted (512 bits)
const MinJWTSecretBytes = 64

// Config used for the application configuration, loading the input from environment variables
type Config struct {
	// Server Configuration
	Environment string `json:"environment"`
	Port        int    `json:"port"`
	Host        string `json:"host"`

	// Database configuration
	DBDriver    string `json:"db_driver"`
	DatabaseURL string `json:"database_url"`
	DBHost      string `json:"db_host"`
	DBPort      string `json:"db_port"`
	DBName      string `json:"db_name"`
	DBUser      string `json:"db_user"`
	DBPassword  string `json:"db_password"`
	DBSSLMode   string `json:"db_sslmode"`
	DBPath      string `json:"db_path"`
	SeedData    bool   `json:"seed_data"`

	// Logging configuration
	LogLevel string `json:"log_level"`

	// Security Configuration
	JWTSecret          string        `json:"jwt_secret"`
	TokenTTL           time.Duration `json:"token_ttl"`
	AuthUsername       string        `json:"auth_username"`
	AuthPassword       string        `json:"auth_password"`
	ProtectedPrefixes  []string      `json:"protected_prefixes"`
	OAuthClientID      string        `json:"oauth_client_id"`
	OAuthClientSecret  string        `json:"oauth_client_secret"`
	CORSAllowedOrigins []string      `json:"cors_allowed_origins"`
	ExposeErrorDetails bool          `json:"expose_error_details"`
}

// String returns a string representation of Config with sensitive data masked
func (c *Config) String() string {
	return fmt.Sprintf("Config{Environment: %s, Port: %d, Host: %s, DBDriver: %s, DatabaseURL: %s, DBHost: %s, DBPort: %s, DBName: %s, DBUser: %s, DBPassword: [REDACTED], DBPath: %s, LogLevel: %s, JWTSecret: [REDACTED], TokenTTL: %s, AuthUsername: %s, AuthPassword: [REDACTED], ProtectedPrefixes: %v, OAuthClientID: %s, OAuthClientSecret: [REDACTED], CORSAllowedOrigins: %v, ExposeErrorDetails: %t}",
		c.Environment, c.Port, c.Host, c.DBDriver, maskDatabaseURL(c.DatabaseURL), c.DBHost, c.DBPort, c.DBName, c.DBUser,
		c.DBPath, c.LogLevel, c.TokenTTL, c.AuthUsername, c.ProtectedPrefixes, c.OAuthClientID, c.CORSAllowedOrigins, c.ExposeErrorDetails)
}

// OAuthEnabled reports whether the password-grant token endpoint should be served
func (c *Config) OAuthEnabled() bool {
	return c.OAuthClientSecret != ""
}

// maskDatabaseURL masks password in database URL
func maskDatabaseURL(dbURL string) string {
	if dbURL == "" {
		return ""
	}

	parsed, err := url.Parse(dbURL)
	if err != nil {
		return "[REDACTED_INVALID_URL]"
	}

	if parsed.User != nil {
		parsed.User = url.UserPassword(parsed.User.Username(), "[REDACTED]")
	}

	return parsed.String()
}

// LoadConfig read the proper configuration from environment variables and returns a Config struct
// It also validates formats like DatabaseURL, the port and the JWT secret length
// Returns an error if any environment variable is invalid
func LoadConfig() (*Config, error) {
	log.Info("Loading configuration from environment variables")
	port, err := strconv.Atoi(GetEnvWithDefault("APP_PORT", "8080"))
	if err != nil {
		return nil, fmt.Errorf("invalid APP_PORT: %w", err)
	}

	dbURL := GetEnvWithDefault("DATABASE_URL", "")
	if dbURL != "" {
		if _, err := url.ParseRequestURI(dbURL); err != nil {
			return nil, fmt.Errorf("invalid DATABASE_URL format: %w", err)
		}
	}

	secret, err := loadJWTSecret()
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(GetEnvWithDefault("TOKEN_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid TOKEN_TTL: %w", err)
	}
	if ttl <= 0 {
		return nil, errors.New("TOKEN_TTL must be positive")
	}

	config := &Config{
		Environment:        GetEnvWithDefault("APP_ENV", "development"),
		Port:               port,
		Host:               GetEnvWithDefault("APP_HOST", "localhost"),
		DBDriver:           strings.ToLower(GetEnvWithDefault("DB_DRIVER", "sqlite")),
		DatabaseURL:        dbURL,
		DBHost:             GetEnvWithDefault("DB_HOST", "localhost"),
		DBPort:             GetEnvWithDefault("DB_PORT", "5432"),
		DBName:             GetEnvWithDefault("DB_NAME", "pizzademo"),
		DBUser:             GetEnvWithDefault("DB_USER", "postgres"),
		DBPassword:         GetEnvWithDefault("DB_PASSWORD", "postgres"),
		DBSSLMode:          GetEnvWithDefault("DB_SSLMODE", "disable"),
		DBPath:             GetEnvWithDefault("DB_PATH", "pizza.sqlite"),
		SeedData:           GetEnvAsType("SEED_DATA", true),
		LogLevel:           GetEnvWithDefault("LOG_LEVEL", "info"),
		JWTSecret:          secret,
		TokenTTL:           ttl,
		AuthUsername:       GetEnvWithDefault("AUTH_USERNAME", "admin"),
		AuthPassword:       GetEnvWithDefault("AUTH_PASSWORD", "senha123"),
		ProtectedPrefixes:  splitList(GetEnvWithDefault("AUTH_PROTECTED_PREFIXES", "/pizza")),
		OAuthClientID:      GetEnvWithDefault("OAUTH_CLIENT_ID", "pizza-web"),
		OAuthClientSecret:  os.Getenv("OAUTH_CLIENT_SECRET"),
		CORSAllowedOrigins: splitList(GetEnvWithDefault("CORS_ALLOWED_ORIGINS", "http://localhost:5173,http://127.0.0.1:5173")),
		ExposeErrorDetails: GetEnvAsType("EXPOSE_ERROR_DETAILS", false),
	}
	log.Infof("Configuration loaded: %s", config.String())
	return config, nil
}

// loadJWTSecret returns JWT_SECRET or, when unset, a random key that lives as long as the process
func loadJWTSecret() (string, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Warn("JWT_SECRET not set, generating an ephemeral signing key; tokens will not survive a restart")
		key := make([]byte, MinJWTSecretBytes)
		if _, err := rand.Read(key); err != nil {
			return "", fmt.Errorf("generating signing key: %w", err)
		}
		return string(key), nil
	}
	if len(secret) < MinJWTSecretBytes {
		return "", fmt.Errorf("JWT_SECRET must be at least %d bytes for HS512, got %d", MinJWTSecretBytes, len(secret))
	}
	return secret, nil
}

// splitList splits a comma separated value, trimming blanks
func splitList(value string) []string {
	var items []string
	for _, item := range strings.Split(value, ",") {
		if item = strings.TrimSpace(item); item != "" {
			items = append(items, item)
		}
	}
	return items
}

// Helper to get environment with default values
func GetEnvWithDefault(key, defaultValue string) string {
	log.Tracef("Getting environment variable: %s", key)
	value := os.Getenv(key)
	if value == "" {
		log.Debugf("Environment variable %s not set, using default value", key)
		return defaultValue
	}
	return value
}

// GetEnvAsType retrieves an environment variable and converts it to the specified type
// using generic type handling.
func GetEnvAsType[T any](key string, defaultValue T) T {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	var result T
	switch any(result).(type) {
	case int:
		intValue, err := strconv.Atoi(value)
		if err != nil {
			return defaultValue
		}
		return any(intValue).(T)
	case string:
		return any(value).(T)
	case bool:
		boolValue, err := strconv.ParseBool(value)
		if err != nil {
			return defaultValue
		}
		return any(boolValue).(T)
	case time.Duration:
		durationValue, err := time.ParseDuration(value)
		if err != nil {
			return defaultValue
		}
		return any(durationValue).(T)
	default:
		return defaultValue // Fallback for unsupported types
	}
}
