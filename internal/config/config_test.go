package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

const testSecret = "this-is-a-test-signing-key-that-is-long-enough-for-hs512-0123456789"

func TestGetEnvWithDefault(t *testing.T) {
	testCases := []struct {
		name         string
		key          string
		defaultValue string
		envValue     string
		expected     string
	}{
		{
			name:         "should return env value when set",
			key:          "TEST_KEY",
			defaultValue: "default",
			envValue:     "from_env",
			expected:     "from_env",
		},
		{
			name:         "should return default when env not set",
			key:          "MISSING_KEY",
			defaultValue: "default_value",
			envValue:     "",
			expected:     "default_value",
		},
		{
			name:         "should return empty string default",
			key:          "EMPTY_KEY",
			defaultValue: "",
			envValue:     "",
			expected:     "",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			if tt.envValue != "" {
				t.Setenv(tt.key, tt.envValue)
			} else {
				os.Unsetenv(tt.key)
			}

			result := GetEnvWithDefault(tt.key, tt.defaultValue)

			if result != tt.expected {
				t.Errorf("GetEnvWithDefault() = %v, expected %v", result, tt.expected)
			}
		})
	}
}

func TestGetEnvAsType(t *testing.T) {
	t.Setenv("TYPED_INT", "42")
	t.Setenv("TYPED_BOOL", "true")
	t.Setenv("TYPED_DURATION", "90m")
	t.Setenv("TYPED_BROKEN", "nope")

	if got := GetEnvAsType("TYPED_INT", 0); got != 42 {
		t.Errorf("int = %d, expected 42", got)
	}
	if got := GetEnvAsType("TYPED_BOOL", false); !got {
		t.Error("bool = false, expected true")
	}
	if got := GetEnvAsType("TYPED_DURATION", time.Minute); got != 90*time.Minute {
		t.Errorf("duration = %s, expected 90m", got)
	}
	if got := GetEnvAsType("TYPED_BROKEN", 7); got != 7 {
		t.Errorf("unparseable int = %d, expected default 7", got)
	}
	if got := GetEnvAsType("TYPED_MISSING", "fallback"); got != "fallback" {
		t.Errorf("missing string = %q, expected fallback", got)
	}
}

func TestLoadConfig(t *testing.T) {
	vars := []string{
		"APP_PORT", "APP_HOST", "LOG_LEVEL", "JWT_SECRET", "TOKEN_TTL", "DATABASE_URL",
		"AUTH_USERNAME", "AUTH_PASSWORD", "AUTH_PROTECTED_PREFIXES", "OAUTH_CLIENT_SECRET",
		"CORS_ALLOWED_ORIGINS", "EXPOSE_ERROR_DETAILS", "DB_DRIVER",
	}
	cleanupTestEnv := func() {
		for _, v := range vars {
			os.Unsetenv(v)
		}
	}

	t.Run("successful config load with all env vars", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_PORT", "9000")
		t.Setenv("APP_HOST", "0.0.0.0")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("JWT_SECRET", testSecret)
		t.Setenv("TOKEN_TTL", "1h")
		t.Setenv("DB_DRIVER", "POSTGRES")
		t.Setenv("AUTH_PROTECTED_PREFIXES", "/pizza, /cardapio ,")
		t.Setenv("OAUTH_CLIENT_SECRET", "web-secret")
		t.Setenv("EXPOSE_ERROR_DETAILS", "true")

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned error: %v", err)
		}

		if config.Port != 9000 {
			t.Errorf("Port = %d, expected 9000", config.Port)
		}
		if config.Host != "0.0.0.0" {
			t.Errorf("Host = %s, expected 0.0.0.0", config.Host)
		}
		if config.LogLevel != "debug" {
			t.Errorf("LogLevel = %s, expected debug", config.LogLevel)
		}
		if config.JWTSecret != testSecret {
			t.Error("JWTSecret was not taken from the environment")
		}
		if config.TokenTTL != time.Hour {
			t.Errorf("TokenTTL = %s, expected 1h", config.TokenTTL)
		}
		if config.DBDriver != "postgres" {
			t.Errorf("DBDriver = %s, expected postgres", config.DBDriver)
		}
		if len(config.ProtectedPrefixes) != 2 || config.ProtectedPrefixes[1] != "/cardapio" {
			t.Errorf("ProtectedPrefixes = %v, expected [/pizza /cardapio]", config.ProtectedPrefixes)
		}
		if !config.OAuthEnabled() {
			t.Error("OAuthEnabled() = false, expected true when a client secret is set")
		}
		if !config.ExposeErrorDetails {
			t.Error("ExposeErrorDetails = false, expected true")
		}
	})

	t.Run("should fail with invalid port", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("APP_PORT", "not_a_number")

		config, err := LoadConfig()

		if err == nil {
			t.Error("LoadConfig() should return error when APP_PORT is invalid")
		}
		if config != nil {
			t.Error("Config should be nil when error occurs")
		}
	})

	t.Run("should reject a short JWT secret", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("JWT_SECRET", "short")

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should reject a secret shorter than 64 bytes")
		}
	})

	t.Run("should reject an invalid token ttl", func(t *testing.T) {
		cleanupTestEnv()
		t.Setenv("TOKEN_TTL", "-5m")

		if _, err := LoadConfig(); err == nil {
			t.Error("LoadConfig() should reject a non-positive TOKEN_TTL")
		}
	})

	t.Run("should use defaults when optional env vars not set", func(t *testing.T) {
		cleanupTestEnv()

		config, err := LoadConfig()
		if err != nil {
			t.Fatalf("LoadConfig() returned unexpected error: %v", err)
		}

		if config.Port != 8080 {
			t.Errorf("Port = %d, expected default 8080", config.Port)
		}
		if config.Host != "localhost" {
			t.Errorf("Host = %s, expected default localhost", config.Host)
		}
		if config.LogLevel != "info" {
			t.Errorf("LogLevel = %s, expected default info", config.LogLevel)
		}
		if len(config.JWTSecret) != MinJWTSecretBytes {
			t.Errorf("generated secret length = %d, expected %d", len(config.JWTSecret), MinJWTSecretBytes)
		}
		if config.TokenTTL != 24*time.Hour {
			t.Errorf("TokenTTL = %s, expected default 24h", config.TokenTTL)
		}
		if config.AuthUsername != "admin" || config.AuthPassword != "senha123" {
			t.Error("default credential pair not applied")
		}
		if len(config.ProtectedPrefixes) != 1 || config.ProtectedPrefixes[0] != "/pizza" {
			t.Errorf("ProtectedPrefixes = %v, expected [/pizza]", config.ProtectedPrefixes)
		}
		if config.OAuthEnabled() {
			t.Error("OAuthEnabled() = true, expected false without a client secret")
		}
	})
}

func TestConfigStringMasksSecrets(t *testing.T) {
	config := &Config{
		DatabaseURL:       "postgres://pizza:hunter2@db:5432/pizzademo",
		DBPassword:        "hunter2",
		JWTSecret:         testSecret,
		AuthPassword:      "senha123",
		OAuthClientSecret: "web-secret",
	}

	out := config.String()
	for _, secret := range []string{"hunter2", testSecret, "senha123", "web-secret"} {
		if strings.Contains(out, secret) {
			t.Errorf("String() leaked %q: %s", secret, out)
		}
	}
}

func BenchmarkGetEnvWithDefault(b *testing.B) {
	os.Setenv("BENCH_KEY", "test_value")
	defer os.Unsetenv("BENCH_KEY")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		GetEnvWithDefault("BENCH_KEY", "default")
	}
}
