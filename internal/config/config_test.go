package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestSplitAndTrim(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{name: "empty", input: "", expected: nil},
		{name: "single value", input: "value1", expected: []string{"value1"}},
		{name: "multiple values", input: "value1, value2 ,value3", expected: []string{"value1", "value2", "value3"}},
		{name: "quotes stripped", input: `"a.example", 'b.example'`, expected: []string{"a.example", "b.example"}},
		{name: "empty parts dropped", input: "a,, ,b", expected: []string{"a", "b"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := splitAndTrim(tt.input)
			if len(result) != len(tt.expected) {
				t.Fatalf("splitAndTrim() length = %v, want %v", len(result), len(tt.expected))
			}
			for i := range result {
				if result[i] != tt.expected[i] {
					t.Errorf("splitAndTrim()[%d] = %v, want %v", i, result[i], tt.expected[i])
				}
			}
		})
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("UADB_ENV_FILE", filepath.Join(t.TempDir(), "missing.env"))

	cfg := Load()

	if cfg.ListenPort != ":8080" {
		t.Errorf("ListenPort = %v, want :8080", cfg.ListenPort)
	}
	if cfg.CatalogFile != "" {
		t.Errorf("CatalogFile = %v, want embedded (empty)", cfg.CatalogFile)
	}
	if cfg.RedisEnabled() {
		t.Error("Redis should be disabled without UADB_REDIS_ADDR")
	}
	if cfg.AdminUser != "admin" || cfg.AdminPassword != "admin" {
		t.Errorf("admin credentials = %v/%v, want admin/admin", cfg.AdminUser, cfg.AdminPassword)
	}
	if cfg.SessionTTL != 30*time.Minute {
		t.Errorf("SessionTTL = %v, want 30m", cfg.SessionTTL)
	}
	if len(cfg.AllowedCIDRS) != 2 {
		t.Errorf("AllowedCIDRS = %v, want loopback defaults", cfg.AllowedCIDRS)
	}
}

func TestLoadEnvFile(t *testing.T) {
	envPath := filepath.Join(t.TempDir(), "test.env")
	content := "UADB_LISTEN_PORT=:9999\nUADB_REDIS_ADDR=localhost:6379\nUADB_CORS_ORIGINS=https://a.example, https://b.example\n"
	if err := os.WriteFile(envPath, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write env file: %v", err)
	}
	t.Setenv("UADB_ENV_FILE", envPath)
	// Explicit environment wins over the file.
	t.Setenv("UADB_LISTEN_PORT", ":7000")
	// godotenv sets variables directly; register them for cleanup.
	t.Setenv("UADB_REDIS_ADDR", "")
	t.Setenv("UADB_CORS_ORIGINS", "")
	if err := os.Unsetenv("UADB_REDIS_ADDR"); err != nil {
		t.Fatalf("failed to unset env var: %v", err)
	}
	if err := os.Unsetenv("UADB_CORS_ORIGINS"); err != nil {
		t.Fatalf("failed to unset env var: %v", err)
	}

	cfg := Load()

	if cfg.ListenPort != ":7000" {
		t.Errorf("ListenPort = %v, want :7000 from the environment", cfg.ListenPort)
	}
	if cfg.RedisAddr != "localhost:6379" {
		t.Errorf("RedisAddr = %v, want value from env file", cfg.RedisAddr)
	}
	if len(cfg.CORSOrigins) != 2 {
		t.Errorf("CORSOrigins = %v, want 2 entries", cfg.CORSOrigins)
	}
}

func TestLoadInvalidBurstPanics(t *testing.T) {
	t.Setenv("UADB_ENV_FILE", "")
	t.Setenv("UADB_LOGIN_BURST", "0")

	defer func() {
		if r := recover(); r == nil {
			t.Error("Load() should have panicked on a zero login burst")
		}
	}()
	Load()
}

func TestRedacted(t *testing.T) {
	cfg := &Config{AdminPassword: "secret", RedisPassword: "pw", RedisUser: "default"}
	r := cfg.Redacted()

	if r.AdminPassword == "secret" || r.RedisPassword == "pw" || r.RedisUser == "default" {
		t.Errorf("Redacted() leaked a secret: %+v", r)
	}
	if cfg.AdminPassword != "secret" {
		t.Error("Redacted() must not modify the receiver")
	}
}

func TestMustDuration(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      time.Duration
		expected time.Duration
	}{
		{
			name:     "valid duration",
			key:      "TEST_DURATION",
			value:    "5s",
			def:      1 * time.Second,
			expected: 5 * time.Second,
		},
		{
			name:     "invalid duration uses default",
			key:      "TEST_DURATION_INVALID",
			value:    "invalid",
			def:      10 * time.Second,
			expected: 10 * time.Second,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_DURATION_MISSING",
			value:    "",
			def:      15 * time.Second,
			expected: 15 * time.Second,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := mustDuration(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustDuration() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMustBool(t *testing.T) {
	tests := []struct {
		name     string
		key      string
		value    string
		def      bool
		expected bool
	}{
		{
			name:     "true value",
			key:      "TEST_BOOL",
			value:    "true",
			def:      false,
			expected: true,
		},
		{
			name:     "false value",
			key:      "TEST_BOOL_FALSE",
			value:    "false",
			def:      true,
			expected: false,
		},
		{
			name:     "invalid value uses default",
			key:      "TEST_BOOL_INVALID",
			value:    "invalid",
			def:      true,
			expected: true,
		},
		{
			name:     "missing variable uses default",
			key:      "TEST_BOOL_MISSING",
			value:    "",
			def:      false,
			expected: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.value != "" {
				if err := os.Setenv(tt.key, tt.value); err != nil {
					t.Fatalf("failed to set env var: %v", err)
				}
				defer func() {
					if err := os.Unsetenv(tt.key); err != nil {
						t.Errorf("failed to unset env var: %v", err)
					}
				}()
			}

			result := mustBool(tt.key, tt.def)
			if result != tt.expected {
				t.Errorf("mustBool() = %v, want %v", result, tt.expected)
			}
		})
	}
}
