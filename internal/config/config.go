package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	CatalogFile    string        // path to a catalog.yaml (optional, empty = embedded seed catalog)
	ReloadInterval time.Duration // interval to reload the catalog (default: 24h)

	// Admin
	AdminUser     string        // the single admin account
	AdminPassword string        // plain text, hashed with bcrypt at startup
	SessionTTL    time.Duration // idle time after which an admin session expires
	GCInterval    time.Duration // interval to expire idle sessions (default: 5m)
	LoginBurst    int           // login attempts allowed in a burst per client IP
	LoginPerMin   int           // login attempts refilled per client IP per minute

	// Redis (optional, empty address = disabled)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // Total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // Initial wait between retries (ex: 2s, grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	AllowedHosts []string // optional, restrict access to specific Host headers
	AllowedCIDRS []string // optional, restrict /reload to specific IP ranges (e.g. "10.0.0.0/8, 127.0.0.1")
	TrustProxy   bool     // true => trust X-Forwarded-For headers (e.g. cloudflared)
	CORSOrigins  []string // allowed browser origins for the API (empty = "*")
}

// RedisEnabled reports whether a Redis address was configured.
func (c *Config) RedisEnabled() bool {
	return c.RedisAddr != ""
}

func Load() *Config {
	loadEnvFile(getenv("UADB_ENV_FILE", ".env"))

	cfg := &Config{
		// Server settings
		ListenPort:      getenv("UADB_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("UADB_SHUTDOWN_TIMEOUT", 5*time.Second),

		// Logging
		LogLevel:  getenv("UADB_LOG_LEVEL", "info"),
		PrettyLog: mustBool("UADB_PRETTY_LOG", true),

		// Catalog
		CatalogFile:    getenv("UADB_CATALOG_FILE", ""),
		ReloadInterval: mustDuration("UADB_RELOAD_INTERVAL", 24*time.Hour),

		// Admin
		AdminUser:     getenv("UADB_ADMIN_USER", "admin"),
		AdminPassword: getenv("UADB_ADMIN_PASSWORD", "admin"),
		SessionTTL:    mustDuration("UADB_SESSION_TTL", 30*time.Minute),
		GCInterval:    mustDuration("UADB_GC_INTERVAL", 5*time.Minute),
		LoginBurst:    getenvInt("UADB_LOGIN_BURST", 5),
		LoginPerMin:   getenvInt("UADB_LOGIN_PER_MIN", 2),

		// Redis settings
		RedisAddr:           getenv("UADB_REDIS_ADDR", ""),
		RedisUser:           getenv("UADB_REDIS_USERNAME", ""),
		RedisPassword:       getenv("UADB_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("UADB_REDIS_DB", 0),
		RedisDT:             mustDuration("UADB_REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("UADB_REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("UADB_REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("UADB_REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("UADB_REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("UADB_REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("UADB_REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("UADB_REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("UADB_REDIS_WARN_THRESHOLD", 3),

		// Access restrictions
		AllowedHosts: splitAndTrim(getenv("UADB_ALLOWED_HOSTS", "")),
		AllowedCIDRS: splitAndTrim(getenv("UADB_ALLOWED_CIDRS", "127.0.0.1/32, ::1/128")),
		TrustProxy:   mustBool("UADB_TRUST_PROXY", false),
		CORSOrigins:  splitAndTrim(getenv("UADB_CORS_ORIGINS", "")),
	}

	if cfg.AdminUser == "" {
		panic("❌ FATAL: UADB_ADMIN_USER must not be empty")
	}
	if cfg.ReloadInterval <= 0 || cfg.GCInterval <= 0 {
		panic("❌ FATAL: UADB_RELOAD_INTERVAL and UADB_GC_INTERVAL must be positive")
	}
	if cfg.LoginBurst < 1 {
		panic(fmt.Sprintf("❌ FATAL: UADB_LOGIN_BURST must be at least 1, got %d", cfg.LoginBurst))
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		log.Printf("[DEBUG] cfg: %+v\n", cfg.Redacted())
	}

	return cfg
}

// Redacted returns a copy safe to print.
func (c *Config) Redacted() Config {
	cp := *c
	cp.AdminPassword = "***REDACTED***"
	if cp.RedisPassword != "" {
		cp.RedisPassword = "***REDACTED***"
	}
	if cp.RedisUser != "" {
		cp.RedisUser = "***REDACTED***"
	}
	return cp
}

// loadEnvFile merges a dotenv file into the process environment.
// Variables already set win over the file. A missing file is not an error.
func loadEnvFile(path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(fmt.Sprintf("❌ FATAL: failed to read env file %s: %v", path, err))
	}
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func splitAndTrim(s string) []string {
	if s == "" {
		return nil
	}
	raw := strings.Split(s, ",")
	parts := make([]string, 0, len(raw))
	for _, part := range raw {
		trimmed := strings.TrimSpace(part)
		// Remove surrounding quotes if present
		trimmed = strings.Trim(trimmed, `"'`)
		if trimmed != "" {
			parts = append(parts, trimmed)
		}
	}
	return parts
}
