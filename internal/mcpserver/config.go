package mcpserver

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// serverConfig holds all configurable MCP server defaults.
// Loaded once at startup from environment variables via loadConfig().
type serverConfig struct {
	// Cache settings.
	CacheEnabled       bool
	CacheMaxSize       int
	CacheFileTTL       time.Duration
	CacheContentTTL    time.Duration
	CacheSweepInterval time.Duration

	// Validate tool defaults.
	ValidateNoWarnings bool
	ValidateMaxDepth   int

	// Pagination limits.
	IssueLimit int
	MaxLimit   int

	// Input limits.
	MaxInlineSize int64
}

// cfg is the active server configuration, initialized at package load time.
var cfg = loadConfig()

// loadConfig reads configuration from TREESCHEMA_* environment variables.
// Invalid values log a warning and fall back to the hardcoded default.
func loadConfig() *serverConfig {
	return &serverConfig{
		CacheEnabled:       envBool("TREESCHEMA_CACHE_ENABLED", true),
		CacheMaxSize:       envInt("TREESCHEMA_CACHE_MAX_SIZE", 10),
		CacheFileTTL:       envDuration("TREESCHEMA_CACHE_FILE_TTL", 15*time.Minute),
		CacheContentTTL:    envDuration("TREESCHEMA_CACHE_CONTENT_TTL", 15*time.Minute),
		CacheSweepInterval: envDuration("TREESCHEMA_CACHE_SWEEP_INTERVAL", 60*time.Second),
		ValidateNoWarnings: envBool("TREESCHEMA_VALIDATE_NO_WARNINGS", false),
		ValidateMaxDepth:   envInt("TREESCHEMA_VALIDATE_MAX_DEPTH", 100),
		IssueLimit:         envInt("TREESCHEMA_ISSUE_LIMIT", 100),
		MaxLimit:           envInt("TREESCHEMA_MAX_LIMIT", 1000),
		MaxInlineSize:      envInt64("TREESCHEMA_MAX_INLINE_SIZE", 10*1024*1024),
	}
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		slog.Warn("invalid bool env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return b
}

func envInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n <= 0 {
		slog.Warn("invalid int env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return n
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", fallback)
		return fallback
	}
	return d
}
