package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the dashboard service.
type Config struct {
	Port           int
	MaxUploadMB    int
	SessionTTL     time.Duration
	SessionCookie  string
	Debug          bool
	MetricsEnabled bool
	AssetsDir      string
}

// Load reads configuration from environment variables (optionally .env).
// Every invalid value is reported, not just the first.
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:           8080,
		MaxUploadMB:    100,
		SessionTTL:     30 * time.Minute,
		SessionCookie:  "divvy_session",
		MetricsEnabled: true,
	}

	var result *multierror.Error

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			result = multierror.Append(result, fmt.Errorf("invalid PORT: %s", portStr))
		}
	} else if portStr := os.Getenv("DASHBOARD_PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			result = multierror.Append(result, fmt.Errorf("invalid DASHBOARD_PORT: %s", portStr))
		}
	}

	if mbStr := os.Getenv("MAX_UPLOAD_MB"); mbStr != "" {
		if mb, err := strconv.Atoi(mbStr); err == nil && mb > 0 {
			cfg.MaxUploadMB = mb
		} else {
			result = multierror.Append(result, fmt.Errorf("invalid MAX_UPLOAD_MB: %s", mbStr))
		}
	}

	if ttlStr := os.Getenv("SESSION_TTL"); ttlStr != "" {
		if ttl, err := time.ParseDuration(ttlStr); err == nil && ttl > 0 {
			cfg.SessionTTL = ttl
		} else {
			result = multierror.Append(result, fmt.Errorf("invalid SESSION_TTL: %s", ttlStr))
		}
	}

	if name := os.Getenv("SESSION_COOKIE"); name != "" {
		cfg.SessionCookie = name
	}

	if debugStr := os.Getenv("LOG_DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		} else {
			result = multierror.Append(result, fmt.Errorf("invalid LOG_DEBUG: %s", debugStr))
		}
	}

	if metricsStr := os.Getenv("METRICS_ENABLED"); metricsStr != "" {
		if enabled, err := strconv.ParseBool(metricsStr); err == nil {
			cfg.MetricsEnabled = enabled
		} else {
			result = multierror.Append(result, fmt.Errorf("invalid METRICS_ENABLED: %s", metricsStr))
		}
	}

	if dir := os.Getenv("ASSETS_DIR"); dir != "" {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			result = multierror.Append(result, fmt.Errorf("invalid ASSETS_DIR: %s is not a directory", dir))
		} else {
			cfg.AssetsDir = dir
		}
	}

	return cfg, result.ErrorOrNil()
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// MaxUploadBytes is the request body limit for uploads.
func (c Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}
