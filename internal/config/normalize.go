package config

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// loadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win, and a missing file is ignored.
func loadDotEnv(path string) {
	_ = godotenv.Load(path)
}

func applyEnv(cfg *AppConfig) {
	if v := strings.TrimSpace(os.Getenv(EnvPort)); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			cfg.Port = port
		} else {
			cfg.Port = -1
		}
	}
	if v := strings.TrimSpace(os.Getenv(EnvEnv)); v != "" {
		cfg.Env = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvContentRoot)); v != "" {
		cfg.ContentRoot = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvS3AccessKeyID)); v != "" {
		cfg.Publish.S3.AccessKeyID = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvS3SecretKey)); v != "" {
		cfg.Publish.S3.SecretAccessKey = v
	}
}

func (c *AppConfig) normalize() {
	c.Env = normalizeEnv(c.Env)
	c.ContentRoot = strings.TrimSpace(c.ContentRoot)
	c.AllowedOrigins = normalizeOrigins(c.AllowedOrigins)
	c.Site.URL = strings.TrimRight(strings.TrimSpace(c.Site.URL), "/")
	c.Publish.S3.Prefix = strings.Trim(c.Publish.S3.Prefix, "/")
}

func normalizeOrigins(origins []string) []string {
	out := make([]string, 0, len(origins))
	for _, origin := range origins {
		trimmed := strings.TrimSpace(origin)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func normalizeEnv(env string) string {
	trimmed := strings.ToLower(strings.TrimSpace(env))
	if trimmed == "" {
		return defaultEnv
	}
	return trimmed
}
