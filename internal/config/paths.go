package config

import (
	"path/filepath"
	"strings"
)

// Runtime directories fall back to these names next to the config file.
const (
	defaultLogsSubdir   = "logs"
	defaultExportSubdir = "out"
)

// LogDir is where the rolling log files go.
func (c *AppConfig) LogDir() string {
	if c == nil {
		return resolvePath("", "", defaultLogsSubdir)
	}
	return resolvePath(c.baseDir, c.Paths.Logs, defaultLogsSubdir)
}

// ExportDir is where `folio export` writes unless --out is given.
func (c *AppConfig) ExportDir() string {
	if c == nil {
		return resolvePath("", "", defaultExportSubdir)
	}
	return resolvePath(c.baseDir, c.Paths.Export, defaultExportSubdir)
}

// resolvePath anchors a relative path at base, the directory of the loaded
// config file.
func resolvePath(base, raw, fallback string) string {
	target := strings.TrimSpace(raw)
	if target == "" {
		target = fallback
	}
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	if base == "" {
		base = "."
	}
	return filepath.Clean(filepath.Join(base, target))
}
