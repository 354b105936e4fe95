package nativelog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"go.uber.org/zap/zapcore"
)

func TestNewZapLoggerWritesDailyFile(t *testing.T) {
	t.Setenv(EnvLogDir, "")
	dir := t.TempDir()

	logger, err := NewZapLogger(Options{Dir: dir, Level: zapcore.InfoLevel, Quiet: true})
	if err != nil {
		t.Fatalf("NewZapLogger: %v", err)
	}
	logger.Info("hello from test")
	_ = logger.Sync()

	raw, err := os.ReadFile(filepath.Join(dir, TodayFilename(time.Now())))
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if !strings.Contains(string(raw), "hello from test") {
		t.Fatalf("log file = %q", raw)
	}
}

func TestResolveDirPrefersEnv(t *testing.T) {
	t.Setenv(EnvLogDir, "/tmp/folio-logs")
	if got := ResolveDir("logs"); got != "/tmp/folio-logs" {
		t.Fatalf("ResolveDir = %q", got)
	}
}
