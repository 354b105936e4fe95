package main

import (
	"flag"

	"github.com/mx-space/folio/internal/app"
	"github.com/mx-space/folio/internal/cli"
	"github.com/mx-space/folio/internal/config"
	"github.com/mx-space/folio/internal/pkg/nativelog"
	"github.com/mx-space/folio/internal/pkg/proctitle"
	"go.uber.org/zap"
)

func main() {
	configPath := flag.String("config", config.DefaultConfigPath, "Path to YAML config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		zap.NewExample().Fatal("failed to load config", zap.Error(err))
	}

	logger, err := nativelog.NewZapLogger(nativelog.Options{Dir: cfg.LogDir()})
	if err != nil {
		logger, _ = zap.NewProduction()
		logger.Warn("native log pipeline unavailable, fallback to zap production logger", zap.Error(err))
	}
	defer logger.Sync()
	_ = proctitle.Set("server")

	application, err := app.New(logger, cfg)
	if err != nil {
		logger.Fatal("failed to initialize app", zap.Error(err))
	}
	if err := cli.ServeUntilSignal(logger, application); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}
