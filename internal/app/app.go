package app

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/mx-space/folio/internal/config"
	"github.com/mx-space/folio/internal/content"
	"github.com/mx-space/folio/internal/middleware"
	"github.com/mx-space/folio/internal/modules/content/catalog"
	"go.uber.org/zap"
)

// APIPrefix is where the JSON API is mounted. Feeds and the sitemap live
// at the root.
const APIPrefix = "/api/v1"

// App holds all application dependencies.
type App struct {
	cfg     *config.AppConfig
	router  *gin.Engine
	catalog *catalog.Catalog
	logger  *zap.Logger
}

// New builds the content catalog and the router.
func New(logger *zap.Logger, cfg *config.AppConfig) (*App, error) {
	if cfg == nil {
		return nil, errors.New("config is nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	if cfg.IsDev() {
		gin.SetMode(gin.DebugMode)
		gin.DebugPrintRouteFunc = func(method, path, handler string, _ int) {
			logger.Debug("route", zap.String("method", method), zap.String("path", path), zap.String("handler", handler))
		}
		gin.DebugPrintFunc = func(format string, values ...interface{}) {
			logger.Debug(fmt.Sprintf(format, values...))
		}
	} else {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.HandleMethodNotAllowed = true
	router.Use(gin.Recovery())
	router.Use(middleware.Logger(logger))

	corsConfig := cors.Config{
		AllowMethods:  []string{"GET", "HEAD", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders: []string{"Content-Length"},
	}
	if len(cfg.AllowedOrigins) > 0 && !cfg.IsDev() {
		corsConfig.AllowOriginFunc = originMatcher(cfg.AllowedOrigins)
	} else {
		corsConfig.AllowAllOrigins = true
	}
	router.Use(cors.New(corsConfig))

	cat := catalog.New(cfg.ContentRoot, content.Options{
		Strict:     cfg.Strict,
		CreateRoot: cfg.CreateRoots,
		Logger:     logger.Named("content"),
	})

	app := &App{cfg: cfg, router: router, catalog: cat, logger: logger}
	app.registerRoutes()
	return app, nil
}

// Addr returns the listen address.
func (a *App) Addr() string { return fmt.Sprintf(":%d", a.cfg.Port) }

// Router returns the HTTP handler.
func (a *App) Router() http.Handler { return a.router }

// Catalog returns the content collections the routes read from.
func (a *App) Catalog() *catalog.Catalog { return a.catalog }

// Config returns the configuration the app was built with.
func (a *App) Config() *config.AppConfig { return a.cfg }
