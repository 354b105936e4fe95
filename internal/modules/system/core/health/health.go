package health

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mx-space/folio/internal/modules/content/catalog"
	"go.uber.org/zap"
)

type status struct {
	Status  string           `json:"status"`
	Content []catalog.Report `json:"content"`
	Uptime  string           `json:"uptime"`
	Error   string           `json:"error,omitempty"`
}

var processStart = time.Now()

// RegisterRoutes mounts GET /health, which loads every collection and
// reports 503 when one cannot be listed.
func RegisterRoutes(rg *gin.RouterGroup, cat *catalog.Catalog, log *zap.Logger) {
	rg.GET("/health", func(c *gin.Context) {
		reports, err := cat.Check(log)
		if reports == nil {
			reports = []catalog.Report{}
		}

		out := status{Status: "ok", Content: reports, Uptime: humanizeDuration(time.Since(processStart))}
		code := http.StatusOK
		if err != nil {
			out.Status = "degraded"
			out.Error = err.Error()
			code = http.StatusServiceUnavailable
		}
		c.Header("Cache-Control", "no-store")
		c.JSON(code, out)
	})
}

func humanizeDuration(d time.Duration) string {
	switch {
	case d < time.Minute:
		return d.Truncate(time.Second).String()
	case d < time.Hour:
		return d.Truncate(time.Minute).String()
	case d < 24*time.Hour:
		return d.Truncate(time.Hour).String()
	}
	return d.Truncate(24 * time.Hour).String()
}
