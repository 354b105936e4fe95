package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// HTTPCacheOptions controls the Cache-Control header on public GETs.
type HTTPCacheOptions struct {
	MaxAge    int
	Disable   bool
	SkipPaths []string
}

// HTTPCache marks successful GET and HEAD responses as publicly cacheable.
// Content only changes on rebuild, so stale copies are revalidated in the
// background. The header is decided when the status is written: anything at
// 400 or above, recovered panics included, goes out with no-store.
func HTTPCache(opts HTTPCacheOptions) gin.HandlerFunc {
	value := "public, max-age=" + strconv.Itoa(opts.MaxAge) +
		", stale-while-revalidate=" + strconv.Itoa(opts.MaxAge*10)

	return func(c *gin.Context) {
		method := c.Request.Method
		if opts.Disable || opts.MaxAge <= 0 || (method != http.MethodGet && method != http.MethodHead) ||
			shouldSkipCachePath(c.Request.URL.Path, opts.SkipPaths) {
			c.Next()
			return
		}
		w := &cacheWriter{ResponseWriter: c.Writer, value: value}
		c.Writer = w
		c.Next()
		if !w.decided && !w.Written() {
			w.decide()
		}
	}
}

// cacheWriter sets Cache-Control just before the header goes out, once the
// final status is known.
type cacheWriter struct {
	gin.ResponseWriter
	value   string
	decided bool
}

func (w *cacheWriter) decide() {
	if w.decided {
		return
	}
	w.decided = true
	h := w.Header()
	switch {
	case w.Status() >= http.StatusBadRequest:
		h.Set("Cache-Control", "no-store")
	case h.Get("Cache-Control") == "":
		h.Set("Cache-Control", w.value)
	}
}

func (w *cacheWriter) WriteHeaderNow() {
	w.decide()
	w.ResponseWriter.WriteHeaderNow()
}

func (w *cacheWriter) Write(b []byte) (int, error) {
	w.decide()
	return w.ResponseWriter.Write(b)
}

func (w *cacheWriter) WriteString(s string) (int, error) {
	w.decide()
	return w.ResponseWriter.WriteString(s)
}

func (w *cacheWriter) Flush() {
	w.decide()
	w.ResponseWriter.Flush()
}

func shouldSkipCachePath(path string, patterns []string) bool {
	for _, pattern := range patterns {
		p := strings.TrimSpace(pattern)
		if p == "" {
			continue
		}
		if strings.HasSuffix(p, "*") {
			if strings.HasPrefix(path, strings.TrimSuffix(p, "*")) {
				return true
			}
			continue
		}
		if path == p {
			return true
		}
	}
	return false
}
