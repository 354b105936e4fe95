// Package export renders every public route of the site to static files.
package export

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"time"

	"github.com/mx-space/folio/internal/modules/content/catalog"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// renderWorkers bounds concurrent in-process requests.
const renderWorkers = 8

// ErrUnsafeDir is returned for export directories that must not be wiped.
var ErrUnsafeDir = errors.New("refusing to clean export directory")

// Exporter replays routes against the in-process router.
type Exporter struct {
	handler http.Handler
	catalog *catalog.Catalog
	prefix  string
	log     *zap.Logger
}

// Result summarizes a finished export.
type Result struct {
	Dir      string
	Files    []string
	Bytes    int64
	Duration time.Duration
}

func New(handler http.Handler, cat *catalog.Catalog, apiPrefix string, log *zap.Logger) *Exporter {
	if log == nil {
		log = zap.NewNop()
	}
	return &Exporter{handler: handler, catalog: cat, prefix: apiPrefix, log: log}
}

// Export cleans dir and writes every route into it. Any route that does not
// answer 200 fails the export, which is how strict mode surfaces malformed
// content.
func (e *Exporter) Export(ctx context.Context, dir string) (*Result, error) {
	start := time.Now()
	if err := cleanDir(dir, e.catalog.Roots()); err != nil {
		return nil, err
	}

	routes, err := Enumerate(ctx, e.catalog, e.prefix, e.log)
	if err != nil {
		return nil, fmt.Errorf("enumerate routes: %w", err)
	}

	var written atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(renderWorkers)
	for _, route := range routes {
		g.Go(func() error {
			n, err := e.render(gctx, dir, route)
			if err != nil {
				return err
			}
			written.Add(n)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	files := make([]string, len(routes))
	for i, r := range routes {
		files[i] = r.File
	}
	res := &Result{Dir: dir, Files: files, Bytes: written.Load(), Duration: time.Since(start)}
	e.log.Info("export finished",
		zap.String("dir", dir),
		zap.Int("files", len(files)),
		zap.Int64("bytes", res.Bytes),
		zap.Duration("duration", res.Duration),
	)
	return res, nil
}

func (e *Exporter) render(ctx context.Context, dir string, route Route) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	req := httptest.NewRequest(http.MethodGet, route.Path, nil).WithContext(ctx)
	w := httptest.NewRecorder()
	e.handler.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		return 0, fmt.Errorf("export %s: status %d: %s", route.Path, w.Code, w.Body.String())
	}

	target := filepath.Join(dir, filepath.FromSlash(route.File))
	if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
		return 0, fmt.Errorf("export %s: %w", route.Path, err)
	}
	if err := os.WriteFile(target, w.Body.Bytes(), 0o644); err != nil {
		return 0, fmt.Errorf("export %s: %w", route.Path, err)
	}
	e.log.Debug("exported", zap.String("route", route.Path), zap.String("file", route.File))
	return int64(w.Body.Len()), nil
}

// cleanDir empties dir, refusing the working directory, the filesystem root
// and any directory that contains content.
func cleanDir(dir string, contentRoots []string) error {
	if dir == "" {
		return fmt.Errorf("%w: empty path", ErrUnsafeDir)
	}
	abs, err := filepath.Abs(dir)
	if err != nil {
		return err
	}
	wd, _ := os.Getwd()
	if abs == wd || abs == filepath.VolumeName(abs)+string(filepath.Separator) {
		return fmt.Errorf("%w: %s", ErrUnsafeDir, abs)
	}
	for _, root := range contentRoots {
		r, err := filepath.Abs(root)
		if err != nil {
			continue
		}
		if rel, err := filepath.Rel(abs, r); err == nil && rel != ".." && !startsWithParent(rel) {
			return fmt.Errorf("%w: %s contains content root %s", ErrUnsafeDir, abs, r)
		}
	}

	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("clean export dir: %w", err)
	}
	return os.MkdirAll(abs, 0o755)
}

func startsWithParent(rel string) bool {
	return len(rel) >= 3 && rel[:3] == ".."+string(filepath.Separator)
}
