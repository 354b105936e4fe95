package export

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// DefaultDebounce is how long Watch waits after the last change before it
// exports again.
const DefaultDebounce = 300 * time.Millisecond

const markdownExt = ".md"

// Watch re-exports dir whenever a Markdown file under one of the content
// roots changes, until ctx is done. Roots that do not exist yet are skipped.
// A failed re-export is logged and the watch goes on; onExport, when set,
// sees every attempt.
func (e *Exporter) Watch(ctx context.Context, dir string, debounce time.Duration, onExport func(*Result, error)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	watched := 0
	for _, root := range e.catalog.Roots() {
		if info, err := os.Stat(root); err != nil || !info.IsDir() {
			continue
		}
		if err := watcher.Add(root); err != nil {
			return fmt.Errorf("watch %s: %w", root, err)
		}
		e.log.Debug("watching", zap.String("root", root))
		watched++
	}
	if watched == 0 {
		return errors.New("no content directories to watch")
	}

	timer := time.NewTimer(debounce)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !relevant(event) {
				continue
			}
			e.log.Debug("content changed", zap.String("path", event.Name), zap.String("op", event.Op.String()))
			timer.Reset(debounce)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			e.log.Warn("watcher error", zap.Error(err))
		case <-timer.C:
			res, err := e.Export(ctx, dir)
			if err != nil {
				e.log.Error("re-export failed", zap.Error(err))
			} else {
				e.log.Info("re-exported", zap.Int("files", len(res.Files)), zap.Duration("took", res.Duration))
			}
			if onExport != nil {
				onExport(res, err)
			}
		}
	}
}

func relevant(event fsnotify.Event) bool {
	if !strings.EqualFold(filepath.Ext(event.Name), markdownExt) {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename)
}
