package export

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/fsnotify/fsnotify"
)

func TestWatchReexportsOnChange(t *testing.T) {
	root := seedSite(t)
	out := filepath.Join(t.TempDir(), "out")
	e := newExporter(t, root, false)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	results := make(chan error, 4)
	done := make(chan error, 1)
	go func() {
		done <- e.Watch(ctx, out, 20*time.Millisecond, func(_ *Result, err error) { results <- err })
	}()

	// Give the watcher time to register before writing.
	time.Sleep(100 * time.Millisecond)
	seed(t, root, "tools", "yq.md", "---\nname: yq\n---\n")

	select {
	case err := <-results:
		if err != nil {
			t.Fatalf("re-export: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no re-export after change")
	}
	if _, err := os.Stat(filepath.Join(out, "api", "v1", "tools", "yq", "index.json")); err != nil {
		t.Errorf("new tool not exported: %v", err)
	}

	cancel()
	if err := <-done; err != nil {
		t.Errorf("Watch returned %v", err)
	}
}

func TestWatchNeedsARoot(t *testing.T) {
	e := newExporter(t, filepath.Join(t.TempDir(), "missing"), false)
	if err := e.Watch(context.Background(), t.TempDir(), 0, nil); err == nil {
		t.Fatal("Watch succeeded without content directories")
	}
}

func TestRelevant(t *testing.T) {
	tests := []struct {
		event fsnotify.Event
		want  bool
	}{
		{fsnotify.Event{Name: "posts/a.md", Op: fsnotify.Write}, true},
		{fsnotify.Event{Name: "posts/A.MD", Op: fsnotify.Rename}, true},
		{fsnotify.Event{Name: "posts/a.md", Op: fsnotify.Chmod}, false},
		{fsnotify.Event{Name: "posts/.a.md.swp", Op: fsnotify.Create}, false},
	}
	for _, tt := range tests {
		if got := relevant(tt.event); got != tt.want {
			t.Errorf("relevant(%v) = %v, want %v", tt.event, got, tt.want)
		}
	}
}
