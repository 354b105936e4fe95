// Package publish ships an exported site to its hosting target.
package publish

import (
	"context"
	"fmt"
	"io/fs"
	"mime"
	"path"
	"path/filepath"
	"sort"

	"github.com/mx-space/folio/internal/config"
	"github.com/mx-space/folio/internal/modules/syndication/feed"
	"github.com/mx-space/folio/internal/modules/syndication/sitemap"
	"go.uber.org/zap"
)

const (
	TargetS3  = "s3"
	TargetGit = "git"
)

// Publisher uploads the contents of an export directory.
type Publisher interface {
	Name() string
	Publish(ctx context.Context, dir string) (*Report, error)
}

// Report describes one publish run.
type Report struct {
	Target string
	Files  int
	// Commit is the new commit hash for git targets, empty when nothing changed.
	Commit string
}

// New returns the publisher for target.
func New(target string, opts config.PublishConfig, log *zap.Logger) (Publisher, error) {
	if log == nil {
		log = zap.NewNop()
	}
	switch target {
	case TargetS3:
		return NewS3Publisher(opts.S3, log)
	case TargetGit:
		return NewGitPublisher(opts.Git, log)
	}
	return nil, fmt.Errorf("unknown publish target %q (want %s or %s)", target, TargetS3, TargetGit)
}

// exportFiles lists regular files under dir as slash-separated relative
// paths, sorted.
func exportFiles(dir string) ([]string, error) {
	var files []string
	err := filepath.WalkDir(dir, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(dir, p)
		if err != nil {
			return err
		}
		files = append(files, filepath.ToSlash(rel))
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk export dir: %w", err)
	}
	sort.Strings(files)
	return files, nil
}

var knownTypes = map[string]string{
	"feed.xml":    feed.ContentTypeRSS,
	"atom.xml":    feed.ContentTypeAtom,
	"sitemap.xml": sitemap.ContentType,
}

// contentType picks the Content-Type an exported file is served with.
func contentType(rel string) string {
	if ct, ok := knownTypes[rel]; ok {
		return ct
	}
	switch ext := path.Ext(rel); ext {
	case ".json":
		return "application/json; charset=utf-8"
	case "":
		return "application/octet-stream"
	default:
		if ct := mime.TypeByExtension(ext); ct != "" {
			return ct
		}
	}
	return "application/octet-stream"
}
