package publish

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/go-git/go-git/v5/plumbing/transport"
	"github.com/go-git/go-git/v5/plumbing/transport/ssh"
	"github.com/mx-space/folio/internal/config"
	"go.uber.org/zap"
)

// keepInWorktree survives the wipe that precedes each copy.
var keepInWorktree = map[string]bool{
	".git":  true,
	"CNAME": true,
}

// GitPublisher commits the export to a branch of a local clone and pushes
// it, the way a GitHub Pages branch is maintained.
type GitPublisher struct {
	opts config.GitOptions
	log  *zap.Logger
	now  func() time.Time
}

func NewGitPublisher(opts config.GitOptions, log *zap.Logger) (*GitPublisher, error) {
	if strings.TrimSpace(opts.Dir) == "" {
		return nil, errors.New("incomplete git config: dir is required")
	}
	if opts.Branch == "" {
		opts.Branch = config.DefaultGitBranch
	}
	if opts.AuthorName == "" {
		opts.AuthorName = "folio"
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &GitPublisher{opts: opts, log: log.Named("git"), now: time.Now}, nil
}

func (p *GitPublisher) Name() string { return TargetGit }

// Publish replaces the worktree contents with dir, commits when anything
// changed, then pushes. An empty remote commits locally only.
func (p *GitPublisher) Publish(ctx context.Context, dir string) (*Report, error) {
	repo, err := git.PlainOpen(p.opts.Dir)
	if err != nil {
		return nil, fmt.Errorf("failed to open repo: %w", err)
	}
	w, err := repo.Worktree()
	if err != nil {
		return nil, fmt.Errorf("failed to get worktree: %w", err)
	}
	if err := p.checkout(repo, w); err != nil {
		return nil, err
	}

	if err := clearWorktree(p.opts.Dir); err != nil {
		return nil, err
	}
	files, err := exportFiles(dir)
	if err != nil {
		return nil, err
	}
	for _, rel := range files {
		if err := copyFile(filepath.Join(dir, filepath.FromSlash(rel)), filepath.Join(p.opts.Dir, filepath.FromSlash(rel))); err != nil {
			return nil, err
		}
	}
	// Pages would otherwise run Jekyll and drop underscore paths.
	if err := os.WriteFile(filepath.Join(p.opts.Dir, ".nojekyll"), nil, 0o644); err != nil {
		return nil, err
	}

	if err := w.AddWithOptions(&git.AddOptions{All: true}); err != nil {
		return nil, fmt.Errorf("failed to add changes: %w", err)
	}
	status, err := w.Status()
	if err != nil {
		return nil, fmt.Errorf("failed to read status: %w", err)
	}

	report := &Report{Target: TargetGit, Files: len(files)}
	if !status.IsClean() {
		hash, err := w.Commit(p.message(len(files)), &git.CommitOptions{
			Author: &object.Signature{
				Name:  p.opts.AuthorName,
				Email: p.opts.AuthorEmail,
				When:  p.now(),
			},
		})
		if err != nil {
			return nil, fmt.Errorf("failed to commit: %w", err)
		}
		report.Commit = hash.String()
	} else {
		p.log.Info("export unchanged, nothing to commit")
	}

	if p.opts.Remote == "" {
		return report, nil
	}
	if err := p.push(ctx, repo); err != nil {
		return nil, err
	}
	p.log.Info("published",
		zap.String("remote", p.opts.Remote),
		zap.String("branch", p.opts.Branch),
		zap.String("commit", report.Commit),
	)
	return report, nil
}

func (p *GitPublisher) checkout(repo *git.Repository, w *git.Worktree) error {
	branch := plumbing.NewBranchReferenceName(p.opts.Branch)
	head, err := repo.Head()
	switch {
	case errors.Is(err, plumbing.ErrReferenceNotFound):
		// No commits yet: point HEAD at the branch so the first commit
		// creates it.
		return repo.Storer.SetReference(plumbing.NewSymbolicReference(plumbing.HEAD, branch))
	case err != nil:
		return fmt.Errorf("failed to read HEAD: %w", err)
	case head.Name() == branch:
		return nil
	}

	_, refErr := repo.Reference(branch, false)
	if err := w.Checkout(&git.CheckoutOptions{Branch: branch, Create: refErr != nil, Force: true}); err != nil {
		return fmt.Errorf("failed to checkout %s: %w", p.opts.Branch, err)
	}
	return nil
}

func (p *GitPublisher) push(ctx context.Context, repo *git.Repository) error {
	auth, err := p.auth()
	if err != nil {
		return err
	}
	spec := gitconfig.RefSpec(fmt.Sprintf("refs/heads/%s:refs/heads/%s", p.opts.Branch, p.opts.Branch))
	err = repo.PushContext(ctx, &git.PushOptions{
		RemoteName: p.opts.Remote,
		RefSpecs:   []gitconfig.RefSpec{spec},
		Auth:       auth,
	})
	if err != nil && !errors.Is(err, git.NoErrAlreadyUpToDate) {
		return fmt.Errorf("failed to push: %w", err)
	}
	return nil
}

func (p *GitPublisher) auth() (transport.AuthMethod, error) {
	if p.opts.SSHKeyPath == "" {
		return nil, nil
	}
	keys, err := ssh.NewPublicKeysFromFile("git", p.opts.SSHKeyPath, "")
	if err != nil {
		return nil, fmt.Errorf("load ssh key: %w", err)
	}
	return keys, nil
}

func (p *GitPublisher) message(files int) string {
	return fmt.Sprintf("Publish site: %d files at %s", files, p.now().UTC().Format(time.RFC3339))
}

func clearWorktree(dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if keepInWorktree[e.Name()] {
			continue
		}
		if err := os.RemoveAll(filepath.Join(dir, e.Name())); err != nil {
			return fmt.Errorf("clear worktree: %w", err)
		}
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
