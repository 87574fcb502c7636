package git

import (
	"context"
	"fmt"
	"strings"

	log "github.com/chmouel/gz/internal/log"
	"github.com/chmouel/gz/internal/models"
)

// DetachedPrefix labels the branch of a repository in detached HEAD state.
const DetachedPrefix = "DETACHED@"

// Repository runs git commands rooted at a repository top-level directory.
type Repository struct {
	runner Runner
	root   string
}

// Open discovers the top-level directory of the repository containing dir.
func Open(ctx context.Context, runner Runner, dir string) (*Repository, error) {
	out, err := runner.Run(ctx, dir, "rev-parse", "--show-toplevel")
	if err != nil {
		return nil, fmt.Errorf("failed to find repository root: %w", err)
	}
	root := strings.TrimSpace(out)
	if root == "" {
		return nil, fmt.Errorf("failed to find repository root: empty output")
	}
	log.Printf("repository root: %s", root)
	return NewRepository(runner, root), nil
}

// NewRepository wraps an already known repository root.
func NewRepository(runner Runner, root string) *Repository {
	return &Repository{runner: runner, root: root}
}

// Root returns the repository top-level directory.
func (r *Repository) Root() string {
	return r.root
}

// Git runs an arbitrary git command in the repository root.
func (r *Repository) Git(ctx context.Context, args ...string) (string, error) {
	return r.runner.Run(ctx, r.root, args...)
}

// CurrentBranch returns the checked out branch name, or DETACHED@<short-id>
// when HEAD does not point at a branch.
func (r *Repository) CurrentBranch(ctx context.Context) (string, error) {
	out, err := r.Git(ctx, "rev-parse", "--abbrev-ref", "HEAD")
	if err != nil {
		return "", err
	}
	name := strings.TrimSpace(out)
	if name != "HEAD" {
		return name, nil
	}

	out, err = r.Git(ctx, "rev-parse", "--short", "HEAD")
	if err != nil {
		return "", err
	}
	return DetachedPrefix + strings.TrimSpace(out), nil
}

// Status lists pending changes, staged entries first.
func (r *Repository) Status(ctx context.Context) ([]models.ChangeEntry, error) {
	out, err := r.Git(ctx, "status", "--porcelain=v2", "--untracked-files=all")
	if err != nil {
		return nil, err
	}
	return ParseStatus(out), nil
}

// Stage adds paths to the index. No command runs for an empty path set.
func (r *Repository) Stage(ctx context.Context, paths ...string) error {
	return r.applyPaths(ctx, []string{"add", "--"}, paths)
}

// Unstage restores paths in the index from HEAD. No command runs for an
// empty path set.
func (r *Repository) Unstage(ctx context.Context, paths ...string) error {
	return r.applyPaths(ctx, []string{"restore", "--staged", "--"}, paths)
}

func (r *Repository) applyPaths(ctx context.Context, base, paths []string) error {
	if len(paths) == 0 {
		return nil
	}
	args := append(base, paths...)
	_, err := r.Git(ctx, args...)
	return err
}

// StagedLineStats returns per-path line counts of changes in the index.
// Rename detection is off so a renamed file is counted under its new path.
func (r *Repository) StagedLineStats(ctx context.Context) (models.LineStats, error) {
	out, err := r.Git(ctx, "diff", "--cached", "--numstat", "--no-renames")
	if err != nil {
		return nil, err
	}
	return ParseNumstat(out), nil
}

// UnstagedLineStats returns per-path line counts of changes in the worktree.
func (r *Repository) UnstagedLineStats(ctx context.Context) (models.LineStats, error) {
	out, err := r.Git(ctx, "diff", "--numstat", "--no-renames")
	if err != nil {
		return nil, err
	}
	return ParseNumstat(out), nil
}
