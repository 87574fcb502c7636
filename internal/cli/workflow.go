// Package cli implements the non-interactive gz workflow commands.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/chmouel/gz/internal/config"
	"github.com/chmouel/gz/internal/git"
	log "github.com/chmouel/gz/internal/log"
)

var (
	stdout io.Writer = os.Stdout
	stderr io.Writer = os.Stderr
)

// gitRepository is the subset of git.Repository the workflow commands use.
type gitRepository interface {
	CurrentBranch(ctx context.Context) (string, error)
	Git(ctx context.Context, args ...string) (string, error)
}

var _ gitRepository = (*git.Repository)(nil)

// Sync brings the current branch up to date with its remote counterpart.
// With force the local branch is hard reset onto the fetched remote branch,
// otherwise only a fast-forward pull is attempted.
func Sync(ctx context.Context, repo gitRepository, cfg *config.AppConfig, force bool) error {
	branch, err := repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	return syncBranch(ctx, repo, cfg.Remote, branch, force)
}

func syncBranch(ctx context.Context, repo gitRepository, remote, branch string, force bool) error {
	if !force {
		return run(ctx, repo, "pull", "--ff-only", remote, branch)
	}
	if err := run(ctx, repo, "fetch", remote, branch); err != nil {
		return err
	}
	return run(ctx, repo, "reset", "--hard", remote+"/"+branch)
}

// Stash saves every local change, untracked files included.
func Stash(ctx context.Context, repo gitRepository) error {
	return run(ctx, repo, "stash", "push", "--include-untracked")
}

// ParseCount reads the uncommit count argument. A missing argument or one
// that is not a count of commits means 1; zero stays zero.
func ParseCount(arg string) uint {
	n, err := strconv.ParseUint(strings.TrimSpace(arg), 10, 0)
	if err != nil {
		return 1
	}
	return uint(n)
}

// Uncommit moves HEAD back by count commits and keeps their changes in the
// worktree. A zero count only resets the index.
func Uncommit(ctx context.Context, repo gitRepository, count uint) error {
	return run(ctx, repo, "reset", fmt.Sprintf("HEAD~%d", count))
}

// Branch creates name and switches to it.
func Branch(ctx context.Context, repo gitRepository, name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("branch name is required")
	}
	return run(ctx, repo, "switch", "--create", name)
}

// Done switches back to the main branch, deletes the branch that was checked
// out and syncs the main branch. On the main branch it only prints a notice.
func Done(ctx context.Context, repo gitRepository, cfg *config.AppConfig) error {
	branch, err := repo.CurrentBranch(ctx)
	if err != nil {
		return err
	}
	if branch == cfg.MainBranch {
		fmt.Fprintf(stderr, "You are already on '%s' branch.\n", cfg.MainBranch)
		return nil
	}

	if err := run(ctx, repo, "switch", cfg.MainBranch); err != nil {
		return err
	}
	if err := run(ctx, repo, "branch", "--delete", "--force", branch); err != nil {
		return err
	}
	return syncBranch(ctx, repo, cfg.Remote, cfg.MainBranch, false)
}

// run executes one workflow step and echoes what git printed.
func run(ctx context.Context, repo gitRepository, args ...string) error {
	log.Printf("workflow: git %s", strings.Join(args, " "))
	out, err := repo.Git(ctx, args...)
	if err != nil {
		return err
	}
	if out != "" {
		fmt.Fprint(stdout, out)
	}
	return nil
}
