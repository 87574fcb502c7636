// Package git wraps the git commands gz relies on.
package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	log "github.com/chmouel/gz/internal/log"
)

// Runner runs git with args inside dir and returns its standard output.
type Runner interface {
	Run(ctx context.Context, dir string, args ...string) (string, error)
}

// LaunchError reports that the git executable could not be started.
type LaunchError struct {
	Binary string
	Err    error
}

func (e *LaunchError) Error() string {
	return fmt.Sprintf("failed to execute %s: %v", e.Binary, e.Err)
}

func (e *LaunchError) Unwrap() error { return e.Err }

// CommandError reports a git invocation that exited non-zero.
type CommandError struct {
	Args     []string
	ExitCode int
	Stderr   string
}

func (e *CommandError) Error() string {
	detail := strings.TrimSpace(e.Stderr)
	if detail == "" {
		detail = fmt.Sprintf("exit status %d", e.ExitCode)
	}
	return fmt.Sprintf("git command failed:\n %s", detail)
}

// Client spawns one git process per call.
type Client struct {
	binary string
}

var _ Runner = (*Client)(nil)

// NewClient returns a Client running the git found in PATH.
func NewClient() *Client {
	return &Client{binary: "git"}
}

// Run executes git with args in dir. Stdin is closed and both output streams
// are captured.
func (c *Client) Run(ctx context.Context, dir string, args ...string) (string, error) {
	command := strings.Join(args, " ")
	log.Printf("run: git %s (cwd=%s)", command, dir)

	// #nosec G204 -- arguments are built by gz, never shell interpolated
	cmd := exec.CommandContext(ctx, c.binary, args...)
	cmd.Dir = dir
	cmd.Stdin = nil

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			cmdErr := &CommandError{
				Args:     append([]string(nil), args...),
				ExitCode: exitErr.ExitCode(),
				Stderr:   stderr.String(),
			}
			log.Printf("error: git %s (exit %d): %s", command, cmdErr.ExitCode, strings.TrimSpace(cmdErr.Stderr))
			return "", cmdErr
		}
		log.Printf("error: git %s: %v", command, err)
		return "", &LaunchError{Binary: c.binary, Err: err}
	}

	log.Printf("ok: git %s", command)
	return stdout.String(), nil
}
