package config

import (
	"context"
	"errors"
	"strings"

	"github.com/chmouel/gz/internal/git"
)

// keyPrefix is the git config section holding gz settings.
const keyPrefix = "gz."

// loadGitConfig reads every gz.* key visible from repoPath. Later scopes
// (system, global, local) override earlier ones.
func loadGitConfig(ctx context.Context, runner git.Runner, repoPath string) (map[string]string, error) {
	output, err := runner.Run(ctx, repoPath, "config", "--get-regexp", `^gz\.`)
	if err != nil {
		// git config exits 1 when no key matches.
		var cmdErr *git.CommandError
		if errors.As(err, &cmdErr) && cmdErr.ExitCode == 1 {
			return map[string]string{}, nil
		}
		return nil, err
	}
	return parseGitConfigOutput(output), nil
}

// parseGitConfigOutput parses "gz.key value" lines into a map keyed by the
// lower-cased name without the section prefix.
func parseGitConfigOutput(output string) map[string]string {
	values := make(map[string]string)
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		key, value, _ := strings.Cut(line, " ")
		key = strings.ToLower(key)
		if !strings.HasPrefix(key, keyPrefix) {
			continue
		}
		values[strings.TrimPrefix(key, keyPrefix)] = value
	}
	return values
}
