package config

import (
	"context"
	"errors"
	"testing"

	"github.com/chmouel/gz/internal/git"
	"github.com/chmouel/gz/internal/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubRunner struct {
	output string
	err    error
	dir    string
	args   []string
}

func (s *stubRunner) Run(_ context.Context, dir string, args ...string) (string, error) {
	s.dir = dir
	s.args = args
	return s.output, s.err
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "main", cfg.MainBranch)
	assert.Equal(t, "origin", cfg.Remote)
	assert.False(t, cfg.ShowIcons)
	assert.Empty(t, cfg.DebugLog)
}

func TestParseGitConfigOutput(t *testing.T) {
	output := "gz.mainbranch trunk\ngz.debuglog /tmp/gz debug.log\nother.key ignored\n\ngz.remote upstream\ngz.remote fork\n"

	values := parseGitConfigOutput(output)
	assert.Equal(t, map[string]string{
		"mainbranch": "trunk",
		"debuglog":   "/tmp/gz debug.log",
		"remote":     "fork",
	}, values)
}

func TestLoadConfig(t *testing.T) {
	runner := &stubRunner{output: "gz.mainbranch develop\ngz.remote upstream\ngz.theme Nord\ngz.icons yes\n"}

	cfg, err := LoadConfig(context.Background(), runner, "/repo")
	require.NoError(t, err)
	assert.Equal(t, "/repo", runner.dir)
	assert.Equal(t, []string{"config", "--get-regexp", `^gz\.`}, runner.args)
	assert.Equal(t, "develop", cfg.MainBranch)
	assert.Equal(t, "upstream", cfg.Remote)
	assert.Equal(t, theme.NordName, cfg.Theme)
	assert.True(t, cfg.ShowIcons)
}

func TestLoadConfigWithoutKeys(t *testing.T) {
	runner := &stubRunner{err: &git.CommandError{ExitCode: 1}}

	cfg, err := LoadConfig(context.Background(), runner, "/repo")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFailure(t *testing.T) {
	failure := errors.New("boom")
	runner := &stubRunner{err: failure}

	cfg, err := LoadConfig(context.Background(), runner, "/repo")
	assert.ErrorIs(t, err, failure)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestParseConfigIgnoresUnknownTheme(t *testing.T) {
	cfg := parseConfig(map[string]string{"theme": "no-such-theme", "icons": "maybe"})
	assert.Empty(t, cfg.Theme)
	assert.False(t, cfg.ShowIcons)
}

func TestCoerceBool(t *testing.T) {
	tests := []struct {
		input string
		def   bool
		want  bool
	}{
		{"true", false, true},
		{"ON", false, true},
		{"1", false, true},
		{"off", true, false},
		{"no", true, false},
		{"", true, true},
		{"garbage", false, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, coerceBool(tt.input, tt.def), "input %q", tt.input)
	}
}

func TestResolveTheme(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Theme = theme.GruvboxDarkName
	assert.Equal(t, theme.GruvboxDark(), cfg.ResolveTheme())

	cfg.Theme = ""
	assert.NotNil(t, cfg.ResolveTheme())
}
