package cli

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/chmouel/gz/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	branch    string
	branchErr error
	outputs   map[string]string
	errs      map[string]error
	calls     []string
}

func (f *fakeRepo) CurrentBranch(_ context.Context) (string, error) {
	return f.branch, f.branchErr
}

func (f *fakeRepo) Git(_ context.Context, args ...string) (string, error) {
	key := strings.Join(args, " ")
	f.calls = append(f.calls, key)
	if err := f.errs[key]; err != nil {
		return "", err
	}
	return f.outputs[key], nil
}

func captureOutput(t *testing.T) (*bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	var out, errOut bytes.Buffer
	oldOut, oldErr := stdout, stderr
	stdout, stderr = &out, &errOut
	t.Cleanup(func() {
		stdout, stderr = oldOut, oldErr
	})
	return &out, &errOut
}

func TestSyncForceFetchesThenResets(t *testing.T) {
	captureOutput(t)
	repo := &fakeRepo{branch: "feature"}

	require.NoError(t, Sync(context.Background(), repo, config.DefaultConfig(), true))
	assert.Equal(t, []string{
		"fetch origin feature",
		"reset --hard origin/feature",
	}, repo.calls)
}

func TestSyncPullsFastForward(t *testing.T) {
	out, _ := captureOutput(t)
	repo := &fakeRepo{
		branch:  "feature",
		outputs: map[string]string{"pull --ff-only origin feature": "Already up to date.\n"},
	}

	require.NoError(t, Sync(context.Background(), repo, config.DefaultConfig(), false))
	assert.Equal(t, []string{"pull --ff-only origin feature"}, repo.calls)
	assert.Equal(t, "Already up to date.\n", out.String())
}

func TestSyncUsesConfiguredRemote(t *testing.T) {
	captureOutput(t)
	cfg := config.DefaultConfig()
	cfg.Remote = "upstream"
	repo := &fakeRepo{branch: "main"}

	require.NoError(t, Sync(context.Background(), repo, cfg, true))
	assert.Equal(t, []string{"fetch upstream main", "reset --hard upstream/main"}, repo.calls)
}

func TestSyncFetchFailureAborts(t *testing.T) {
	captureOutput(t)
	fetchErr := errors.New("could not read from remote")
	repo := &fakeRepo{
		branch: "feature",
		errs:   map[string]error{"fetch origin feature": fetchErr},
	}

	err := Sync(context.Background(), repo, config.DefaultConfig(), true)
	assert.ErrorIs(t, err, fetchErr)
	assert.Equal(t, []string{"fetch origin feature"}, repo.calls)
}

func TestSyncBranchFailure(t *testing.T) {
	branchErr := errors.New("not a git repository")
	repo := &fakeRepo{branchErr: branchErr}

	assert.ErrorIs(t, Sync(context.Background(), repo, config.DefaultConfig(), false), branchErr)
	assert.Empty(t, repo.calls)
}

func TestStash(t *testing.T) {
	captureOutput(t)
	repo := &fakeRepo{}

	require.NoError(t, Stash(context.Background(), repo))
	assert.Equal(t, []string{"stash push --include-untracked"}, repo.calls)
}

func TestParseCount(t *testing.T) {
	tests := map[string]uint{
		"":    1,
		"1":   1,
		"3":   3,
		" 2 ": 2,
		"abc": 1,
		"0":   0,
		"-4":  1,
	}
	for arg, want := range tests {
		assert.Equal(t, want, ParseCount(arg), "arg %q", arg)
	}
}

func TestUncommit(t *testing.T) {
	captureOutput(t)
	repo := &fakeRepo{}

	require.NoError(t, Uncommit(context.Background(), repo, 3))
	require.NoError(t, Uncommit(context.Background(), repo, 0))
	assert.Equal(t, []string{"reset HEAD~3", "reset HEAD~0"}, repo.calls)
}

func TestBranch(t *testing.T) {
	captureOutput(t)
	repo := &fakeRepo{}

	require.NoError(t, Branch(context.Background(), repo, "topic"))
	assert.Equal(t, []string{"switch --create topic"}, repo.calls)

	assert.Error(t, Branch(context.Background(), repo, " "))
	assert.Len(t, repo.calls, 1)
}

func TestDoneOnMainOnlyPrintsNotice(t *testing.T) {
	_, errOut := captureOutput(t)
	repo := &fakeRepo{branch: "main"}

	require.NoError(t, Done(context.Background(), repo, config.DefaultConfig()))
	assert.Empty(t, repo.calls)
	assert.Equal(t, "You are already on 'main' branch.\n", errOut.String())
}

func TestDoneDeletesBranchAndSyncsMain(t *testing.T) {
	captureOutput(t)
	repo := &fakeRepo{branch: "feature"}

	require.NoError(t, Done(context.Background(), repo, config.DefaultConfig()))
	assert.Equal(t, []string{
		"switch main",
		"branch --delete --force feature",
		"pull --ff-only origin main",
	}, repo.calls)
}

func TestDoneWithConfiguredMainBranch(t *testing.T) {
	_, errOut := captureOutput(t)
	cfg := config.DefaultConfig()
	cfg.MainBranch = "trunk"
	repo := &fakeRepo{branch: "trunk"}

	require.NoError(t, Done(context.Background(), repo, cfg))
	assert.Empty(t, repo.calls)
	assert.Contains(t, errOut.String(), "'trunk'")
}

func TestDoneSwitchFailureAborts(t *testing.T) {
	captureOutput(t)
	switchErr := errors.New("local changes would be overwritten")
	repo := &fakeRepo{
		branch: "feature",
		errs:   map[string]error{"switch main": switchErr},
	}

	assert.ErrorIs(t, Done(context.Background(), repo, config.DefaultConfig()), switchErr)
	assert.Equal(t, []string{"switch main"}, repo.calls)
}
