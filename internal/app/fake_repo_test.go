package app

import (
	"context"
	"slices"
	"sort"

	"github.com/chmouel/gz/internal/models"
)

// fakeRepo keeps an in-memory index: a path is either staged or unstaged.
type fakeRepo struct {
	staged map[string]bool
	stats  map[string]models.LineStat
	calls  []string

	statusErr error
	stageErr  error
	statsErr  error
}

func newFakeRepo(paths map[string]bool) *fakeRepo {
	return &fakeRepo{staged: paths, stats: map[string]models.LineStat{}}
}

func (f *fakeRepo) Status(_ context.Context) ([]models.ChangeEntry, error) {
	f.calls = append(f.calls, "status")
	if f.statusErr != nil {
		return nil, f.statusErr
	}

	paths := make([]string, 0, len(f.staged))
	for p := range f.staged {
		paths = append(paths, p)
	}
	sort.Strings(paths)

	var staged, unstaged []models.ChangeEntry
	for _, p := range paths {
		if f.staged[p] {
			staged = append(staged, models.ChangeEntry{Path: p, Staged: true})
		} else {
			unstaged = append(unstaged, models.ChangeEntry{Path: p})
		}
	}
	return append(staged, unstaged...), nil
}

func (f *fakeRepo) Stage(_ context.Context, paths ...string) error {
	f.calls = append(f.calls, "stage "+paths[0])
	if f.stageErr != nil {
		return f.stageErr
	}
	for _, p := range paths {
		f.staged[p] = true
	}
	return nil
}

func (f *fakeRepo) Unstage(_ context.Context, paths ...string) error {
	f.calls = append(f.calls, "unstage "+paths[0])
	if f.stageErr != nil {
		return f.stageErr
	}
	for _, p := range paths {
		f.staged[p] = false
	}
	return nil
}

func (f *fakeRepo) StagedLineStats(_ context.Context) (models.LineStats, error) {
	return f.lineStats(true)
}

func (f *fakeRepo) UnstagedLineStats(_ context.Context) (models.LineStats, error) {
	return f.lineStats(false)
}

func (f *fakeRepo) lineStats(staged bool) (models.LineStats, error) {
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	out := models.LineStats{}
	for p, st := range f.stats {
		if f.staged[p] == staged {
			out[p] = st
		}
	}
	return out, nil
}

// mutations returns the stage and unstage calls in order.
func (f *fakeRepo) mutations() []string {
	return slices.DeleteFunc(slices.Clone(f.calls), func(c string) bool { return c == "status" })
}
