package app

import (
	"context"

	log "github.com/chmouel/gz/internal/log"
	"github.com/chmouel/gz/internal/models"
)

// noSelection marks an empty entry list.
const noSelection = -1

// repository is the subset of git.Repository the staging session drives.
type repository interface {
	Status(ctx context.Context) ([]models.ChangeEntry, error)
	Stage(ctx context.Context, paths ...string) error
	Unstage(ctx context.Context, paths ...string) error
}

// Session owns the list of pending changes and the selection cursor of the
// staging screen. The list is rebuilt wholesale on every refresh.
type Session struct {
	repo     repository
	entries  []models.ChangeEntry
	selected int
}

// NewSession loads the initial entry list.
func NewSession(ctx context.Context, repo repository) (*Session, error) {
	s := &Session{repo: repo, selected: noSelection}
	if err := s.Refresh(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Refresh re-reads the repository status and keeps the selection in range.
func (s *Session) Refresh(ctx context.Context) error {
	entries, err := s.repo.Status(ctx)
	if err != nil {
		return err
	}
	s.entries = entries

	switch {
	case len(s.entries) == 0:
		s.selected = noSelection
	case s.selected < 0:
		s.selected = 0
	case s.selected >= len(s.entries):
		s.selected = len(s.entries) - 1
	}

	log.Printf("session: %d entries, selected %d", len(s.entries), s.selected)
	return nil
}

// MoveSelection moves the cursor by delta, clamped to the list bounds.
func (s *Session) MoveSelection(delta int) {
	if len(s.entries) == 0 {
		return
	}
	s.selected = max(0, min(s.selected+delta, len(s.entries)-1))
}

// ToggleSelected unstages the selected entry when it is staged and stages it
// otherwise, then refreshes. It does nothing without a selection.
func (s *Session) ToggleSelected(ctx context.Context) error {
	entry, ok := s.SelectedEntry()
	if !ok {
		return nil
	}

	var err error
	if entry.Staged {
		log.Printf("session: unstage %s", entry.Path)
		err = s.repo.Unstage(ctx, entry.Path)
	} else {
		log.Printf("session: stage %s", entry.Path)
		err = s.repo.Stage(ctx, entry.Path)
	}
	if err != nil {
		return err
	}
	return s.Refresh(ctx)
}

// Entries returns the current entries, staged first.
func (s *Session) Entries() []models.ChangeEntry {
	return s.entries
}

// Len returns the number of entries.
func (s *Session) Len() int {
	return len(s.entries)
}

// Selected returns the selection index and whether there is one.
func (s *Session) Selected() (int, bool) {
	return s.selected, s.selected != noSelection
}

// SelectedEntry returns the entry under the cursor.
func (s *Session) SelectedEntry() (models.ChangeEntry, bool) {
	if s.selected < 0 || s.selected >= len(s.entries) {
		return models.ChangeEntry{}, false
	}
	return s.entries[s.selected], true
}
