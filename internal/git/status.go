package git

import (
	"slices"
	"strconv"
	"strings"

	log "github.com/chmouel/gz/internal/log"
	"github.com/chmouel/gz/internal/models"
)

// RecordKind identifies a line of `git status --porcelain=v2` output.
type RecordKind int

// Porcelain v2 record kinds.
const (
	RecordUnknown   RecordKind = iota
	RecordOrdinary             // 1 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <path>
	RecordRenamed              // 2 <XY> <sub> <mH> <mI> <mW> <hH> <hI> <Xscore> <path>\t<origPath>
	RecordUnmerged             // u <XY> <sub> <m1> <m2> <m3> <mW> <h1> <h2> <h3> <path>
	RecordUntracked            // ? <path>
	RecordIgnored              // ! <path>
	RecordHeader               // # <header>
)

// unmodified marks an untouched column in the XY status code.
const unmodified = '.'

// pathField is the number of space separated fields up to and including the
// path for each record kind carrying an XY code.
var pathField = map[RecordKind]int{
	RecordOrdinary: 9,
	RecordRenamed:  10,
	RecordUnmerged: 11,
}

func classifyRecord(line string) RecordKind {
	if line == "" {
		return RecordUnknown
	}
	switch line[0] {
	case '1':
		return RecordOrdinary
	case '2':
		return RecordRenamed
	case 'u':
		return RecordUnmerged
	case '?':
		return RecordUntracked
	case '!':
		return RecordIgnored
	case '#':
		return RecordHeader
	default:
		return RecordUnknown
	}
}

// ParseStatus turns `git status --porcelain=v2` output into change entries:
// staged entries sorted by path followed by unstaged entries sorted by path.
// A path with a staged change is never listed as unstaged as well.
func ParseStatus(raw string) []models.ChangeEntry {
	var staged, unstaged []models.ChangeEntry

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		if line == "" {
			continue
		}

		kind := classifyRecord(line)
		switch kind {
		case RecordOrdinary, RecordRenamed, RecordUnmerged:
			x, y := statusColumns(line)
			path := trackedPath(line, kind)
			if path == "" {
				log.Printf("status: no path in record %q", line)
				continue
			}
			if x != unmodified {
				staged = append(staged, models.ChangeEntry{Path: path, Staged: true})
			}
			if y != unmodified && x == unmodified {
				unstaged = append(unstaged, models.ChangeEntry{Path: path})
			}
		case RecordUntracked:
			path := unquotePath(strings.TrimSpace(line[1:]))
			if path == "" {
				log.Printf("status: no path in record %q", line)
				continue
			}
			unstaged = append(unstaged, models.ChangeEntry{Path: path})
		case RecordIgnored, RecordHeader:
		case RecordUnknown:
			log.Printf("status: unrecognized record %q", line)
		}
	}

	// git reports `rm --cached` paths twice: deleted in the index and
	// untracked in the worktree. The staged record wins.
	stagedPaths := make(map[string]struct{}, len(staged))
	for _, e := range staged {
		stagedPaths[e.Path] = struct{}{}
	}
	unstaged = slices.DeleteFunc(unstaged, func(e models.ChangeEntry) bool {
		_, ok := stagedPaths[e.Path]
		return ok
	})

	byPath := func(a, b models.ChangeEntry) int { return comparePaths(a.Path, b.Path) }
	slices.SortFunc(staged, byPath)
	slices.SortFunc(unstaged, byPath)

	return append(staged, unstaged...)
}

// statusColumns returns the index (X) and worktree (Y) columns of a record.
func statusColumns(line string) (x, y byte) {
	x, y = unmodified, unmodified
	fields := strings.SplitN(line, " ", 3)
	if len(fields) < 2 {
		return x, y
	}
	xy := fields[1]
	if len(xy) > 0 {
		x = xy[0]
	}
	if len(xy) > 1 {
		y = xy[1]
	}
	return x, y
}

// trackedPath extracts the current path of a 1, 2 or u record.
func trackedPath(line string, kind RecordKind) string {
	var path string
	fields := strings.SplitN(line, " ", pathField[kind])
	if len(fields) == pathField[kind] {
		path = fields[len(fields)-1]
	} else if i := strings.LastIndexByte(line, ' '); i >= 0 {
		path = line[i+1:]
	}

	if kind == RecordRenamed {
		path, _, _ = strings.Cut(path, "\t")
	}
	return unquotePath(path)
}

// unquotePath undoes git's C-style quoting of unusual path names.
func unquotePath(path string) string {
	if len(path) < 2 || path[0] != '"' || path[len(path)-1] != '"' {
		return path
	}
	if unquoted, err := strconv.Unquote(path); err == nil {
		return unquoted
	}
	return path
}

// comparePaths orders paths component by component.
func comparePaths(a, b string) int {
	return slices.Compare(strings.Split(a, "/"), strings.Split(b, "/"))
}

// ParseNumstat parses `git diff --numstat` output into per-path line counts.
// Binary files ("-") count as zero; lines without a path are skipped.
func ParseNumstat(raw string) models.LineStats {
	stats := make(models.LineStats)
	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSuffix(line, "\r")
		parts := strings.SplitN(line, "\t", 3)
		if len(parts) < 3 || parts[2] == "" {
			continue
		}
		stats[unquotePath(parts[2])] = models.LineStat{
			Added:   numstatCount(parts[0]),
			Removed: numstatCount(parts[1]),
		}
	}
	return stats
}

func numstatCount(field string) int {
	n, err := strconv.Atoi(field)
	if err != nil || n < 0 {
		return 0
	}
	return n
}
