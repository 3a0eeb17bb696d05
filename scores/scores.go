// Package scores persists high scores to a line-oriented text file.
//
// Each line holds one entry encoded as
//
//	<name> - Score: <integer>
//
// Entries are unordered at rest. Ordering only happens at read time.
package scores

import (
	"bufio"
	"cmp"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
)

// DefaultPath is the score file used when the player gives no path.
const DefaultPath = "scores/score-list.txt"

// TopN is the number of entries shown on the high score screen.
const TopN = 5

const separator = " - Score: "

var (
	// ErrRead is returned when a score file is missing or unreadable.
	ErrRead = errors.New("score file read failed")

	// ErrWrite is returned when an entry could not be appended.
	ErrWrite = errors.New("score file write failed")

	// ErrInvalidPath is returned for user-given paths that are not existing .txt files.
	ErrInvalidPath = errors.New("invalid score file path")
)

// Entry is a persisted (name, score) pair.
type Entry struct {
	Name  string
	Score int
}

// Label renders the entry the way it is stored.
func (e Entry) Label() string {
	return e.Name + separator + strconv.Itoa(e.Score)
}

// ReadResult holds the outcome of reading one or more score files.
type ReadResult struct {
	Entries []Entry // sorted by score descending, at most TopN
	Total   int     // valid entries before truncation
	Skipped int     // malformed lines
}

// ParseLine decodes a single stored line.
func ParseLine(line string) (Entry, bool) {
	line = strings.TrimRight(line, "\r\n")
	i := strings.LastIndex(line, separator)
	if i < 0 {
		return Entry{}, false
	}
	n, err := strconv.Atoi(strings.TrimSpace(line[i+len(separator):]))
	if err != nil {
		return Entry{}, false
	}
	return Entry{Name: line[:i], Score: n}, true
}

// maxLineLen bounds a stored line. Longer lines count as malformed.
const maxLineLen = 64 * 1024

// ReadAll parses every valid entry of a file in file order.
// Malformed and overlong lines are skipped and counted.
func ReadAll(path string) ([]Entry, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
	}
	defer f.Close()

	var (
		entries []Entry
		skipped int
	)
	r := bufio.NewReaderSize(f, maxLineLen)
	for {
		line, isPrefix, err := r.ReadLine()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return entries, skipped, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
		}
		if isPrefix {
			skipped++
			if err := skipLine(r); err != nil {
				if errors.Is(err, io.EOF) {
					break
				}
				return entries, skipped, fmt.Errorf("%w: %s: %w", ErrRead, path, err)
			}
			continue
		}

		if strings.TrimSpace(string(line)) == "" {
			continue
		}
		e, ok := ParseLine(string(line))
		if !ok {
			skipped++
			continue
		}
		entries = append(entries, e)
	}
	return entries, skipped, nil
}

// skipLine discards the rest of a line that did not fit the reader buffer
func skipLine(r *bufio.Reader) error {
	for {
		_, isPrefix, err := r.ReadLine()
		if err != nil {
			return err
		}
		if !isPrefix {
			return nil
		}
	}
}

// Top sorts entries by score descending and keeps the first n.
// Equal scores keep their input order.
func Top(entries []Entry, n int) []Entry {
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b Entry) int {
		return cmp.Compare(b.Score, a.Score)
	})
	if len(sorted) > n {
		sorted = sorted[:n]
	}
	return sorted
}

// Read loads all given files, merges their entries in argument order and
// returns the TopN highest. A file that cannot be opened fails the read;
// files read before it are discarded.
func Read(paths ...string) (ReadResult, error) {
	var (
		all []Entry
		res ReadResult
	)
	for _, p := range paths {
		entries, skipped, err := ReadAll(p)
		if err != nil {
			return ReadResult{}, err
		}
		all = append(all, entries...)
		res.Skipped += skipped
	}
	res.Total = len(all)
	res.Entries = Top(all, TopN)
	return res, nil
}

// Append writes one entry at the end of the file, creating the file and its
// directory when needed. Line breaks in the name are replaced by spaces.
func Append(path string, e Entry) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w: %w", ErrWrite, err)
		}
	}
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}

	e.Name = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ").Replace(e.Name)
	if _, err := fmt.Fprintln(f, e.Label()); err != nil {
		f.Close()
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("%w: %w", ErrWrite, err)
	}
	return nil
}

// CheckPath validates a score file path typed by the player. The default
// path is always accepted since Append creates it on first save.
func CheckPath(path, defaultPath string) error {
	if path == defaultPath {
		return nil
	}
	if !strings.HasSuffix(strings.ToLower(path), ".txt") {
		return fmt.Errorf("%w: %s does not have a supported text format", ErrInvalidPath, path)
	}
	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %s does not exist", ErrInvalidPath, path)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrInvalidPath, path)
	}
	return nil
}
