// Package journal keeps the per-device active-message files: one JSON
// object per line, the authoritative "what is showing now" view for
// late-joining readers. The dispatcher writes; the query endpoint reads.
package journal

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"time"
)

// ErrBusy indicates a concurrent open outlived the grace period; the
// operation is abandoned silently by callers (logged, not retried).
var ErrBusy = errors.New("journal file busy")

// flagGrace is how long an operation waits for a concurrent open to
// clear before giving up.
const flagGrace = 5 * time.Second

// Store hands out one Journal per device so the advisory flags are
// shared between the dispatcher and the query endpoint.
type Store struct {
	dir string

	mu       sync.Mutex
	journals map[int]*Journal
}

// NewStore creates a store rooted at the state directory.
func NewStore(dir string) *Store {
	return &Store{
		dir:      dir,
		journals: make(map[int]*Journal),
	}
}

// ForDevice returns the journal for a device recno, creating it on
// first use.
func (s *Store) ForDevice(recno int) *Journal {
	s.mu.Lock()
	defer s.mu.Unlock()
	j, ok := s.journals[recno]
	if !ok {
		j = &Journal{path: filepath.Join(s.dir, fmt.Sprintf("evolutionActiveMsgs.%d.json", recno))}
		s.journals[recno] = j
	}
	return j
}

// Journal is one device's active-message file. Advisory open-for-read
// and open-for-write flags serialize the dispatcher against the query
// endpoint; both clear when the corresponding handle closes.
type Journal struct {
	path string

	mu        sync.Mutex
	readOpen  bool
	writeOpen bool
}

// Path returns the journal file path.
func (j *Journal) Path() string {
	return j.path
}

// waitClear blocks until the given flags test false or the grace period
// runs out.
func (j *Journal) waitClear(test func() bool) error {
	deadline := time.Now().Add(flagGrace)
	for {
		j.mu.Lock()
		clear := !test()
		j.mu.Unlock()
		if clear {
			return nil
		}
		if time.Now().After(deadline) {
			return ErrBusy
		}
		time.Sleep(100 * time.Millisecond)
	}
}

// Append adds one JSON line unless a structurally-equal line already
// exists. Equality ignores signseqnum and dbb_rec_dtsec: the same active
// message re-issued on an update keeps its single journal entry even
// though both change.
func (j *Journal) Append(line string) error {
	if err := j.waitClear(func() bool { return j.writeOpen }); err != nil {
		return err
	}

	exists, err := j.contains(line)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	j.mu.Lock()
	j.writeOpen = true
	j.mu.Unlock()
	defer func() {
		j.mu.Lock()
		j.writeOpen = false
		j.mu.Unlock()
	}()

	f, err := os.OpenFile(j.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open journal for append: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(line + "\n"); err != nil {
		return fmt.Errorf("failed to append journal line: %w", err)
	}
	return nil
}

// contains reports whether a structurally-equal line is present.
func (j *Journal) contains(line string) (bool, error) {
	want, err := identityKey(line)
	if err != nil {
		return false, fmt.Errorf("invalid journal line: %w", err)
	}

	lines, err := j.ReadAll()
	if err != nil {
		return false, err
	}
	for _, existing := range lines {
		have, err := identityKey(existing)
		if err != nil {
			// A mangled line never matches; leave it for remove/delete.
			continue
		}
		if reflect.DeepEqual(want, have) {
			return true, nil
		}
	}
	return false, nil
}

// identityKey parses a line and strips the two volatile fields.
func identityKey(line string) (map[string]any, error) {
	var m map[string]any
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		return nil, err
	}
	delete(m, "signseqnum")
	delete(m, "dbb_rec_dtsec")
	return m, nil
}

// RemoveByRecno rewrites the file to a sibling temp path omitting every
// line whose recno_zx matches, then atomically replaces the original.
// Missing file is a no-op: stopping an absent message is not an error.
func (j *Journal) RemoveByRecno(recno int) error {
	if err := j.waitClear(func() bool { return j.readOpen || j.writeOpen }); err != nil {
		return err
	}

	lines, err := j.ReadAll()
	if err != nil {
		return err
	}
	if lines == nil {
		return nil
	}

	j.mu.Lock()
	j.writeOpen = true
	j.mu.Unlock()
	defer func() {
		j.mu.Lock()
		j.writeOpen = false
		j.mu.Unlock()
	}()

	target := fmt.Sprintf("%d", recno)
	tmpPath := j.path + ".out"
	tmp, err := os.OpenFile(tmpPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("failed to open journal temp file: %w", err)
	}
	for _, line := range lines {
		if lineRecno(line) == target {
			continue
		}
		if _, err := tmp.WriteString(line + "\n"); err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmpPath)
			return fmt.Errorf("failed to write journal temp file: %w", err)
		}
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to close journal temp file: %w", err)
	}
	if err := os.Rename(tmpPath, j.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("failed to replace journal: %w", err)
	}
	return nil
}

// lineRecno extracts the recno_zx value from a line; empty on parse
// failure so mangled lines are dropped by the rewrite.
func lineRecno(line string) string {
	var m struct {
		RecnoZX string `json:"recno_zx"`
	}
	if err := json.Unmarshal([]byte(line), &m); err != nil {
		return ""
	}
	return m.RecnoZX
}

// Delete unlinks the journal file. Missing file is not an error.
func (j *Journal) Delete() error {
	if err := os.Remove(j.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("failed to delete journal: %w", err)
	}
	return nil
}

// ReadAll returns every line in file order. A missing file yields a nil
// slice and no error.
func (j *Journal) ReadAll() ([]string, error) {
	j.mu.Lock()
	j.readOpen = true
	j.mu.Unlock()
	defer func() {
		j.mu.Lock()
		j.readOpen = false
		j.mu.Unlock()
	}()

	f, err := os.Open(j.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to open journal: %w", err)
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := scanner.Text(); line != "" {
			lines = append(lines, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read journal: %w", err)
	}
	return lines, nil
}

// Recnos returns the recno_zx of every line, in file order.
func (j *Journal) Recnos() ([]string, error) {
	lines, err := j.ReadAll()
	if err != nil {
		return nil, err
	}
	var out []string
	for _, line := range lines {
		if r := lineRecno(line); r != "" {
			out = append(out, r)
		}
	}
	return out, nil
}
