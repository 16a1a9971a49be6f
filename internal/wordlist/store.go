package wordlist

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gofrs/flock"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"wordlister/internal/config"
	"wordlister/internal/logging"
	"wordlister/internal/textutil"
)

var (
	// ErrAlreadyEmpty is returned by Truncate when there is no store file.
	ErrAlreadyEmpty = errors.New("wordlist is already empty")
	// ErrEmpty is returned by Show when there is no store file.
	ErrEmpty = errors.New("wordlist is empty")
)

// Store is the persistent, sorted, deduplicated wordlist file.
//
// Every mutating call rewrites the file so it holds the union of its previous
// lines and the new words, one per line, in ascending byte order, before the
// call returns. Mutations hold an advisory lock on "<path>.lock" for their
// duration.
type Store struct {
	path   string
	policy textutil.UsernamePolicy
	lock   *flock.Flock
	logger *slog.Logger
}

// Info summarizes the store file.
type Info struct {
	Path   string
	Exists bool
	Words  int
	Size   int64
}

// Open binds a Store to opts. The file itself is created lazily by the first
// append.
func Open(opts config.StoreOptions, logger *slog.Logger) (*Store, error) {
	path := strings.TrimSpace(opts.Path)
	if path == "" {
		return nil, errors.New("wordlist: store path is required")
	}
	return &Store{
		path:   path,
		policy: textutil.UsernamePolicy{Accept: opts.AcceptUsernames},
		lock:   flock.New(path + ".lock"),
		logger: logging.NewComponentLogger(logger, "wordlist"),
	}, nil
}

// Path returns the store location.
func (s *Store) Path() string {
	return s.path
}

// Count returns the number of lines in the store. A missing store counts as 0.
func (s *Store) Count() (int, error) {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return 0, nil
		}
		return 0, fmt.Errorf("open wordlist: %w", err)
	}
	defer file.Close()

	count, err := countLines(file)
	if err != nil {
		return 0, fmt.Errorf("read wordlist: %w", err)
	}
	return count, nil
}

// Stat reports the store location, existence, size, and line count.
func (s *Store) Stat() (Info, error) {
	info := Info{Path: s.path}
	fi, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return info, nil
		}
		return info, fmt.Errorf("stat wordlist: %w", err)
	}
	info.Exists = true
	info.Size = fi.Size()
	if info.Words, err = s.Count(); err != nil {
		return info, err
	}
	return info, nil
}

// Words returns the stored lines. A missing store yields nil.
func (s *Store) Words() ([]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read wordlist: %w", err)
	}
	return splitLines(data), nil
}

// Show copies the store to w, replacing invalid UTF-8 sequences with U+FFFD.
// It returns ErrEmpty when the store does not exist.
func (s *Store) Show(w io.Writer) error {
	file, err := os.Open(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrEmpty
		}
		return fmt.Errorf("open wordlist: %w", err)
	}
	defer file.Close()

	if _, err := io.Copy(w, transform.NewReader(file, unicode.UTF8.NewDecoder())); err != nil {
		return fmt.Errorf("show wordlist: %w", err)
	}
	return nil
}

// AppendOne normalizes word and adds it to the store. A word that normalizes
// to the empty string is a no-op.
func (s *Store) AppendOne(word string) error {
	accepted := s.accept(word)
	if len(accepted) == 0 {
		return nil
	}
	return s.merge(accepted)
}

// AppendMany normalizes and adds every word, re-sorting once. It returns the
// number of words submitted, not the number that were new; compare Count
// before and after for that.
func (s *Store) AppendMany(words []string) (int, error) {
	accepted := make([]string, 0, len(words))
	for _, word := range words {
		accepted = append(accepted, s.accept(word)...)
	}
	if err := s.merge(accepted); err != nil {
		return 0, err
	}
	return len(words), nil
}

// AppendSet is AppendMany for an extraction result.
func (s *Store) AppendSet(words textutil.WordSet) (int, error) {
	return s.AppendMany(words.Sorted())
}

// AppendFromFile adds each line of the file at path after normalization and
// returns how many source lines yielded at least one word.
func (s *Store) AppendFromFile(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open source wordlist: %w", err)
	}
	defer file.Close()

	var accepted []string
	lines := 0
	reader := bufio.NewReader(file)
	for {
		line, readErr := reader.ReadString('\n')
		if words := s.accept(line); len(words) > 0 {
			accepted = append(accepted, words...)
			lines++
		}
		if readErr == nil {
			continue
		}
		if errors.Is(readErr, io.EOF) {
			break
		}
		return 0, fmt.Errorf("read source wordlist %s: %w", path, readErr)
	}

	if err := s.merge(accepted); err != nil {
		return 0, err
	}
	return lines, nil
}

// Truncate deletes the store file. It returns ErrAlreadyEmpty when there is
// nothing to delete.
func (s *Store) Truncate() error {
	if _, err := os.Stat(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrAlreadyEmpty
		}
		return fmt.Errorf("stat wordlist: %w", err)
	}

	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock wordlist: %w", err)
	}
	defer s.unlock()

	if err := os.Remove(s.path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return ErrAlreadyEmpty
		}
		return fmt.Errorf("remove wordlist: %w", err)
	}
	s.logger.Debug("wordlist removed", logging.String(logging.FieldPath, s.path))

	// The lock file goes with the store; the held descriptor stays valid
	// until unlock.
	if err := os.Remove(s.lock.Path()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.WarnWithContext(s.logger, "failed to remove wordlist lock file", "wordlist_lock_cleanup_failed",
			logging.String(logging.FieldPath, s.lock.Path()),
			logging.Error(err),
			logging.String(logging.FieldErrorHint, "delete the lock file manually"),
			logging.String(logging.FieldImpact, "a stale lock file remains next to the removed wordlist"),
		)
	}
	return nil
}

// accept normalizes a raw word into zero or more storable lines. Line breaks
// inside a word would break the one-word-per-line format, so they split it.
func (s *Store) accept(word string) []string {
	word = s.policy.Normalize(word)
	if !strings.ContainsAny(word, "\r\n") {
		if word == "" {
			return nil
		}
		return []string{word}
	}
	var out []string
	for _, part := range strings.FieldsFunc(word, func(r rune) bool { return r == '\n' || r == '\r' }) {
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}

// merge rewrites the store as the sorted union of its current lines and
// words. It runs even when words is empty so a store left unsorted by an
// interrupted run is repaired.
func (s *Store) merge(words []string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create wordlist directory: %w", err)
	}
	if err := s.lock.Lock(); err != nil {
		return fmt.Errorf("lock wordlist: %w", err)
	}
	defer s.unlock()

	mode := fs.FileMode(0o644)
	data, err := os.ReadFile(s.path)
	switch {
	case err == nil:
		if fi, statErr := os.Stat(s.path); statErr == nil {
			mode = fi.Mode().Perm()
		}
	case errors.Is(err, fs.ErrNotExist):
		data = nil
	default:
		return fmt.Errorf("read wordlist: %w", err)
	}

	existing := splitLines(data)
	lines := sortUnique(append(existing, words...))

	if err := writeLines(s.target(), lines, mode); err != nil {
		return err
	}

	s.logger.Debug("wordlist rewritten",
		logging.String(logging.FieldPath, s.path),
		logging.Int("previous_lines", len(existing)),
		logging.Int("submitted", len(words)),
		logging.Int("lines", len(lines)),
	)
	return nil
}

// target is the file a rewrite replaces. A symlinked store is rewritten at
// its destination so the link itself survives.
func (s *Store) target() string {
	resolved, err := filepath.EvalSymlinks(s.path)
	if err != nil {
		return s.path
	}
	return resolved
}

func (s *Store) unlock() {
	if err := s.lock.Unlock(); err != nil {
		logging.WarnWithContext(s.logger, "failed to release wordlist lock", "wordlist_unlock_failed",
			logging.String(logging.FieldPath, s.lock.Path()),
			logging.Error(err),
			logging.String(logging.FieldImpact, "the lock is released when the process exits"),
		)
	}
}

// sortUnique sorts lines in byte order and drops duplicates in place.
func sortUnique(lines []string) []string {
	sort.Strings(lines)
	out := lines[:0]
	for i, line := range lines {
		if i > 0 && line == lines[i-1] {
			continue
		}
		out = append(out, line)
	}
	return out
}

// splitLines returns the non-empty lines of data.
func splitLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	raw := bytes.Split(data, []byte{'\n'})
	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if len(line) == 0 {
			continue
		}
		lines = append(lines, string(line))
	}
	return lines
}

// writeLines replaces path with lines via a temp file in the same directory.
func writeLines(path string, lines []string, mode fs.FileMode) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp wordlist: %w", err)
	}
	tmpPath := tmp.Name()

	writer := bufio.NewWriter(tmp)
	for _, line := range lines {
		writer.WriteString(line)
		writer.WriteByte('\n')
	}
	if err := writer.Flush(); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("write temp wordlist: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		tmp.Close()
		os.Remove(tmpPath)
		return fmt.Errorf("chmod temp wordlist: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("close temp wordlist: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("replace wordlist: %w", err)
	}
	return nil
}

// countLines counts newline-terminated lines plus a trailing partial line.
func countLines(r io.Reader) (int, error) {
	buf := make([]byte, 32*1024)
	count := 0
	var last byte = '\n'
	for {
		n, err := r.Read(buf)
		if n > 0 {
			count += bytes.Count(buf[:n], []byte{'\n'})
			last = buf[n-1]
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, err
		}
	}
	if last != '\n' {
		count++
	}
	return count, nil
}
