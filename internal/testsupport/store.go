package testsupport

import (
	"errors"
	"io/fs"
	"os"
	"strings"
	"testing"
)

// ReadLines returns the lines of the file at path without trailing newlines.
// A missing file yields nil.
func ReadLines(t testing.TB, path string) []string {
	t.Helper()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		t.Fatalf("read %s: %v", path, err)
	}
	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

// AssertSortedUnique fails the test unless lines are in strictly ascending
// byte order.
func AssertSortedUnique(t testing.TB, lines []string) {
	t.Helper()

	for i := 1; i < len(lines); i++ {
		if lines[i-1] >= lines[i] {
			t.Fatalf("lines not sorted/unique at %d: %q then %q (all: %q)", i, lines[i-1], lines[i], lines)
		}
	}
}
