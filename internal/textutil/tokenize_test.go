package textutil

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestTokenizeSplitsOnDisallowedCharacters(t *testing.T) {
	tests := []struct {
		name string
		line string
		max  int
		want []string
	}{
		{name: "spaces and punctuation", line: "hello, world! foo.bar", max: 16, want: []string{"bar", "foo", "hello", "world"}},
		{name: "allowed symbols kept", line: "p@ss#w0rd ~home &amp $HOME snake_case kebab-case", max: 16, want: []string{"$HOME", "&amp", "kebab-case", "p@ss#w0rd", "snake_case", "~home"}},
		{name: "case preserved", line: "Hello hello", max: 16, want: []string{"Hello", "hello"}},
		{name: "newline is a separator", line: "alpha\nbeta\r\n", max: 16, want: []string{"alpha", "beta"}},
		{name: "non ascii separates", line: "cafélatte", max: 16, want: []string{"caf", "latte"}},
		{name: "empty line", line: "", max: 16, want: []string{}},
		{name: "only separators", line: " .,;:/\\", max: 16, want: []string{}},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			set := NewWordSet()
			Tokenize(tc.line, tc.max, set)
			if got := set.Sorted(); !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tc.line, got, tc.want)
			}
		})
	}
}

func TestTokenizeLengthBound(t *testing.T) {
	sixteen := strings.Repeat("a", 16)
	seventeen := strings.Repeat("b", 17)

	set := NewWordSet()
	Tokenize(sixteen+" "+seventeen, 16, set)

	if !set.Contains(sixteen) {
		t.Fatal("expected 16-character token to be kept")
	}
	if set.Contains(seventeen) {
		t.Fatal("expected 17-character token to be dropped")
	}
}

func TestTokenizeAccumulatesIntoCallerSet(t *testing.T) {
	set := NewWordSet("existing")
	Tokenize("one two", 16, set)
	Tokenize("two three", 16, set)

	want := []string{"existing", "one", "three", "two"}
	if got := set.Sorted(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestTokenizeFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.txt")
	if err := os.WriteFile(path, []byte("user=admin\npassword: hunter2\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	words, err := TokenizeFile(path, 16)
	if err != nil {
		t.Fatalf("TokenizeFile: %v", err)
	}
	want := []string{"admin", "hunter2", "password", "user"}
	if got := words.Sorted(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v want %v", got, want)
	}
}

func TestTokenizeFileRejectsInvalidUTF8(t *testing.T) {
	path := filepath.Join(t.TempDir(), "blob.bin")
	if err := os.WriteFile(path, []byte("valid words\n\xff\xfe\x00binary\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	words, err := TokenizeFile(path, 16)
	if !errors.Is(err, ErrUndecodable) {
		t.Fatalf("expected ErrUndecodable, got %v", err)
	}
	if len(words) != 0 {
		t.Fatalf("expected no words from undecodable file, got %v", words)
	}
}

func TestTokenizeFileMissing(t *testing.T) {
	_, err := TokenizeFile(filepath.Join(t.TempDir(), "absent.txt"), 16)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestIsWordByte(t *testing.T) {
	for _, b := range []byte("azAZ09#~&@$_-") {
		if !IsWordByte(b) {
			t.Fatalf("expected %q to be a word byte", b)
		}
	}
	for _, b := range []byte(" .:/\\!%*()+=[]{}'\"<>,?\t\n") {
		if IsWordByte(b) {
			t.Fatalf("expected %q to be a separator", b)
		}
	}
}
