package textutil

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// ErrUndecodable marks input that is not valid UTF-8 text.
var ErrUndecodable = errors.New("content is not valid UTF-8 text")

// IsWordByte reports whether b belongs to the token character class
// [A-Za-z0-9#~&@$_-]. Every other byte separates tokens.
func IsWordByte(b byte) bool {
	switch {
	case b >= 'a' && b <= 'z':
		return true
	case b >= 'A' && b <= 'Z':
		return true
	case b >= '0' && b <= '9':
		return true
	}
	switch b {
	case '#', '~', '&', '@', '$', '_', '-':
		return true
	}
	return false
}

// Tokenize adds to set every maximal run of word characters in line whose
// length is between 1 and maxLength. No case folding is applied.
func Tokenize(line string, maxLength int, set WordSet) {
	start := -1
	for i := 0; i <= len(line); i++ {
		if i < len(line) && IsWordByte(line[i]) {
			if start < 0 {
				start = i
			}
			continue
		}
		if start >= 0 {
			if n := i - start; n <= maxLength {
				set.Add(line[start:i])
			}
			start = -1
		}
	}
}

// TokenizeReader tokenizes r line by line into a fresh set. It returns
// ErrUndecodable, and no words, when r is not valid UTF-8.
func TokenizeReader(r io.Reader, maxLength int) (WordSet, error) {
	words := NewWordSet()
	reader := bufio.NewReader(transform.NewReader(r, encoding.UTF8Validator))
	for {
		line, err := reader.ReadString('\n')
		if len(line) > 0 {
			Tokenize(line, maxLength, words)
		}
		if err == nil {
			continue
		}
		if errors.Is(err, io.EOF) {
			return words, nil
		}
		if errors.Is(err, encoding.ErrInvalidUTF8) {
			return nil, ErrUndecodable
		}
		return nil, err
	}
}

// TokenizeFile tokenizes the contents of the file at path. Open and read
// failures are returned wrapped; undecodable content yields ErrUndecodable.
func TokenizeFile(path string, maxLength int) (WordSet, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer file.Close()

	words, err := TokenizeReader(file, maxLength)
	if err != nil {
		if errors.Is(err, ErrUndecodable) {
			return nil, err
		}
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return words, nil
}
