package extract

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"wordlister/internal/config"
	"wordlister/internal/logging"
	"wordlister/internal/textutil"
)

// Issue records a per-entry failure that did not stop the walk.
type Issue struct {
	Path string
	Err  error
}

func (i Issue) Error() string {
	return fmt.Sprintf("%s: %v", i.Path, i.Err)
}

func (i Issue) Unwrap() error { return i.Err }

// Result is the outcome of one extraction run.
type Result struct {
	Words  textutil.WordSet
	Issues []Issue
}

// Extractor derives candidate words from a directory tree or a single file.
type Extractor struct {
	opts   config.ExtractOptions
	logger *slog.Logger
}

// New validates opts and returns an extractor bound to them.
func New(opts config.ExtractOptions, logger *slog.Logger) (*Extractor, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	return &Extractor{
		opts:   opts,
		logger: logging.NewComponentLogger(logger, "extract"),
	}, nil
}

// Extract walks root and returns the words it yields. Each call starts from
// empty collections. Failures on individual entries are collected in
// Result.Issues and logged; they never abort the walk.
//
// A regular file given as root is tokenized directly, without path splitting.
func (e *Extractor) Extract(root string) Result {
	result := Result{Words: textutil.NewWordSet()}

	info, err := os.Stat(root)
	if err != nil {
		result.Issues = append(result.Issues, e.report(root, err))
		return result
	}

	if !info.IsDir() {
		words, err := e.readContent(root)
		if err != nil {
			result.Issues = append(result.Issues, e.report(root, err))
			return result
		}
		result.Words.Merge(words)
		return result
	}

	found := e.walk(root, 0)
	result.Issues = found.issues
	result.Words.Merge(found.words)
	for _, path := range found.paths.Sorted() {
		for _, word := range PathWords(path, e.opts) {
			result.Words.Add(word)
		}
	}

	e.logger.Debug("extraction finished",
		logging.String(logging.FieldPath, root),
		logging.Int("path_sources", found.paths.Len()),
		logging.Int("words", result.Words.Len()),
		logging.Int("issues", len(result.Issues)),
	)
	return result
}

// collected holds what one directory level produced. walk returns a fresh
// value per call and the caller merges it.
type collected struct {
	paths  textutil.WordSet
	words  textutil.WordSet
	issues []Issue
}

func newCollected() collected {
	return collected{paths: textutil.NewWordSet(), words: textutil.NewWordSet()}
}

func (c *collected) merge(other collected) {
	c.paths.Merge(other.paths)
	c.words.Merge(other.words)
	c.issues = append(c.issues, other.issues...)
}

func (e *Extractor) walk(dir string, depth int) collected {
	out := newCollected()

	entries, err := os.ReadDir(dir)
	if err != nil {
		out.issues = append(out.issues, e.report(dir, err))
		return out
	}

	for _, entry := range entries {
		if !e.opts.IncludeHidden && strings.HasPrefix(entry.Name(), ".") {
			continue
		}
		path := filepath.Join(dir, entry.Name())

		// Stat follows symlinks so linked directories and files are treated
		// like their targets.
		info, err := os.Stat(path)
		if err != nil {
			out.issues = append(out.issues, e.report(path, err))
			out.paths.Add(path)
			continue
		}

		switch {
		case info.IsDir() && depth < e.opts.MaxDepth:
			out.merge(e.walk(path, depth+1))
		case info.Mode().IsRegular() && e.readsContent(path):
			words, err := e.readContent(path)
			if err != nil {
				out.issues = append(out.issues, e.report(path, err))
				continue
			}
			out.words.Merge(words)
		default:
			out.paths.Add(path)
		}
	}
	return out
}

func (e *Extractor) readsContent(path string) bool {
	return e.opts.RecurseIntoFiles && e.opts.ExtensionFilter != "" && strings.Contains(path, e.opts.ExtensionFilter)
}

// readContent tokenizes a file. Undecodable files yield an empty set and no
// error.
func (e *Extractor) readContent(path string) (textutil.WordSet, error) {
	words, err := textutil.TokenizeFile(path, e.opts.MaxLength)
	if errors.Is(err, textutil.ErrUndecodable) {
		e.logger.Debug("skipping undecodable file", logging.String(logging.FieldPath, path))
		return textutil.NewWordSet(), nil
	}
	return words, err
}

func (e *Extractor) report(path string, err error) Issue {
	hint := "check that the path exists and is readable"
	if errors.Is(err, os.ErrPermission) {
		hint = "check file permissions"
	}
	logging.WarnWithContext(e.logger, "entry skipped", "extract_entry_failed",
		logging.String(logging.FieldPath, path),
		logging.Error(err),
		logging.String(logging.FieldErrorHint, hint),
		logging.String(logging.FieldImpact, "words from this entry are missing from the result"),
	)
	return Issue{Path: path, Err: err}
}

// PathWords splits path on the path separator and returns the segments that
// qualify as words: "." and ".." and empty segments are dropped, extensions
// are cut at the first dot unless opts.KeepExtension is set, and segments
// longer than opts.MaxLength are discarded.
func PathWords(path string, opts config.ExtractOptions) []string {
	segments := strings.Split(path, string(filepath.Separator))
	words := make([]string, 0, len(segments))
	for _, segment := range segments {
		if segment == "" || segment == "." || segment == ".." {
			continue
		}
		if !opts.KeepExtension {
			if i := strings.IndexByte(segment, '.'); i >= 0 {
				segment = segment[:i]
			}
		}
		if segment == "" || utf8.RuneCountInString(segment) > opts.MaxLength {
			continue
		}
		words = append(words, segment)
	}
	return words
}
