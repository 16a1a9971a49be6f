// Package extract harvests candidate words from the filesystem.
//
// An Extractor walks a directory tree down to a configured depth. Files whose
// path contains the extension filter have their contents tokenized when
// content extraction is enabled; every other entry, and every directory at the
// depth limit, contributes the segments of its path instead. Hidden entries
// are skipped unless requested. Per-entry failures are reported as Issues and
// logged without stopping the walk.
package extract
