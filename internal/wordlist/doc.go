// Package wordlist owns the persistent word store: a UTF-8 text file with one
// word per line, kept sorted in byte order with no duplicates.
//
// Reads on a missing file behave as an empty list. Appends normalize each word
// through the configured username policy, drop empty results, and then rewrite
// the whole file once as the sorted union of old and new lines. The rewrite goes
// through a temp file and a rename, and an advisory gofrs/flock lock is held
// while it runs. This narrows, but does not remove, the window in which two
// concurrent invocations can lose each other's words.
//
// Truncate deletes the file and reports ErrAlreadyEmpty when it is absent.
package wordlist
