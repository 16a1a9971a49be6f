// Package textutil turns raw text into candidate words.
//
// Tokenize splits lines on every byte outside [A-Za-z0-9#~&@$_-] and keeps
// runs no longer than a caller-supplied bound; TokenizeFile applies it to a
// whole file and refuses content that is not valid UTF-8. UsernamePolicy strips
// "name:" prefixes from credential-style entries. WordSet is the accumulator
// shared by both.
package textutil
