package textutil

import "strings"

// UsernamePolicy decides how "name:" prefixes are treated.
//
// With Accept set words are kept as-is. Otherwise everything up to and
// including the first colon is dropped. Inverse leaves every word untouched
// regardless of Accept; no command exposes it yet.
type UsernamePolicy struct {
	Accept  bool
	Inverse bool
}

// Normalize applies the policy to word. The result may be empty ("name:"),
// and callers must discard empty words.
func (p UsernamePolicy) Normalize(word string) string {
	if p.Accept || p.Inverse {
		return word
	}
	if i := strings.IndexByte(word, ':'); i >= 0 {
		return word[i+1:]
	}
	return word
}

// NormalizeUsername strips a "name:" prefix unless acceptUsernames is set.
func NormalizeUsername(word string, acceptUsernames bool) string {
	return UsernamePolicy{Accept: acceptUsernames}.Normalize(word)
}
