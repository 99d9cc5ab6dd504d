package search

import (
	"regexp"

	"github.com/ocfl/ocfl"
)

// Regex returns the entries whose name, phone, email, URL or address match
// pattern, ignoring case, in input order. The result is not capped.
//
// Patterns use RE2 syntax. Returns EINVALID if the pattern does not compile.
func Regex(entries []ocfl.Entry, pattern string) ([]ocfl.Entry, error) {
	// Errors quote the pattern as given, without the case-folding prefix.
	if _, err := regexp.Compile(pattern); err != nil {
		return nil, ocfl.Errorf(ocfl.EINVALID, "invalid pattern: %v", err)
	}
	re := regexp.MustCompile("(?i)" + pattern)

	var out []ocfl.Entry
	for _, e := range entries {
		if re.MatchString(e.SearchText()) {
			out = append(out, e)
		}
	}
	return out, nil
}
