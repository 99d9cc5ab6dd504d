// Package search ranks and filters directory entries. Fuzzy ranking
// combines substring, token and set-similarity signals; regex filtering is
// a deliberate narrowing query and is not capped.
package search

import (
	"sort"
	"strings"

	"github.com/ocfl/ocfl"
)

// Scoring constants.
const (
	// MaxResults caps the fuzzy result list.
	MaxResults = 15

	// ExactScore is awarded when the query is a substring of the name.
	// No other signal can reach it.
	ExactScore = 100.0

	// TokenWeight scales the fraction of query words found in the name.
	TokenWeight = 80.0

	// SetWeight scales the token-set similarity of query and name.
	SetWeight = 0.7

	// FieldScore is awarded when the query appears in the phone, email or
	// URL of an entry.
	FieldScore = 80.0

	// MinScore is the exclusive floor for inclusion in the results.
	MinScore = 40.0
)

// Match is an entry with its relevance score.
type Match struct {
	Entry ocfl.Entry `json:"entry"`
	Score float64    `json:"score"`
}

// Fuzzy returns up to MaxResults entries ranked against query, best first.
// Entries with equal scores keep their relative input order.
func Fuzzy(entries []ocfl.Entry, query string) []ocfl.Entry {
	matches := Rank(entries, query)
	if len(matches) == 0 {
		return nil
	}
	out := make([]ocfl.Entry, len(matches))
	for i, m := range matches {
		out[i] = m.Entry
	}
	return out
}

// Rank scores every entry against query and returns the matches scoring
// above MinScore, best first, truncated to MaxResults. A blank query
// matches nothing.
func Rank(entries []ocfl.Entry, query string) []Match {
	if strings.TrimSpace(query) == "" {
		return nil
	}
	q := newQuery(query)

	var matches []Match
	for _, e := range entries {
		if score := q.score(e); score > MinScore {
			matches = append(matches, Match{Entry: e, Score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	if len(matches) > MaxResults {
		matches = matches[:MaxResults]
	}
	return matches
}

// Score returns the relevance of a single entry to query.
func Score(e ocfl.Entry, query string) float64 {
	return newQuery(query).score(e)
}

type query struct {
	text   string
	tokens []string
}

func newQuery(s string) query {
	text := strings.ToLower(s)
	var tokens []string
	seen := make(map[string]bool)
	for _, t := range strings.Fields(text) {
		if !seen[t] {
			seen[t] = true
			tokens = append(tokens, t)
		}
	}
	return query{text: text, tokens: tokens}
}

func (q query) score(e ocfl.Entry) float64 {
	name := strings.ToLower(e.Name)
	if strings.Contains(name, q.text) {
		return ExactScore
	}
	return max(q.tokenScore(name), q.setScore(name), q.fieldScore(e))
}

// tokenScore is the fraction of query words that are a substring of some
// word of the name, scaled to TokenWeight.
func (q query) tokenScore(name string) float64 {
	if len(q.tokens) == 0 {
		return 0
	}
	words := strings.Fields(name)
	var hits int
	for _, t := range q.tokens {
		for _, w := range words {
			if strings.Contains(w, t) {
				hits++
				break
			}
		}
	}
	return float64(hits) / float64(len(q.tokens)) * TokenWeight
}

func (q query) setScore(name string) float64 {
	return float64(TokenSetRatio(q.text, name)) * SetWeight
}

// fieldScore checks phone, email and URL in that order.
func (q query) fieldScore(e ocfl.Entry) float64 {
	for _, f := range []string{e.Phone, e.Email, e.URL} {
		if strings.Contains(strings.ToLower(f), q.text) {
			return FieldScore
		}
	}
	return 0
}
