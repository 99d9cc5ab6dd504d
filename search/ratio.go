package search

import (
	"math"
	"sort"
	"strings"
	"unicode"
)

// Ratio returns the similarity of a and b on a 0-100 scale: twice the
// length of their longest common subsequence over their combined length,
// so only insertions and deletions count as edits.
func Ratio(a, b string) int {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 100
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0
	}
	return int(math.Round(100 * float64(2*lcs(ra, rb)) / float64(total)))
}

// lcs returns the length of the longest common subsequence of a and b.
func lcs(a, b []rune) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				cur[j] = prev[j-1] + 1
			} else {
				cur[j] = max(prev[j], cur[j-1])
			}
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

// TokenSetRatio compares a and b as sets of words. Word order is ignored
// and a string whose words are a subset of the other's scores 100.
//
// Both inputs are lowercased and every non-alphanumeric rune is treated as
// a word separator. The result is the best Ratio among the shared words
// alone and the shared words followed by each side's remaining words.
func TokenSetRatio(a, b string) int {
	ta, tb := wordSet(a), wordSet(b)
	if len(ta) == 0 || len(tb) == 0 {
		return 0
	}

	var common, onlyA, onlyB []string
	for w := range ta {
		if tb[w] {
			common = append(common, w)
		} else {
			onlyA = append(onlyA, w)
		}
	}
	for w := range tb {
		if !ta[w] {
			onlyB = append(onlyB, w)
		}
	}
	sort.Strings(common)
	sort.Strings(onlyA)
	sort.Strings(onlyB)

	sect := strings.Join(common, " ")
	combinedA := strings.TrimSpace(sect + " " + strings.Join(onlyA, " "))
	combinedB := strings.TrimSpace(sect + " " + strings.Join(onlyB, " "))

	best := Ratio(combinedA, combinedB)
	if sect != "" {
		best = max(best, Ratio(sect, combinedA), Ratio(sect, combinedB))
	}
	return best
}

// wordSet lowercases s and splits it into distinct alphanumeric words.
func wordSet(s string) map[string]bool {
	words := strings.FieldsFunc(strings.ToLower(s), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	set := make(map[string]bool, len(words))
	for _, w := range words {
		set[w] = true
	}
	return set
}
