package parse

import (
	"regexp"

	"github.com/ocfl/ocfl"
)

// Strategy extracts an entry from lines[i] of a category that has no entry
// headings. It reports false if the line does not follow its convention.
type Strategy func(lines []string, i int) (ocfl.Entry, bool)

// Strategies is the fixed order in which bullet-style categories are
// re-scanned: the first strategy to match a line wins.
var Strategies = []Strategy{
	LinkStrategy,
	TableStrategy,
	BulletStrategy,
}

var (
	linkRe   = regexp.MustCompile(`^[-*]\s+\[(.+?)\]\((.+?)\)`)
	bulletRe = regexp.MustCompile(`^[-*]\s+\*?\*?(.+?)(?:\*\*|\s*[—–-]\s)`)
)

// ScanLines applies strategies to each line in order and collects one entry
// per matching line.
func ScanLines(lines []string, strategies []Strategy) []ocfl.Entry {
	var entries []ocfl.Entry
	for i := range lines {
		for _, s := range strategies {
			if e, ok := s(lines, i); ok {
				entries = append(entries, e)
				break
			}
		}
	}
	return entries
}

// LinkStrategy matches a Markdown link bullet, "- [Name](URL)", with an
// optional phone number elsewhere on the line.
func LinkStrategy(lines []string, i int) (ocfl.Entry, bool) {
	m := linkRe.FindStringSubmatch(lines[i])
	if m == nil {
		return ocfl.Entry{}, false
	}
	name := stripBold(m[1])
	if name == "" {
		return ocfl.Entry{}, false
	}
	phone, _ := ocfl.FindPhone(lines[i])
	return ocfl.Entry{Name: name, Phone: phone, URL: m[2]}, true
}

// TableStrategy matches a table data row, naming the entry after its first
// cell. Phone and URL are taken from anywhere on the row.
func TableStrategy(lines []string, i int) (ocfl.Entry, bool) {
	cells, ok := dataCells(lines, i)
	if !ok || len(cells) == 0 || cells[0] == "" {
		return ocfl.Entry{}, false
	}
	phone, _ := ocfl.FindPhone(lines[i])
	return ocfl.Entry{Name: cells[0], Phone: phone, URL: findURL(lines[i])}, true
}

// BulletStrategy matches "- **Name** — details" and "* Name - details".
func BulletStrategy(lines []string, i int) (ocfl.Entry, bool) {
	m := bulletRe.FindStringSubmatch(lines[i])
	if m == nil {
		return ocfl.Entry{}, false
	}
	name := stripBold(m[1])
	if name == "" {
		return ocfl.Entry{}, false
	}
	phone, _ := ocfl.FindPhone(lines[i])
	return ocfl.Entry{Name: name, Phone: phone, URL: findURL(lines[i])}, true
}
