// Package parse extracts directory entries from the Markdown directory
// document. The document mixes three authoring conventions (entry
// sub-headings, pipe tables and bullet lists), so no extractor assumes a
// category uses any single one of them.
package parse

import (
	"regexp"
	"strings"
)

// Well-known level-2 headings.
const (
	// PhoneDirectoryHeading introduces the department phone table.
	PhoneDirectoryHeading = "Complete Phone Directory"

	// CommissionersHeading is the one category whose table rows are entries.
	CommissionersHeading = "Board of County Commissioners"
)

// ExcludedCategories are level-2 headings that never become categories in
// the primary scan.
var ExcludedCategories = map[string]bool{
	"Table of Contents":     true,
	"Overview & Main Sites": true,
	PhoneDirectoryHeading:   true,
}

var (
	emailRe   = regexp.MustCompile(`[\w.+-]+@[\w-]+\.[\w.-]+`)
	urlRe     = regexp.MustCompile(`https?://[^\s)\]|]+`)
	addressRe = regexp.MustCompile(`\*\*Address:\*\*\s*(.+)`)
	cellRe    = regexp.MustCompile(`^:?-+:?$`)
	ruleRe    = regexp.MustCompile(`^(?:-\s*){3,}$`)
)

// splitLines splits text into lines, tolerating CRLF line endings.
func splitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// heading reports whether line is an ATX heading and returns its level and
// trimmed text. A heading needs at least one space after the hashes and a
// non-empty title.
func heading(line string) (level int, text string, ok bool) {
	for level < len(line) && line[level] == '#' {
		level++
	}
	if level == 0 || level > 6 || level >= len(line) || line[level] != ' ' {
		return 0, "", false
	}
	text = strings.TrimSpace(line[level:])
	if text == "" {
		return 0, "", false
	}
	return level, text, true
}

// isRule reports whether line is a thematic break ("---").
func isRule(line string) bool {
	return ruleRe.MatchString(strings.TrimSpace(line))
}

// isTableLine reports whether line is any pipe-table line.
func isTableLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "|")
}

// splitCells splits a pipe-table line into trimmed cells with bold markers
// removed. Leading and trailing pipes are optional.
func splitCells(line string) []string {
	line = strings.TrimSpace(line)
	line = strings.TrimPrefix(line, "|")
	line = strings.TrimSuffix(line, "|")
	parts := strings.Split(line, "|")
	cells := make([]string, len(parts))
	for i, p := range parts {
		cells[i] = stripBold(p)
	}
	return cells
}

// isSeparatorRow reports whether line is a table separator such as
// "|---|:---:|".
func isSeparatorRow(line string) bool {
	if !isTableLine(line) {
		return false
	}
	for _, cell := range splitCells(line) {
		if !cellRe.MatchString(cell) {
			return false
		}
	}
	return true
}

// dataCells returns the cells of lines[i] when it is a table data row:
// a pipe-table line that is neither a separator nor a header (the row
// directly above a separator).
func dataCells(lines []string, i int) ([]string, bool) {
	line := lines[i]
	if !isTableLine(line) || isSeparatorRow(line) {
		return nil, false
	}
	if i+1 < len(lines) && isSeparatorRow(lines[i+1]) {
		return nil, false
	}
	return splitCells(line), true
}

// stripBold trims whitespace and surrounding bold/italic markers.
func stripBold(s string) string {
	return strings.TrimSpace(strings.Trim(strings.TrimSpace(s), "*"))
}

// trimTrailingPunct drops sentence punctuation that regex matches pick up
// at the end of prose, e.g. "waste@ocfl.net.".
func trimTrailingPunct(s string) string {
	return strings.TrimRight(s, ".,;:")
}

// findEmail returns the first email-looking token in s.
func findEmail(s string) string {
	return trimTrailingPunct(emailRe.FindString(s))
}

// findURL returns the first http(s) URL in s.
func findURL(s string) string {
	return trimTrailingPunct(urlRe.FindString(s))
}

// findAddress returns the value of an inline "**Address:**" marker.
func findAddress(s string) string {
	m := addressRe.FindStringSubmatch(s)
	if m == nil {
		return ""
	}
	return strings.TrimSpace(m[1])
}

// sectionBlock returns the lines under the first level-2 heading titled
// name, up to the next heading of level 1 or 2. The bool result is false
// if no such heading exists.
func sectionBlock(lines []string, name string) ([]string, bool) {
	start := -1
	for i, line := range lines {
		level, text, ok := heading(line)
		if !ok || level > 2 {
			continue
		}
		if start >= 0 {
			return lines[start:i], true
		}
		if level == 2 && text == name {
			start = i + 1
		}
	}
	if start < 0 {
		return nil, false
	}
	return lines[start:], true
}
