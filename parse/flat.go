package parse

import (
	"strings"

	"github.com/ocfl/ocfl"
)

// Flat extracts the flat view: the phone directory table followed by one
// entry per distinct phone number found under each level-3 heading.
//
// Sections never repeat a (name, phone) pair already emitted, so an office
// listed in the phone table is not repeated by its own section. Sections
// without phone numbers contribute nothing.
func Flat(text string) []ocfl.Entry {
	if text == "" {
		return nil
	}
	lines := splitLines(text)

	var entries []ocfl.Entry
	seen := make(map[entryKey]bool)
	add := func(e ocfl.Entry) {
		k := entryKey{name: e.Name, phone: e.Phone}
		if seen[k] {
			return
		}
		seen[k] = true
		entries = append(entries, e)
	}

	for _, e := range phoneDirectoryEntries(lines) {
		// Table rows are kept as written, duplicates included.
		seen[entryKey{name: e.Name, phone: e.Phone}] = true
		entries = append(entries, e)
	}

	for _, b := range entryBlocks(lines) {
		phones := ocfl.FindPhones(b.body)
		if len(phones) == 0 {
			continue
		}
		email := findEmail(b.body)
		url := findURL(b.body)
		for _, phone := range phones {
			add(ocfl.Entry{
				Name:  b.title,
				Phone: phone,
				Email: email,
				URL:   url,
			})
		}
	}

	return entries
}

type entryKey struct {
	name  string
	phone string
}

// block is the text under a level-3 heading.
type block struct {
	title string
	body  string
}

// entryBlocks splits lines into level-3 blocks. A block ends at the next
// heading of level 3 or above, or at a "---" rule. Deeper headings belong
// to the block body.
func entryBlocks(lines []string) []block {
	var blocks []block
	var cur *block
	var body []string

	flush := func() {
		if cur != nil {
			cur.body = strings.Join(body, "\n")
			blocks = append(blocks, *cur)
		}
		cur, body = nil, nil
	}

	for _, line := range lines {
		if level, text, ok := heading(line); ok && level <= 3 {
			flush()
			if level == 3 {
				if title := stripBold(text); title != "" {
					cur = &block{title: title}
				}
			}
			continue
		}
		if isRule(line) {
			flush()
			continue
		}
		if cur != nil {
			body = append(body, line)
		}
	}
	flush()

	return blocks
}

// phoneDirectoryEntries returns the data rows of the phone directory table
// as {name, phone} entries. Rows with fewer than two cells or an empty
// name are skipped.
func phoneDirectoryEntries(lines []string) []ocfl.Entry {
	section, ok := sectionBlock(lines, PhoneDirectoryHeading)
	if !ok {
		return nil
	}

	var entries []ocfl.Entry
	for i := range section {
		cells, ok := dataCells(section, i)
		if !ok || len(cells) < 2 || cells[0] == "" {
			continue
		}
		entries = append(entries, ocfl.Entry{
			Name:  cells[0],
			Phone: ocfl.NormalizePhone(cells[1]),
		})
	}
	return entries
}
