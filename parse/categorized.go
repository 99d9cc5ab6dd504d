package parse

import (
	"github.com/ocfl/ocfl"
)

// Categorized extracts the categorized view. Categories appear in source
// order; categories that end up without entries are dropped.
//
// The primary scan treats level-2 headings as categories and level-3
// headings as entries, enriching the latest entry from the lines below it.
// Categories the primary scan leaves empty are re-scanned with the line
// strategies in Strategies. The phone directory table is appended last as
// its own category.
func Categorized(text string) []ocfl.Category {
	if text == "" {
		return nil
	}
	lines := splitLines(text)

	acc := newAccumulator()
	for i, line := range lines {
		if level, title, ok := heading(line); ok && level == 2 {
			if ExcludedCategories[title] {
				acc.closeCategory()
			} else {
				acc.openCategory(title)
			}
			continue
		}

		state := acc.state()
		if state == stateNoCategory {
			continue
		}

		if level, title, ok := heading(line); ok && level == 3 {
			acc.appendEntry(ocfl.Entry{Name: stripBold(title)})
			continue
		}

		if acc.currentName() == CommissionersHeading && isTableLine(line) {
			if cells, ok := dataCells(lines, i); ok && len(cells) >= 2 && cells[1] != "" {
				acc.appendEntry(ocfl.Entry{Name: commissionerName(cells[0], cells[1])})
				acc.enrich(line)
			}
			continue
		}

		if state == stateCategoryWithEntries {
			acc.enrich(line)
		}
	}

	categories := acc.categories
	for i := range categories {
		if len(categories[i].Entries) > 0 {
			continue
		}
		section, ok := sectionBlock(lines, categories[i].Name)
		if !ok {
			continue
		}
		categories[i].Entries = ScanLines(section, Strategies)
	}

	if entries := phoneDirectoryEntries(lines); len(entries) > 0 {
		categories = append(categories, ocfl.Category{
			Name:    PhoneDirectoryHeading,
			Entries: entries,
		})
	}

	out := categories[:0]
	for _, c := range categories {
		if len(c.Entries) > 0 {
			out = append(out, c)
		}
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// commissionerName joins a position and its holder, e.g.
// "District 1 — Nicole Wilson".
func commissionerName(position, holder string) string {
	if position == "" {
		return holder
	}
	return position + " — " + holder
}

// scanState is the state of the primary categorized scan.
type scanState int

const (
	// stateNoCategory ignores lines until the next eligible level-2 heading.
	stateNoCategory scanState = iota
	// stateCategoryEmpty accepts entry headings but has nothing to enrich.
	stateCategoryEmpty
	// stateCategoryWithEntries enriches the latest entry from field lines.
	stateCategoryWithEntries
)

// field is a bit set of entry fields that have been assigned.
type field uint8

const (
	fieldPhone field = 1 << iota
	fieldEmail
	fieldURL
	fieldAddress
)

// accumulator builds categories during the primary scan. Each category
// remembers which fields of its latest entry are set; the first value
// found for a field wins.
type accumulator struct {
	categories []ocfl.Category
	filled     []field
	index      map[string]int
	current    int
}

func newAccumulator() *accumulator {
	return &accumulator{
		index:   make(map[string]int),
		current: -1,
	}
}

func (a *accumulator) state() scanState {
	switch {
	case a.current < 0:
		return stateNoCategory
	case len(a.categories[a.current].Entries) == 0:
		return stateCategoryEmpty
	default:
		return stateCategoryWithEntries
	}
}

func (a *accumulator) currentName() string {
	if a.current < 0 {
		return ""
	}
	return a.categories[a.current].Name
}

// openCategory makes name the active category. A heading seen before
// resumes its existing category.
func (a *accumulator) openCategory(name string) {
	if i, ok := a.index[name]; ok {
		a.current = i
		return
	}
	a.index[name] = len(a.categories)
	a.current = len(a.categories)
	a.categories = append(a.categories, ocfl.Category{Name: name})
	a.filled = append(a.filled, 0)
}

func (a *accumulator) closeCategory() {
	a.current = -1
}

func (a *accumulator) appendEntry(e ocfl.Entry) {
	if e.Name == "" || a.current < 0 {
		return
	}
	c := &a.categories[a.current]
	c.Entries = append(c.Entries, e)
	a.filled[a.current] = 0
}

// enrich assigns phone, email, URL and address values found on line to the
// latest entry's unset fields.
func (a *accumulator) enrich(line string) {
	c := &a.categories[a.current]
	e := &c.Entries[len(c.Entries)-1]
	filled := &a.filled[a.current]

	set := func(f field, dst *string, value string) {
		if value == "" || *filled&f != 0 {
			return
		}
		*dst = value
		*filled |= f
	}

	if phone, ok := ocfl.FindPhone(line); ok {
		set(fieldPhone, &e.Phone, phone)
	}
	set(fieldEmail, &e.Email, findEmail(line))
	set(fieldURL, &e.URL, findURL(line))
	set(fieldAddress, &e.Address, findAddress(line))
}
