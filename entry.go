package ocfl

import (
	"bytes"
	"encoding/json"
)

// Entry represents a single directory listing: a department, office or
// official. Entries in the flat view never carry an Address.
type Entry struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email,omitempty"`
	URL     string `json:"url,omitempty"`
	Address string `json:"address,omitempty"`
}

// Validate returns an error if the entry contains invalid fields.
func (e *Entry) Validate() error {
	if e.Name == "" {
		return Errorf(EINVALID, "entry name required")
	}
	return nil
}

// SearchText returns the text a pattern query is matched against.
// Missing fields contribute an empty string.
func (e *Entry) SearchText() string {
	return e.Name + " " + e.Phone + " " + e.Email + " " + e.URL + " " + e.Address
}

// Category groups entries under a top-level heading of the directory.
// Entries keep the order in which they appear in the source document.
type Category struct {
	Name    string  `json:"name"`
	Entries []Entry `json:"entries"`
}

// CategoryCount is a browse row: a category and the number of its entries.
type CategoryCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// CategoryList renders categories as a single JSON object keyed by
// category name, in source order.
type CategoryList []Category

// MarshalJSON implements json.Marshaler.
func (l CategoryList) MarshalJSON() ([]byte, error) {
	keys := make([]string, len(l))
	values := make([]any, len(l))
	for i, c := range l {
		keys[i] = c.Name
		entries := c.Entries
		if entries == nil {
			entries = []Entry{}
		}
		values[i] = entries
	}
	return marshalOrdered(keys, values)
}

// CategoryCounts renders browse rows as a single JSON object mapping
// category name to entry count, in source order.
type CategoryCounts []CategoryCount

// MarshalJSON implements json.Marshaler.
func (l CategoryCounts) MarshalJSON() ([]byte, error) {
	keys := make([]string, len(l))
	values := make([]any, len(l))
	for i, c := range l {
		keys[i] = c.Name
		values[i] = c.Count
	}
	return marshalOrdered(keys, values)
}

// Total returns the sum of all counts.
func (l CategoryCounts) Total() int {
	var n int
	for _, c := range l {
		n += c.Count
	}
	return n
}

// CountCategories summarizes categories for browsing.
func CountCategories(categories []Category) CategoryCounts {
	counts := make(CategoryCounts, 0, len(categories))
	for _, c := range categories {
		counts = append(counts, CategoryCount{Name: c.Name, Count: len(c.Entries)})
	}
	return counts
}

// marshalOrdered encodes parallel key/value slices as a JSON object,
// preserving key order. Category names often contain "&", so HTML
// escaping is off.
func marshalOrdered(keys []string, values []any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, k := range keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(k); err != nil {
			return nil, err
		}
		trimNewline(&buf)
		buf.WriteByte(':')
		if err := enc.Encode(values[i]); err != nil {
			return nil, err
		}
		trimNewline(&buf)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// trimNewline drops the newline json.Encoder appends after each value.
func trimNewline(buf *bytes.Buffer) {
	if n := buf.Len(); n > 0 && buf.Bytes()[n-1] == '\n' {
		buf.Truncate(n - 1)
	}
}
