package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/ocfl/ocfl"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	phoneStyle  = cellStyle.Foreground(lipgloss.Color("6"))
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	hintStyle   = lipgloss.NewStyle().Faint(true)
	warnStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
)

// renderTable draws rows under headers with a rounded border. Columns
// listed in phoneCols are highlighted.
func renderTable(headers []string, rows [][]string, phoneCols ...int) string {
	highlight := make(map[int]bool, len(phoneCols))
	for _, c := range phoneCols {
		highlight[c] = true
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case highlight[col]:
				return phoneStyle
			default:
				return cellStyle
			}
		}).
		String()
}

// entryTable renders the search result columns.
func entryTable(entries []ocfl.Entry) string {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{e.Name, e.Phone, e.Email, e.URL}
	}
	return renderTable([]string{"Department", "Phone", "Email", "URL"}, rows, 1)
}

// categoryTable renders one category of the full listing.
func categoryTable(c ocfl.Category) string {
	rows := make([][]string, len(c.Entries))
	for i, e := range c.Entries {
		rows[i] = []string{e.Name, e.Phone, e.Email, e.URL, e.Address}
	}
	return renderTable([]string{"Department/Office", "Phone", "Email", "URL", "Address"}, rows, 1)
}

// countTable renders the browse view with a trailing total row.
func countTable(counts ocfl.CategoryCounts) string {
	rows := make([][]string, 0, len(counts)+2)
	for _, c := range counts {
		rows = append(rows, []string{c.Name, fmt.Sprint(c.Count)})
	}
	rows = append(rows, []string{"", ""}, []string{"Total", fmt.Sprint(counts.Total())})
	return renderTable([]string{"Category", "Entries"}, rows)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(v)
}
