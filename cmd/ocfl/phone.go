package main

import (
	"fmt"
	"strings"

	"github.com/ocfl/ocfl"
)

// phoneLimit is the number of matches printed by the phone command.
const phoneLimit = 10

// Run executes the phone command.
func (c *PhoneCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")
	entries, err := deps.Directory.LookupFlat(deps.Ctx, query)
	if err != nil {
		return err
	}
	if len(entries) > phoneLimit {
		entries = entries[:phoneLimit]
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, nonNil(entries))
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, warnStyle.Render(fmt.Sprintf("No results for '%s'. Try 'ocfl directory %s'.", query, query)))
		return nil
	}

	for _, e := range entries {
		line := titleStyle.Render(e.Name+":") + " " + e.Phone
		if e.Email != "" {
			line += " | " + e.Email
		}
		fmt.Fprintln(deps.Stdout, line)
	}
	return nil
}

func nonNil(entries []ocfl.Entry) []ocfl.Entry {
	if entries == nil {
		return []ocfl.Entry{}
	}
	return entries
}
