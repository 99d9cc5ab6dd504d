package main

import (
	"fmt"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	result, err := deps.Importer.Import(deps.Ctx, c.URL)
	if err != nil {
		return err
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, result)
	}

	title := result.Title
	if title == "" {
		title = c.URL
	}
	fmt.Fprintf(deps.Stdout, "Imported %s\n", titleStyle.Render(title))
	fmt.Fprintf(deps.Stdout, "  %d entries, %d categories, %d bytes written to %s\n",
		result.Entries, result.Categories, result.Bytes, deps.SourcePath)
	return nil
}
