package main

import (
	"fmt"
	"strings"

	"github.com/ocfl/ocfl"
	"github.com/ocfl/ocfl/directory"
)

// directoryCommands are the real subcommands of "directory"; any other
// first argument is treated as a search query.
var directoryCommands = map[string]bool{
	"browse": true,
	"list":   true,
	"search": true,
	"regex":  true,
}

// Run executes the browse command.
func (c *BrowseCmd) Run(deps *Dependencies) error {
	counts, err := deps.Directory.BrowseCategories(deps.Ctx)
	if err != nil {
		return err
	}

	if deps.JSON {
		if counts == nil {
			counts = ocfl.CategoryCounts{}
		}
		return writeJSON(deps.Stdout, counts)
	}

	if len(counts) == 0 {
		fmt.Fprintln(deps.Stdout, warnStyle.Render("No directory data available."))
		return nil
	}

	fmt.Fprintln(deps.Stdout, titleStyle.Render("Orange County Government Directory"))
	fmt.Fprintln(deps.Stdout, countTable(counts))
	fmt.Fprintln(deps.Stdout)
	fmt.Fprintln(deps.Stdout, hintStyle.Render("Commands: ocfl directory list | ocfl directory search <query> | ocfl directory <query>"))
	return nil
}

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	var categories []ocfl.Category
	if name := strings.Join(c.Category, " "); name != "" {
		category, err := deps.Directory.FindCategory(deps.Ctx, name)
		if err != nil {
			return err
		}
		categories = []ocfl.Category{*category}
	} else {
		var err error
		if categories, err = deps.Directory.ListAll(deps.Ctx); err != nil {
			return err
		}
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, ocfl.CategoryList(categories))
	}

	if len(categories) == 0 {
		fmt.Fprintln(deps.Stdout, warnStyle.Render("No directory data available."))
		return nil
	}

	for _, category := range categories {
		fmt.Fprintln(deps.Stdout, titleStyle.Render(category.Name))
		fmt.Fprintln(deps.Stdout, categoryTable(category))
		fmt.Fprintln(deps.Stdout)
	}
	return nil
}

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	query := strings.Join(c.Query, " ")
	entries, err := deps.Directory.SearchFuzzy(deps.Ctx, query)
	if err != nil {
		return err
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, nonNil(entries))
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, warnStyle.Render(fmt.Sprintf("No results for '%s'.", query)))
		fmt.Fprintf(deps.Stdout, "General Customer Service: %s\n", directory.CustomerService.Phone)
		return nil
	}

	fmt.Fprintln(deps.Stdout, titleStyle.Render(fmt.Sprintf("Directory: '%s'", query)))
	fmt.Fprintln(deps.Stdout, entryTable(entries))
	return nil
}

// Run executes the regex command.
func (c *RegexCmd) Run(deps *Dependencies) error {
	entries, err := deps.Directory.SearchRegex(deps.Ctx, c.Pattern)
	if err != nil {
		return err
	}

	if deps.JSON {
		return writeJSON(deps.Stdout, nonNil(entries))
	}

	if len(entries) == 0 {
		fmt.Fprintln(deps.Stdout, warnStyle.Render(fmt.Sprintf("No results for regex '%s'.", c.Pattern)))
		return nil
	}

	fmt.Fprintln(deps.Stdout, titleStyle.Render(fmt.Sprintf("Directory regex: '%s' (%d matches)", c.Pattern, len(entries))))
	fmt.Fprintln(deps.Stdout, entryTable(entries))
	return nil
}

// rewriteDirectoryArgs turns "directory <words...>" into
// "directory search <words...>" when the first word is not a subcommand.
// Flags between "directory" and the first word are skipped.
func rewriteDirectoryArgs(args []string) []string {
	i := commandIndex(args)
	if i < 0 || args[i] != "directory" {
		return args
	}

	for j := i + 1; j < len(args); j++ {
		a := args[j]
		switch {
		case a == "--help" || a == "-h":
			return args
		case a == "--":
			if j+1 < len(args) {
				return insertArg(args, j, "search")
			}
			return args
		case valueFlags[a]:
			j++
		case strings.HasPrefix(a, "-"):
			continue
		case directoryCommands[a]:
			return args
		default:
			return insertArg(args, j, "search")
		}
	}
	return args
}

// insertArg returns a copy of args with arg inserted at index i.
func insertArg(args []string, i int, arg string) []string {
	out := make([]string, 0, len(args)+1)
	out = append(out, args[:i]...)
	out = append(out, arg)
	return append(out, args[i:]...)
}

// valueFlags are the global flags that consume the following argument
// when given without "=".
var valueFlags = map[string]bool{
	"--directory": true,
	"--cache-dir": true,
	"--config":    true,
}

// commandIndex returns the index of the first positional argument, or -1.
func commandIndex(args []string) int {
	for i := 0; i < len(args); i++ {
		a := args[i]
		if valueFlags[a] {
			i++
			continue
		}
		if !strings.HasPrefix(a, "-") {
			return i
		}
	}
	return -1
}
