package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/ocfl/ocfl"
	"github.com/ocfl/ocfl/cache"
	"github.com/ocfl/ocfl/ingest"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	JSON      bool
	Directory ocfl.DirectoryService
	Cache     *cache.Cache
	Importer  *ingest.Importer

	// SourcePath is the directory document the services read.
	SourcePath string
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	JSON       bool   `name:"json" help:"Print results as JSON"`
	Verbose    bool   `short:"v" help:"Log debug output to stderr"`
	SourcePath string `name:"directory" placeholder:"PATH" help:"Directory document to read (default ./DIRECTORY.md)"`
	CacheDir   string `name:"cache-dir" placeholder:"DIR" help:"Where parsed views are cached (default ~/.ocfl/cache)"`
	Config     string `placeholder:"FILE" help:"Config file (default ~/.ocfl/config.toml)"`

	Phone     PhoneCmd     `cmd:"" help:"Look up a department phone number"`
	Directory DirectoryCmd `cmd:"" help:"Orange County government directory"`
	Import    ImportCmd    `cmd:"" help:"Rebuild the directory document from a county web page"`
	Serve     ServeCmd     `cmd:"" help:"Serve the directory as MCP tools on stdio"`
}

// PhoneCmd is the "phone" subcommand.
type PhoneCmd struct {
	Query []string `arg:"" help:"Department or office, e.g. 311 or \"fire rescue\""`
}

// DirectoryCmd is the "directory" command group. Without a subcommand it
// browses categories; an unknown subcommand is searched for.
type DirectoryCmd struct {
	Browse BrowseCmd `cmd:"" default:"1" help:"Browse categories with entry counts"`
	List   ListCmd   `cmd:"" help:"Full directory listing grouped by category"`
	Search SearchCmd `cmd:"" help:"Search the directory by keyword"`
	Regex  RegexCmd  `cmd:"" help:"Search the directory by regular expression"`
}

// BrowseCmd is the "directory browse" subcommand.
type BrowseCmd struct{}

// ListCmd is the "directory list" subcommand.
type ListCmd struct {
	Category []string `arg:"" optional:"" help:"Only list this category"`
}

// SearchCmd is the "directory search" subcommand.
type SearchCmd struct {
	Query []string `arg:"" help:"Search terms"`
}

// RegexCmd is the "directory regex" subcommand.
type RegexCmd struct {
	Pattern string `arg:"" help:"Case-insensitive regular expression, e.g. \"836-\\d{4}\""`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	URL       string `arg:"" help:"Page listing county departments"`
	Selector  string `short:"s" help:"CSS selector of the main content (default: automatic extraction)"`
	Extractor string `enum:"trafilatura,readability" default:"trafilatura" help:"Automatic extraction algorithm (${enum})"`
	Render    bool   `help:"Render the page in headless Chrome before extracting"`
	Output    string `short:"o" placeholder:"PATH" help:"Where to write the document (default: --directory)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct{}
