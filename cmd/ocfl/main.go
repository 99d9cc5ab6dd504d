package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/ocfl/ocfl"
	"github.com/ocfl/ocfl/cache"
	"github.com/ocfl/ocfl/directory"
	"github.com/ocfl/ocfl/fs"
	"github.com/ocfl/ocfl/goquery"
	ocflhttp "github.com/ocfl/ocfl/http"
	"github.com/ocfl/ocfl/htmltomarkdown"
	"github.com/ocfl/ocfl/ingest"
	"github.com/ocfl/ocfl/readability"
	"github.com/ocfl/ocfl/rod"
	ocflslog "github.com/ocfl/ocfl/slog"
	"github.com/ocfl/ocfl/sqlite"
	"github.com/ocfl/ocfl/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "error: %s\n", errorMessage(err))
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Environment lookup and home directory. Set before calling Run().
	Getenv  func(string) string
	HomeDir string

	// SQLite database opened for the sqlite cache backend.
	DB *sqlite.DB

	// Services for end-to-end testing. When set they replace the
	// implementations built from configuration.
	DirectoryService ocfl.DirectoryService
	Fetcher          ocfl.Fetcher
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	home, _ := os.UserHomeDir()
	return &Main{
		Getenv:  os.Getenv,
		HomeDir: home,
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		err := m.DB.Close()
		m.DB = nil
		return err
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("ocfl"),
		kong.Description("Orange County, FL government directory lookups."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'ocfl --help' to see available commands")
	}

	if cmd := args[0]; cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(rewriteDirectoryArgs(args))
	if err != nil {
		return err
	}

	cfg, err := m.config(cli)
	if err != nil {
		return err
	}
	level, _ := cfg.Level()
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	deps.Logger = logger
	deps.JSON = cli.JSON
	deps.SourcePath = cfg.Directory

	source := fs.NewSource(cfg.Directory)
	c, err := m.newCache(cfg, cfg.Directory, logger)
	if err != nil {
		return err
	}
	defer m.Close()
	deps.Cache = c

	deps.Directory = m.DirectoryService
	if deps.Directory == nil {
		svc := directory.NewService(ocflslog.NewLoggingSourceLoader(source, logger), c)
		deps.Directory = ocflslog.NewLoggingDirectoryService(svc, logger)
	}

	if kongCtx.Command() == "import <url>" {
		importer, err := m.newImporter(cli.Import, cfg, logger)
		if err != nil {
			return err
		}
		defer importer.Fetcher.Close()
		deps.Importer = importer
		if cli.Import.Output != "" {
			deps.SourcePath = cli.Import.Output
		}
	}

	return kongCtx.Run(deps)
}

// config resolves settings and applies the global flags over them.
func (m *Main) config(cli *CLI) (Config, error) {
	cfg, err := LoadConfig(cli.Config, m.Getenv, m.HomeDir)
	if err != nil {
		return Config{}, err
	}
	if cli.SourcePath != "" {
		cfg.Directory = cli.SourcePath
	}
	if cli.CacheDir != "" {
		cfg.CacheDir = cli.CacheDir
	}
	if cli.Verbose {
		cfg.LogLevel = "debug"
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// newCache builds the view cache for the document at sourcePath on the
// configured backend.
func (m *Main) newCache(cfg Config, sourcePath string, logger *slog.Logger) (*cache.Cache, error) {
	ttl, err := cfg.TTL()
	if err != nil {
		return nil, err
	}
	abs, err := filepath.Abs(sourcePath)
	if err != nil {
		abs = sourcePath
	}
	key := cache.Key(abs)

	var store ocfl.ViewStore
	switch cfg.CacheBackend {
	case BackendFile:
		store = fs.NewViewStore(cfg.CacheDir, key)
	case BackendSQLite:
		if m.DB == nil {
			if err := os.MkdirAll(cfg.CacheDir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create cache directory: %w", err)
			}
			path := filepath.Join(cfg.CacheDir, "ocfl.db")
			m.DB = sqlite.NewDB(path)
			if err := m.DB.Open(); err != nil {
				m.DB = nil
				return nil, fmt.Errorf("failed to open cache database at %q: %w", path, err)
			}
		}
		store = sqlite.NewViewStore(m.DB, key)
	}
	if store != nil {
		store = ocflslog.NewLoggingViewStore(store, logger)
	}

	return cache.New(store, cache.WithTTL(ttl)), nil
}

// newImporter wires the fetch, extract and convert pipeline for import.
func (m *Main) newImporter(cmd ImportCmd, cfg Config, logger *slog.Logger) (*ingest.Importer, error) {
	var extractor ocfl.Extractor
	switch {
	case cmd.Selector != "":
		extractor = goquery.NewSelectorExtractor(cmd.Selector)
	case cmd.Extractor == "readability":
		extractor = readability.NewExtractor()
	default:
		extractor = trafilatura.NewExtractor()
	}
	resolver, err := goquery.NewLinkResolver(extractor, cmd.URL)
	if err != nil {
		return nil, err
	}

	output := cfg.Directory
	if cmd.Output != "" {
		output = cmd.Output
	}
	c, err := m.newCache(cfg, output, logger)
	if err != nil {
		return nil, err
	}

	fetcher := m.Fetcher
	switch {
	case fetcher != nil:
	case cmd.Render:
		f, err := rod.NewFetcher()
		if err != nil {
			return nil, fmt.Errorf("failed to start browser (Chrome or Chromium must be installed): %w", err)
		}
		fetcher = f
	default:
		fetcher = ocflhttp.NewFetcher()
	}

	return &ingest.Importer{
		Fetcher:   ocflslog.NewLoggingFetcher(fetcher, logger),
		Extractor: resolver,
		Converter: htmltomarkdown.NewConverter(),
		Writer:    fs.NewSource(output),
		Cache:     c,
	}, nil
}

// errorMessage returns the user-facing text of err: the message of an
// application error, otherwise the error itself.
func errorMessage(err error) string {
	var e *ocfl.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
