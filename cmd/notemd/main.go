package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/notemd/notemd"
	"github.com/notemd/notemd/douceur"
	ngoquery "github.com/notemd/notemd/goquery"
	"github.com/notemd/notemd/htmltomarkdown"
	notemdhttp "github.com/notemd/notemd/http"
	notemdslog "github.com/notemd/notemd/slog"
	"github.com/notemd/notemd/trafilatura"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// fetchRateLimit caps requests per second against published pages.
const fetchRateLimit = 2.0

// Main represents the program.
type Main struct{}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{}
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
		kong.Name("notemd"),
		kong.Description("Convert captured Notion pages to Markdown."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'notemd --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Export.Verbose {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	if cmd == "export" {
		fetcher := notemdhttp.NewFetcher(notemdhttp.WithRateLimit(fetchRateLimit))
		defer fetcher.Close()
		deps.Fetcher = notemdslog.NewLoggingFetcher(fetcher, logger)

		deps.Engines = map[string]notemd.Extractor{
			engineNotion: notemdslog.NewLoggingExtractor(
				ngoquery.NewExtractor(douceur.NewSource()), logger),
			engineArticle: notemdslog.NewLoggingExtractor(
				trafilatura.NewExtractor(htmltomarkdown.NewConverter()), logger),
		}
	}

	return kongCtx.Run(deps)
}
