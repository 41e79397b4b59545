package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/notemd/notemd"
)

// Extraction engine names accepted by the export command.
const (
	engineNotion  = "notion"
	engineArticle = "article"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Logger  *slog.Logger
	Fetcher notemd.Fetcher
	Engines map[string]notemd.Extractor
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Export ExportCmd `cmd:"" help:"Convert captured pages or published URLs to Markdown"`
	Check  CheckCmd  `cmd:"" help:"Check whether URLs point at supported pages"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Sources     []string `arg:"" help:"Saved HTML files or page URLs"`
	Out         string   `short:"o" default:"." help:"Output directory"`
	Stdout      bool     `help:"Print Markdown to stdout instead of writing files"`
	Engine      string   `short:"e" enum:"notion,article" default:"notion" help:"Extraction engine (notion, article)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent conversion limit"`
	Verbose     bool     `short:"v" help:"Log progress to stderr"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	URLs []string `arg:"" help:"URLs to check"`
}
