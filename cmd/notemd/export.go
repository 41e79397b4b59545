package main

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	gq "github.com/PuerkitoBio/goquery"
	"github.com/notemd/notemd"
	"github.com/notemd/notemd/fs"
	"golang.org/x/net/html"
	"golang.org/x/sync/errgroup"
)

// outcome is the result of converting one source.
type outcome struct {
	markdown string
	path     string
	err      error
}

// Run executes the export command. Sources convert concurrently; output is
// reported in source order once all conversions finish.
func (c *ExportCmd) Run(deps *Dependencies) error {
	engine, ok := deps.Engines[c.Engine]
	if !ok {
		return fmt.Errorf("unknown engine %q", c.Engine)
	}

	var writer notemd.ResultWriter
	if !c.Stdout {
		writer = fs.NewWriter(c.Out)
	}

	outcomes := make([]outcome, len(c.Sources))

	g, ctx := errgroup.WithContext(deps.Ctx)
	g.SetLimit(c.Concurrency)
	for i, source := range c.Sources {
		g.Go(func() error {
			outcomes[i] = c.convert(ctx, deps, engine, writer, source)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	failed := 0
	for i, o := range outcomes {
		if o.err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "skip %s: %s\n", c.Sources[i], notemd.ErrorMessage(o.err))
			continue
		}
		if c.Stdout {
			fmt.Fprintln(deps.Stdout, o.markdown)
		} else {
			fmt.Fprintf(deps.Stdout, "wrote %s\n", o.path)
		}
	}

	if failed == len(c.Sources) {
		return fmt.Errorf("no sources converted")
	}
	return nil
}

// convert loads one source, runs the engine and stores the result.
func (c *ExportCmd) convert(ctx context.Context, deps *Dependencies, engine notemd.Extractor, writer notemd.ResultWriter, source string) outcome {
	page, err := c.loadPage(ctx, deps, source)
	if err != nil {
		return outcome{err: err}
	}

	res, err := engine.Extract(page)
	if err != nil {
		return outcome{err: err}
	}

	if writer == nil {
		return outcome{markdown: res.Markdown}
	}
	path, err := writer.Write(ctx, res)
	if err != nil {
		return outcome{err: err}
	}
	return outcome{path: path}
}

// loadPage turns a source argument into a Page: URLs are fetched, anything
// else is read as a saved HTML file.
func (c *ExportCmd) loadPage(ctx context.Context, deps *Dependencies, source string) (*notemd.Page, error) {
	var rawHTML, path string

	if isURL(source) {
		if c.Engine == engineNotion && !notemd.SupportedURL(source) {
			return nil, notemd.Errorf(notemd.EINVALID, "unsupported URL %s", source)
		}
		body, err := deps.Fetcher.Fetch(ctx, source)
		if err != nil {
			return nil, err
		}
		rawHTML = body
		if u, err := url.Parse(source); err == nil {
			path = u.Path
		}
	} else {
		b, err := os.ReadFile(source)
		if err != nil {
			return nil, notemd.Errorf(notemd.ENOTFOUND, "read %s: %s", source, err)
		}
		rawHTML = string(b)
		base := filepath.Base(source)
		path = "/" + strings.TrimSuffix(base, filepath.Ext(base))
	}

	root, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, notemd.Errorf(notemd.EINVALID, "parse %s: %s", source, err)
	}

	return &notemd.Page{
		Root:  root,
		Title: documentTitle(root),
		Path:  path,
	}, nil
}

func isURL(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}

// documentTitle reads the metadata title element, if any.
func documentTitle(root *html.Node) string {
	return strings.TrimSpace(gq.NewDocumentFromNode(root).Find("title").First().Text())
}
