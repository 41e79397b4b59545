// Package slog provides logging decorators for the core interfaces.
package slog

import (
	"log/slog"
	"time"

	"github.com/notemd/notemd"
)

// Ensure LoggingExtractor implements notemd.Extractor.
var _ notemd.Extractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps an Extractor with structured logging of each
// extraction's outcome and duration.
type LoggingExtractor struct {
	next   notemd.Extractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next notemd.Extractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the result.
func (e *LoggingExtractor) Extract(page *notemd.Page) (*notemd.ExtractResult, error) {
	begin := time.Now()
	res, err := e.next.Extract(page)
	if err != nil {
		e.logger.Error("extraction failed",
			"code", notemd.ErrorCode(err),
			"error", notemd.ErrorMessage(err),
			"duration", time.Since(begin),
		)
		return nil, err
	}

	e.logger.Info("extraction",
		"title", res.Title,
		"markdown_bytes", len(res.Markdown),
		"duration", time.Since(begin),
	)
	return res, nil
}
