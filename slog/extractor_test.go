package slog_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/notemd/notemd"
	"github.com/notemd/notemd/mock"
	notemdslog "github.com/notemd/notemd/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs successful extraction with title and size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(page *notemd.Page) (*notemd.ExtractResult, error) {
				return &notemd.ExtractResult{Title: "My-Page", Markdown: "# My Page"}, nil
			},
		}

		res, err := notemdslog.NewLoggingExtractor(inner, logger).Extract(&notemd.Page{})

		require.NoError(t, err)
		assert.Equal(t, "My-Page", res.Title)
		output := buf.String()
		assert.Contains(t, output, "extraction")
		assert.Contains(t, output, "title=My-Page")
		assert.Contains(t, output, "markdown_bytes=9")
		assert.Contains(t, output, "duration=")
	})

	t.Run("logs failures with the error code", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(page *notemd.Page) (*notemd.ExtractResult, error) {
				return nil, notemd.Errorf(notemd.ENOCONTENT, "no content found")
			},
		}

		_, err := notemdslog.NewLoggingExtractor(inner, logger).Extract(&notemd.Page{})

		require.Error(t, err)
		assert.Equal(t, notemd.ENOCONTENT, notemd.ErrorCode(err))
		output := buf.String()
		assert.Contains(t, output, "extraction failed")
		assert.Contains(t, output, "code=no_content")
	})
}
