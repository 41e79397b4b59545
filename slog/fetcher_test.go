package slog_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/notemd/notemd"
	"github.com/notemd/notemd/mock"
	notemdslog "github.com/notemd/notemd/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingFetcher_Fetch(t *testing.T) {
	t.Parallel()

	t.Run("logs the URL and body size", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "<html></html>", nil
			},
		}

		body, err := notemdslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://www.notion.so/Page")

		require.NoError(t, err)
		assert.Equal(t, "<html></html>", body)
		output := buf.String()
		assert.Contains(t, output, "url=https://www.notion.so/Page")
		assert.Contains(t, output, "body_bytes=13")
	})

	t.Run("logs failures", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Fetcher{
			FetchFn: func(_ context.Context, url string) (string, error) {
				return "", notemd.Errorf(notemd.ENOTFOUND, "HTTP 404 for %s", url)
			},
		}

		_, err := notemdslog.NewLoggingFetcher(inner, logger).Fetch(context.Background(), "https://www.notion.so/Gone")

		require.Error(t, err)
		assert.Contains(t, buf.String(), "fetch failed")
	})

	t.Run("close delegates", func(t *testing.T) {
		t.Parallel()

		closed := false
		inner := &mock.Fetcher{CloseFn: func() error {
			closed = true
			return nil
		}}
		logger := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

		require.NoError(t, notemdslog.NewLoggingFetcher(inner, logger).Close())
		assert.True(t, closed)
	})
}
