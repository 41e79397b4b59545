package mock

import (
	"context"

	"github.com/notemd/notemd"
)

var _ notemd.ResultWriter = (*ResultWriter)(nil)

// ResultWriter is a mock implementation of notemd.ResultWriter.
type ResultWriter struct {
	WriteFn func(ctx context.Context, res *notemd.ExtractResult) (string, error)
}

func (w *ResultWriter) Write(ctx context.Context, res *notemd.ExtractResult) (string, error) {
	return w.WriteFn(ctx, res)
}
