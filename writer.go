package notemd

import "context"

// ResultWriter persists extraction results.
type ResultWriter interface {
	// Write stores the result and returns the path it was written to.
	Write(ctx context.Context, res *ExtractResult) (path string, err error)
}
