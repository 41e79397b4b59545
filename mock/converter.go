package mock

import "github.com/notemd/notemd"

var _ notemd.Converter = (*Converter)(nil)

// Converter is a mock implementation of notemd.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
