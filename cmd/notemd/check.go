package main

import (
	"fmt"

	"github.com/notemd/notemd"
)

// Run executes the check command.
func (c *CheckCmd) Run(deps *Dependencies) error {
	unsupported := 0
	for _, u := range c.URLs {
		if notemd.SupportedURL(u) {
			fmt.Fprintf(deps.Stdout, "ok\t%s\n", u)
		} else {
			unsupported++
			fmt.Fprintf(deps.Stdout, "unsupported\t%s\n", u)
		}
	}

	if unsupported > 0 {
		return fmt.Errorf("%d of %d URLs unsupported", unsupported, len(c.URLs))
	}
	return nil
}
