package main_test

import (
	"bytes"
	"context"
	"testing"

	main "github.com/notemd/notemd/cmd/notemd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("reports supported URLs", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &stdout, Stderr: &bytes.Buffer{}}
		cmd := &main.CheckCmd{URLs: []string{
			"https://www.notion.so/workspace/Page-abc",
			"https://my-team.notion.site/Shared-def",
		}}

		require.NoError(t, cmd.Run(deps))
		assert.Contains(t, stdout.String(), "ok\thttps://www.notion.so/workspace/Page-abc")
		assert.Contains(t, stdout.String(), "ok\thttps://my-team.notion.site/Shared-def")
	})

	t.Run("flags unsupported URLs and errors", func(t *testing.T) {
		t.Parallel()

		var stdout bytes.Buffer
		deps := &main.Dependencies{Ctx: context.Background(), Stdout: &stdout, Stderr: &bytes.Buffer{}}
		cmd := &main.CheckCmd{URLs: []string{
			"https://www.notion.so/Page-abc",
			"https://example.com/elsewhere",
		}}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Contains(t, stdout.String(), "unsupported\thttps://example.com/elsewhere")
	})
}
