package main

import (
	"testing"

	"github.com/alecthomas/kong"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestParser(t *testing.T, cmd *mainCmd) *kong.Kong {
	parser, err := kong.New(cmd,
		kong.Name("git-mergepr"),
		kong.Vars{"nonInteractive": "true"},
		kong.Exit(func(int) {}),
	)
	require.NoError(t, err)
	return parser
}

func TestMainCmdFlags(t *testing.T) {
	t.Run("LongForms", func(t *testing.T) {
		var cmd mainCmd
		_, err := newTestParser(t, &cmd).Parse([]string{
			"--target-branch", "main",
			"--remote", "upstream",
			"--message", "Add the feature",
			"--assume-yes",
		})
		require.NoError(t, err)

		assert.Equal(t, "main", cmd.Target)
		assert.Equal(t, "upstream", cmd.Remote)
		assert.Equal(t, "Add the feature", cmd.Message)
		assert.True(t, cmd.AssumeYes)
	})

	t.Run("ShortForms", func(t *testing.T) {
		var cmd mainCmd
		_, err := newTestParser(t, &cmd).Parse([]string{
			"-t", "main", "-r", "upstream", "-m", "msg", "-y",
		})
		require.NoError(t, err)

		assert.Equal(t, "main", cmd.Target)
		assert.Equal(t, "upstream", cmd.Remote)
		assert.Equal(t, "msg", cmd.Message)
		assert.True(t, cmd.AssumeYes)
	})

	t.Run("Defaults", func(t *testing.T) {
		var cmd mainCmd
		_, err := newTestParser(t, &cmd).Parse(nil)
		require.NoError(t, err)

		assert.Equal(t, "master", cmd.Target)
		assert.Equal(t, "origin", cmd.Remote)
		assert.Empty(t, cmd.Message)
		assert.False(t, cmd.AssumeYes)
		assert.True(t, cmd.NonInteractive)
	})
}
