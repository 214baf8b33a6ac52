package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompleter(t *testing.T) {
	t.Parallel()

	t.Run("subcommand list", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		assert.Equal(t, []string{"add", "nested"}, s.root.SubCmdList())
		assert.Empty(t, s.add.SubCmdList())
	})
	t.Run("subcommand get", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		got := s.root.SubCmdGet("nested")
		require.NotNil(t, got)
		assert.Same(t, s.nested, got)
		assert.Nil(t, s.root.SubCmdGet("missing"))
	})
	t.Run("flag list includes help", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		flags := s.add.FlagList()
		assert.Contains(t, flags, "d")
		assert.Contains(t, flags, "dry-run")
		assert.Contains(t, flags, "h")
		assert.Contains(t, flags, "help")
	})
	t.Run("flag predictors", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		// Value options and boolean options get different predictors.
		assert.NotNil(t, s.sub.FlagGet("echo"))
		assert.NotNil(t, s.sub.FlagGet("h"))
		assert.NotEqual(t, s.sub.FlagGet("echo"), s.sub.FlagGet("h"))
	})
	t.Run("args predictor", func(t *testing.T) {
		t.Parallel()
		s := newTestState()

		// add declares parameters, root only has subcommands.
		assert.NotNil(t, s.add.ArgsGet())
		assert.NotNil(t, s.root.ArgsGet())
		assert.NotEqual(t, s.add.ArgsGet(), s.root.ArgsGet())
	})
}
