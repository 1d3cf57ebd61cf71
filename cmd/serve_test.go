package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestServe_InvalidTimeout(t *testing.T) {
	t.Chdir(t.TempDir())

	root := RootCmd()
	root.SilenceUsage = true
	root.SilenceErrors = true
	root.SetArgs([]string{"serve", "--timeout", "-1"})

	err := root.Execute()
	require.Error(t, err, "startup with an out-of-bounds timeout must fail")
	assert.Contains(t, err.Error(), "timeout_seconds")
}
