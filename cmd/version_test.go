package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersion(t *testing.T) {
	var buf bytes.Buffer
	root := RootCmd()
	root.SetOut(&buf)
	root.SetArgs([]string{"version"})

	require.NoError(t, root.Execute())

	out := buf.String()
	assert.Contains(t, out, "Build Tag:")
	assert.Contains(t, out, "Go Version:")
	assert.Contains(t, out, "Platform:")
}
