package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_RejectsInvalidPort(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"--env-file", "", "--port", "0"})
	cmd.SilenceErrors = true

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PORT")
}

func TestRootCmd_Flags(t *testing.T) {
	cmd := newRootCmd()
	assert.NotNil(t, cmd.Flags().Lookup("env-file"))
	assert.NotNil(t, cmd.Flags().ShorthandLookup("p"))
}
