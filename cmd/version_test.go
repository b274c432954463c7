package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	require.NoError(t, cmd.Execute())

	output := out.String()
	assert.Contains(t, output, "tplvet version")
	assert.Contains(t, output, "config version\t 1")
	assert.Contains(t, output, "field_errors, non_field_errors, resource_links, static_assets")
}

func TestCheckNames(t *testing.T) {
	assert.Equal(t, []string{"field_errors", "non_field_errors", "resource_links", "static_assets"}, checkNames())
}
