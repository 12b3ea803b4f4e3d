package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/killallgit/readwise-api/api/version"
)

func TestVersionCommand(t *testing.T) {
	t.Cleanup(func() { _ = versionCmd.Flags().Set("short", "false") })

	tests := []struct {
		name     string
		args     []string
		contains []string
		absent   []string
	}{
		{
			name:     "version command shows version info",
			args:     []string{"version"},
			contains: []string{"Readwise Highlights API", "Version:      v" + Version, "Git Commit:   " + GitCommit},
		},
		{
			name:     "version command with --short flag",
			args:     []string{"version", "--short"},
			contains: []string{"v" + Version},
			absent:   []string{"Git Commit"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := NewRootCmd()
			buf := new(bytes.Buffer)
			cmd.SetOut(buf)
			cmd.SetErr(buf)
			cmd.SetArgs(tt.args)

			require.NoError(t, cmd.Execute())
			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.absent {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestVersionVariables(t *testing.T) {
	assert.NotEmpty(t, Version)
	assert.NotEmpty(t, GoVersion)
	assert.NotEmpty(t, OS)
	assert.NotEmpty(t, Arch)
	assert.Equal(t, Version, version.Version, "HTTP endpoint reports the CLI build")
}
