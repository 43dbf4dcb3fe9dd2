package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommand_RegistersEverySubcommand(t *testing.T) {
	want := []string{
		"iob", "insulin-effect", "carb-effect", "cob", "momentum", "compose", "glucose",
	}
	got := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		got[c.Name()] = true
	}
	for _, name := range want {
		assert.True(t, got[name], "expected subcommand %q to be registered", name)
	}
}

func TestRootCommand_DefaultLogLevel(t *testing.T) {
	assert.Equal(t, "info", logLevel)
}
