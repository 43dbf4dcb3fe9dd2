package cmd

import (
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
)

func TestComposeCommand_FlagDefaults(t *testing.T) {
	assert.Nil(t, composeEffectPaths)
	assert.Equal(t, "", composeMomentumPath)
	assert.Equal(t, 15, composeGlucoseMaxAgeMin)
}

func TestComposeCommand_EffectsFlagRequired(t *testing.T) {
	flag := composeCmd.Flags().Lookup("effects")
	assert.NotNil(t, flag)
	assert.Equal(t, []string{"true"}, flag.Annotations[cobra.BashCompOneRequiredFlag])
	glucoseFlag := composeCmd.Flags().Lookup("glucose")
	assert.NotNil(t, glucoseFlag)
	assert.Equal(t, []string{"true"}, glucoseFlag.Annotations[cobra.BashCompOneRequiredFlag])
}
