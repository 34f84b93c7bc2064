package commands

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMigrateSubcommands(t *testing.T) {
	cmd := migrateCmd()
	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}
	require.ElementsMatch(t, []string{"up", "down", "version"}, names)
}

func TestMigrateDownRejectsBadSteps(t *testing.T) {
	cmd := migrateCmd()
	down, _, err := cmd.Find([]string{"down"})
	require.NoError(t, err)

	for _, arg := range []string{"x", "0", "-2"} {
		err := down.RunE(down, []string{arg})
		require.Error(t, err, arg)
		require.Contains(t, err.Error(), "steps must be a positive number")
	}
}
