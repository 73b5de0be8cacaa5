package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd(t *testing.T) {
	root := NewRootCmd()

	for _, path := range [][]string{{"serve"}, {"run"}, {"holidays", "import"}} {
		cmd, _, err := root.Find(path)
		require.NoError(t, err)
		assert.Equal(t, path[len(path)-1], cmd.Name())
	}
}

func TestRunCmd_Args(t *testing.T) {
	tests := []struct {
		name string
		args []string
	}{
		{name: "Should reject an unknown run", args: []string{"run", "lunch"}},
		{name: "Should require the run name", args: []string{"run"}},
		{name: "Should require a holiday file", args: []string{"holidays", "import"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			root := NewRootCmd()
			root.SetArgs(tt.args)
			assert.Error(t, root.Execute())
		})
	}
}
