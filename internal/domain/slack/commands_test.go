package slack

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		wantType CommandType
		wantArgs []string
		wantErr  bool
	}{
		{name: "Should default to help", text: "   ", wantType: CmdHelp},
		{name: "Should parse check-in", text: "in", wantType: CmdIn},
		{name: "Should parse a check-in alias", text: "Check-In", wantType: CmdIn},
		{name: "Should parse checkout", text: "out", wantType: CmdOut},
		{name: "Should parse status", text: "status", wantType: CmdStatus},
		{name: "Should parse reminders with its argument", text: "reminders OFF", wantType: CmdReminders, wantArgs: []string{"off"}},
		{name: "Should parse help", text: "help", wantType: CmdHelp},
		{name: "Should reject unknown commands", text: "rotate", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd, err := ParseCommand(tt.text)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantType, cmd.Type)
			assert.Equal(t, tt.wantArgs, cmd.Args)
		})
	}
}

func TestParseToggle(t *testing.T) {
	on, err := ParseToggle([]string{"on"})
	require.NoError(t, err)
	assert.True(t, on)

	off, err := ParseToggle([]string{"disable"})
	require.NoError(t, err)
	assert.False(t, off)

	_, err = ParseToggle(nil)
	assert.Error(t, err)

	_, err = ParseToggle([]string{"maybe"})
	assert.Error(t, err)
}
