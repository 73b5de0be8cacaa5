package slack

import (
	"fmt"
	"strings"
)

type CommandType string

const (
	CmdIn        CommandType = "in"
	CmdOut       CommandType = "out"
	CmdStatus    CommandType = "status"
	CmdReminders CommandType = "reminders"
	CmdHelp      CommandType = "help"
)

type Command struct {
	Type CommandType
	Args []string
	Raw  string
}

func ParseCommand(text string) (*Command, error) {
	parts := strings.Fields(strings.ToLower(strings.TrimSpace(text)))
	if len(parts) == 0 {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{
		Raw: text,
	}

	switch parts[0] {
	case "in", "checkin", "check-in":
		cmd.Type = CmdIn
	case "out", "checkout", "check-out":
		cmd.Type = CmdOut
	case "status", "st":
		cmd.Type = CmdStatus
	case "reminders", "reminder":
		cmd.Type = CmdReminders
		if len(parts) > 1 {
			cmd.Args = parts[1:]
		}
	case "help":
		cmd.Type = CmdHelp
	default:
		return nil, fmt.Errorf("unknown command: %s", parts[0])
	}

	return cmd, nil
}

// ParseToggle reads the on/off argument of the reminders command.
func ParseToggle(args []string) (bool, error) {
	if len(args) == 0 {
		return false, fmt.Errorf("use `/attendance reminders on` or `/attendance reminders off`")
	}
	switch args[0] {
	case "on", "enable", "yes":
		return true, nil
	case "off", "disable", "no":
		return false, nil
	default:
		return false, fmt.Errorf("invalid value %q, use on or off", args[0])
	}
}

func GetHelpText() string {
	return `*Available Commands:*

*Attendance:*
• ` + "`/attendance in`" + ` - Check in for today (only inside the check-in window)
• ` + "`/attendance out`" + ` - Check out and close today's session
• ` + "`/attendance status`" + ` - Show today's session and reminder times

*Reminders:*
• ` + "`/attendance reminders on`" + ` - Get a DM before and when your work day completes
• ` + "`/attendance reminders off`" + ` - Stop reminder DMs`
}
