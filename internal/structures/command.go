package structures

import "context"

type CommandHandler func(ctx context.Context) error

type Command struct {
	Name        string
	Description string
	Handler     CommandHandler
}

type CommandInfo struct {
	Name        string
	Description string
}

// KnownCommands lists every command in the order usage shows them.
var KnownCommands = []CommandInfo{
	{Name: CommandSplit, Description: "write one messages_<date>.json file per date"},
	{Name: CommandFirstIDs, Description: "print the first message id seen on each date"},
	{Name: CommandSummary, Description: "print message and role counts per date"},
	{Name: CommandVerify, Description: "check the output directory regroups to the input"},
}

func IsKnownCommand(name string) bool {
	for _, c := range KnownCommands {
		if c.Name == name {
			return true
		}
	}
	return false
}
