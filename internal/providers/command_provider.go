package providers

import (
	"chatsplit/internal/structures"
)

type CommandProviderInterface interface {
	Register(name, description string, handler structures.CommandHandler)
	Lookup(name string) (structures.Command, bool)
	GetCommands() []structures.Command
}

type CommandProvider struct {
	commands []structures.Command
}

func (cp *CommandProvider) Register(name, description string, handler structures.CommandHandler) {
	for i, c := range cp.commands {
		if c.Name == name {
			cp.commands[i] = structures.Command{Name: name, Description: description, Handler: handler}
			return
		}
	}
	cp.commands = append(cp.commands, structures.Command{
		Name:        name,
		Description: description,
		Handler:     handler,
	})
}

func (cp *CommandProvider) Lookup(name string) (structures.Command, bool) {
	for _, c := range cp.commands {
		if c.Name == name {
			return c, true
		}
	}
	return structures.Command{}, false
}

func (cp *CommandProvider) GetCommands() []structures.Command {
	return cp.commands
}

func NewCommandProvider() CommandProviderInterface {
	return &CommandProvider{}
}
