package internal

import (
	"chatsplit/internal/controllers"
	"chatsplit/internal/providers"
	"chatsplit/internal/structures"
)

func InitCommands(archiveController *controllers.ArchiveController) providers.CommandProviderInterface {
	handlers := map[string]structures.CommandHandler{
		structures.CommandSplit:    archiveController.Split,
		structures.CommandFirstIDs: archiveController.FirstIDs,
		structures.CommandSummary:  archiveController.Summary,
		structures.CommandVerify:   archiveController.Verify,
	}

	commands := providers.NewCommandProvider()
	for _, info := range structures.KnownCommands {
		commands.Register(info.Name, info.Description, handlers[info.Name])
	}
	return commands
}
