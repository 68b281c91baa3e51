package internal

import (
	"chatsplit/internal/archive"
	"chatsplit/internal/providers"
	"chatsplit/internal/structures"
	"context"
	"errors"
	"fmt"
	"time"
)

var ErrUnknownCommand = errors.New("unknown command")

type App struct {
	conf        *structures.Config
	logger      providers.Logger
	commands    providers.CommandProviderInterface
	metrics     providers.MetricsProviderInterface
	fileManager archive.FileManagerInterface
}

func NewApp(conf *structures.Config, logger providers.Logger, commands providers.CommandProviderInterface, metrics providers.MetricsProviderInterface, fileManager archive.FileManagerInterface) *App {
	return &App{
		conf:        conf,
		logger:      logger,
		commands:    commands,
		metrics:     metrics,
		fileManager: fileManager,
	}
}

// Run executes the configured command once. Metrics are flushed whether or
// not the command succeeded.
func (a *App) Run(ctx context.Context) error {
	command, ok := a.commands.Lookup(a.conf.Command)
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownCommand, a.conf.Command)
	}

	logType := providers.GetLogTypeByCommand(command.Name)
	a.logger.Infof(providers.TypeApp, "Starting %s %s", a.conf.AppName, command.Name)
	a.logger.Debugf(providers.TypeApp, "input=%s output=%s compression=%s timezone=%s", a.conf.Input.Path, a.conf.Output.Dir, a.conf.Output.Compression, a.conf.Grouping.Timezone)

	start := time.Now()
	err := command.Handler(ctx)
	elapsed := time.Since(start)

	a.metrics.ObserveRunDuration(command.Name, elapsed)
	if err == nil {
		a.metrics.SetLastSuccess(command.Name, time.Now())
	}
	if ferr := a.metrics.Flush(); ferr != nil {
		a.logger.Warnf(providers.TypeApp, "Metrics flush error: %s", ferr)
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			a.logger.Warnf(logType, "%s interrupted after %s", command.Name, elapsed)
		} else {
			a.logger.Errorf(logType, "%s failed: %s", command.Name, err)
		}
		return err
	}

	a.logger.Infof(logType, "%s finished in %s", command.Name, elapsed)
	return nil
}

func (a *App) Close() {
	a.fileManager.Close()
	a.logger.Close()
}
