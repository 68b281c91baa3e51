package main

import (
	"chatsplit/internal/di"
	"chatsplit/internal/providers"
	"chatsplit/internal/structures"
	"context"
	"errors"
	"fmt"
	"github.com/spf13/pflag"
	"io"
	"os"
	"os/signal"
	"syscall"
)

const (
	exitOK    = 0
	exitFatal = 1
	exitUsage = 2
)

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	flags, err := parseFlags(args, stderr)
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", providers.AppName, err)
		return exitUsage
	}

	app, err := di.InitApp(flags)
	if err != nil {
		fmt.Fprintf(stderr, "%s: %s\n", providers.AppName, err)
		return exitFatal
	}
	defer app.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		return exitFatal
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (*structures.CliFlags, error) {
	fs := pflag.NewFlagSet(providers.AppName, pflag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: %s [flags] <command>\n\nCommands:\n", providers.AppName)
		for _, c := range structures.KnownCommands {
			fmt.Fprintf(stderr, "  %-10s %s\n", c.Name, c.Description)
		}
		fmt.Fprintf(stderr, "\nFlags:\n%s", fs.FlagUsages())
	}

	flags := &structures.CliFlags{FlagSet: fs}
	fs.StringVarP(&flags.ConfigPath, "config", "c", "", "path to an optional YAML config file")
	fs.BoolVarP(&flags.DebugMode, "debug", "d", false, "enable debug logging")
	fs.StringP("input", "i", "", "export file to read (plain, zstd or gzip)")
	fs.StringP("output", "o", "output_by_date", "directory for per-date files")
	fs.String("tz", "Local", "timezone used to turn timestamps into dates")
	fs.String("compression", "none", "output compression: none, zstd or gzip")
	fs.Int("conversation", 0, "index of the conversation in the export")
	fs.String("log-level", "info", "log level")
	fs.String("metrics-textfile", "", "write prometheus metrics to this file")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}

	if fs.NArg() != 1 {
		fs.Usage()
		return nil, fmt.Errorf("%w: expected exactly one command, got %d", errUsage, fs.NArg())
	}
	flags.Command = fs.Arg(0)
	if structures.IsKnownCommand(flags.Command) {
		return flags, nil
	}
	fs.Usage()
	return nil, fmt.Errorf("%w: unknown command %q", errUsage, flags.Command)
}
