package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/phrazzld/gradebook/internal/config"
	"github.com/phrazzld/gradebook/internal/events"
	"github.com/phrazzld/gradebook/internal/gradebook"
	"github.com/phrazzld/gradebook/internal/platform/logger"
	"github.com/phrazzld/gradebook/internal/report"
	"github.com/phrazzld/gradebook/internal/store"
	"github.com/spf13/afero"
	"github.com/spf13/pflag"
)

// application holds the wired components a command operates on.
type application struct {
	config   *config.Config
	logger   *slog.Logger
	book     *gradebook.GradeBook
	renderer *report.Renderer
	stdout   io.Writer
	stderr   io.Writer
}

// run parses global flags, wires the application and dispatches a command.
func run(ctx context.Context, args []string, stdout, stderr io.Writer, fsys afero.Fs) error {
	global := pflag.NewFlagSet("gradebook", pflag.ContinueOnError)
	global.SetOutput(stderr)
	global.SetInterspersed(false)
	configFile := global.String("config", "", "path to a config file (yaml, json or toml)")
	global.String("data", "", "path to the roster document")
	global.String("log-level", "", "log level: debug, info, warn or error")
	global.Usage = func() { printUsage(stderr, global) }

	if err := global.Parse(args); err != nil {
		return err
	}
	if global.NArg() == 0 {
		printUsage(stderr, global)
		return errors.New("no command given")
	}

	name, cmdArgs := global.Arg(0), global.Args()[1:]
	cmd, ok := commands[name]
	if !ok {
		printUsage(stderr, global)
		return fmt.Errorf("unknown command %q", name)
	}

	cfg, err := config.Load(config.LoadOptions{ConfigFile: *configFile, Flags: global})
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	l, err := logger.SetupWithWriter(cfg.Log, stderr)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	app := newApplication(ctx, cfg, l, fsys, stdout, stderr)
	l.Debug("running command", "command", name, "document", cfg.Storage.DocumentPath)

	return cmd.run(ctx, app, cmdArgs)
}

// newApplication wires the store, gradebook and renderer, and loads the
// persisted roster. A document that cannot be used is reported on stderr and
// the command continues with an empty roster.
func newApplication(
	ctx context.Context,
	cfg *config.Config,
	l *slog.Logger,
	fsys afero.Fs,
	stdout, stderr io.Writer,
) *application {
	emitter := events.NewInMemoryEventEmitter(l)
	emitter.RegisterHandler(events.LogHandler(l))

	fileStore := store.NewFileStore(fsys, cfg.Storage.DocumentPath, l)
	book := gradebook.New(fileStore,
		gradebook.WithLogger(l),
		gradebook.WithEmitter(emitter))

	if err := book.Load(ctx); err != nil {
		fmt.Fprintf(stderr, "warning: %v; starting with an empty roster\n", err)
	}

	renderer := report.NewRenderer(fsys, report.Options{
		SheetName:       cfg.Report.SheetName,
		TimestampLayout: cfg.Report.TimestampLayout,
	}, l)

	return &application{
		config:   cfg,
		logger:   l,
		book:     book,
		renderer: renderer,
		stdout:   stdout,
		stderr:   stderr,
	}
}

func printUsage(w io.Writer, global *pflag.FlagSet) {
	fmt.Fprintln(w, "usage: gradebook [global flags] <command> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "commands:")
	for _, name := range commandOrder {
		fmt.Fprintf(w, "  %-10s %s\n", name, commands[name].summary)
	}
	fmt.Fprintln(w)
	fmt.Fprintln(w, "global flags:")
	fmt.Fprint(w, global.FlagUsages())
}
