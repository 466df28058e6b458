package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"strings"

	"github.com/fatih/color"
	"github.com/google/subcommands"

	"github.com/kralicky/dotquote/cmd/dotquote/commands/attrs"
	"github.com/kralicky/dotquote/cmd/dotquote/commands/edge"
	"github.com/kralicky/dotquote/cmd/dotquote/commands/explain"
	"github.com/kralicky/dotquote/cmd/dotquote/commands/quote"
	"github.com/kralicky/dotquote/internal/ctxlog"
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet(path.Base(os.Args[0]), flag.ContinueOnError)
	fs.SetOutput(stderr)

	logLevel := fs.String("log-level", "warn", "log level (debug, info, warn, error)")
	logFormat := fs.String("log-format", "text", "log format (text, json)")
	nocolor := fs.Bool("nocolor", false, "disable coloring")

	cmds := subcommands.NewCommander(fs, fs.Name())
	cmds.Output = stdout
	cmds.Error = stderr
	cmds.Register(cmds.HelpCommand(), "")
	cmds.Register(cmds.FlagsCommand(), "")
	cmds.Register(cmds.CommandsCommand(), "")

	cmds.Register(&quote.Command{Out: stdout, Err: stderr}, "")
	cmds.Register(&edge.Command{Out: stdout, Err: stderr}, "")
	cmds.Register(&attrs.Command{Out: stdout, Err: stderr}, "")
	cmds.Register(&explain.Command{Out: stdout, Err: stderr}, "")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return int(subcommands.ExitSuccess)
		}
		return int(subcommands.ExitUsageError)
	}

	if *nocolor {
		color.NoColor = true
	}

	logger, err := newLogger(stderr, *logLevel, *logFormat)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return int(subcommands.ExitUsageError)
	}
	logger.Debug("starting", "command", fs.Arg(0))

	ctx = ctxlog.WithLogger(ctx, logger)
	return int(cmds.Execute(ctx))
}

func newLogger(w io.Writer, level, format string) (*slog.Logger, error) {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "info":
		lvl = slog.LevelInfo
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be debug, info, warn or error", level)
	}

	opts := &slog.HandlerOptions{Level: lvl}
	switch strings.ToLower(format) {
	case "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("invalid log-format %q: must be text or json", format)
}
