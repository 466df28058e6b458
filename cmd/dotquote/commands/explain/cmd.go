package explain

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/google/subcommands"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"

	"github.com/kralicky/dotquote/internal/ctxlog"
	"github.com/kralicky/dotquote/pkg/dot"
)

type Command struct {
	Out io.Writer
	Err io.Writer
}

func (*Command) Name() string     { return "explain" }
func (*Command) Synopsis() string { return "Show how identifiers are classified." }
func (*Command) Usage() string {
	return `explain <identifier>...:
	Print a markdown table with the lexical class of each identifier and
	the token it is written as.

	Inputs are shown Go-quoted so whitespace and control characters are
	visible.
`
}

func (cmd *Command) SetFlags(f *flag.FlagSet) {}

func (cmd *Command) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out, errw := cmd.Out, cmd.Err
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}

	if f.NArg() == 0 {
		color.New(color.FgRed).Fprintln(errw, "explain: missing identifier")
		return subcommands.ExitUsageError
	}

	if err := WriteTable(out, f.Args()); err != nil {
		color.New(color.FgRed).Fprintf(errw, "explain: %v\n", err)
		return subcommands.ExitFailure
	}
	ctxlog.FromContext(ctx).Debug("explained identifiers", "count", f.NArg())
	return subcommands.ExitSuccess
}

// WriteTable writes the classification table for ids to w.
func WriteTable(w io.Writer, ids []string) error {
	table := tablewriter.NewTable(w,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(tw.Alignment{tw.AlignLeft, tw.AlignLeft, tw.AlignLeft, tw.AlignLeft}),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)
	table.Header([]string{"input", "kind", "bare", "token"})

	for _, id := range ids {
		kind := dot.Classify(id)
		row := []string{strconv.Quote(id), kind.String(), strconv.FormatBool(kind.Bare()), dot.Quote(id)}
		if err := table.Append(row); err != nil {
			return fmt.Errorf("appending row for %q: %w", id, err)
		}
	}

	if err := table.Render(); err != nil {
		return fmt.Errorf("rendering table: %w", err)
	}
	return nil
}
