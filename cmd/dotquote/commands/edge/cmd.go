package edge

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/google/subcommands"

	"github.com/kralicky/dotquote/internal/ctxlog"
	"github.com/kralicky/dotquote/pkg/dot"
)

type Command struct {
	Out io.Writer
	Err io.Writer

	split bool
}

func (*Command) Name() string     { return "edge" }
func (*Command) Synopsis() string { return "Quote DOT edge endpoints." }
func (*Command) Usage() string {
	return `edge [-split] <node[:port[:compass]]>...:
	Print each edge endpoint with node and port quoted as needed.

	The compass point is printed as given. Unknown compass points are
	reported in the debug log but never rejected.
`
}

func (cmd *Command) SetFlags(f *flag.FlagSet) {
	f.BoolVar(&cmd.split, "split", false, "print node, port and compass separated by tabs")
}

func (cmd *Command) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out, errw := cmd.Out, cmd.Err
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}

	if f.NArg() == 0 {
		color.New(color.FgRed).Fprintln(errw, "edge: missing endpoint")
		return subcommands.ExitUsageError
	}

	log := ctxlog.FromContext(ctx)
	for _, arg := range f.Args() {
		ep := dot.SplitEdge(arg)
		if ep.Compass != "" && !dot.IsCompass(ep.Compass) {
			log.Debug("unknown compass point", "endpoint", arg, "compass", ep.Compass)
		}

		if cmd.split {
			port := ""
			if ep.HasPort {
				port = dot.Quote(ep.Port)
			}
			fmt.Fprintf(out, "%s\t%s\t%s\n", dot.Quote(ep.Node), port, ep.Compass)
			continue
		}
		fmt.Fprintln(out, ep.String())
	}
	return subcommands.ExitSuccess
}
