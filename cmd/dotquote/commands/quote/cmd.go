package quote

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/google/subcommands"

	"github.com/kralicky/dotquote/internal/ctxlog"
	"github.com/kralicky/dotquote/pkg/dot"
)

type Command struct {
	Out io.Writer
	Err io.Writer

	sep string
}

func (*Command) Name() string     { return "quote" }
func (*Command) Synopsis() string { return "Quote DOT identifiers." }
func (*Command) Usage() string {
	return `quote [-sep <separator>] <identifier>...:
	Print each identifier as a DOT token.

	Names, numerals and HTML-like labels (<...>) are printed unmodified,
	anything else is quoted. Keywords are always quoted.
`
}

func (cmd *Command) SetFlags(f *flag.FlagSet) {
	f.StringVar(&cmd.sep, "sep", "\n", "separator between tokens")
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
		color.New(color.FgRed).Fprintln(errw, "quote: missing identifier")
		return subcommands.ExitUsageError
	}

	log := ctxlog.FromContext(ctx)
	tokens := make([]string, 0, f.NArg())
	for _, arg := range f.Args() {
		token := dot.Quote(arg)
		log.Debug("quoted identifier", "input", arg, "token", token, "kind", dot.Classify(arg).String())
		tokens = append(tokens, token)
	}
	fmt.Fprintln(out, strings.Join(tokens, cmd.sep))
	return subcommands.ExitSuccess
}
