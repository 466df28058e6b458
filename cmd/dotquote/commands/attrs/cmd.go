package attrs

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

	label valueFlag
	sort  bool
	bare  bool
}

func (*Command) Name() string     { return "attrs" }
func (*Command) Synopsis() string { return "Assemble a DOT attribute list." }
func (*Command) Usage() string {
	return `attrs [-label <label>] [-sort] [-bare] <key=value>...:
	Print the attribute list for the given pairs, e.g.

		attrs -label "a b" shape=box color=

	prints
		 [label="a b" shape=box color=""]

	Pairs are written in the order given unless -sort is set, in which case
	they are sorted by key and a repeated key keeps its last value. An empty
	value after '=' is written as "".
`
}

func (cmd *Command) SetFlags(f *flag.FlagSet) {
	f.Var(&cmd.label, "label", "label attribute, written first")
	f.BoolVar(&cmd.sort, "sort", false, "sort pairs by key")
	f.BoolVar(&cmd.bare, "bare", false, "print the list without surrounding brackets")
}

func (cmd *Command) Execute(ctx context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	out, errw := cmd.Out, cmd.Err
	if out == nil {
		out = os.Stdout
	}
	if errw == nil {
		errw = os.Stderr
	}

	pairs, err := ParsePairs(f.Args())
	if err != nil {
		color.New(color.FgRed).Fprintf(errw, "attrs: %v\n", err)
		return subcommands.ExitUsageError
	}

	var attributes dot.Attributes = pairs
	if cmd.sort {
		m := dot.Map{}
		for _, p := range pairs {
			m[p.Key] = p.Value
		}
		attributes = m
	}

	ctxlog.FromContext(ctx).Debug("assembling attribute list",
		"label", cmd.label.value.IsSet(), "pairs", len(pairs), "sorted", cmd.sort)

	if cmd.bare {
		fmt.Fprintln(out, dot.AList(cmd.label.value, nil, attributes))
	} else {
		fmt.Fprintln(out, dot.AttrList(cmd.label.value, nil, attributes))
	}
	return subcommands.ExitSuccess
}

// ParsePairs parses key=value arguments into an ordered list.
func ParsePairs(args []string) (dot.List, error) {
	pairs := make(dot.List, 0, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok {
			return nil, fmt.Errorf("expected key=value, got %q", arg)
		}
		pairs = append(pairs, dot.Attr{Key: key, Value: dot.String(value)})
	}
	return pairs, nil
}

type valueFlag struct {
	value dot.Value
}

func (v *valueFlag) String() string {
	if v == nil {
		return ""
	}
	return v.value.Text()
}

func (v *valueFlag) Set(s string) error {
	v.value = dot.String(s)
	return nil
}
