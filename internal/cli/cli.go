// Package cli parses the command line into an Options value. Flag
// values that the user did not set are left at their zero values so
// the caller can layer them over the config file.
package cli

import (
	"flag"
	"fmt"
	"io"
	"strconv"
)

// An ExitError carries a specific process exit code.
type ExitError struct {
	Code    int
	Message string
}

func (e *ExitError) Error() string { return e.Message }

// Options is the parsed command line.
type Options struct {
	Environments string // -e, environments CSV
	Systems      string // -s, systems CSV
	DataFlows    string // -d, data-flow CSV
	Output       string // -o, output file ("" means stdout)
	ConfigFile   string // -C
	ConfigSet    bool   // -C was given explicitly
	Format       string // -T, "" means take it from config
	Name         string // -name, "" means take it from config
	Verbosity    int    // -v count
}

const usage = `Usage: netdiag [flags...]

netdiag reads CSV descriptions of systems, hosting environments and
data flows and renders a data-flow diagram in the Graphviz DOT language.

Input flags:
 -e file	environment descriptions in CSV
 -s file	system descriptions in CSV
 -d file	data flow descriptions in CSV
 -C file	config file (default netdiag.yaml)

Output flags:
 -o file	output file (default standard output)
 -T format	output format: dot, png or svg (default dot);
		png and svg run the output through the Graphviz dot command
 -name name	graph name used in the diagram

 -v		increase verbosity; repeat for more
`

// countFlag counts repetitions of a boolean flag, argparse-style.
type countFlag int

func (c *countFlag) String() string   { return strconv.Itoa(int(*c)) }
func (c *countFlag) IsBoolFlag() bool { return true }

func (c *countFlag) Set(s string) error {
	v, err := strconv.ParseBool(s)
	if err != nil {
		return err
	}
	if v {
		*c++
	}
	return nil
}

// Parse processes args. The bool result is true when the program
// should exit cleanly without doing anything (-h).
func Parse(args []string, output io.Writer) (*Options, bool, error) {
	opts := &Options{}
	var verbosity countFlag

	fs := flag.NewFlagSet("netdiag", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { fmt.Fprint(output, usage) }

	fs.StringVar(&opts.Environments, "e", "", "environment descriptions in CSV")
	fs.StringVar(&opts.Systems, "s", "", "system descriptions in CSV")
	fs.StringVar(&opts.DataFlows, "d", "", "data flow descriptions in CSV")
	fs.StringVar(&opts.Output, "o", "", "output file")
	fs.StringVar(&opts.ConfigFile, "C", "", "config file")
	fs.StringVar(&opts.Format, "T", "", "output format: dot, png or svg")
	fs.StringVar(&opts.Name, "name", "", "graph name")
	fs.Var(&verbosity, "v", "increase verbosity")

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	if fs.NArg() > 0 {
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unexpected argument: %s", fs.Arg(0))}
	}

	fs.Visit(func(f *flag.Flag) {
		if f.Name == "C" {
			opts.ConfigSet = true
		}
	})
	opts.Verbosity = int(verbosity)

	switch opts.Format {
	case "", "dot", "png", "svg":
	default:
		return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("invalid format %q: must be dot, png or svg", opts.Format)}
	}

	return opts, false, nil
}
