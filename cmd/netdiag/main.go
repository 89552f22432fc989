// The netdiag command reads CSV descriptions of software systems,
// their hosting environments and the data flows between them, and
// renders a data-flow diagram in the Graphviz DOT language.
package main

/*
 Usage examples:

 Write DOT to stdout:
 % netdiag -e environments.csv -s systems.csv -d dataflows.csv

 Render a PNG via Graphviz:
 % netdiag -e environments.csv -s systems.csv -d dataflows.csv -T png -o ils.png

 Take the input paths from netdiag.yaml:
 % netdiag -v
*/

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/exec"
	"os/signal"
	"strings"

	"github.com/libsys/netdiag/internal/cli"
	"github.com/libsys/netdiag/internal/config"
	"github.com/libsys/netdiag/internal/dot"
	"github.com/libsys/netdiag/internal/netdiag"
	"github.com/libsys/netdiag/internal/tabular"
)

func main() {
	// Minimal logger until -v is known.
	setLogLevel(0)

	// An interrupt mid-run ends the program cleanly; there is no
	// partial output worth saving.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt)
	go func() {
		<-sigCh
		fmt.Fprintln(os.Stderr, "interrupted")
		os.Exit(0)
	}()

	if err := run(os.Stdout, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintf(os.Stderr, "netdiag: %s\n", err)
		os.Exit(1)
	}
}

func run(stdout io.Writer, args []string) (err error) {
	opts, done, err := cli.Parse(args, os.Stderr)
	if err != nil {
		return err
	}
	if done {
		return nil
	}
	setLogLevel(opts.Verbosity)

	cfg, err := loadConfig(opts)
	if err != nil {
		return err
	}

	// Flags override the config file.
	if opts.Environments != "" {
		cfg.Inputs.Environments = opts.Environments
	}
	if opts.Systems != "" {
		cfg.Inputs.Systems = opts.Systems
	}
	if opts.DataFlows != "" {
		cfg.Inputs.DataFlows = opts.DataFlows
	}
	if opts.Format != "" {
		cfg.Output.Format = opts.Format
	}
	if opts.Name != "" {
		cfg.Graph.Name = opts.Name
	}

	switch {
	case cfg.Inputs.Environments == "":
		return &cli.ExitError{Code: 2, Message: "no environments sheet: use -e or the config file"}
	case cfg.Inputs.Systems == "":
		return &cli.ExitError{Code: 2, Message: "no systems sheet: use -s or the config file"}
	case cfg.Inputs.DataFlows == "":
		return &cli.ExitError{Code: 2, Message: "no data-flow sheet: use -d or the config file"}
	}

	network := netdiag.NewNetwork(cfg.Graph.Name)
	network.Highlight = cfg.Graph.HighlightColor

	// Order of reading is significant: a system is filed under its
	// environment only if the environment is already registered, so
	// environments come first, then systems, then data flows.
	envs, err := readSheet(cfg.Inputs.Environments, tabular.ReadEnvironments)
	if err != nil {
		return err
	}
	for _, e := range envs {
		network.AddEnvironment(e)
	}
	systems, err := readSheet(cfg.Inputs.Systems, tabular.ReadSystems)
	if err != nil {
		return err
	}
	for _, s := range systems {
		network.AddSystem(s)
	}
	flows, err := readSheet(cfg.Inputs.DataFlows, tabular.ReadDataFlows)
	if err != nil {
		return err
	}
	for _, df := range flows {
		network.AddDataFlow(df)
	}
	slog.Info("network assembled",
		"environments", len(envs), "systems", len(systems), "dataflows", len(flows))

	out := stdout
	if opts.Output != "" {
		f, err := os.Create(opts.Output)
		if err != nil {
			return err
		}
		defer func() {
			if closeErr := f.Close(); err == nil {
				err = closeErr
			}
		}()
		out = f
	}

	g := network.Graph()
	if cfg.Output.Format == "dot" {
		_, err := g.WriteTo(out)
		return err
	}
	return renderImage(g, cfg.Output.Format, out)
}

// loadConfig reads the config file named by -C, or the default one. A
// missing file is only an error when it was asked for explicitly.
func loadConfig(opts *cli.Options) (config.Config, error) {
	path := opts.ConfigFile
	if path == "" {
		path = config.DefaultPath
	}
	cfg, err := config.Load(path)
	if os.IsNotExist(err) && !opts.ConfigSet {
		slog.Debug("no config file", "path", path)
		return config.Default(), nil
	}
	if err != nil {
		return config.Config{}, err
	}
	slog.Debug("config loaded", "path", path)
	return cfg, nil
}

// readSheet opens path and reads its records with one of the tabular
// readers. The file handle is released as soon as the sheet is read.
func readSheet[T any](path string, read func(io.Reader) ([]T, error)) ([]T, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	recs, err := read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	slog.Debug("sheet read", "path", path, "records", len(recs))
	return recs, nil
}

// renderImage pipes the DOT text through the external Graphviz dot
// command, which does the layout and rasterization.
func renderImage(g *dot.Graph, format string, out io.Writer) error {
	cmd := exec.Command("dot", "-T"+format)
	cmd.Stdin = strings.NewReader(g.String())
	cmd.Stdout = out
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("running dot: %w", err)
	}
	return nil
}

// setLogLevel maps the -v count to a slog level on stderr:
// warnings by default, -v for info, -vv for debug.
func setLogLevel(verbosity int) {
	level := slog.LevelWarn
	switch {
	case verbosity == 1:
		level = slog.LevelInfo
	case verbosity >= 2:
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}
