// Command metadict converts an OpenDocument export of the metadata
// standard into a JSON metadata dictionary.
//
// Usage:
//
//	metadict [input.xml [output.json]]
//
// Without arguments data/metadata_std.xml is converted to
// data/metadata_std.json. With only an input, the output is written next to
// it with a .json extension.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/tsawler/metadict"
)

const (
	defaultInput  = "data/metadata_std.xml"
	defaultOutput = "data/metadata_std.json"
)

var version = "dev"

func main() {
	os.Exit(run())
}

func run() int {
	return runWithArgs(os.Args[1:], os.Stdout, os.Stderr)
}

type cliFlags struct {
	configPath        string
	primaryTable      string
	continueNumbering bool
	verbose           bool
}

// exitCode carries a process exit status out of a cobra RunE.
type exitCode int

func (e exitCode) Error() string { return fmt.Sprintf("exit status %d", int(e)) }

func runWithArgs(args []string, stdout, stderr io.Writer) int {
	var flags cliFlags

	cmd := &cobra.Command{
		Use:   "metadict [input.xml [output.json]]",
		Short: "Convert a metadata standard document to a JSON dictionary",
		Long: `metadict reads an OpenDocument export (flat XML or .odt) holding a
primary field table and numbered lookup tables, links every field to its
option list and writes one JSON object keyed by technical name.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			code := convert(args, flags, stdout, stderr)
			if code != 0 {
				return exitCode(code)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.configPath, "config", "", "YAML file overriding table and column names")
	cmd.Flags().StringVar(&flags.primaryTable, "primary-table", "", "table:name of the primary field table (default \"Table1\")")
	cmd.Flags().BoolVar(&flags.continueNumbering, "continue-numbering", false, "continue numbered lists marked as continuations")
	cmd.Flags().BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	// cobra falls back to os.Args when given nil
	if args == nil {
		args = []string{}
	}
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		var code exitCode
		if errors.As(err, &code) {
			return int(code)
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		fmt.Fprintln(stderr, cmd.UsageString())
		return 2
	}
	return 0
}

// convert runs one conversion and returns the exit status.
func convert(args []string, flags cliFlags, stdout, stderr io.Writer) int {
	log := newLogger(stderr, flags.verbose)
	defer func() { _ = log.Sync() }()

	in, out := resolvePaths(args)

	conv := metadict.Open(in).WithLogger(log)
	if flags.configPath != "" {
		cfg, err := metadict.LoadConfig(flags.configPath)
		if err != nil {
			fmt.Fprintf(stderr, "Error: %v\n", err)
			return 1
		}
		conv = conv.WithConfig(cfg)
	}
	if flags.primaryTable != "" {
		conv = conv.PrimaryTable(flags.primaryTable)
	}
	if flags.continueNumbering {
		conv = conv.ContinueNumbering()
	}

	warnings, err := conv.WriteFile(out)
	for _, w := range warnings {
		log.Warn(w.Message, zap.Stringer("code", w.Code), zap.String("name", w.Name))
	}
	if err != nil {
		if errors.Is(err, metadict.ErrInputNotFound) {
			fmt.Fprintf(stderr, "Input file not found: %s\n", in)
			fmt.Fprintln(stderr, "Usage: metadict [input.xml [output.json]]")
			return 0
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	fmt.Fprintf(stdout, "Successfully converted %s to %s\n", in, out)
	return 0
}

// resolvePaths returns the input and output paths for the given arguments.
func resolvePaths(args []string) (string, string) {
	switch len(args) {
	case 0:
		return defaultInput, defaultOutput
	case 1:
		return args[0], outputPath(args[0])
	default:
		return args[0], args[1]
	}
}

// outputPath replaces the extension of in with .json, keeping the
// directory.
func outputPath(in string) string {
	base := filepath.Base(in)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	return filepath.Join(filepath.Dir(in), base+".json")
}

// newLogger builds a console logger writing to w. Debug output is only
// enabled when verbose is set.
func newLogger(w io.Writer, verbose bool) *zap.Logger {
	level := zapcore.InfoLevel
	if verbose {
		level = zapcore.DebugLevel
	}
	encoderCfg := zap.NewDevelopmentEncoderConfig()
	encoderCfg.TimeKey = ""
	core := zapcore.NewCore(
		zapcore.NewConsoleEncoder(encoderCfg),
		zapcore.AddSync(w),
		level,
	)
	return zap.New(core)
}
