package cli

import (
	"errors"
	"fmt"
	"io"
	"os"
	"slices"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/idelchi/ftwstat/internal/tally"
)

// ErrUsage is returned when the command line is malformed.
var ErrUsage = errors.New("usage")

const usageLine = "ftwstat <starting-pathname> <pattern>"

// CLI represents the command-line interface.
type CLI struct {
	version string
}

// New creates a new CLI instance with the given version.
func New(version string) CLI {
	return CLI{version: version}
}

// Execute runs the CLI with the process arguments.
func (c CLI) Execute() error {
	return c.execute(os.Args[1:], os.Stdout, os.Stderr)
}

// flagValues holds flag targets that need post-processing into tally.Options.
type flagValues struct {
	progress bool
}

func bindFlags(flags *pflag.FlagSet, options *tally.Options, values *flagValues) {
	flags.StringVarP(&options.Output, "output", "o", "text", "Output format: text or json")
	flags.BoolVarP(&options.Types, "types", "T", false, "Also print counts per entry type")
	flags.BoolVar(&values.progress, "progress", false, "Show a progress line on stderr (default: when stderr is a terminal)")
	flags.BoolVar(&options.Debug, "debug", false, "Enable debug output")
	flags.BoolVarP(&options.Version, "version", "v", false, "Show version and exit")

	flags.SortFlags = false
}

func (c CLI) execute(args []string, stdout, stderr io.Writer) error {
	var (
		options tally.Options
		values  flagValues
	)

	allowedOutputs := []string{"text", "json"}

	cmd := &cobra.Command{
		Use:   "ftwstat <starting-pathname> <pattern>",
		Short: "Count files under a path and total the ones matching a pattern",
		Long: heredoc.Doc(`
			ftwstat walks the tree below a starting path without following symbolic links.

			Every regular file whose full path contains <pattern> (case-sensitive substring,
			an empty pattern matches everything) is reported as it is found, and the number
			of matched files and their total size are printed at the end.

			Entries that cannot be read and directories that cannot be listed are reported
			on stderr; the walk continues with the next entry.

			Flags must come before <starting-pathname>; everything after it is taken
			literally, so a pattern may start with '-'. Use '--' before a starting path
			that starts with '-'.
		`),
		Args: func(_ *cobra.Command, args []string) error {
			if options.Version || len(args) == 2 {
				return nil
			}

			return fmt.Errorf("%w: %s", ErrUsage, usageLine)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if options.Version {
				fmt.Fprintln(stdout, c.version)

				return nil
			}

			if !slices.Contains(allowedOutputs, options.Output) {
				return fmt.Errorf("invalid output format %q: must be one of %v", options.Output, allowedOutputs)
			}

			if cmd.Flags().Lookup("progress").Changed {
				options.Progress = &values.progress
			}

			options.Path = args[0]
			options.Pattern = args[1]

			return logic(cmd.Context(), options, stdout, stderr)
		},
	}

	bindFlags(cmd.Flags(), &options, &values)

	cmd.Flags().SetInterspersed(false)
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return fmt.Errorf("%w: %s (%w)", ErrUsage, usageLine, err)
	})

	// cobra falls back to os.Args on a nil slice.
	if args == nil {
		args = []string{}
	}

	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	return cmd.Execute()
}
