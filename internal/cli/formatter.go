package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/ftwstat/internal/tally"
)

const (
	// TabSpacing is the number of spaces between tabwriter columns.
	TabSpacing = 2
)

// PrintJSON outputs statistics in JSON format.
func PrintJSON(stats *tally.Stats, writer io.Writer) error {
	data, err := json.MarshalIndent(stats, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON output: %w", err)
	}

	if _, err := fmt.Fprintln(writer, string(data)); err != nil {
		return err
	}

	return nil
}

// PrintText outputs the two summary lines for the matched files.
func PrintText(stats *tally.Stats, writer io.Writer) error {
	if _, err := fmt.Fprintf(writer, "Total number of files: %d\n", stats.Counts.Files); err != nil {
		return err
	}

	_, err := fmt.Fprintf(writer, "Total number of bytes: %d\n", stats.Counts.Bytes)

	return err
}

// PrintTypes outputs the per-type counters in table format.
func PrintTypes(stats *tally.Stats, writer io.Writer) error {
	w := tabwriter.NewWriter(writer, 0, 4, TabSpacing, ' ', 0)
	c := stats.Counts

	fmt.Fprintln(w, "\nEntries:\t\t")
	fmt.Fprintf(w, "  matched files:\t%d\t(%s)\n", c.Files, humanize.IBytes(uint64(c.Bytes))) //nolint:gosec // Bytes is always positive
	fmt.Fprintf(w, "  directories:\t%d\t\n", c.Dirs)
	fmt.Fprintf(w, "  symlinks:\t%d\t\n", c.Symlinks)
	fmt.Fprintf(w, "  fifos:\t%d\t\n", c.FIFOs)
	fmt.Fprintf(w, "  sockets:\t%d\t\n", c.Sockets)
	fmt.Fprintf(w, "  block devices:\t%d\t\n", c.BlockDevices)
	fmt.Fprintf(w, "  char devices:\t%d\t\n", c.CharDevices)

	if c.Irregular > 0 {
		fmt.Fprintf(w, "  other:\t%d\t\n", c.Irregular)
	}

	fmt.Fprintf(w, "  total:\t%d\t\n", c.Total())
	fmt.Fprintf(w, "  errors:\t%d\t\n", stats.ErrorCount)

	fmt.Fprintf(w, "\nElapsed:\t%v\t\n", stats.Elapsed)

	return w.Flush()
}
