package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/idelchi/ftwstat/internal/tally"
)

// isTerminal reports whether w is a terminal.
func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)

	return ok && isatty.IsTerminal(f.Fd())
}

// lineClearer erases the progress line on status before every write to w.
type lineClearer struct {
	w      io.Writer
	status io.Writer
}

func (l lineClearer) Write(p []byte) (int, error) {
	fmt.Fprint(l.status, "\r\033[2K")

	return l.w.Write(p)
}

func logic(ctx context.Context, options tally.Options, stdout, stderr io.Writer) error {
	jsonOutput := strings.ToLower(options.Output) == "json"

	enableProgress := !jsonOutput && !options.Debug && isTerminal(stderr)
	if options.Progress != nil {
		enableProgress = *options.Progress && !jsonOutput
	}

	if ctx == nil {
		ctx = context.Background()
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt)
	defer stop()

	options.Err = stderr
	if !jsonOutput {
		options.Out = stdout
	}

	var progressHook func(tally.Progress)

	if enableProgress {
		// Hide cursor for in-place updates; restore on exit.
		fmt.Fprint(stderr, "\033[?25l")
		defer fmt.Fprint(stderr, "\033[?25h")

		if options.Out != nil {
			options.Out = lineClearer{w: options.Out, status: stderr}
		}

		progressHook = func(p tally.Progress) {
			msg := fmt.Sprintf("Scanning… %d entries, %d matches, %s",
				p.Entries, p.Matches, humanize.IBytes(uint64(p.Bytes))) //nolint:gosec // Bytes is always positive
			fmt.Fprintf(stderr, "\r\033[2K%s\r", msg)
		}
	}

	stats, err := tally.Run(ctx, options, progressHook)

	// Clear the status line
	if enableProgress {
		fmt.Fprint(stderr, "\r\033[2K\r")
	}

	if err != nil {
		return err
	}

	if jsonOutput {
		return PrintJSON(stats, stdout)
	}

	if err := PrintText(stats, stdout); err != nil {
		return err
	}

	if options.Types {
		return PrintTypes(stats, stdout)
	}

	return nil
}
