package tally

import (
	"io"
	"time"

	"github.com/spf13/afero"
)

// Counts holds the per-type counters of a walk.
type Counts struct {
	// Files is the number of regular files whose path matched the pattern.
	Files int64 `json:"files"`
	// Bytes is the cumulative size of the matched files.
	Bytes int64 `json:"bytes"`
	// Dirs is the number of directories visited, including the start directory.
	Dirs int64 `json:"dirs"`
	// BlockDevices is the number of block device nodes.
	BlockDevices int64 `json:"block_devices"`
	// CharDevices is the number of character device nodes.
	CharDevices int64 `json:"char_devices"`
	// FIFOs is the number of named pipes.
	FIFOs int64 `json:"fifos"`
	// Symlinks is the number of symbolic links.
	Symlinks int64 `json:"symlinks"`
	// Sockets is the number of sockets.
	Sockets int64 `json:"sockets"`
	// Irregular is the number of entries of no known type.
	Irregular int64 `json:"irregular"`
}

// Total returns the number of counted entries. Unmatched regular files are not counted.
func (c Counts) Total() int64 {
	return c.Files + c.Dirs + c.BlockDevices + c.CharDevices + c.FIFOs + c.Symlinks + c.Sockets + c.Irregular
}

// Match is a regular file whose path contains the pattern.
type Match struct {
	// Path is the full path as built by the walker.
	Path string `json:"path"`
	// Size is the size in bytes.
	Size int64 `json:"size"`
}

// Stats holds the result of a walk.
type Stats struct {
	// Path is the starting path.
	Path string `json:"path"`
	// Pattern is the substring matched against full paths.
	Pattern string `json:"pattern"`
	// Counts holds the per-type counters.
	Counts Counts `json:"counts"`
	// Matches lists matched files in order of discovery.
	Matches []Match `json:"matches"`
	// ErrorCount is the number of entries that could not be read or listed.
	ErrorCount int64 `json:"error_count"`
	// Elapsed is the total time taken by the walk.
	Elapsed time.Duration `json:"elapsed"`
}

// Progress is a snapshot of a walk in flight.
type Progress struct {
	Entries int64
	Matches int64
	Bytes   int64
}

// Options configures a walk and CLI behavior.
type Options struct {
	// Path is the starting path. It is used verbatim to build full paths.
	Path string
	// Pattern is the case-sensitive substring to look for. Empty matches everything.
	Pattern string
	// Output represents output format (text or json).
	Output string
	// Types indicates whether to print the per-type counters.
	Types bool
	// Progress forces the progress line on or off; nil means decide from the terminal.
	Progress *bool
	// ProgressInterval controls progress callback cadence.
	ProgressInterval time.Duration
	// Debug indicates whether debug output is enabled.
	Debug bool
	// Version indicates whether to show version and exit.
	Version bool

	// Fs is the filesystem to walk. Defaults to the operating system.
	Fs afero.Fs
	// Out receives a report line for each match as it is found. Nil discards.
	Out io.Writer
	// Err receives per-entry error reports and debug output. Nil discards.
	Err io.Writer
}
