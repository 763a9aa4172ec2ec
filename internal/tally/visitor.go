package tally

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/idelchi/ftwstat/internal/walk"
)

// logger provides conditional debug output.
type logger struct {
	w       io.Writer
	enabled bool
}

// printf prints debug output if logging is enabled.
func (l logger) printf(format string, args ...any) {
	if l.enabled && l.w != nil {
		fmt.Fprintf(l.w, "[debug]: "+format, args...)
	}
}

// visitor is the walk.Visitor that fills Stats.
type visitor struct {
	ctx     context.Context //nolint:containedctx // checked on every entry
	pattern string
	out     io.Writer
	errs    io.Writer
	log     logger

	counts     Counts
	matches    []Match
	errorCount int64
	entries    int64

	progress func(Progress)
	interval time.Duration
	lastTick time.Time
}

// Visit implements walk.Visitor.
func (v *visitor) Visit(path string, info fs.FileInfo, kind walk.Kind, err error) error {
	select {
	case <-v.ctx.Done():
		return v.ctx.Err()
	default:
	}

	v.entries++
	defer v.tick()

	switch kind {
	case walk.Directory:
		v.counts.Dirs++
	case walk.DirectoryUnreadable:
		v.report(err, "can't read directory %s", path)
	case walk.StatFailed:
		v.report(err, "stat error for %s", path)
	case walk.RegularFile:
		return v.file(path, info)
	default:
		return fmt.Errorf("%w: unknown kind %v for %s", walk.ErrInconsistent, kind, path)
	}

	return nil
}

// file dispatches on the on-disk type of a non-directory entry.
func (v *visitor) file(path string, info fs.FileInfo) error {
	switch typ := walk.TypeOf(info.Mode()); typ {
	case walk.Regular:
		if strings.Contains(path, v.pattern) {
			v.match(path, info.Size())
		}
	case walk.BlockDevice:
		v.counts.BlockDevices++
	case walk.CharDevice:
		v.counts.CharDevices++
	case walk.NamedPipe:
		v.counts.FIFOs++
	case walk.Symlink:
		v.counts.Symlinks++
	case walk.Socket:
		v.counts.Sockets++
	case walk.Irregular:
		v.log.printf("irregular entry %s (%v)\n", path, info.Mode())
		v.counts.Irregular++
	case walk.Dir:
		return fmt.Errorf("%w: directory %s reported as a file", walk.ErrInconsistent, path)
	default:
		return fmt.Errorf("%w: unknown entry type %v for %s", walk.ErrInconsistent, typ, path)
	}

	return nil
}

func (v *visitor) match(path string, size int64) {
	v.counts.Files++
	v.counts.Bytes += size
	v.matches = append(v.matches, Match{Path: path, Size: size})

	v.log.printf("match %s (%s)\n", path, humanize.IBytes(uint64(size))) //nolint:gosec // Size is never negative

	if v.out != nil {
		fmt.Fprintf(v.out, "Match found: %s\n", path)
		fmt.Fprintf(v.out, "Size in bytes %d\n", size)
	}
}

// report writes a recoverable per-entry failure. The path already present in
// the message is stripped from the cause.
func (v *visitor) report(err error, format string, args ...any) {
	v.errorCount++

	if v.errs == nil {
		return
	}

	var pathErr *fs.PathError
	if errors.As(err, &pathErr) {
		err = pathErr.Err
	}

	msg := fmt.Sprintf(format, args...)
	if err != nil {
		msg += ": " + err.Error()
	}

	fmt.Fprintln(v.errs, msg)
}

// warn reports a failure the walker could not hand to the visitor.
func (v *visitor) warn(path string, err error) {
	if v.errs == nil {
		return
	}

	fmt.Fprintf(v.errs, "warning: directory %s: %v\n", path, err)
}

// tick invokes the progress hook at most once per interval.
func (v *visitor) tick() {
	if v.progress == nil {
		return
	}

	now := time.Now()
	if now.Sub(v.lastTick) < v.interval {
		return
	}

	v.lastTick = now
	v.progress(Progress{Entries: v.entries, Matches: v.counts.Files, Bytes: v.counts.Bytes})
}
