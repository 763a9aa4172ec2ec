package walk

import (
	"errors"
	"io"
	"io/fs"

	"github.com/spf13/afero"
)

// DefaultReadBatch is the number of names read from a directory handle at a time.
const DefaultReadBatch = 128

// Visitor observes every entry of a walk.
//
// info is nil when kind is StatFailed; err holds the cause for StatFailed and
// DirectoryUnreadable and is nil otherwise. Both path and info are only valid
// for the duration of the call. Returning a non-nil error stops the walk: a
// directory's children are skipped, no further siblings are visited, and Walk
// returns that error.
type Visitor interface {
	Visit(path string, info fs.FileInfo, kind Kind, err error) error
}

// VisitorFunc adapts an ordinary function to the Visitor interface.
type VisitorFunc func(path string, info fs.FileInfo, kind Kind, err error) error

// Visit calls f(path, info, kind, err).
func (f VisitorFunc) Visit(path string, info fs.FileInfo, kind Kind, err error) error {
	return f(path, info, kind, err)
}

// Walker performs depth-first, pre-order traversal over a filesystem.
type Walker struct {
	// Fs is the filesystem to walk. Defaults to the operating system.
	// It must implement afero.Lstater; Walk fails with ErrNoLstat otherwise.
	Fs afero.Fs
	// ReadBatch is the number of directory entries read per call. Defaults to DefaultReadBatch.
	ReadBatch int
	// Warn receives non-fatal failures that do not reach the Visitor, such as
	// failing to close a directory handle.
	Warn func(path string, err error)
}

// walkState is the per-call traversal context.
type walkState struct {
	w       *Walker
	path    *PathBuffer
	classer Classifier
	visitor Visitor
}

// Walk visits start and, if it is a directory, everything below it.
// It returns the first non-nil error returned by visitor, or nil.
// No entry is visited if w.Fs cannot lstat.
func (w *Walker) Walk(start string, visitor Visitor) error {
	fsys := w.Fs
	if fsys == nil {
		fsys = afero.NewOsFs()
	}

	classer, err := NewClassifier(fsys)
	if err != nil {
		return err
	}

	st := &walkState{
		w:       w,
		path:    NewPathBuffer(start),
		classer: classer,
		visitor: visitor,
	}

	return st.descend()
}

// Walk visits start on the operating system filesystem with default settings.
func Walk(start string, visitor Visitor) error {
	return (&Walker{}).Walk(start, visitor)
}

func (st *walkState) descend() error {
	path := st.path.String()

	info, kind, err := st.classer.Classify(path)
	if kind != Directory {
		return st.visitor.Visit(path, info, kind, err)
	}

	if err := st.visitor.Visit(path, info, Directory, nil); err != nil {
		return err
	}

	reset := st.path.Len()
	defer st.path.Truncate(reset)

	st.path.EnsureCapacity(NameMax + 2)
	st.path.AppendSeparator()
	prefix := st.path.Len()

	dir, err := st.classer.fs.Open(st.path.String())
	if err != nil {
		return st.visitor.Visit(path, info, DirectoryUnreadable, err)
	}

	defer func() {
		if err := dir.Close(); err != nil {
			st.warn(path, err)
		}
	}()

	return st.children(dir, path, prefix)
}

// children enumerates the entries of dir in listing order.
func (st *walkState) children(dir afero.File, path string, prefix int) error {
	batch := st.w.ReadBatch
	if batch <= 0 {
		batch = DefaultReadBatch
	}

	for {
		names, readErr := dir.Readdirnames(batch)

		for _, name := range names {
			if name == "." || name == ".." {
				continue
			}

			st.path.Truncate(prefix)
			st.path.Append(name)

			if err := st.descend(); err != nil {
				return err
			}
		}

		switch {
		case readErr == nil && len(names) > 0:
			continue
		case readErr == nil, errors.Is(readErr, io.EOF):
			return nil
		default:
			st.warn(path, readErr)

			return nil
		}
	}
}

func (st *walkState) warn(path string, err error) {
	if st.w.Warn != nil {
		st.w.Warn(path, err)
	}
}
