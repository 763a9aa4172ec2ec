package walk

import (
	"errors"
	"fmt"
	"io/fs"

	"github.com/spf13/afero"
)

// ErrNoLstat is returned for a filesystem that cannot report symbolic links as
// themselves.
var ErrNoLstat = errors.New("filesystem does not support lstat")

// Classifier queries entry metadata without following symbolic links.
type Classifier struct {
	fs    afero.Fs
	lstat afero.Lstater
}

// NewClassifier returns a Classifier reading from fsys, which must implement afero.Lstater.
func NewClassifier(fsys afero.Fs) (Classifier, error) {
	lst, ok := fsys.(afero.Lstater)
	if !ok {
		return Classifier{}, fmt.Errorf("%w: %T", ErrNoLstat, fsys)
	}

	return Classifier{fs: fsys, lstat: lst}, nil
}

// Classify reports the metadata of path and how the Walker should treat it.
// On StatFailed the returned FileInfo is nil and err holds the cause.
func (c Classifier) Classify(path string) (fs.FileInfo, Kind, error) {
	info, _, err := c.lstat.LstatIfPossible(path)
	if err != nil {
		return nil, StatFailed, err
	}

	if info.IsDir() {
		return info, Directory, nil
	}

	return info, RegularFile, nil
}
