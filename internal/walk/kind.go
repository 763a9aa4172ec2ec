package walk

import (
	"errors"
	"fmt"
	"io/fs"
)

// ErrInconsistent marks a broken contract between the Walker and a Visitor,
// such as a directory reported as a leaf.
var ErrInconsistent = errors.New("internal consistency violation")

// Kind tells a Visitor how the Walker reached an entry.
type Kind uint8

const (
	// RegularFile is any entry that is not a directory. The exact on-disk type
	// is available through TypeOf.
	RegularFile Kind = iota + 1
	// Directory is a directory, visited before its children.
	Directory
	// DirectoryUnreadable is a directory whose entries could not be listed.
	DirectoryUnreadable
	// StatFailed is an entry whose metadata could not be read.
	StatFailed
)

func (k Kind) String() string {
	switch k {
	case RegularFile:
		return "file"
	case Directory:
		return "directory"
	case DirectoryUnreadable:
		return "unreadable directory"
	case StatFailed:
		return "stat failed"
	default:
		return fmt.Sprintf("Kind(%d)", uint8(k))
	}
}

// EntryType is the on-disk type of an entry.
type EntryType uint8

const (
	// Regular is a plain file.
	Regular EntryType = iota
	// Dir is a directory.
	Dir
	// Symlink is a symbolic link.
	Symlink
	// NamedPipe is a FIFO.
	NamedPipe
	// Socket is a Unix domain socket.
	Socket
	// BlockDevice is a block device node.
	BlockDevice
	// CharDevice is a character device node.
	CharDevice
	// Irregular is an entry of no known type.
	Irregular
)

var entryTypeNames = [...]string{
	Regular:     "regular",
	Dir:         "directory",
	Symlink:     "symlink",
	NamedPipe:   "fifo",
	Socket:      "socket",
	BlockDevice: "block device",
	CharDevice:  "char device",
	Irregular:   "irregular",
}

func (t EntryType) String() string {
	if int(t) < len(entryTypeNames) {
		return entryTypeNames[t]
	}

	return fmt.Sprintf("EntryType(%d)", uint8(t))
}

// TypeOf maps the type bits of mode onto an EntryType.
func TypeOf(mode fs.FileMode) EntryType {
	switch typ := mode.Type(); {
	case typ == 0:
		return Regular
	case typ&fs.ModeDir != 0:
		return Dir
	case typ&fs.ModeSymlink != 0:
		return Symlink
	case typ&fs.ModeNamedPipe != 0:
		return NamedPipe
	case typ&fs.ModeSocket != 0:
		return Socket
	case typ&fs.ModeCharDevice != 0:
		return CharDevice
	case typ&fs.ModeDevice != 0:
		return BlockDevice
	default:
		return Irregular
	}
}
