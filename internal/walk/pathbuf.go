package walk

import (
	"fmt"
	"path/filepath"
)

const (
	// PathMax is the initial capacity of a PathBuffer, excluding the terminator slot.
	PathMax = 4096
	// NameMax is the longest single path segment the buffer reserves room for.
	NameMax = 255
)

// PathBuffer holds the full path of the entry currently being visited.
// It grows by doubling and never shrinks while in use.
type PathBuffer struct {
	buf  []byte
	base int
}

// NewPathBuffer returns a buffer initialized to start.
func NewPathBuffer(start string) *PathBuffer {
	b := &PathBuffer{buf: make([]byte, 0, PathMax+1)}
	b.SetBase(start)

	return b
}

// SetBase resets the buffer to hold path. The length of path becomes the floor
// below which the buffer can never be truncated.
func (b *PathBuffer) SetBase(path string) {
	if cap(b.buf) <= len(path) {
		b.buf = make([]byte, 0, 2*len(path))
	}

	b.buf = append(b.buf[:0], path...)
	b.base = len(path)
}

// EnsureCapacity grows the buffer until n more bytes fit with room to spare.
func (b *PathBuffer) EnsureCapacity(n int) {
	capacity := cap(b.buf)
	if capacity == 0 {
		capacity = PathMax + 1
	}

	for len(b.buf)+n >= capacity {
		capacity *= 2
	}

	if capacity == cap(b.buf) {
		return
	}

	grown := make([]byte, len(b.buf), capacity)
	copy(grown, b.buf)
	b.buf = grown
}

// AppendSeparator appends a path separator unless the buffer already ends with one.
func (b *PathBuffer) AppendSeparator() {
	if n := len(b.buf); n > 0 && b.buf[n-1] == filepath.Separator {
		return
	}

	b.EnsureCapacity(1)
	b.buf = append(b.buf, filepath.Separator)
}

// Append appends name directly after the current length.
func (b *PathBuffer) Append(name string) {
	b.EnsureCapacity(len(name))
	b.buf = append(b.buf, name...)
}

// AppendSegment appends a separator and name.
func (b *PathBuffer) AppendSegment(name string) {
	b.AppendSeparator()
	b.Append(name)
}

// Truncate resets the logical length to n without reallocating.
// It panics if n is shorter than the base path or longer than the current length.
func (b *PathBuffer) Truncate(n int) {
	if n < b.base || n > len(b.buf) {
		panic(fmt.Sprintf("walk: truncate path buffer to %d outside [%d, %d]", n, b.base, len(b.buf)))
	}

	b.buf = b.buf[:n]
}

// Len returns the number of bytes in use.
func (b *PathBuffer) Len() int { return len(b.buf) }

// Cap returns the number of bytes allocated.
func (b *PathBuffer) Cap() int { return cap(b.buf) }

// Base returns the length of the start path.
func (b *PathBuffer) Base() int { return b.base }

// String returns a copy of the current path.
func (b *PathBuffer) String() string { return string(b.buf) }
