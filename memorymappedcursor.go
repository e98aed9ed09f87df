package cursor

import (
	"os"
	"path/filepath"

	mmap "github.com/edsrzf/mmap-go"
	"github.com/pkg/errors"
)

// MemoryMappedCursor is a fixed-capacity Cursor whose buffer is a file
// mapped into memory. Writes land in the shared mapping and become visible
// to readers of the file. It is never growable, as a reallocation would
// detach the mapping from the file.
type MemoryMappedCursor struct {
	*Cursor
	mapping mmap.MMap
	loc     string // location of the memory mapped file
	size    int    // size in bytes
}

// NewMemoryMappedCursor will create and return a new instance of a
// MemoryMappedCursor over a file at the passed location, removing any file
// already there.
func NewMemoryMappedCursor(loc string, size int, e Endianness) (*MemoryMappedCursor, error) {
	if _, err := os.Stat(loc); err == nil {
		err = os.Remove(loc)
		if err != nil {
			return nil, err
		}
	}

	// ensure destination directory exists
	dir := filepath.Dir(loc)
	err := os.MkdirAll(dir, 0700)
	if err != nil {
		return nil, err
	}

	f, err := os.OpenFile(loc, os.O_CREATE|os.O_RDWR|os.O_EXCL, 0644)
	if err != nil {
		return nil, err
	}
	// the mapping outlives the descriptor
	defer f.Close()

	l, err := f.Write(make([]byte, size))
	if err != nil {
		return nil, err
	}
	if l < size {
		return nil, errors.Errorf("could not initialize %d bytes", size)
	}

	m, err := mmap.Map(f, mmap.RDWR, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "cannot map %v into memory", loc)
	}

	return &MemoryMappedCursor{
		NewFromBytes(m, e),
		m,
		loc,
		size,
	}, nil
}

// Sync flushes changes made to the mapped region back to the file.
func (c *MemoryMappedCursor) Sync() error {
	return c.mapping.Flush()
}

// Unmap will manually delete the memory mapping of a mapped cursor,
// removing the backing file as well if removefile is passed.
func (c *MemoryMappedCursor) Unmap(removefile bool) error {
	if err := c.mapping.Unmap(); err != nil {
		return err
	}

	if removefile {
		if err := os.Remove(c.loc); err != nil {
			return err
		}
	}

	return nil
}
