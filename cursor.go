package cursor

import (
	"encoding/binary"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// DefaultGrowthIncrement is the minimum number of bytes a growable Cursor
// adds to its buffer on each reallocation.
const DefaultGrowthIncrement = 32

// Cursor is a Buffer over a contiguous byte slice. It tracks a single
// position that every read and write starts from and advances past.
//
// A Cursor is either fixed, in which case writes past the end of the buffer
// fail, or growable, in which case the buffer is reallocated to fit them.
// Reads never fail in either mode: a read past the end of the buffer
// returns the zero value and leaves the position unchanged.
//
// A Cursor is not safe for concurrent use. Reads advance the position and
// writes may reallocate the buffer, so sharing one across goroutines needs
// a mutex around every operation.
type Cursor struct {
	buffer    []byte
	offset    int
	order     binary.ByteOrder
	growable  bool
	increment int
}

// New creates a fixed-capacity Cursor over a zeroed buffer of the
// specified size.
func New(size int, e Endianness) *Cursor {
	return &Cursor{
		buffer: make([]byte, size),
		order:  e.byteOrder(),
	}
}

// NewFromBytes creates a fixed-capacity Cursor over the passed slice. The
// slice is adopted, not copied, so the Cursor and the caller observe each
// other's mutations.
func NewFromBytes(data []byte, e Endianness) *Cursor {
	return &Cursor{
		buffer: data,
		order:  e.byteOrder(),
	}
}

// NewGrowable creates a growable Cursor over a zeroed buffer of the
// specified size, growing by DefaultGrowthIncrement bytes at a time.
func NewGrowable(size int, e Endianness) *Cursor {
	return NewGrowableIncrement(size, DefaultGrowthIncrement, e)
}

// NewGrowableIncrement creates a growable Cursor with an explicit growth
// increment. A non-positive increment falls back to
// DefaultGrowthIncrement.
func NewGrowableIncrement(size, increment int, e Endianness) *Cursor {
	if increment <= 0 {
		increment = DefaultGrowthIncrement
	}

	return &Cursor{
		buffer:    make([]byte, size),
		order:     e.byteOrder(),
		growable:  true,
		increment: increment,
	}
}

// Pos returns the current position of the Cursor
func (c *Cursor) Pos() int { return c.offset }

// SetPos sets the position of the Cursor. Positions from 0 through Len()
// inclusive are valid, Len() itself being the state after the whole buffer
// has been consumed.
func (c *Cursor) SetPos(position int) error {
	if position < 0 || position > len(c.buffer) {
		return errors.Errorf("cursor: position %d out of range [0, %d]", position, len(c.buffer))
	}

	c.offset = position
	return nil
}

// MustSetPos will try to set the position inside the buffer and panic on error
func (c *Cursor) MustSetPos(position int) {
	if err := c.SetPos(position); err != nil {
		panic(err)
	}
}

// Len returns the current size of the Cursor's buffer
func (c *Cursor) Len() int { return len(c.buffer) }

// Bytes returns the internal byte slice of the Cursor
func (c *Cursor) Bytes() []byte { return c.buffer }

// Reset rewinds the position to 0. The buffer's contents and size are left
// untouched. Idempotent.
func (c *Cursor) Reset() { c.offset = 0 }

// readable reports whether n bytes can be read at the current position.
// The check is phrased as a subtraction so a huge n cannot overflow the
// addition and slip past it.
func (c *Cursor) readable(n int) bool {
	return n <= len(c.buffer)-c.offset
}

// ensure makes room for an n byte write at the current position. A fixed
// Cursor fails, a growable one reallocates by at least its increment and
// always by enough to fit the whole write.
func (c *Cursor) ensure(n int) error {
	if n <= len(c.buffer)-c.offset {
		return nil
	}

	if !c.growable {
		return errors.Errorf(
			"cursor: cannot write %d bytes at position %d in a buffer of size %d, reserve more space at construction",
			n, c.offset, len(c.buffer),
		)
	}

	step := c.increment
	if needed := n - (len(c.buffer) - c.offset); needed > step {
		step = needed
	}

	grown := make([]byte, len(c.buffer)+step)
	copy(grown, c.buffer)

	if logging {
		logger.Info("growing cursor buffer",
			zap.String("module", "cursor"),
			zap.Int("oldsize", len(c.buffer)),
			zap.Int("newsize", len(grown)),
		)
	}

	c.buffer = grown
	return nil
}
