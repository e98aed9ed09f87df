package cursor

import (
	"encoding/binary"

	"github.com/pkg/errors"
)

// Write writes data verbatim at the current position, implementing
// io.Writer. A fixed Cursor rejects the whole write if it does not fit,
// leaving the position and buffer untouched.
func (c *Cursor) Write(data []byte) (int, error) {
	l := len(data)

	if err := c.ensure(l); err != nil {
		return 0, err
	}

	copy(c.buffer[c.offset:], data)
	c.offset += l

	return l, nil
}

// MustWrite is a write that will panic if Write returns an error or does not
// write all the bytes it is supposed to
func (c *Cursor) MustWrite(data []byte) {
	l := len(data)
	wl, err := c.Write(data)
	if err != nil {
		panic(err)
	}
	if wl < l {
		panic(errors.New("couldn't write all bytes to the buffer"))
	}
}

// WriteBytes writes a byte slice verbatim at the current position
func (c *Cursor) WriteBytes(data []byte) error {
	_, err := c.Write(data)
	return err
}

// MustWriteBytes panics if WriteBytes fails
func (c *Cursor) MustWriteBytes(data []byte) {
	if err := c.WriteBytes(data); err != nil {
		panic(err)
	}
}

// WriteVal writes an arbitrary fixed-size value in the Cursor's byte order
func (c *Cursor) WriteVal(val interface{}) error {
	return binary.Write(c, c.order, val)
}

// MustWriteVal panics if WriteVal fails
func (c *Cursor) MustWriteVal(val interface{}) {
	if err := c.WriteVal(val); err != nil {
		panic(err)
	}
}

// WriteString writes a string to the buffer
func (c *Cursor) WriteString(val string) error {
	_, err := c.Write([]byte(val))
	return err
}

// MustWriteString panics if WriteString fails
func (c *Cursor) MustWriteString(val string) {
	if err := c.WriteString(val); err != nil {
		panic(err)
	}
}

// WriteUint8 writes an uint8 to the buffer
func (c *Cursor) WriteUint8(val uint8) error { return c.WriteVal(val) }

// MustWriteUint8 panics if WriteUint8 fails
func (c *Cursor) MustWriteUint8(val uint8) {
	if err := c.WriteUint8(val); err != nil {
		panic(err)
	}
}

// WriteInt8 writes an int8 to the buffer
func (c *Cursor) WriteInt8(val int8) error { return c.WriteVal(val) }

// MustWriteInt8 panics if WriteInt8 fails
func (c *Cursor) MustWriteInt8(val int8) {
	if err := c.WriteInt8(val); err != nil {
		panic(err)
	}
}

// WriteUint16 writes an uint16 to the buffer
func (c *Cursor) WriteUint16(val uint16) error { return c.WriteVal(val) }

// MustWriteUint16 panics if WriteUint16 fails
func (c *Cursor) MustWriteUint16(val uint16) {
	if err := c.WriteUint16(val); err != nil {
		panic(err)
	}
}

// WriteInt16 writes an int16 to the buffer
func (c *Cursor) WriteInt16(val int16) error { return c.WriteVal(val) }

// MustWriteInt16 panics if WriteInt16 fails
func (c *Cursor) MustWriteInt16(val int16) {
	if err := c.WriteInt16(val); err != nil {
		panic(err)
	}
}

// WriteUint32 writes an uint32 to the buffer
func (c *Cursor) WriteUint32(val uint32) error { return c.WriteVal(val) }

// MustWriteUint32 panics if WriteUint32 fails
func (c *Cursor) MustWriteUint32(val uint32) {
	if err := c.WriteUint32(val); err != nil {
		panic(err)
	}
}

// WriteInt32 writes an int32 to the buffer
func (c *Cursor) WriteInt32(val int32) error { return c.WriteVal(val) }

// MustWriteInt32 panics if WriteInt32 fails
func (c *Cursor) MustWriteInt32(val int32) {
	if err := c.WriteInt32(val); err != nil {
		panic(err)
	}
}

// WriteUint64 writes an uint64 to the buffer
func (c *Cursor) WriteUint64(val uint64) error { return c.WriteVal(val) }

// MustWriteUint64 panics if WriteUint64 fails
func (c *Cursor) MustWriteUint64(val uint64) {
	if err := c.WriteUint64(val); err != nil {
		panic(err)
	}
}

// WriteInt64 writes an int64 to the buffer
func (c *Cursor) WriteInt64(val int64) error { return c.WriteVal(val) }

// MustWriteInt64 panics if WriteInt64 fails
func (c *Cursor) MustWriteInt64(val int64) {
	if err := c.WriteInt64(val); err != nil {
		panic(err)
	}
}
