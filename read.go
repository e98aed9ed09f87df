package cursor

// All read operations decode at the current position and advance it by the
// operand width. A read that would run past the end of the buffer returns
// the zero value and does not advance.

// ReadUint8 reads a single unsigned byte
func (c *Cursor) ReadUint8() uint8 {
	if !c.readable(1) {
		return 0
	}

	v := c.buffer[c.offset]
	c.offset++
	return v
}

// ReadInt8 reads a single signed byte
func (c *Cursor) ReadInt8() int8 { return int8(c.ReadUint8()) }

// ReadUint16 reads an uint16 in the Cursor's byte order
func (c *Cursor) ReadUint16() uint16 {
	if !c.readable(2) {
		return 0
	}

	v := c.order.Uint16(c.buffer[c.offset:])
	c.offset += 2
	return v
}

// ReadInt16 reads an int16 in the Cursor's byte order
func (c *Cursor) ReadInt16() int16 { return int16(c.ReadUint16()) }

// ReadUint32 reads an uint32 in the Cursor's byte order
func (c *Cursor) ReadUint32() uint32 {
	if !c.readable(4) {
		return 0
	}

	v := c.order.Uint32(c.buffer[c.offset:])
	c.offset += 4
	return v
}

// ReadInt32 reads an int32 in the Cursor's byte order
func (c *Cursor) ReadInt32() int32 { return int32(c.ReadUint32()) }

// ReadUint64 reads an uint64 in the Cursor's byte order
func (c *Cursor) ReadUint64() uint64 {
	if !c.readable(8) {
		return 0
	}

	v := c.order.Uint64(c.buffer[c.offset:])
	c.offset += 8
	return v
}

// ReadInt64 reads an int64 in the Cursor's byte order
func (c *Cursor) ReadInt64() int64 { return int64(c.ReadUint64()) }

// ReadBytes reads n raw bytes into a fresh slice. The result never aliases
// the Cursor's buffer. If fewer than n bytes remain, an empty slice is
// returned and the position does not advance.
func (c *Cursor) ReadBytes(n int) []byte {
	if n < 0 || !c.readable(n) {
		return []byte{}
	}

	out := make([]byte, n)
	copy(out, c.buffer[c.offset:c.offset+n])
	c.offset += n
	return out
}
