package cursor

import "testing"

func TestNewZeroesBuffer(t *testing.T) {
	c := New(8, BigEndian)

	if c.Len() != 8 {
		t.Errorf("expected a buffer of size 8, got %v", c.Len())
	}

	if c.Pos() != 0 {
		t.Errorf("expected initial position 0, got %v", c.Pos())
	}

	for i, b := range c.Bytes() {
		if b != 0 {
			t.Errorf("pos: %v, expected a zeroed byte, got %v", i, b)
		}
	}
}

func TestNewFromBytesAdoptsSlice(t *testing.T) {
	data := []byte{1, 2, 3, 4}
	c := NewFromBytes(data, BigEndian)

	if c.Len() != 4 {
		t.Errorf("expected a buffer of size 4, got %v", c.Len())
	}

	data[2] = 42
	if c.Bytes()[2] != 42 {
		t.Error("expected the cursor to operate on the passed slice, not a copy")
	}
}

func TestSetPos(t *testing.T) {
	c := New(4, BigEndian)

	if err := c.SetPos(5); err == nil {
		t.Error("expected error at setting a cursor to a position outside its range")
	}

	if err := c.SetPos(-1); err == nil {
		t.Error("expected error at setting a cursor to a negative position")
	}

	// the position just past the last byte is a valid state
	if err := c.SetPos(4); err != nil {
		t.Error("expected position == Len() to be accepted:", err)
	}

	c.MustSetPos(2)
	c.MustWriteString("a")

	if c.Pos() != 3 {
		t.Error("position not changing as expected")
		return
	}

	if c.Bytes()[2] != 'a' {
		t.Error("value was not written at the expected position")
	}
}

func TestReset(t *testing.T) {
	c := New(4, LittleEndian)
	c.MustWriteUint32(0xCAFEBABE)

	c.Reset()
	if c.Pos() != 0 {
		t.Errorf("expected position 0 after Reset, got %v", c.Pos())
	}

	c.Reset()
	if c.Pos() != 0 {
		t.Errorf("expected Reset to be idempotent, got position %v", c.Pos())
	}

	if c.Len() != 4 {
		t.Errorf("expected Reset to leave the buffer size at 4, got %v", c.Len())
	}

	if got := c.ReadUint32(); got != 0xCAFEBABE {
		t.Errorf("expected Reset to leave the contents untouched, read %#x", got)
	}
}

func TestGrowthOnSmallWrite(t *testing.T) {
	c := NewGrowableIncrement(0, 4, BigEndian)

	if err := c.WriteUint8(7); err != nil {
		t.Error(err)
		return
	}

	if c.Len() < 4 {
		t.Errorf("expected the buffer to grow by at least the increment, got size %v", c.Len())
	}

	if c.Bytes()[0] != 7 {
		t.Errorf("expected the written byte at position 0, got %v", c.Bytes()[0])
	}
}

func TestGrowthFitsOversizedWrite(t *testing.T) {
	c := NewGrowableIncrement(0, 4, BigEndian)

	data := []byte{1, 2, 3, 4, 5}
	if err := c.WriteBytes(data); err != nil {
		t.Error(err)
		return
	}

	if c.Len() < 5 {
		t.Errorf("expected the buffer to grow past a single increment to fit 5 bytes, got size %v", c.Len())
	}

	if c.Pos() != 5 {
		t.Errorf("expected position 5 after writing 5 bytes, got %v", c.Pos())
	}

	for i := range data {
		if c.Bytes()[i] != data[i] {
			t.Errorf("pos: %v, expected: %v, got %v", i, data[i], c.Bytes()[i])
		}
	}
}

func TestGrowthDefaultIncrement(t *testing.T) {
	c := NewGrowable(0, BigEndian)

	if err := c.WriteUint8(1); err != nil {
		t.Error(err)
		return
	}

	if c.Len() != DefaultGrowthIncrement {
		t.Errorf("expected one default growth step of %v bytes, got size %v", DefaultGrowthIncrement, c.Len())
	}
}

func TestGrowthPreservesContents(t *testing.T) {
	c := NewGrowableIncrement(2, 2, LittleEndian)
	c.MustWriteBytes([]byte{0xAA, 0xBB})
	c.MustWriteBytes([]byte{0xCC})

	e := []byte{0xAA, 0xBB, 0xCC}
	for i := range e {
		if c.Bytes()[i] != e[i] {
			t.Errorf("pos: %v, expected: %v, got %v", i, e[i], c.Bytes()[i])
		}
	}
}
