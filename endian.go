package cursor

import "encoding/binary"

// Endianness selects the byte order used for multi-byte integer reads and
// writes. It is fixed at construction. The zero value is BigEndian.
type Endianness int

// The two supported byte orders. Single-byte operations are unaffected by
// the choice.
const (
	BigEndian Endianness = iota
	LittleEndian
)

func (e Endianness) String() string {
	if e == LittleEndian {
		return "little"
	}
	return "big"
}

// byteOrder resolves the selector to its codec once, at construction
func (e Endianness) byteOrder() binary.ByteOrder {
	if e == LittleEndian {
		return binary.LittleEndian
	}
	return binary.BigEndian
}
