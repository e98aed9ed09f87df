// Package cursor implements a sequential binary cursor over an in-memory
// byte buffer.
//
// initially tried to use bytes.Buffer but it only ever appends at the end
// and gives no control over the read/write position. Further, most binary
// formats need fixed-width integers in a specific byte order, which meant
// every call site ended up doing its own offset arithmetic like
//
//	binary.BigEndian.PutUint32(buf[off:], v)
//	off += 4
//
// which became unmaintainable after a while
//
// this (tries) to implement a minimal cursor that tracks one position,
// decodes and encodes fixed-width integers in a configurable byte order,
// and optionally grows its buffer to fit writes
package cursor

import "io"

// Buffer defines an abstraction for an object that reads and writes binary
// values sequentially from a single position
type Buffer interface {
	io.Writer
	Bytes() []byte
	Pos() int
	SetPos(int) error
	Len() int
	Reset()
	ReadUint8() uint8
	ReadInt8() int8
	ReadUint16() uint16
	ReadInt16() int16
	ReadUint32() uint32
	ReadInt32() int32
	ReadUint64() uint64
	ReadInt64() int64
	ReadBytes(int) []byte
	WriteVal(val interface{}) error
	WriteBytes([]byte) error
	WriteString(string) error
	WriteUint8(uint8) error
	WriteInt8(int8) error
	WriteUint16(uint16) error
	WriteInt16(int16) error
	WriteUint32(uint32) error
	WriteInt32(int32) error
	WriteUint64(uint64) error
	WriteInt64(int64) error
}
