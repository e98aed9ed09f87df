// bxdump dumps the contents of a binary file as fixed-width words.
//
// Each line carries the byte offset the word was decoded at, the hex
// encoding and the unsigned decimal value. Any trailing bytes narrower
// than the selected width are printed raw at the end.
package main

import (
	"flag"
	"fmt"
	"io/ioutil"
	"os"

	"github.com/binkit/cursor"
)

var (
	width  = flag.Int("w", 32, "word width in bits (8, 16, 32 or 64)")
	endian = flag.String("e", "big", "byte order (big or little)")
)

func main() {
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: bxdump [-w width] [-e endianness] file")
		os.Exit(2)
	}

	var e cursor.Endianness
	switch *endian {
	case "big":
		e = cursor.BigEndian
	case "little":
		e = cursor.LittleEndian
	default:
		fmt.Fprintf(os.Stderr, "unknown byte order %q, expected big or little\n", *endian)
		os.Exit(2)
	}

	step := *width / 8
	switch *width {
	case 8, 16, 32, 64:
	default:
		fmt.Fprintf(os.Stderr, "unsupported word width %v, expected 8, 16, 32 or 64\n", *width)
		os.Exit(2)
	}

	data, err := ioutil.ReadFile(flag.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	c := cursor.NewFromBytes(data, e)

	for c.Pos()+step <= c.Len() {
		off := c.Pos()

		var v uint64
		switch *width {
		case 8:
			v = uint64(c.ReadUint8())
		case 16:
			v = uint64(c.ReadUint16())
		case 32:
			v = uint64(c.ReadUint32())
		case 64:
			v = c.ReadUint64()
		}

		fmt.Printf("%08x  0x%0*x  %v\n", off, step*2, v, v)
	}

	if rem := c.Len() - c.Pos(); rem > 0 {
		fmt.Printf("%08x  % x\n", c.Pos(), c.ReadBytes(rem))
	}
}
