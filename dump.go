package bin2const

import (
	"fmt"
	"io"
	"strings"
)

// dumpWidth is the number of byte slots per dump row.
const dumpWidth = 16

// dumpSpec describes one dump flavor: how a present byte slot is rendered
// and what fills an absent slot in the final row. Both strings must cover
// the same width so the gutter stays aligned.
type dumpSpec struct {
	cell  string // Fprintf verb for one byte, trailing space included
	blank string // filler for a slot past the end of the data
}

var (
	hexDumpSpec    = dumpSpec{cell: "%02x ", blank: strings.Repeat(" ", 3)}
	binaryDumpSpec = dumpSpec{cell: "%08b ", blank: strings.Repeat(" ", 9)}
)

func writeHexDump(w io.Writer, data []byte) error {
	return writeDump(w, data, hexDumpSpec)
}

func writeBinaryDump(w io.Writer, data []byte) error {
	return writeDump(w, data, binaryDumpSpec)
}

// writeDump renders data as rows of dumpWidth byte slots: an eight-digit
// hex offset, the byte cells with an extra space after every fourth slot,
// and a printable-ASCII gutter. Empty input renders nothing.
func writeDump(w io.Writer, data []byte, spec dumpSpec) error {
	var row strings.Builder
	for base := 0; base < len(data); base += dumpWidth {
		row.Reset()
		fmt.Fprintf(&row, "%08x  ", base)
		for j := 0; j < dumpWidth; j++ {
			if base+j < len(data) {
				fmt.Fprintf(&row, spec.cell, data[base+j])
			} else {
				row.WriteString(spec.blank)
			}
			if j%4 == 3 {
				row.WriteByte(' ')
			}
		}
		row.WriteString(" |")
		for j := 0; j < dumpWidth; j++ {
			switch {
			case base+j >= len(data):
				row.WriteByte(' ')
			case data[base+j] >= 0x20 && data[base+j] <= 0x7e:
				row.WriteByte(data[base+j])
			default:
				row.WriteByte('.')
			}
		}
		row.WriteString("|\n")
		if _, err := io.WriteString(w, row.String()); err != nil {
			return err
		}
	}
	return nil
}
