package bin2const

import (
	"fmt"
	"io"
	"strings"
)

// declGroup is the number of byte literals per line in the block
// declaration kinds.
const declGroup = 16

// declSpec describes one target language's constant declaration syntax
// around the shared literal loop.
type declSpec struct {
	// open returns the opening declaration text, ending right before the
	// first indentation block.
	open func(name string, size int) string
	// close is appended after the final literal.
	close string
	// group is the number of byte literals per line.
	group int
	// cont is emitted between two groups, after the separating ", " and
	// before the next indentation block.
	cont string
	// inline starts the literals on the opening line instead of a fresh one.
	inline bool
	// extraPad widens every indentation block beyond the tab size.
	extraPad string
	// upper uppercases the declared name.
	upper bool
}

// indent returns the indentation block for one declaration line. Negative
// tab sizes collapse to no indentation.
func indent(tabSize int) string {
	if tabSize < 0 {
		tabSize = 0
	}
	return strings.Repeat(" ", tabSize)
}

// writeDecl renders data as a constant declaration: opening text, an
// indentation block, 0x-prefixed lowercase byte literals in groups of
// spec.group, and the closing text. Zero-length input keeps the opening,
// one indentation block, and the closing, with nothing between them.
func writeDecl(w io.Writer, data []byte, name string, tabSize int, spec declSpec) error {
	if spec.upper {
		name = strings.ToUpper(name)
	}
	pad := indent(tabSize) + spec.extraPad
	var b strings.Builder
	b.WriteString(spec.open(name, len(data)))
	if !spec.inline {
		b.WriteByte('\n')
	}
	b.WriteString(pad)
	last := len(data) - 1
	for i, v := range data {
		fmt.Fprintf(&b, "0x%02x", v)
		if i != last {
			b.WriteString(", ")
			if (i+1)%spec.group == 0 {
				b.WriteString(spec.cont)
				b.WriteString(pad)
			}
		}
	}
	b.WriteString(spec.close)
	_, err := io.WriteString(w, b.String())
	return err
}
