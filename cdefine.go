package bin2const

import (
	"fmt"
	"io"
)

// The #define flavor departs from the block layout: a size macro line, the
// value macro opened inline, eight literals per backslash-continued line,
// and a deeper indent so continuation lines clear the macro name. Both
// macro names are uppercased.
func writeCDefine(w io.Writer, data []byte, name string, tabSize int) error {
	return writeDecl(w, data, name, tabSize, declSpec{
		open: func(name string, size int) string {
			return fmt.Sprintf("#define %s_SIZE %d\n#define %s {", name, size, name)
		},
		close:    "}\n",
		group:    8,
		cont:     "\\\n",
		inline:   true,
		extraPad: "    ",
		upper:    true,
	})
}
