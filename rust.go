package bin2const

import (
	"fmt"
	"io"
)

func writeRustArray(w io.Writer, data []byte, name string, tabSize int) error {
	return writeDecl(w, data, name, tabSize, declSpec{
		open: func(name string, size int) string {
			return fmt.Sprintf("const %s: [u8; %d] = [", name, size)
		},
		close: "\n];\n",
		group: declGroup,
		cont:  "\n",
	})
}
