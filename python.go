package bin2const

import "io"

func writePythonBytes(w io.Writer, data []byte, name string, tabSize int) error {
	return writeDecl(w, data, name, tabSize, declSpec{
		open: func(name string, _ int) string {
			return name + " = bytes(["
		},
		close: "\n])\n",
		group: declGroup,
		cont:  "\n",
	})
}
