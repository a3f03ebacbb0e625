package bin2const

import "io"

func writeJavaScriptArray(w io.Writer, data []byte, name string, tabSize int) error {
	return writeDecl(w, data, name, tabSize, declSpec{
		open: func(name string, _ int) string {
			return "const " + name + " = new Uint8Array(["
		},
		close: "\n]);\n",
		group: declGroup,
		cont:  "\n",
	})
}
