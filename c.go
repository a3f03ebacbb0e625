package bin2const

import "io"

func writeCArray(w io.Writer, data []byte, name string, tabSize int) error {
	return writeDecl(w, data, name, tabSize, declSpec{
		open: func(name string, _ int) string {
			return "const unsigned char " + name + "[] = {"
		},
		close: "\n};\n",
		group: declGroup,
		cont:  "\n",
	})
}
