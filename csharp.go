package bin2const

import "io"

func writeCSharpArray(w io.Writer, data []byte, name string, tabSize int) error {
	return writeDecl(w, data, name, tabSize, declSpec{
		open: func(name string, _ int) string {
			return "public static readonly byte[] " + name + " = new byte[] {"
		},
		close: "\n};\n",
		group: declGroup,
		cont:  "\n",
	})
}
