package bin2const

import "io"

// Java output has no CLI alias; it is reachable only through [Write] and
// [Marshal] with [KindJava].
func writeJavaArray(w io.Writer, data []byte, name string, tabSize int) error {
	return writeDecl(w, data, name, tabSize, declSpec{
		open: func(name string, _ int) string {
			return "public static final byte[] " + name + " = new byte[] {"
		},
		close: "\n};\n",
		group: declGroup,
		cont:  "\n",
	})
}
