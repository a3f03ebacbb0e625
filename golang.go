package bin2const

import "io"

// Go output has no CLI alias; it is reachable only through [Write] and
// [Marshal] with [KindGo].
func writeGoSlice(w io.Writer, data []byte, name string, tabSize int) error {
	return writeDecl(w, data, name, tabSize, declSpec{
		open: func(name string, _ int) string {
			return "var " + name + " = []byte{"
		},
		close: "\n}\n",
		group: declGroup,
		cont:  "\n",
	})
}
