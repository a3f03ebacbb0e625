package bin2const

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrUnknownKind is the sentinel for selector strings and Kind values that
// do not resolve to an output kind.
var ErrUnknownKind = errors.New("unknown conversion type")

// Kind identifies an output representation.
type Kind int

const (
	KindHex Kind = iota
	KindBinary
	KindC
	KindCDefine
	KindRust
	KindPython
	KindCSharp
	KindJavaScript
	KindGo
	KindJava
)

var kinds = []Kind{
	KindHex, KindBinary, KindC, KindCDefine, KindRust,
	KindPython, KindCSharp, KindJavaScript, KindGo, KindJava,
}

var kindNames = map[Kind]string{
	KindHex:        "hex",
	KindBinary:     "bin",
	KindC:          "c",
	KindCDefine:    "cdef",
	KindRust:       "rust",
	KindPython:     "python",
	KindCSharp:     "csharp",
	KindJavaScript: "javascript",
	KindGo:         "go",
	KindJava:       "java",
}

// kindAliases is the closed selector table. Keys are the normalized
// (trimmed, lowercased) tokens the CLI accepts; KindGo and KindJava are
// deliberately absent and reachable only through the library API.
var kindAliases = map[string]Kind{
	"bin":    KindBinary,
	"binary": KindBinary,
	"raw":    KindBinary,

	"hex":          KindHex,
	"hexadecimal":  KindHex,
	"hexa":         KindHex,
	"hexa-decimal": KindHex,
	"hexa_decimal": KindHex,

	"c":   KindC,
	"cpp": KindC,
	"c++": KindC,
	"cxx": KindC,
	"h":   KindC,
	"hpp": KindC,
	"h++": KindC,
	"hxx": KindC,

	"cdef":   KindCDefine,
	"c-def":  KindCDefine,
	"c_def":  KindCDefine,
	"def":    KindCDefine,
	"define": KindCDefine,
	"cppdef": KindCDefine,

	"rust":      KindRust,
	"rs":        KindRust,
	"rustlang":  KindRust,
	"rust-lang": KindRust,

	"csharp":  KindCSharp,
	"cs":      KindCSharp,
	"c#":      KindCSharp,
	"c-sharp": KindCSharp,
	"c_sharp": KindCSharp,

	"python":   KindPython,
	"py":       KindPython,
	"python3":  KindPython,
	"py3":      KindPython,
	"python_3": KindPython,

	"javascript": KindJavaScript,
	"js":         KindJavaScript,
	"typescript": KindJavaScript,
	"ts":         KindJavaScript,
}

// String returns the canonical kind name.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Kinds returns all output kinds, including the two without CLI aliases.
func Kinds() []Kind {
	out := make([]Kind, len(kinds))
	copy(out, kinds)
	return out
}

// ParseKind resolves a selector token to an output kind. Matching is
// case-insensitive and ignores surrounding whitespace; anything outside
// the alias table is an error carrying the token as given.
func ParseKind(s string) (Kind, error) {
	if k, ok := kindAliases[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownKind, s)
}

// Write renders data in the representation k and writes it to w. The name
// and tabSize arguments shape the source-constant kinds and are ignored by
// the two dump kinds. A negative tabSize is treated as zero.
func Write(w io.Writer, k Kind, data []byte, name string, tabSize int) error {
	switch k {
	case KindHex:
		return writeHexDump(w, data)
	case KindBinary:
		return writeBinaryDump(w, data)
	case KindC:
		return writeCArray(w, data, name, tabSize)
	case KindCDefine:
		return writeCDefine(w, data, name, tabSize)
	case KindRust:
		return writeRustArray(w, data, name, tabSize)
	case KindPython:
		return writePythonBytes(w, data, name, tabSize)
	case KindCSharp:
		return writeCSharpArray(w, data, name, tabSize)
	case KindJavaScript:
		return writeJavaScriptArray(w, data, name, tabSize)
	case KindGo:
		return writeGoSlice(w, data, name, tabSize)
	case KindJava:
		return writeJavaArray(w, data, name, tabSize)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, k.String())
	}
}

// Marshal renders data in the representation k and returns the bytes.
func Marshal(k Kind, data []byte, name string, tabSize int) ([]byte, error) {
	var buf bytes.Buffer
	if err := Write(&buf, k, data, name, tabSize); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
