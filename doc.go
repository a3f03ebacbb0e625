// Package bin2const renders raw bytes as memory dumps or as source-code
// constant declarations.
//
// The central entry points are [Write] and [Marshal], which accept a [Kind]
// constant together with the bytes to render, the name to declare, and the
// indentation width. Output is deterministic: the same inputs always
// produce the same bytes, and nothing is read from the environment.
//
// # Dumps
//
// [KindHex] and [KindBinary] render rows of sixteen byte slots: an
// eight-digit hexadecimal offset, the byte cells (two hex digits or eight
// binary digits each) with a gap after every fourth slot, and a gutter
// showing printable ASCII with dots for everything else. The declared name
// and the tab size are ignored by both. Empty input renders nothing:
//
//	bin2const.Write(os.Stdout, bin2const.KindHex, data, "", 0)
//
// # Constant declarations
//
// The remaining kinds wrap the bytes of the input in a constant
// declaration for one target language: a C array ([KindC]), a C #define
// macro pair ([KindCDefine]), a Rust array ([KindRust]), a Python bytes
// literal ([KindPython]), a C# array ([KindCSharp]), a JavaScript
// Uint8Array ([KindJavaScript]), a Go byte slice ([KindGo]), or a Java
// byte array ([KindJava]). Byte values appear as lowercase 0x literals,
// sixteen per line, indented by tabSize spaces:
//
//	const unsigned char logo_png[] = {
//	    0x89, 0x50, 0x4e, 0x47, 0x0d, 0x0a, 0x1a, 0x0a
//	};
//
// [KindCDefine] instead emits a SIZE macro and a value macro with eight
// literals per backslash-continued line, uppercasing the name.
//
// # Kind Selection
//
// Use [ParseKind] to convert a selector string into a [Kind]. Matching is
// case-insensitive, ignores surrounding whitespace, and accepts a fixed
// set of aliases per kind ("c++" and "hpp" for [KindC], "ts" for
// [KindJavaScript], and so on). [KindGo] and [KindJava] have no selector
// aliases and are only reachable through the API:
//
//	k, err := bin2const.ParseKind(arg)
//	bin2const.Write(os.Stdout, k, data, name, 4)
//
// # Errors
//
// Selector strings outside the alias table and out-of-range [Kind] values
// return [ErrUnknownKind], wrapped with the offending token for display.
// Everything else that can fail is the destination writer; its error is
// returned unchanged.
package bin2const
