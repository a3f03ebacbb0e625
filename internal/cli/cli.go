// Package cli wires the command line surface to the bin2const renderers.
package cli

import (
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/MactoineYT/bin2const"
)

// DefaultTabSize is used when the tab size argument is absent or does not
// parse as a non-negative integer.
const DefaultTabSize = 4

// Config holds one conversion request as parsed from the command line.
type Config struct {
	InputFile  string
	ConstName  string
	Conversion string
	TabSize    int
	OutputFile string // empty means stdout
}

// ParseTabSize interprets the optional tab size argument. Anything that is
// not a non-negative integer silently falls back to DefaultTabSize.
func ParseTabSize(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return DefaultTabSize
	}
	return n
}

// Run performs one conversion: read the input file, render it in the
// requested representation, and deliver the result to the output file or to
// stdout. The input is read before the selector is resolved, so a read
// failure wins when both are bad.
func Run(cfg Config, stdout io.Writer) error {
	data, err := os.ReadFile(cfg.InputFile)
	if err != nil {
		return fmt.Errorf("read %s: %w", cfg.InputFile, err)
	}
	kind, err := bin2const.ParseKind(cfg.Conversion)
	if err != nil {
		return err
	}
	out, err := bin2const.Marshal(kind, data, cfg.ConstName, cfg.TabSize)
	if err != nil {
		return err
	}
	if cfg.OutputFile != "" {
		if err := os.WriteFile(cfg.OutputFile, out, 0o644); err != nil {
			return fmt.Errorf("write %s: %w", cfg.OutputFile, err)
		}
		return nil
	}
	// Println semantics: one extra newline after the rendered output.
	_, err = fmt.Fprintln(stdout, string(out))
	return err
}
