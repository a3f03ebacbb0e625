package cli_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/MactoineYT/bin2const"
	"github.com/MactoineYT/bin2const/internal/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseTabSize(t *testing.T) {
	t.Parallel()
	tests := map[string]struct {
		input string
		want  int
	}{
		"number":     {input: "8", want: 8},
		"zero":       {input: "0", want: 0},
		"negative":   {input: "-1", want: cli.DefaultTabSize},
		"word":       {input: "wide", want: cli.DefaultTabSize},
		"empty":      {input: "", want: cli.DefaultTabSize},
		"fractional": {input: "3.5", want: cli.DefaultTabSize},
		"padded":     {input: " 5", want: cli.DefaultTabSize},
	}
	for name, tt := range tests {
		tt := tt
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, cli.ParseTabSize(tt.input))
		})
	}
}

func TestRunToStdout(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(in, []byte{0x00, 0x01, 0x02, 0x03}, 0o644))

	var stdout bytes.Buffer
	err := cli.Run(cli.Config{
		InputFile:  in,
		ConstName:  "test_txt",
		Conversion: "c",
		TabSize:    4,
	}, &stdout)
	require.NoError(t, err)
	// Stdout delivery appends one extra newline after the rendered output.
	assert.Equal(t, "const unsigned char test_txt[] = {\n    0x00, 0x01, 0x02, 0x03\n};\n\n", stdout.String())
}

func TestRunEmptyInputToStdout(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "empty.bin")
	require.NoError(t, os.WriteFile(in, nil, 0o644))

	var stdout bytes.Buffer
	err := cli.Run(cli.Config{InputFile: in, Conversion: "hex"}, &stdout)
	require.NoError(t, err)
	assert.Equal(t, "\n", stdout.String())
}

func TestRunEmptyOutputFileMeansStdout(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(in, []byte{0xff}, 0o644))

	var stdout bytes.Buffer
	err := cli.Run(cli.Config{
		InputFile:  in,
		ConstName:  "blob",
		Conversion: "c",
		TabSize:    0,
		OutputFile: "",
	}, &stdout)
	require.NoError(t, err)
	assert.Equal(t, "const unsigned char blob[] = {\n0xff\n};\n\n", stdout.String())
}

func TestRunToFile(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "data.bin")
	out := filepath.Join(dir, "data.h")
	require.NoError(t, os.WriteFile(in, []byte{0x00, 0x01, 0x02, 0x03}, 0o644))
	// Pre-existing content must be replaced, not appended to.
	require.NoError(t, os.WriteFile(out, bytes.Repeat([]byte{'x'}, 999), 0o644))

	var stdout bytes.Buffer
	err := cli.Run(cli.Config{
		InputFile:  in,
		ConstName:  "test_txt",
		Conversion: "cpp",
		TabSize:    4,
		OutputFile: out,
	}, &stdout)
	require.NoError(t, err)
	assert.Empty(t, stdout.String())

	got, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Equal(t, "const unsigned char test_txt[] = {\n    0x00, 0x01, 0x02, 0x03\n};\n", string(got))
}

func TestRunWriteFailure(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(in, []byte{0x01}, 0o644))
	// The parent directory of the output path does not exist.
	out := filepath.Join(dir, "missing", "nested", "out.h")

	var stdout bytes.Buffer
	err := cli.Run(cli.Config{
		InputFile:  in,
		ConstName:  "blob",
		Conversion: "c",
		TabSize:    4,
		OutputFile: out,
	}, &stdout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), out)
	assert.Empty(t, stdout.String())
}

func TestRunUnknownConversion(t *testing.T) {
	t.Parallel()
	dir := t.TempDir()
	in := filepath.Join(dir, "data.bin")
	require.NoError(t, os.WriteFile(in, []byte{0x01}, 0o644))

	var stdout bytes.Buffer
	err := cli.Run(cli.Config{InputFile: in, ConstName: "x", Conversion: "xyz"}, &stdout)
	require.Error(t, err)
	assert.ErrorIs(t, err, bin2const.ErrUnknownKind)
	assert.Contains(t, err.Error(), `"xyz"`)
	assert.Empty(t, stdout.String())
}

func TestRunMissingInput(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "absent.bin")

	var stdout bytes.Buffer
	err := cli.Run(cli.Config{InputFile: missing, Conversion: "hex"}, &stdout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "absent.bin")
}

func TestRunReadFailureWinsOverBadSelector(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "absent.bin")

	var stdout bytes.Buffer
	err := cli.Run(cli.Config{InputFile: missing, Conversion: "xyz"}, &stdout)
	require.Error(t, err)
	assert.NotErrorIs(t, err, bin2const.ErrUnknownKind)
}
