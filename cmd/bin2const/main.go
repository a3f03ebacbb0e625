package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/MactoineYT/bin2const/internal/cli"
)

const version = "1.0.0"

var (
	rootCmd     *cobra.Command
	versionFlag bool
)

func init() {
	rootCmd = &cobra.Command{
		Use:   "bin2const <input_file> <output_const_name> <conversion_type> [tab_size] [output_file]",
		Short: "Convert a binary file into a memory dump or a source code constant",
		Long: `bin2const reads a binary file and re-emits it as a hex or binary dump,
or as a constant declaration in a target language.

Arguments:
  <input_file>         The file to convert.
  <output_const_name>  The name of the constant to generate. Has no effect
                       if the conversion type is bin or hex.
  <conversion_type>    The type of conversion to use. Can be bin, hex, c,
                       cdef, rust, csharp, python, javascript, as well as
                       most of their aliases.
  [tab_size]           The size of a tabulation in the output file. Per
                       default is 4.
  [output_file]        Optional output file, if not specified or empty,
                       the output will be printed to stdout.`,
		Args: cobra.ArbitraryArgs,
		Run:  convert,
	}

	rootCmd.Flags().BoolVarP(&versionFlag, "version", "V", false, "Show version information")
}

func convert(cmd *cobra.Command, args []string) {
	if versionFlag {
		fmt.Printf("bin2const %s\n", version)
		return
	}
	if len(args) < 3 {
		_ = cmd.Help()
		return
	}

	cfg := cli.Config{
		InputFile:  args[0],
		ConstName:  args[1],
		Conversion: args[2],
		TabSize:    cli.DefaultTabSize,
	}
	if len(args) > 3 {
		cfg.TabSize = cli.ParseTabSize(args[3])
	}
	if len(args) > 4 {
		cfg.OutputFile = args[4]
	}

	// Failures are reported but do not change the exit status.
	if err := cli.Run(cfg, os.Stdout); err != nil {
		logger := log.NewWithOptions(os.Stderr, log.Options{
			Level: log.WarnLevel,
		})
		logger.Error("conversion failed", "err", err)
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
