package main

import (
	"bytes"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/olekukonko/errors"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/hanpama/lawtable"
)

var convertCmd = &cobra.Command{
	Use:   "convert <file.xml>",
	Short: "Convert the tables of a law XML file",
	Long: `Convert reads an e-Gov law XML file and writes each of its tables, with
its title and remarks, in the configured format. Output goes to stdout unless
-o is given. An existing output file is replaced only after confirmation on a
terminal, or with --force.`,
	Args: cobra.ExactArgs(1),
	RunE: runConvert,
}

func init() {
	convertCmd.Flags().StringP("output", "o", "", "write to this file instead of stdout")
	convertCmd.Flags().Bool("force", false, "overwrite the output file without asking")

	rootCmd.AddCommand(convertCmd)
}

func runConvert(cmd *cobra.Command, args []string) error {
	opts, err := options()
	if err != nil {
		return err
	}
	output, _ := cmd.Flags().GetString("output")
	force, _ := cmd.Flags().GetBool("force")

	if output != "" && !force {
		ok, err := mayOverwrite(output, os.Stdin, cmd.ErrOrStderr(), isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()))
		if err != nil {
			return err
		}
		if !ok {
			warn("skipped %s", output)
			return nil
		}
	}

	// Render fully before touching the output so a failed conversion leaves
	// an existing file intact.
	var buf bytes.Buffer
	enc, err := encodeOutput(&buf, viper.GetString("encoding"))
	if err != nil {
		return err
	}
	if err := lawtable.ConvertFile(args[0], enc, opts); err != nil {
		return err
	}
	if err := enc.Close(); err != nil {
		return errors.Newf("failed to encode output").Wrap(err)
	}

	if output == "" {
		_, err := buf.WriteTo(cmd.OutOrStdout())
		return err
	}
	if err := os.WriteFile(output, buf.Bytes(), 0o644); err != nil {
		return errors.Newf("failed to write %s", output).Wrap(err)
	}
	status("wrote %s", output)
	return nil
}
